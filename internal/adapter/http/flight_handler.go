package http

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-board/airport-flight-board/internal/adapter/http/response"
)

// GetAirportBoard handles GET /api/v1/airports/:iata/flights
//
// @Summary Airport board
// @Description Returns the generated departure or arrival board of an airport, sorted by scheduled time. Boards are reused for 30 minutes.
// @Tags flights
// @Produce json
// @Param iata path string true "IATA code" example(SGN)
// @Param type query string false "departure (default) or arrival"
// @Success 200 {object} response.Response{data=BoardDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 404 {object} response.Response "Unknown airport"
// @Router /airports/{iata}/flights [get]
func (h *BoardHandler) GetAirportBoard(c echo.Context) error {
	var req BoardRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(false); err != nil {
		return h.handleValidationError(c, err)
	}

	return h.board(c, req.IATA, req)
}

// GetSelectedBoard handles GET /api/v1/board
//
// @Summary Board of the selected airport
// @Description Returns the board of the airport saved in preferences
// @Tags flights
// @Produce json
// @Param type query string false "departure (default) or arrival"
// @Success 200 {object} response.Response{data=BoardDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Router /board [get]
func (h *BoardHandler) GetSelectedBoard(c echo.Context) error {
	var req BoardRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(true); err != nil {
		return h.handleValidationError(c, err)
	}

	return h.board(c, h.preferences.Get().SelectedAirport, req)
}

func (h *BoardHandler) board(c echo.Context, iata string, req BoardRequest) error {
	airport, err := h.airports.GetByIATA(iata)
	if err != nil {
		return h.handleError(c, err)
	}

	batch, err := h.flights.GetBoard(airport.IATA, req.Board())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToBoardDTO(airport, batch))
}

// GetFlight handles GET /api/v1/flights/:id
//
// @Summary Flight details
// @Description Looks a flight up in every cached board
// @Tags flights
// @Produce json
// @Param id path string true "Flight ID" example(SGN-departure-0)
// @Success 200 {object} response.Response{data=FlightDTO}
// @Failure 404 {object} response.Response "Flight not in any cached board"
// @Router /flights/{id} [get]
func (h *BoardHandler) GetFlight(c echo.Context) error {
	var req FlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	flight, err := h.flights.GetFlight(req.ID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToFlightDTO(flight))
}

// ListFlightStatuses handles GET /api/v1/flight-statuses
//
// @Summary Flight statuses
// @Description Returns every status with its display metadata
// @Tags flights
// @Produce json
// @Success 200 {object} response.Response{data=StatusListDTO}
// @Router /flight-statuses [get]
func (h *BoardHandler) ListFlightStatuses(c echo.Context) error {
	return response.OK(c, ToStatusListDTO(h.flights.Statuses()))
}

// ResetBoards handles DELETE /api/v1/flights/cache
//
// @Summary Drop cached boards
// @Description Forces every board to be regenerated on next request
// @Tags flights
// @Success 204
// @Router /flights/cache [delete]
func (h *BoardHandler) ResetBoards(c echo.Context) error {
	h.flights.Reset()
	zerolog.Ctx(c.Request().Context()).Info().Msg("flight boards reset")
	return response.NoContent(c)
}
