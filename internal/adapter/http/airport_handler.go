package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-board/airport-flight-board/internal/adapter/http/response"
)

// SearchAirports handles GET /api/v1/airports/search
//
// @Summary Search airports
// @Description Scores the catalog against a free-text query and returns at most 10 airports, best first
// @Tags airports
// @Produce json
// @Param q query string false "Code, city, name or country fragment"
// @Success 200 {object} response.Response{data=AirportSearchDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Router /airports/search [get]
func (h *BoardHandler) SearchAirports(c echo.Context) error {
	var req SearchAirportsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	hits := h.airports.Search(req.Query)
	return response.OK(c, ToAirportSearchDTO(req.Query, hits))
}

// ListAirports handles GET /api/v1/airports
//
// @Summary List airports
// @Description Returns the whole catalog, or the airports of one country
// @Tags airports
// @Produce json
// @Param country query string false "Country name, case-insensitive"
// @Success 200 {object} response.Response{data=AirportListDTO}
// @Router /airports [get]
func (h *BoardHandler) ListAirports(c echo.Context) error {
	var req ListAirportsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	airports := h.airports.All()
	if req.Country != "" {
		airports = h.airports.ByCountry(req.Country)
	}

	dtos := ToAirportDTOs(airports)
	return response.OK(c, AirportListDTO{Total: len(dtos), Airports: dtos})
}

// GetAirport handles GET /api/v1/airports/:iata
//
// @Summary Airport details
// @Description Returns the airport with its current local time and favorite flag
// @Tags airports
// @Produce json
// @Param iata path string true "IATA code" example(SGN)
// @Success 200 {object} response.Response{data=AirportInfoDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 404 {object} response.Response "Unknown airport"
// @Router /airports/{iata} [get]
func (h *BoardHandler) GetAirport(c echo.Context) error {
	var req AirportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	info, err := h.airports.Info(req.IATA)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToAirportInfoDTO(info, h.preferences.IsFavorite(req.IATA)))
}
