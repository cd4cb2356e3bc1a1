// Package http provides the HTTP handler layer for the flight board API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-board/airport-flight-board/internal/adapter/http/response"
	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
	"github.com/flight-board/airport-flight-board/internal/usecase"
)

// BoardHandler handles HTTP requests for airports, boards, weather and
// preferences.
type BoardHandler struct {
	airports    usecase.AirportSearchUseCase
	flights     usecase.FlightBoardUseCase
	weather     usecase.WeatherUseCase
	preferences usecase.PreferenceUseCase
	clock       timeutil.Clock
}

// NewBoardHandler creates a BoardHandler. A nil clock uses the system time.
func NewBoardHandler(
	airports usecase.AirportSearchUseCase,
	flights usecase.FlightBoardUseCase,
	weather usecase.WeatherUseCase,
	preferences usecase.PreferenceUseCase,
	clock timeutil.Clock,
) *BoardHandler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &BoardHandler{
		airports:    airports,
		flights:     flights,
		weather:     weather,
		preferences: preferences,
		clock:       clock,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *BoardHandler) Health(c echo.Context) error {
	return response.Health(c, h.clock.Now())
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *BoardHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *BoardHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrAirportNotFound), errors.Is(err, domain.ErrFlightNotFound):
		return response.NotFound(c, err.Error())

	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidBoardType),
		errors.Is(err, domain.ErrInvalidTemperatureUnit):
		return response.ValidationErrorWithMessage(c, err.Error())

	case errors.Is(err, domain.ErrWeatherUnavailable):
		return response.ServiceUnavailableWithMessage(c, "Weather is currently unavailable")

	case errors.Is(err, domain.ErrPreferencesUnavailable):
		return response.ServiceUnavailableWithMessage(c, "Preferences could not be saved")

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Str("route", c.Path()).Msg("unhandled error")
	return response.InternalServerError(c)
}
