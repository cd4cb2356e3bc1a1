package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-board/airport-flight-board/internal/adapter/http/response"
)

// GetAirportWeather handles GET /api/v1/airports/:iata/weather
//
// @Summary Current weather
// @Description Returns the current reading at an airport. Readings are cached for 10 minutes; when the live provider fails a synthetic reading is returned with authoritative=false.
// @Tags weather
// @Produce json
// @Param iata path string true "IATA code" example(SGN)
// @Param unit query string false "celsius or fahrenheit; defaults to the saved preference"
// @Success 200 {object} response.Response{data=WeatherDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 404 {object} response.Response "Unknown airport"
// @Failure 503 {object} response.Response "Weather unavailable"
// @Router /airports/{iata}/weather [get]
func (h *BoardHandler) GetAirportWeather(c echo.Context) error {
	var req WeatherRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	reading, err := h.weather.ForAirport(c.Request().Context(), req.IATA)
	if err != nil {
		return h.handleError(c, err)
	}

	unit := req.UnitOr(h.preferences.Get().TemperatureUnit)
	return response.OK(c, ToWeatherDTO(req.IATA, reading, unit))
}

// GetPreferences handles GET /api/v1/preferences
//
// @Summary Saved preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} response.Response{data=PreferencesDTO}
// @Router /preferences [get]
func (h *BoardHandler) GetPreferences(c echo.Context) error {
	return response.OK(c, ToPreferencesDTO(h.preferences.Get()))
}

// SelectAirport handles PUT /api/v1/preferences/selected-airport
//
// @Summary Select airport
// @Description Changes the airport shown on the board
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body SelectAirportRequest true "Airport to select"
// @Success 200 {object} response.Response{data=PreferencesDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 404 {object} response.Response "Unknown airport"
// @Failure 503 {object} response.Response "Preferences could not be saved"
// @Router /preferences/selected-airport [put]
func (h *BoardHandler) SelectAirport(c echo.Context) error {
	var req SelectAirportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	prefs, err := h.preferences.SelectAirport(c.Request().Context(), req.IATA)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToPreferencesDTO(prefs))
}

// ToggleFavorite handles POST /api/v1/preferences/favorites/:iata/toggle
//
// @Summary Toggle favorite
// @Description Adds the airport to the favorites, or removes it when already present
// @Tags preferences
// @Produce json
// @Param iata path string true "IATA code" example(NRT)
// @Success 200 {object} response.Response{data=FavoriteToggleDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 404 {object} response.Response "Unknown airport"
// @Failure 503 {object} response.Response "Preferences could not be saved"
// @Router /preferences/favorites/{iata}/toggle [post]
func (h *BoardHandler) ToggleFavorite(c echo.Context) error {
	var req AirportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	prefs, err := h.preferences.ToggleFavorite(c.Request().Context(), req.IATA)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, FavoriteToggleDTO{
		IATA:        req.IATA,
		IsFavorite:  prefs.IsFavorite(req.IATA),
		Preferences: ToPreferencesDTO(prefs),
	})
}

// ListFavorites handles GET /api/v1/preferences/favorites
//
// @Summary Favorite airports
// @Description Returns the favorite airports in the order they were added
// @Tags preferences
// @Produce json
// @Success 200 {object} response.Response{data=AirportListDTO}
// @Router /preferences/favorites [get]
func (h *BoardHandler) ListFavorites(c echo.Context) error {
	dtos := ToAirportDTOs(h.preferences.FavoriteAirports())
	return response.OK(c, AirportListDTO{Total: len(dtos), Airports: dtos})
}

// SetTemperatureUnit handles PUT /api/v1/preferences/temperature-unit
//
// @Summary Set temperature unit
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body TemperatureUnitRequest true "Unit to use"
// @Success 200 {object} response.Response{data=PreferencesDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 503 {object} response.Response "Preferences could not be saved"
// @Router /preferences/temperature-unit [put]
func (h *BoardHandler) SetTemperatureUnit(c echo.Context) error {
	var req TemperatureUnitRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	prefs, err := h.preferences.SetTemperatureUnit(c.Request().Context(), req.TemperatureUnit())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToPreferencesDTO(prefs))
}

// ToggleTemperatureUnit handles POST /api/v1/preferences/temperature-unit/toggle
//
// @Summary Toggle temperature unit
// @Description Switches between celsius and fahrenheit
// @Tags preferences
// @Produce json
// @Success 200 {object} response.Response{data=PreferencesDTO}
// @Failure 503 {object} response.Response "Preferences could not be saved"
// @Router /preferences/temperature-unit/toggle [post]
func (h *BoardHandler) ToggleTemperatureUnit(c echo.Context) error {
	prefs, err := h.preferences.ToggleTemperatureUnit(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToPreferencesDTO(prefs))
}
