package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight board API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *BoardHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the versioned API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *BoardHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	airports := api.Group("/airports")
	airports.GET("", h.ListAirports)
	airports.GET("/search", h.SearchAirports)
	airports.GET("/:iata", h.GetAirport)
	airports.GET("/:iata/flights", h.GetAirportBoard)
	airports.GET("/:iata/weather", h.GetAirportWeather)

	flights := api.Group("/flights")
	flights.GET("/:id", h.GetFlight)
	flights.DELETE("/cache", h.ResetBoards)

	api.GET("/flight-statuses", h.ListFlightStatuses)
	api.GET("/board", h.GetSelectedBoard)

	prefs := api.Group("/preferences")
	prefs.GET("", h.GetPreferences)
	prefs.PUT("/selected-airport", h.SelectAirport)
	prefs.GET("/favorites", h.ListFavorites)
	prefs.POST("/favorites/:iata/toggle", h.ToggleFavorite)
	prefs.PUT("/temperature-unit", h.SetTemperatureUnit)
	prefs.POST("/temperature-unit/toggle", h.ToggleTemperatureUnit)
}
