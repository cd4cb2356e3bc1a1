package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-board/airport-flight-board/internal/metrics"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Metrics - Third, records the status written by the handler or error handler
//  4. Recover - Last, catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, reg *metrics.Registry) {
	SetupWithConfig(e, log, reg, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, reg *metrics.Registry, recoveryConfig RecoveryConfig) {
	e.Use(Chain(log, reg, recoveryConfig)...)
}

// Chain returns all middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, reg *metrics.Registry, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Metrics(reg),
		RecoverWithConfig(log, recoveryConfig),
	}
}
