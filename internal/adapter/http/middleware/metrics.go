package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-board/airport-flight-board/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping
// raw paths out of the label set.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request count, latency and
// in-flight requests. Routes are labelled by their registered pattern
// (e.g. /api/v1/airports/:iata). A nil registry disables recording.
func Metrics(reg *metrics.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if reg == nil {
			return next
		}
		return func(c echo.Context) error {
			start := time.Now()
			reg.HTTPRequestsInFlight.Inc()
			defer reg.HTTPRequestsInFlight.Dec()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			method := c.Request().Method

			reg.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Response().Status)).Inc()
			reg.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
