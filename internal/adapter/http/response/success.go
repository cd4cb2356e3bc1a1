package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Health writes a health check response. It is not wrapped in the envelope
// so load balancers can match on the body directly.
func Health(c echo.Context, now time.Time) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
		Time:   now.UTC(),
	})
}
