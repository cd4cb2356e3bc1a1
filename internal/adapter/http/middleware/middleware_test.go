package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-board/airport-flight-board/internal/metrics"
)

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// findLogEntry returns the first JSON log line with the given message.
func findLogEntry(t *testing.T, buf *bytes.Buffer, message string) map[string]interface{} {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err == nil && entry["message"] == message {
			return entry
		}
	}
	t.Fatalf("no log entry with message %q in %s", message, buf.String())
	return nil
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/test")

	require.NoError(t, RequestID()(okHandler)(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")
	assert.Equal(t, reqID, GetRequestID(c), "context ID should match header ID")
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/test")
	c.Request().Header.Set(RequestIDHeader, "board-client-42")

	require.NoError(t, RequestID()(okHandler)(c))

	assert.Equal(t, "board-client-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "board-client-42", GetRequestID(c))
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/test")
	c.Request().Header.Set(RequestIDHeader, strings.Repeat("x", 200))

	require.NoError(t, RequestID()(okHandler)(c))

	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/test")
	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	c, _ := newContext(http.MethodGet, "/api/v1/airports/search?q=tokyo")
	c.Request().Header.Set("User-Agent", "BoardTest/1.0")
	c.Request().Header.Set("X-Real-IP", "192.168.1.100")
	c.Set("request_id", "test-req-id-123")

	require.NoError(t, RequestLogger(logger)(okHandler)(c))

	entry := findLogEntry(t, &logBuf, "HTTP request")
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/airports/search", entry["path"])
	assert.Equal(t, "q=tokyo", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "BoardTest/1.0", entry["user_agent"])
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
	assert.Contains(t, entry, "duration_ms")
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusServiceUnavailable, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var logBuf bytes.Buffer
			c, _ := newContext(http.MethodGet, "/x")

			err := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})(c)
			require.NoError(t, err)

			entry := findLogEntry(t, &logBuf, "HTTP request")
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/missing")

	err := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "gone")
	})(c)

	require.NoError(t, err, "error is consumed by echo's error handler")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(404), findLogEntry(t, &logBuf, "HTTP request")["status"])
}

func TestRequestLogger_AttachesContextLogger(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newContext(http.MethodGet, "/x")
	c.Set("request_id", "ctx-id")

	err := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("inside handler")
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "ctx-id", findLogEntry(t, &logBuf, "inside handler")["request_id"])
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500Envelope(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/panic")
	c.Set("request_id", "panic-test-id")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		panic("test panic message")
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	errorObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "internal_error", errorObj["code"])
	assert.NotContains(t, rec.Body.String(), "test panic message", "panic text is not leaked")

	entry := findLogEntry(t, &logBuf, "Panic recovered")
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "panic-test-id", entry["request_id"])
	assert.Equal(t, "test panic message", entry["panic"])
	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
}

func TestRecover_HandlesRuntimeErrorPanic(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/panic")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		var m map[string]int
		m["boom"] = 1
		return nil
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, findLogEntry(t, &logBuf, "Panic recovered")["panic"], "nil map")
}

func TestRecover_RepanicsAbortHandler(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/abort")

	handler := Recover(zerolog.Nop())(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = handler(c) })
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/normal")

	require.NoError(t, Recover(zerolog.New(&logBuf))(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newContext(http.MethodGet, "/panic")

	handler := RecoverWithConfig(zerolog.New(&logBuf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("no stack test")
	})
	_ = handler(c)

	assert.NotContains(t, findLogEntry(t, &logBuf, "Panic recovered"), "stack")
}

// =====================================================
// Metrics Middleware Tests
// =====================================================

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	reg := metrics.NewRegistry()

	e := echo.New()
	e.Use(Metrics(reg))
	e.GET("/api/v1/airports/:iata", okHandler)
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})

	for _, target := range []string{"/api/v1/airports/SGN", "/api/v1/airports/HAN", "/fail"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("/api/v1/airports/:iata", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("/fail", "GET", "400")))
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.HTTPRequestsInFlight))
	assert.Equal(t, 2, testutil.CollectAndCount(reg.HTTPRequestDuration))
}

func TestMetrics_NilRegistryIsPassThrough(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/x")

	require.NoError(t, Metrics(nil)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// =====================================================
// Integration Tests - Middleware Chain
// =====================================================

func TestSetup_PanicRecoveryWithLogging(t *testing.T) {
	var logBuf bytes.Buffer
	reg := metrics.NewRegistry()

	e := echo.New()
	Setup(e, zerolog.New(&logBuf), reg)
	e.GET("/panic", func(c echo.Context) error {
		panic("integration test panic")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID)

	entry := findLogEntry(t, &logBuf, "HTTP request")
	assert.Equal(t, reqID, entry["request_id"])
	assert.Equal(t, float64(500), entry["status"])
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("/panic", "GET", "500")))
}

func TestSetupWithConfig_AppliesCustomConfig(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	SetupWithConfig(e, zerolog.New(&logBuf), nil, RecoveryConfig{DisablePrintStack: true})
	e.GET("/panic", func(c echo.Context) error {
		panic("config panic test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, findLogEntry(t, &logBuf, "Panic recovered"), "stack")
}

func TestChain_ReturnsMiddlewareSlice(t *testing.T) {
	chain := Chain(zerolog.Nop(), nil, DefaultRecoveryConfig())
	assert.Len(t, chain, 4)

	e := echo.New()
	e.Use(chain...)
	e.GET("/test", okHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
