// Package openmeteo implements the live weather provider backed by the
// Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/retry"
)

// ProviderName is the identifier used in logs and errors.
const ProviderName = "open-meteo"

// DefaultBaseURL is the public Open-Meteo API.
const DefaultBaseURL = "https://api.open-meteo.com"

const currentFields = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"

// Config holds client settings.
type Config struct {
	BaseURL string

	// Timeout bounds a single HTTP attempt
	Timeout time.Duration

	// RateLimit is the sustained outbound request rate (requests per second)
	RateLimit float64
	Burst     int

	Retry retry.Config

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// DefaultConfig returns client settings suited to the public API.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   5 * time.Second,
		RateLimit: 5,
		Burst:     10,
		Retry:     retry.DefaultConfig,
	}
}

// Client fetches current conditions from Open-Meteo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      retry.Config
	now        func() time.Time
}

var _ domain.WeatherProvider = (*Client)(nil)

// NewClient creates a client. Zero-valued fields fall back to DefaultConfig.
func NewClient(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = def.RateLimit
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = def.Retry
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	retryCfg := cfg.Retry.WithRetryIf(domain.IsRetryable)
	if retryCfg.OnRetry == nil {
		retryCfg = retryCfg.WithOnRetry(func(attempt int, err error, wait time.Duration) {
			log.Warn().
				Str("provider", ProviderName).
				Int("attempt", attempt).
				Dur("wait", wait).
				Err(err).
				Msg("retrying weather request")
		})
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		retry:      retryCfg,
		now:        time.Now,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// Current returns the current reading at the coordinate. Transient failures
// are retried; the result is always annotated as a live reading.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (domain.Weather, error) {
	endpoint := c.endpoint(latitude, longitude)

	resp, err := retry.DoWithResult(ctx, func() (ForecastResponse, error) {
		return c.fetch(ctx, endpoint)
	}, c.retry)
	if err != nil {
		return domain.Weather{}, err
	}

	w, err := normalize(resp, c.now())
	if err != nil {
		return domain.Weather{}, domain.NewWeatherProviderError(ProviderName, 0, err)
	}
	w.Source = domain.WeatherSourceLive
	w.Authoritative = true
	return w, nil
}

func (c *Client) endpoint(latitude, longitude float64) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	q.Set("current", currentFields)
	q.Set("timezone", "auto")
	return c.baseURL + "/v1/forecast?" + q.Encode()
}

// fetch performs one rate-limited attempt.
func (c *Client) fetch(ctx context.Context, endpoint string) (ForecastResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return ForecastResponse{}, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ForecastResponse{}, domain.NewWeatherProviderError(ProviderName, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ForecastResponse{}, ctx.Err()
		}
		return ForecastResponse{}, domain.NewRetryableWeatherProviderError(ProviderName, 0, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return ForecastResponse{}, domain.NewRetryableWeatherProviderError(ProviderName, res.StatusCode, err)
	}

	switch {
	case res.StatusCode >= http.StatusInternalServerError:
		return ForecastResponse{}, domain.NewRetryableWeatherProviderError(ProviderName, res.StatusCode, errors.New(http.StatusText(res.StatusCode)))
	case res.StatusCode == http.StatusTooManyRequests:
		return ForecastResponse{}, domain.NewRetryableWeatherProviderError(ProviderName, res.StatusCode, errors.New("rate limited"))
	case res.StatusCode >= http.StatusBadRequest:
		return ForecastResponse{}, domain.NewWeatherProviderError(ProviderName, res.StatusCode, errors.New(errorReason(body, res.StatusCode)))
	}

	var out ForecastResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return ForecastResponse{}, domain.NewWeatherProviderError(ProviderName, res.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return out, nil
}

func errorReason(body []byte, status int) string {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Reason != "" {
		return e.Reason
	}
	return http.StatusText(status)
}
