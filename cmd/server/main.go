// Package main is the entry point for the airport flight board service.
//
//	@title						Airport Flight Board API
//	@version					1.0.0
//	@description				Departure and arrival boards, current weather and saved preferences for a catalog of international airports.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-board/airport-flight-board/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-board/airport-flight-board/docs"

	// Application layers
	boardhttp "github.com/flight-board/airport-flight-board/internal/adapter/http"
	"github.com/flight-board/airport-flight-board/internal/adapter/http/middleware"
	"github.com/flight-board/airport-flight-board/internal/adapter/storage/redisstore"
	"github.com/flight-board/airport-flight-board/internal/adapter/storage/sqlite"
	"github.com/flight-board/airport-flight-board/internal/adapter/weather/openmeteo"
	"github.com/flight-board/airport-flight-board/internal/adapter/weather/synthetic"
	"github.com/flight-board/airport-flight-board/internal/catalog"
	"github.com/flight-board/airport-flight-board/internal/config"
	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/flightgen"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/logger"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/randutil"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/retry"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
	"github.com/flight-board/airport-flight-board/internal/metrics"
	"github.com/flight-board/airport-flight-board/internal/usecase"
)

// store is a preference store that holds a connection.
type store interface {
	domain.PreferenceStore
	io.Closer
}

func main() {
	// Load configuration
	cfg := config.MustLoad()

	appLog := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Backend).
		Bool("live_weather", cfg.Weather.Enabled).
		Msg("Configuration loaded")

	reg := metrics.NewRegistry()

	prefStore, err := openStore(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open preference store")
	}
	defer func() {
		if err := prefStore.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing preference store")
		}
	}()

	handler, err := buildHandler(context.Background(), cfg, appLog, reg, prefStore)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize application")
		return
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, appLog.Logger, reg)
	e.Use(echomw.CORS())

	setupRoutes(e, handler, reg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, cfg)
}

// setupLogger builds the application logger from config and installs it as
// the zerolog global logger.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-board",
	})
	l.InstallGlobal()
	return l
}

// openStore opens the configured preference backend.
func openStore(ctx context.Context, cfg *config.Config) (store, error) {
	if cfg.Storage.Backend == config.StorageRedis {
		s, err := redisstore.Open(ctx, redisstore.Config{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := sqlite.Open(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// buildHandler wires the catalog, the flight engine, the weather providers
// and the preference store into the HTTP handler.
func buildHandler(ctx context.Context, cfg *config.Config, appLog *logger.Logger, reg *metrics.Registry, prefStore domain.PreferenceStore) (*boardhttp.BoardHandler, error) {
	clock := timeutil.NewRealClock()
	builtin := catalog.Default()
	cat := catalog.New(builtin.All(), builtin.Airlines(), cfg.App.DefaultAirport)

	rnd := randutil.NewSeeded(cfg.Flights.RandomSeed)
	gen := flightgen.NewGenerator(cat.All(), cat.Airlines(), rnd, cfg.Flights.BatchSize)
	engine := flightgen.NewEngine(gen, &flightgen.Config{
		CacheTTL: cfg.Flights.CacheTTL,
		Clock:    clock,
		Metrics:  reg,
		Logger:   appLog,
	})

	var live domain.WeatherProvider
	if cfg.Weather.Enabled {
		retryCfg := retry.DefaultConfig
		retryCfg.MaxAttempts = cfg.Weather.RetryAttempts
		live = openmeteo.NewClient(openmeteo.Config{
			BaseURL:   cfg.Weather.BaseURL,
			Timeout:   cfg.Weather.Timeout,
			RateLimit: cfg.Weather.RateLimit,
			Burst:     cfg.Weather.RateBurst,
			Retry:     retryCfg,
		})
	}
	fallback := synthetic.NewProvider(rnd, clock)

	weather := usecase.NewWeatherUseCase(cat, live, fallback, &usecase.WeatherConfig{
		CacheTTL: cfg.Weather.CacheTTL,
		Clock:    clock,
		Metrics:  reg,
		Logger:   appLog,
	})

	prefs, err := usecase.NewPreferenceUseCase(ctx, cat, prefStore, &usecase.PreferenceConfig{
		Metrics: reg,
		Logger:  appLog,
	})
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	return boardhttp.NewBoardHandler(
		usecase.NewAirportSearchUseCase(cat, clock),
		usecase.NewFlightBoardUseCase(cat, engine),
		weather,
		prefs,
		clock,
	), nil
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, h *boardhttp.BoardHandler, reg *metrics.Registry) {
	boardhttp.RegisterRoutesWithMiddleware(e, h, echomw.BodyLimit("64K"))

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(reg.Handler()))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, cfg *config.Config) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
