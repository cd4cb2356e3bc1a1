// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-board/airport-flight-board/internal/catalog"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Flights FlightsConfig
	Weather WeatherConfig
	Storage StorageConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// FlightsConfig holds flight generation settings.
type FlightsConfig struct {
	CacheTTL  time.Duration `env:"FLIGHTS_CACHE_TTL" envDefault:"30m"`
	BatchSize int           `env:"FLIGHTS_BATCH_SIZE" envDefault:"25"`

	// RandomSeed makes boards reproducible; 0 seeds from the clock
	RandomSeed uint64 `env:"FLIGHTS_RANDOM_SEED" envDefault:"0"`
}

// WeatherConfig holds live weather provider settings.
type WeatherConfig struct {
	Enabled       bool          `env:"WEATHER_ENABLED" envDefault:"true"`
	BaseURL       string        `env:"WEATHER_BASE_URL" envDefault:"https://api.open-meteo.com"`
	Timeout       time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
	CacheTTL      time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`
	RateLimit     float64       `env:"WEATHER_RATE_LIMIT" envDefault:"5"`
	RateBurst     int           `env:"WEATHER_RATE_BURST" envDefault:"10"`
	RetryAttempts int           `env:"WEATHER_RETRY_ATTEMPTS" envDefault:"2"`
}

// StorageConfig holds preference storage settings.
type StorageConfig struct {
	Backend       string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath    string `env:"STORAGE_SQLITE_PATH" envDefault:"flightboard.db"`
	RedisAddr     string `env:"STORAGE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"STORAGE_REDIS_PASSWORD"`
	RedisDB       int    `env:"STORAGE_REDIS_DB" envDefault:"0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	DefaultAirport string `env:"APP_DEFAULT_AIRPORT" envDefault:"SGN"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.App.DefaultAirport = strings.ToUpper(strings.TrimSpace(cfg.App.DefaultAirport))
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
		{"FLIGHTS_CACHE_TTL", cfg.Flights.CacheTTL},
		{"WEATHER_TIMEOUT", cfg.Weather.Timeout},
		{"WEATHER_CACHE_TTL", cfg.Weather.CacheTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.Flights.BatchSize < 1 || cfg.Flights.BatchSize > 500 {
		return fmt.Errorf("FLIGHTS_BATCH_SIZE must be between 1 and 500, got %d", cfg.Flights.BatchSize)
	}

	if cfg.Weather.RateLimit <= 0 {
		return fmt.Errorf("WEATHER_RATE_LIMIT must be positive")
	}
	if cfg.Weather.RateBurst < 1 {
		return fmt.Errorf("WEATHER_RATE_BURST must be at least 1, got %d", cfg.Weather.RateBurst)
	}
	if cfg.Weather.RetryAttempts < 1 || cfg.Weather.RetryAttempts > 5 {
		return fmt.Errorf("WEATHER_RETRY_ATTEMPTS must be between 1 and 5, got %d", cfg.Weather.RetryAttempts)
	}
	if cfg.Weather.Enabled && cfg.Weather.BaseURL == "" {
		return fmt.Errorf("WEATHER_BASE_URL is required when WEATHER_ENABLED is true")
	}

	switch cfg.Storage.Backend {
	case StorageSQLite:
		if cfg.Storage.SQLitePath == "" {
			return fmt.Errorf("STORAGE_SQLITE_PATH is required for the sqlite backend")
		}
	case StorageRedis:
		if cfg.Storage.RedisAddr == "" {
			return fmt.Errorf("STORAGE_REDIS_ADDR is required for the redis backend")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: sqlite, redis; got %q", cfg.Storage.Backend)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if _, ok := catalog.Default().Lookup(cfg.App.DefaultAirport); !ok {
		return fmt.Errorf("APP_DEFAULT_AIRPORT %q is not a known airport", cfg.App.DefaultAirport)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
