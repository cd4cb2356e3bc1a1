package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrInvalidRequest indicates malformed caller input
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAirportNotFound indicates the IATA code is not in the catalog
	ErrAirportNotFound = errors.New("airport not found")

	// ErrFlightNotFound indicates no cached batch holds the flight ID
	ErrFlightNotFound = errors.New("flight not found")

	// ErrInvalidBoardType indicates a board type other than departure/arrival
	ErrInvalidBoardType = errors.New("invalid board type")

	// ErrInvalidTemperatureUnit indicates a unit other than celsius/fahrenheit
	ErrInvalidTemperatureUnit = errors.New("invalid temperature unit")

	// ErrWeatherUnavailable indicates neither the live provider nor the fallback produced a reading
	ErrWeatherUnavailable = errors.New("weather unavailable")

	// ErrPreferencesNotFound is returned by a PreferenceStore that holds no saved state
	ErrPreferencesNotFound = errors.New("preferences not found")

	// ErrPreferencesUnavailable indicates the preference store could not be read or written
	ErrPreferencesUnavailable = errors.New("preferences unavailable")
)

// WeatherProviderError describes a failed call to a weather provider.
type WeatherProviderError struct {
	// Provider is the provider name (e.g., "open-meteo")
	Provider string

	// StatusCode is the upstream HTTP status, 0 for transport errors
	StatusCode int

	// Err is the underlying error
	Err error

	// Retryable marks transient failures (5xx, transport)
	Retryable bool
}

func (e *WeatherProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("weather provider %s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("weather provider %s: %v", e.Provider, e.Err)
}

func (e *WeatherProviderError) Unwrap() error {
	return e.Err
}

// NewWeatherProviderError creates a non-retryable provider error.
func NewWeatherProviderError(provider string, statusCode int, err error) *WeatherProviderError {
	return &WeatherProviderError{Provider: provider, StatusCode: statusCode, Err: err}
}

// NewRetryableWeatherProviderError creates a provider error worth retrying.
func NewRetryableWeatherProviderError(provider string, statusCode int, err error) *WeatherProviderError {
	return &WeatherProviderError{Provider: provider, StatusCode: statusCode, Err: err, Retryable: true}
}

// IsRetryable reports whether err is a retryable WeatherProviderError.
func IsRetryable(err error) bool {
	var pe *WeatherProviderError
	return errors.As(err, &pe) && pe.Retryable
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) match validation failures.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
