package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeatherProviderError(t *testing.T) {
	tests := []struct {
		name          string
		err           *WeatherProviderError
		wantContains  []string
		wantRetryable bool
	}{
		{
			name:          "status error is not retryable by default",
			err:           NewWeatherProviderError("open-meteo", 400, errors.New("bad coordinates")),
			wantContains:  []string{"open-meteo", "400", "bad coordinates"},
			wantRetryable: false,
		},
		{
			name:          "transport error",
			err:           NewRetryableWeatherProviderError("open-meteo", 0, errors.New("connection reset")),
			wantContains:  []string{"open-meteo", "connection reset"},
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.wantContains {
				assert.Contains(t, tt.err.Error(), want)
			}
			assert.Equal(t, tt.wantRetryable, IsRetryable(tt.err))
			assert.NotNil(t, errors.Unwrap(tt.err))
		})
	}
}

func TestIsRetryable_Wrapped(t *testing.T) {
	inner := NewRetryableWeatherProviderError("open-meteo", 503, errors.New("unavailable"))
	wrapped := errors.Join(errors.New("fetch weather"), inner)

	assert.True(t, IsRetryable(wrapped))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("iata", "must be a 3-letter code")

	assert.Equal(t, "iata: must be a 3-letter code", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}
