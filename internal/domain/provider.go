package domain

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

import "context"

// WeatherProvider supplies a current-conditions reading for a coordinate.
// Implementations: the Open-Meteo client (live) and the climate-zone
// generator (synthetic fallback).
type WeatherProvider interface {
	// Name returns the provider's identifier for logs and errors
	Name() string

	// Current returns the reading at the coordinate
	Current(ctx context.Context, latitude, longitude float64) (Weather, error)
}

// PreferenceStore persists Preferences across process restarts.
type PreferenceStore interface {
	// Load returns the saved preferences, or ErrPreferencesNotFound on first run
	Load(ctx context.Context) (Preferences, error)

	// Save replaces the saved preferences
	Save(ctx context.Context, prefs Preferences) error
}
