package domain

import (
	"fmt"
	"math"
	"strings"
)

// TemperatureUnit is the unit temperatures are displayed in.
type TemperatureUnit string

// Temperature units.
const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// IsValid checks if the unit is a known value.
func (u TemperatureUnit) IsValid() bool {
	return u == Celsius || u == Fahrenheit
}

// ParseTemperatureUnit converts a string to a TemperatureUnit.
// Accepts the full names and the short forms "c" and "f".
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTemperatureUnit, s)
	}
}

// Toggle returns the other unit.
func (u TemperatureUnit) Toggle() TemperatureUnit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Symbol returns the unit symbol ("°C" or "°F").
func (u TemperatureUnit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Convert converts a Celsius temperature to the unit, rounded to a whole degree.
func (u TemperatureUnit) Convert(celsius float64) float64 {
	if u == Fahrenheit {
		return math.Round(CelsiusToFahrenheit(celsius))
	}
	return math.Round(celsius)
}

// Format renders a temperature already expressed in the unit (e.g., "28°C").
func (u TemperatureUnit) Format(value float64) string {
	return fmt.Sprintf("%d%s", int(math.Round(value)), u.Symbol())
}

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// Preferences is the persisted per-device state.
type Preferences struct {
	// SelectedAirport is the IATA code of the airport shown on the board
	SelectedAirport string `json:"selectedAirport"`

	// Favorites holds IATA codes in the order they were added
	Favorites []string `json:"favorites"`

	// TemperatureUnit is the display unit for weather readings
	TemperatureUnit TemperatureUnit `json:"temperatureUnit"`
}

// DefaultPreferences returns the first-run state: the default airport is
// selected and is the only favorite, temperatures in Celsius.
func DefaultPreferences(defaultIATA string) Preferences {
	code := NormalizeIATA(defaultIATA)
	return Preferences{
		SelectedAirport: code,
		Favorites:       []string{code},
		TemperatureUnit: Celsius,
	}
}

// IsFavorite reports whether the code is in the favorite set.
func (p Preferences) IsFavorite(iata string) bool {
	code := NormalizeIATA(iata)
	for _, f := range p.Favorites {
		if f == code {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (p Preferences) Clone() Preferences {
	out := p
	out.Favorites = append([]string(nil), p.Favorites...)
	return out
}

// WithFavoriteToggled returns a copy with the code added to or removed from
// the favorites.
func (p Preferences) WithFavoriteToggled(iata string) Preferences {
	code := NormalizeIATA(iata)
	out := p.Clone()
	if p.IsFavorite(code) {
		kept := out.Favorites[:0]
		for _, f := range out.Favorites {
			if f != code {
				kept = append(kept, f)
			}
		}
		out.Favorites = kept
		return out
	}
	out.Favorites = append(out.Favorites, code)
	return out
}
