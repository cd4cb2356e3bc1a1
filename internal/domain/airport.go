// Package domain contains the core entities of the flight board: airports,
// airlines, generated flights, weather readings and user preferences.
// Nothing in this package performs I/O.
package domain

import "strings"

// Airport is an immutable catalog record.
type Airport struct {
	// IATA is the 3-letter airport code (e.g., "SGN"), the unique key
	IATA string `json:"iata"`

	// Name is the full airport name
	Name string `json:"name"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the country name
	Country string `json:"country"`

	// Timezone is the IANA timezone identifier (e.g., "Asia/Ho_Chi_Minh")
	Timezone string `json:"timezone"`

	// Latitude in degrees, -90..90
	Latitude float64 `json:"latitude"`

	// Longitude in degrees, -180..180
	Longitude float64 `json:"longitude"`
}

// HasCode reports whether the airport's IATA code equals code, ignoring case.
func (a Airport) HasCode(code string) bool {
	return strings.EqualFold(a.IATA, strings.TrimSpace(code))
}

// AirportSearchHit is an airport scored against a search query.
type AirportSearchHit struct {
	Airport

	// MatchScore ranks the hit; higher is a better match
	MatchScore int `json:"matchScore"`
}

// NormalizeIATA upper-cases and trims an airport or airline code.
func NormalizeIATA(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
