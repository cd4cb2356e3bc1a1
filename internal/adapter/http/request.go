package http

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/flight-board/airport-flight-board/internal/domain"
)

// maxQueryLength bounds free-text airport queries.
const maxQueryLength = 64

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// SearchAirportsRequest holds the query of GET /airports/search.
type SearchAirportsRequest struct {
	// Query is matched against code, city, name and country (e.g., "tokyo")
	Query string `query:"q"`
}

// ListAirportsRequest holds the optional filter of GET /airports.
type ListAirportsRequest struct {
	// Country restricts the list to one country, ignoring case
	Country string `query:"country"`
}

// AirportRequest addresses a single catalog airport.
type AirportRequest struct {
	IATA string `param:"iata"`
}

// BoardRequest selects a board of an airport.
type BoardRequest struct {
	// IATA is empty on the selected-airport board route
	IATA string `param:"iata"`

	// Type is departure or arrival; empty means departure
	Type string `query:"type"`

	board domain.BoardType
}

// WeatherRequest selects the airport and display unit of a reading.
type WeatherRequest struct {
	IATA string `param:"iata"`

	// Unit is celsius or fahrenheit; empty means the saved preference
	Unit string `query:"unit"`

	unit domain.TemperatureUnit
}

// FlightRequest addresses a flight by ID.
type FlightRequest struct {
	ID string `param:"id"`
}

// SelectAirportRequest is the body of PUT /preferences/selected-airport.
type SelectAirportRequest struct {
	IATA string `json:"iata" example:"SGN"`
}

// TemperatureUnitRequest is the body of PUT /preferences/temperature-unit.
type TemperatureUnitRequest struct {
	Unit string `json:"unit" example:"fahrenheit"`

	unit domain.TemperatureUnit
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// result returns errs as an error, or nil when it is empty.
func (v *ValidationErrors) result() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// Validate trims the query and bounds its length. An empty query is valid.
func (r *SearchAirportsRequest) Validate() error {
	errs := &ValidationErrors{}
	r.Query = strings.TrimSpace(r.Query)
	if utf8.RuneCountInString(r.Query) > maxQueryLength {
		errs.Add("q", "q must be at most 64 characters")
	}
	return errs.result()
}

// Validate trims the country filter.
func (r *ListAirportsRequest) Validate() error {
	r.Country = strings.TrimSpace(r.Country)
	return nil
}

// Validate normalizes and checks the airport code.
func (r *AirportRequest) Validate() error {
	errs := &ValidationErrors{}
	r.IATA = validateIATA(errs, "iata", r.IATA)
	return errs.result()
}

// Validate checks the board type, and the airport code unless selected is
// set (the selected-airport route carries no code).
func (r *BoardRequest) Validate(selected bool) error {
	errs := &ValidationErrors{}
	if !selected {
		r.IATA = validateIATA(errs, "iata", r.IATA)
	}

	board, err := domain.ParseBoardType(r.Type)
	if err != nil {
		errs.Add("type", "type must be one of: departure, arrival")
	}
	r.board = board
	return errs.result()
}

// Board returns the parsed board type. Valid after Validate.
func (r *BoardRequest) Board() domain.BoardType {
	return r.board
}

// Validate checks the airport code and the optional unit.
func (r *WeatherRequest) Validate() error {
	errs := &ValidationErrors{}
	r.IATA = validateIATA(errs, "iata", r.IATA)

	if strings.TrimSpace(r.Unit) != "" {
		unit, err := domain.ParseTemperatureUnit(r.Unit)
		if err != nil {
			errs.Add("unit", "unit must be one of: celsius, fahrenheit")
		}
		r.unit = unit
	}
	return errs.result()
}

// UnitOr returns the requested unit, or fallback when none was given.
func (r *WeatherRequest) UnitOr(fallback domain.TemperatureUnit) domain.TemperatureUnit {
	if r.unit == "" {
		return fallback
	}
	return r.unit
}

// Validate checks that the ID is present.
func (r *FlightRequest) Validate() error {
	errs := &ValidationErrors{}
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		errs.Add("id", "id is required")
	}
	return errs.result()
}

// Validate normalizes and checks the airport code.
func (r *SelectAirportRequest) Validate() error {
	errs := &ValidationErrors{}
	r.IATA = validateIATA(errs, "iata", r.IATA)
	return errs.result()
}

// Validate parses the unit.
func (r *TemperatureUnitRequest) Validate() error {
	errs := &ValidationErrors{}
	if strings.TrimSpace(r.Unit) == "" {
		errs.Add("unit", "unit is required")
		return errs
	}
	unit, err := domain.ParseTemperatureUnit(r.Unit)
	if err != nil {
		errs.Add("unit", "unit must be one of: celsius, fahrenheit")
	}
	r.unit = unit
	return errs.result()
}

// TemperatureUnit returns the parsed unit. Valid after Validate.
func (r *TemperatureUnitRequest) TemperatureUnit() domain.TemperatureUnit {
	return r.unit
}

// validateIATA normalizes code and records an error when it is not three
// letters. It returns the normalized code.
func validateIATA(errs *ValidationErrors, field, code string) string {
	normalized := domain.NormalizeIATA(code)
	switch {
	case normalized == "":
		errs.Add(field, field+" is required")
	case !iataPattern.MatchString(normalized):
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
	}
	return normalized
}
