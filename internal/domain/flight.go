package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Airline is a carrier from the static airline list.
type Airline struct {
	// Code is the IATA carrier code (e.g., "VN")
	Code string `json:"code"`

	// Name is the full airline name (e.g., "Vietnam Airlines")
	Name string `json:"name"`
}

// BoardType selects whether a flight list shows departures from or arrivals
// to the base airport.
type BoardType string

// Available board types.
const (
	BoardDeparture BoardType = "departure"
	BoardArrival   BoardType = "arrival"
)

// IsValid checks if the board type is a known value.
func (b BoardType) IsValid() bool {
	switch b {
	case BoardDeparture, BoardArrival:
		return true
	default:
		return false
	}
}

// ParseBoardType converts a string to a BoardType.
// An empty string defaults to departures. Plural forms are accepted.
func ParseBoardType(s string) (BoardType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "departure", "departures":
		return BoardDeparture, nil
	case "arrival", "arrivals":
		return BoardArrival, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBoardType, s)
	}
}

// FlightLeg holds the time block of one end of a flight.
type FlightLeg struct {
	// Scheduled is the planned instant
	Scheduled time.Time `json:"scheduled"`

	// Actual is the revised instant, present only when the status carries one
	Actual *time.Time `json:"actual,omitempty"`

	// Terminal is the terminal label (e.g., "T2")
	Terminal string `json:"terminal,omitempty"`

	// Gate is the gate label (e.g., "C12")
	Gate string `json:"gate,omitempty"`
}

// Delay returns Actual - Scheduled, or zero when there is no actual time.
func (l FlightLeg) Delay() time.Duration {
	if l.Actual == nil {
		return 0
	}
	return l.Actual.Sub(l.Scheduled)
}

func (l FlightLeg) clone() FlightLeg {
	if l.Actual != nil {
		actual := *l.Actual
		l.Actual = &actual
	}
	return l
}

// Flight is a single generated flight on a departure or arrival board.
type Flight struct {
	// ID is unique within a batch: <baseIATA>-<boardType>-<index>
	ID string `json:"id"`

	// FlightNumber is the carrier code followed by a number (e.g., "VN1234")
	FlightNumber string `json:"flightNumber"`

	// Airline is the operating carrier
	Airline Airline `json:"airline"`

	// Codeshares are additional marketing flight numbers
	Codeshares []string `json:"codeshares,omitempty"`

	Origin      Airport `json:"origin"`
	Destination Airport `json:"destination"`

	Departure FlightLeg `json:"departure"`
	Arrival   FlightLeg `json:"arrival"`

	Status FlightStatus `json:"status"`

	// AircraftType is the equipment (e.g., "Boeing 787-9")
	AircraftType string `json:"aircraftType,omitempty"`
}

// Clone returns a copy of f that shares no memory with it.
func (f Flight) Clone() Flight {
	f.Codeshares = slices.Clone(f.Codeshares)
	f.Departure = f.Departure.clone()
	f.Arrival = f.Arrival.clone()
	return f
}

// BoardTime returns the scheduled time a board of the given type sorts by.
func (f Flight) BoardTime(board BoardType) time.Time {
	if board == BoardArrival {
		return f.Arrival.Scheduled
	}
	return f.Departure.Scheduled
}

// FlightBatch is a generated board cached under (airport, board type).
type FlightBatch struct {
	AirportIATA string    `json:"airport"`
	BoardType   BoardType `json:"boardType"`
	Flights     []Flight  `json:"flights"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// BatchKey builds the cache key of a board.
func BatchKey(iata string, board BoardType) string {
	return NormalizeIATA(iata) + "-" + string(board)
}
