// Package flightgen synthesizes departure and arrival boards and memoizes
// them per (airport, board type) for a fixed window.
package flightgen

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/randutil"
)

// DefaultBatchSize is the number of flights on a generated board.
const DefaultBatchSize = 25

// Cumulative status thresholds on a uniform [0,1) draw. A draw equal to a
// threshold lands in the lower bucket.
var statusThresholds = []struct {
	upTo   float64
	status domain.FlightStatus
}{
	{0.50, domain.StatusScheduled},
	{0.70, domain.StatusEnRoute},
	{0.85, domain.StatusDelayed},
	{0.92, domain.StatusDelayed1h},
	{0.97, domain.StatusDelayed2h},
	{0.99, domain.StatusCancelled},
}

// Terminals are the labels a leg can be assigned.
var Terminals = []string{"1", "2", "T1", "T2", "International", "Domestic"}

// AircraftTypes are the eight models a flight can be operated with.
var AircraftTypes = []string{
	"Airbus A320",
	"Airbus A321",
	"Airbus A330",
	"Airbus A350",
	"Boeing 737-800",
	"Boeing 787-9",
	"Boeing 777-300ER",
	"ATR 72-600",
}

const (
	gateLetters     = "ABCDEF"
	maxGateNumber   = 30
	minFlightNumber = 100
	maxFlightNumber = 9999

	// base time window relative to now, in minutes: [-120, +480)
	windowStartMinutes = -120
	windowSpanMinutes  = 600

	codeshareProbability = 0.3
)

// Generator builds flight batches from the catalog and a random source. It
// holds no state besides its inputs.
type Generator struct {
	airports  []domain.Airport
	airlines  []domain.Airline
	rnd       randutil.Source
	batchSize int
}

// NewGenerator creates a Generator. A non-positive batchSize selects
// DefaultBatchSize.
func NewGenerator(airports []domain.Airport, airlines []domain.Airline, rnd randutil.Source, batchSize int) *Generator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Generator{
		airports:  airports,
		airlines:  airlines,
		rnd:       rnd,
		batchSize: batchSize,
	}
}

// BatchSize returns the number of flights per batch.
func (g *Generator) BatchSize() int {
	return g.batchSize
}

// Generate synthesizes a board for base, sorted by the board's scheduled
// time. It returns nil when the catalog has no airport other than base or
// no airline to draw from.
func (g *Generator) Generate(base domain.Airport, board domain.BoardType, now time.Time) []domain.Flight {
	others := make([]domain.Airport, 0, len(g.airports))
	for _, a := range g.airports {
		if !a.HasCode(base.IATA) {
			others = append(others, a)
		}
	}
	if len(others) == 0 || len(g.airlines) == 0 {
		return nil
	}

	flights := make([]domain.Flight, 0, g.batchSize)
	for i := 0; i < g.batchSize; i++ {
		flights = append(flights, g.flight(i, base, others, board, now))
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].BoardTime(board).Before(flights[j].BoardTime(board))
	})
	return flights
}

func (g *Generator) flight(index int, base domain.Airport, others []domain.Airport, board domain.BoardType, now time.Time) domain.Flight {
	airline, number := g.flightNumber()
	other := others[g.rnd.IntN(len(others))]

	origin, destination := base, other
	if board == domain.BoardArrival {
		origin, destination = other, base
	}

	status := StatusFor(g.rnd.Float64())
	delay := g.delay(status)
	duration := Duration(origin, destination)

	offset := windowStartMinutes + g.rnd.IntN(windowSpanMinutes)
	departure := now.Add(time.Duration(offset) * time.Minute)
	arrival := departure.Add(duration)

	f := domain.Flight{
		ID:           fmt.Sprintf("%s-%s-%d", domain.NormalizeIATA(base.IATA), board, index),
		FlightNumber: number,
		Airline:      airline,
		Origin:       origin,
		Destination:  destination,
		Departure:    domain.FlightLeg{Scheduled: departure},
		Arrival:      domain.FlightLeg{Scheduled: arrival},
		Status:       status,
	}
	if status.HasActualDeparture() {
		actual := departure.Add(delay)
		f.Departure.Actual = &actual
	}
	if status.HasActualArrival() {
		actual := arrival.Add(delay)
		f.Arrival.Actual = &actual
	}

	if g.rnd.Float64() < codeshareProbability {
		_, codeshare := g.flightNumber()
		f.Codeshares = []string{codeshare}
	}

	f.Departure.Terminal, f.Departure.Gate = g.terminal(), g.gate()
	f.Arrival.Terminal, f.Arrival.Gate = g.terminal(), g.gate()
	f.AircraftType = AircraftTypes[g.rnd.IntN(len(AircraftTypes))]

	return f
}

func (g *Generator) flightNumber() (domain.Airline, string) {
	airline := g.airlines[g.rnd.IntN(len(g.airlines))]
	n := minFlightNumber + g.rnd.IntN(maxFlightNumber-minFlightNumber+1)
	return airline, fmt.Sprintf("%s%d", strings.ToUpper(airline.Code), n)
}

// delay draws the status-dependent delay. Statuses without a delay bucket
// consume no randomness.
func (g *Generator) delay(status domain.FlightStatus) time.Duration {
	var minutes int
	switch status {
	case domain.StatusDelayed:
		minutes = 15 + g.rnd.IntN(45)
	case domain.StatusDelayed1h:
		minutes = 60 + g.rnd.IntN(60)
	case domain.StatusDelayed2h:
		minutes = 120 + g.rnd.IntN(120)
	}
	return time.Duration(minutes) * time.Minute
}

func (g *Generator) terminal() string {
	return Terminals[g.rnd.IntN(len(Terminals))]
}

func (g *Generator) gate() string {
	letter := gateLetters[g.rnd.IntN(len(gateLetters))]
	return fmt.Sprintf("%c%d", letter, g.rnd.IntN(maxGateNumber)+1)
}

// StatusFor maps a uniform [0,1) draw onto the status distribution.
func StatusFor(r float64) domain.FlightStatus {
	for _, t := range statusThresholds {
		if r <= t.upTo {
			return t.status
		}
	}
	return domain.StatusUnknown
}

// Duration approximates block time from the coordinate difference of the
// two airports: floor(sqrt(dLat^2 + dLon^2) * 0.5 + 1) whole hours.
func Duration(origin, destination domain.Airport) time.Duration {
	dLat := math.Abs(origin.Latitude - destination.Latitude)
	dLon := math.Abs(origin.Longitude - destination.Longitude)
	hours := math.Floor(math.Sqrt(dLat*dLat+dLon*dLon)*0.5 + 1)
	return time.Duration(hours) * time.Hour
}
