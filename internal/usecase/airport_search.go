// Package usecase contains the business logic of the flight board: airport
// search, board retrieval, weather readings and preference management.
package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flight-board/airport-flight-board/internal/catalog"
	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
)

// MaxSearchResults bounds the number of hits a search returns.
const MaxSearchResults = 10

// Match scores, highest priority first. Only the first matching rule
// applies to an airport.
const (
	scoreIATAExact    = 100
	scoreIATAPrefix   = 90
	scoreCityExact    = 80
	scoreCityPrefix   = 70
	scoreNamePrefix   = 60
	scoreCityContains = 50
	scoreNameContains = 40
	scoreCountryMatch = 30
	scoreNoMatch      = 0
)

// AirportInfo is an airport together with its current local time.
type AirportInfo struct {
	Airport   domain.Airport
	LocalTime timeutil.LocalTime
}

// AirportSearchUseCase defines the catalog queries.
type AirportSearchUseCase interface {
	// Search scores the catalog against query and returns at most
	// MaxSearchResults hits, best first. Empty queries return no hits.
	Search(query string) []domain.AirportSearchHit

	// GetByIATA returns the airport with the code, ignoring case.
	GetByIATA(iata string) (domain.Airport, error)

	// ByCountry returns every airport in the country, ignoring case.
	ByCountry(country string) []domain.Airport

	// All returns the whole catalog in catalog order.
	All() []domain.Airport

	// Info returns the airport with its local time.
	Info(iata string) (AirportInfo, error)
}

type airportSearchUseCase struct {
	catalog *catalog.Catalog
	clock   timeutil.Clock
}

var _ AirportSearchUseCase = (*airportSearchUseCase)(nil)

// NewAirportSearchUseCase creates an AirportSearchUseCase over the catalog.
// A nil clock uses the system time.
func NewAirportSearchUseCase(cat *catalog.Catalog, clock timeutil.Clock) AirportSearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &airportSearchUseCase{catalog: cat, clock: clock}
}

// Search implements AirportSearchUseCase.Search.
//
// Behavior:
//   - The query is trimmed and lower-cased before matching
//   - Airports scoring 0 are dropped
//   - Ties keep catalog order (stable sort)
//   - Pure: no state, no I/O
func (uc *airportSearchUseCase) Search(query string) []domain.AirportSearchHit {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.AirportSearchHit{}
	}

	hits := make([]domain.AirportSearchHit, 0, MaxSearchResults)
	for _, a := range uc.catalog.All() {
		if score := MatchScore(a, q); score > scoreNoMatch {
			hits = append(hits, domain.AirportSearchHit{Airport: a, MatchScore: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].MatchScore > hits[j].MatchScore
	})

	if len(hits) > MaxSearchResults {
		hits = hits[:MaxSearchResults]
	}
	return hits
}

// MatchScore scores one airport against an already normalized query. The
// checks run in priority order and the first hit wins.
func MatchScore(a domain.Airport, q string) int {
	iata := strings.ToLower(a.IATA)
	city := strings.ToLower(a.City)
	name := strings.ToLower(a.Name)
	country := strings.ToLower(a.Country)

	if iata == q {
		return scoreIATAExact
	}
	if strings.HasPrefix(iata, q) {
		return scoreIATAPrefix
	}
	if city == q {
		return scoreCityExact
	}
	if strings.HasPrefix(city, q) {
		return scoreCityPrefix
	}
	if strings.HasPrefix(name, q) {
		return scoreNamePrefix
	}
	if strings.Contains(city, q) {
		return scoreCityContains
	}
	if strings.Contains(name, q) {
		return scoreNameContains
	}
	if strings.Contains(country, q) {
		return scoreCountryMatch
	}
	return scoreNoMatch
}

// GetByIATA implements AirportSearchUseCase.GetByIATA.
func (uc *airportSearchUseCase) GetByIATA(iata string) (domain.Airport, error) {
	a, ok := uc.catalog.Lookup(iata)
	if !ok {
		return domain.Airport{}, fmt.Errorf("%w: %q", domain.ErrAirportNotFound, iata)
	}
	return a, nil
}

// ByCountry implements AirportSearchUseCase.ByCountry.
func (uc *airportSearchUseCase) ByCountry(country string) []domain.Airport {
	return uc.catalog.ByCountry(country)
}

// All implements AirportSearchUseCase.All.
func (uc *airportSearchUseCase) All() []domain.Airport {
	return uc.catalog.All()
}

// Info implements AirportSearchUseCase.Info.
func (uc *airportSearchUseCase) Info(iata string) (AirportInfo, error) {
	a, err := uc.GetByIATA(iata)
	if err != nil {
		return AirportInfo{}, err
	}

	local, err := timeutil.LocalTimeAt(uc.clock.Now(), a.Timezone)
	if err != nil {
		return AirportInfo{}, fmt.Errorf("local time of %s: %w", a.IATA, err)
	}
	return AirportInfo{Airport: a, LocalTime: local}, nil
}
