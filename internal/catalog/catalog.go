// Package catalog holds the static reference data: the airport catalog and
// the airline list. The data never changes at runtime; every accessor hands
// out copies so callers cannot mutate the shared tables.
package catalog

import (
	"strings"

	"github.com/flight-board/airport-flight-board/internal/domain"
)

// Catalog is an immutable, ordered set of airports and airlines.
type Catalog struct {
	airports   []domain.Airport
	airlines   []domain.Airline
	byIATA     map[string]int
	defaultIdx int
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(airports, airlines, DefaultAirportIATA)
}

// New builds a catalog over the given records. The default airport falls
// back to the first entry when defaultIATA is not present.
func New(airportList []domain.Airport, airlineList []domain.Airline, defaultIATA string) *Catalog {
	c := &Catalog{
		airports: append([]domain.Airport(nil), airportList...),
		airlines: append([]domain.Airline(nil), airlineList...),
		byIATA:   make(map[string]int, len(airportList)),
	}
	for i, a := range c.airports {
		c.byIATA[domain.NormalizeIATA(a.IATA)] = i
	}
	if i, ok := c.byIATA[domain.NormalizeIATA(defaultIATA)]; ok {
		c.defaultIdx = i
	}
	return c
}

// All returns every airport in catalog order.
func (c *Catalog) All() []domain.Airport {
	return append([]domain.Airport(nil), c.airports...)
}

// Len returns the number of airports.
func (c *Catalog) Len() int {
	return len(c.airports)
}

// Lookup finds an airport by IATA code, ignoring case.
func (c *Catalog) Lookup(iata string) (domain.Airport, bool) {
	i, ok := c.byIATA[domain.NormalizeIATA(iata)]
	if !ok {
		return domain.Airport{}, false
	}
	return c.airports[i], true
}

// ByCountry returns every airport whose country equals country, ignoring case.
func (c *Catalog) ByCountry(country string) []domain.Airport {
	country = strings.TrimSpace(country)
	var out []domain.Airport
	for _, a := range c.airports {
		if strings.EqualFold(a.Country, country) {
			out = append(out, a)
		}
	}
	return out
}

// DefaultAirport returns the first-run airport.
func (c *Catalog) DefaultAirport() domain.Airport {
	if len(c.airports) == 0 {
		return domain.Airport{}
	}
	return c.airports[c.defaultIdx]
}

// Airlines returns the airline list.
func (c *Catalog) Airlines() []domain.Airline {
	return append([]domain.Airline(nil), c.airlines...)
}

// AirlineByCode finds an airline by carrier code, ignoring case.
func (c *Catalog) AirlineByCode(code string) (domain.Airline, bool) {
	code = domain.NormalizeIATA(code)
	for _, a := range c.airlines {
		if a.Code == code {
			return a, true
		}
	}
	return domain.Airline{}, false
}
