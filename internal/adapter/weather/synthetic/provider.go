// Package synthetic generates plausible weather readings from an airport's
// latitude. It backs the live provider when that is disabled or failing.
package synthetic

import (
	"context"
	"math"

	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/randutil"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
)

// ProviderName is the identifier used in logs and errors.
const ProviderName = "synthetic"

// Zone is a latitude climate band.
type Zone struct {
	Name       string
	MaxAbsLat  float64
	MinTempC   float64
	MaxTempC   float64
	Conditions []domain.WeatherConditionCode
}

// Zones are checked in order; the first whose MaxAbsLat exceeds |lat| wins.
var Zones = []Zone{
	{
		Name: "tropical", MaxAbsLat: 23.5, MinTempC: 24, MaxTempC: 35,
		Conditions: []domain.WeatherConditionCode{
			domain.ConditionSunny, domain.ConditionPartlyCloudy, domain.ConditionRainy, domain.ConditionStormy,
		},
	},
	{
		Name: "subtropical", MaxAbsLat: 35, MinTempC: 18, MaxTempC: 32,
		Conditions: []domain.WeatherConditionCode{
			domain.ConditionSunny, domain.ConditionPartlyCloudy, domain.ConditionCloudy, domain.ConditionRainy,
		},
	},
	{
		Name: "temperate", MaxAbsLat: 50, MinTempC: 10, MaxTempC: 25,
		Conditions: []domain.WeatherConditionCode{
			domain.ConditionPartlyCloudy, domain.ConditionCloudy, domain.ConditionOvercast,
			domain.ConditionRainy, domain.ConditionWindy,
		},
	},
	{
		Name: "polar", MaxAbsLat: math.Inf(1), MinTempC: -5, MaxTempC: 15,
		Conditions: []domain.WeatherConditionCode{
			domain.ConditionCloudy, domain.ConditionOvercast, domain.ConditionFoggy, domain.ConditionWindy,
		},
	},
}

const (
	minWindKph     = 5
	maxWindKph     = 30
	minHumidityPct = 40
	maxHumidityPct = 90
)

// ZoneFor returns the climate band of a latitude.
func ZoneFor(latitude float64) Zone {
	abs := math.Abs(latitude)
	for _, z := range Zones {
		if abs < z.MaxAbsLat {
			return z
		}
	}
	return Zones[len(Zones)-1]
}

// Provider produces synthetic readings.
type Provider struct {
	rnd   randutil.Source
	clock timeutil.Clock
}

var _ domain.WeatherProvider = (*Provider)(nil)

// NewProvider creates a Provider. A nil clock means the real clock.
func NewProvider(rnd randutil.Source, clock timeutil.Clock) *Provider {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Provider{rnd: rnd, clock: clock}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// Current draws a reading for the latitude's climate zone. Longitude is
// ignored. It never fails.
func (p *Provider) Current(_ context.Context, latitude, _ float64) (domain.Weather, error) {
	zone := ZoneFor(latitude)

	temp := p.between(zone.MinTempC, zone.MaxTempC)
	code := zone.Conditions[p.rnd.IntN(len(zone.Conditions))]
	wind := p.between(minWindKph, maxWindKph)
	humidity := p.between(minHumidityPct, maxHumidityPct)

	cond := code.Condition()
	return domain.Weather{
		TemperatureC:    math.Round(temp),
		Condition:       cond.Label,
		ConditionCode:   code,
		WindSpeedKph:    math.Round(wind),
		HumidityPercent: math.Round(humidity),
		Icon:            cond.Icon,
		ObservedAt:      p.clock.Now(),
		Source:          domain.WeatherSourceSynthetic,
	}, nil
}

func (p *Provider) between(lo, hi float64) float64 {
	return lo + p.rnd.Float64()*(hi-lo)
}
