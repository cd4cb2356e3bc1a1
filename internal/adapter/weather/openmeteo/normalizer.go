package openmeteo

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/flight-board/airport-flight-board/internal/domain"
)

// errIncompleteReading marks a payload missing one of the current fields.
var errIncompleteReading = errors.New("incomplete current reading")

// normalize converts a forecast payload to a domain reading. Temperature,
// wind and humidity are whole numbers, like synthetic readings. fetchedAt is
// used when the payload's own timestamp cannot be parsed.
func normalize(resp ForecastResponse, fetchedAt time.Time) (domain.Weather, error) {
	c := resp.Current
	if c == nil {
		return domain.Weather{}, fmt.Errorf("%w: no current block", errIncompleteReading)
	}
	if c.Temperature == nil || c.WeatherCode == nil {
		return domain.Weather{}, fmt.Errorf("%w: temperature or weather code missing", errIncompleteReading)
	}

	label, code := domain.MapWMOCode(*c.WeatherCode)

	return domain.Weather{
		TemperatureC:    math.Round(toCelsius(*c.Temperature, resp.CurrentUnits.Temperature)),
		Condition:       label,
		ConditionCode:   code,
		WindSpeedKph:    math.Round(toKph(valueOr(c.WindSpeed), resp.CurrentUnits.WindSpeed)),
		HumidityPercent: math.Round(valueOr(c.RelativeHumidity)),
		Icon:            code.Condition().Icon,
		ObservedAt:      parseObservedAt(c.Time, resp.Timezone, fetchedAt),
	}, nil
}

// parseObservedAt reads the local timestamp in the payload's timezone.
func parseObservedAt(value, timezone string, fallback time.Time) time.Time {
	loc := time.UTC
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t
		}
	}
	return fallback
}

// toCelsius converts a temperature in the API's reported unit.
func toCelsius(v float64, unit string) float64 {
	if unit == "°F" {
		return domain.FahrenheitToCelsius(v)
	}
	return v
}

// toKph converts a wind speed in the API's reported unit.
func toKph(v float64, unit string) float64 {
	switch unit {
	case "m/s":
		return v * 3.6
	case "mp/h", "mph":
		return v * 1.609344
	case "kn":
		return v * 1.852
	default:
		return v
	}
}

func valueOr(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
