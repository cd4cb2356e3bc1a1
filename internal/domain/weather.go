package domain

import "time"

// WeatherConditionCode classifies current conditions.
type WeatherConditionCode string

// Weather condition codes.
const (
	ConditionClear        WeatherConditionCode = "clear"
	ConditionSunny        WeatherConditionCode = "sunny"
	ConditionPartlyCloudy WeatherConditionCode = "partly-cloudy"
	ConditionCloudy       WeatherConditionCode = "cloudy"
	ConditionOvercast     WeatherConditionCode = "overcast"
	ConditionRainy        WeatherConditionCode = "rainy"
	ConditionSnowy        WeatherConditionCode = "snowy"
	ConditionStormy       WeatherConditionCode = "stormy"
	ConditionFoggy        WeatherConditionCode = "foggy"
	ConditionWindy        WeatherConditionCode = "windy"
)

// WeatherCondition is the display metadata of a condition code.
type WeatherCondition struct {
	Code  WeatherConditionCode `json:"code"`
	Label string               `json:"label"`
	Icon  string               `json:"icon"`
}

var weatherConditions = []WeatherCondition{
	{Code: ConditionClear, Label: "Clear", Icon: "☀️"},
	{Code: ConditionSunny, Label: "Sunny", Icon: "☀️"},
	{Code: ConditionPartlyCloudy, Label: "Partly Cloudy", Icon: "⛅"},
	{Code: ConditionCloudy, Label: "Cloudy", Icon: "☁️"},
	{Code: ConditionOvercast, Label: "Overcast", Icon: "🌥️"},
	{Code: ConditionRainy, Label: "Rainy", Icon: "🌧️"},
	{Code: ConditionSnowy, Label: "Snowy", Icon: "❄️"},
	{Code: ConditionStormy, Label: "Stormy", Icon: "⛈️"},
	{Code: ConditionFoggy, Label: "Foggy", Icon: "🌫️"},
	{Code: ConditionWindy, Label: "Windy", Icon: "💨"},
}

// Condition returns the display metadata of the code. Unknown codes map to
// partly cloudy.
func (c WeatherConditionCode) Condition() WeatherCondition {
	for _, wc := range weatherConditions {
		if wc.Code == c {
			return wc
		}
	}
	return weatherConditions[2]
}

// WeatherSource tells where a reading came from.
type WeatherSource string

// Weather sources.
const (
	// WeatherSourceLive is a fresh reading from the live provider
	WeatherSourceLive WeatherSource = "live"

	// WeatherSourceStale is a previously cached live reading served after a failed refresh
	WeatherSourceStale WeatherSource = "stale"

	// WeatherSourceSynthetic is a generated reading based on the climate zone
	WeatherSourceSynthetic WeatherSource = "synthetic"
)

// Weather is a current-conditions reading for a coordinate.
type Weather struct {
	TemperatureC    float64              `json:"temperatureC"`
	Condition       string               `json:"condition"`
	ConditionCode   WeatherConditionCode `json:"conditionCode"`
	WindSpeedKph    float64              `json:"windSpeedKph"`
	HumidityPercent float64              `json:"humidityPercent"`
	Icon            string               `json:"icon"`
	ObservedAt      time.Time            `json:"observedAt"`

	// Source and Authoritative annotate fallback readings
	Source        WeatherSource `json:"source"`
	Authoritative bool          `json:"authoritative"`
}

// MapWMOCode maps a WMO weather interpretation code to a display label and
// condition code.
func MapWMOCode(code int) (string, WeatherConditionCode) {
	switch {
	case code == 0:
		return "Clear", ConditionClear
	case code >= 1 && code <= 3:
		return "Partly Cloudy", ConditionPartlyCloudy
	case code == 45 || code == 48:
		return "Foggy", ConditionCloudy
	case code >= 51 && code <= 55:
		return "Light Rain", ConditionRainy
	case code >= 56 && code <= 57:
		return "Freezing Rain", ConditionRainy
	case code >= 61 && code <= 65:
		return "Rainy", ConditionRainy
	case code >= 66 && code <= 67:
		return "Freezing Rain", ConditionRainy
	case code >= 71 && code <= 75, code == 77:
		return "Snowy", ConditionSnowy
	case code >= 80 && code <= 82:
		return "Rainy", ConditionRainy
	case code >= 85 && code <= 86:
		return "Snowy", ConditionSnowy
	case code >= 95 && code <= 99:
		return "Stormy", ConditionStormy
	default:
		return "Partly Cloudy", ConditionPartlyCloudy
	}
}
