package openmeteo

// ForecastResponse is the subset of the /v1/forecast payload the client reads.
type ForecastResponse struct {
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Timezone     string       `json:"timezone"`
	CurrentUnits CurrentUnits `json:"current_units"`
	Current      *Current     `json:"current"`
}

// CurrentUnits names the unit of each current field.
type CurrentUnits struct {
	Temperature string `json:"temperature_2m"`
	WindSpeed   string `json:"wind_speed_10m"`
}

// Current is the current-conditions block.
type Current struct {
	// Time is local ISO 8601 without offset, e.g. "2025-12-15T10:00"
	Time             string   `json:"time"`
	Temperature      *float64 `json:"temperature_2m"`
	RelativeHumidity *float64 `json:"relative_humidity_2m"`
	WeatherCode      *int     `json:"weather_code"`
	WindSpeed        *float64 `json:"wind_speed_10m"`
}

// ErrorResponse is returned by the API on 4xx.
type ErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
