package http

import "time"

// AirportDTO is the API representation of a catalog airport.
type AirportDTO struct {
	IATA      string  `json:"iata" example:"SGN"`
	Name      string  `json:"name" example:"Tan Son Nhat International Airport"`
	City      string  `json:"city" example:"Ho Chi Minh City"`
	Country   string  `json:"country" example:"Vietnam"`
	Timezone  string  `json:"timezone" example:"Asia/Ho_Chi_Minh"`
	Latitude  float64 `json:"latitude" example:"10.8188"`
	Longitude float64 `json:"longitude" example:"106.652"`
}

// AirportRefDTO is the short form of an airport used inside flights.
type AirportRefDTO struct {
	IATA string `json:"iata"`
	City string `json:"city"`
	Name string `json:"name"`
}

// AirportSearchHitDTO is an airport with its match score.
type AirportSearchHitDTO struct {
	AirportDTO
	MatchScore int `json:"match_score" example:"100"`
}

// AirportSearchDTO is the response of the airport search.
type AirportSearchDTO struct {
	Query   string                `json:"query"`
	Total   int                   `json:"total"`
	Results []AirportSearchHitDTO `json:"results"`
}

// AirportListDTO is a list of airports.
type AirportListDTO struct {
	Total    int          `json:"total"`
	Airports []AirportDTO `json:"airports"`
}

// LocalTimeDTO is the wall clock at an airport.
type LocalTimeDTO struct {
	Time          time.Time `json:"time"`
	FormattedTime string    `json:"formatted_time" example:"17:00"`
	FormattedDate string    `json:"formatted_date" example:"Mon, 15 Dec 2025"`
	Timezone      string    `json:"timezone" example:"Asia/Ho_Chi_Minh"`
	Offset        string    `json:"offset" example:"GMT+7"`
}

// AirportInfoDTO is an airport with its local time and favorite flag.
type AirportInfoDTO struct {
	Airport    AirportDTO   `json:"airport"`
	LocalTime  LocalTimeDTO `json:"local_time"`
	IsFavorite bool         `json:"is_favorite"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Code string `json:"code" example:"VN"`
	Name string `json:"name" example:"Vietnam Airlines"`
}

// StatusDTO is a flight status with its display metadata.
type StatusDTO struct {
	Code    string `json:"code" example:"delayed"`
	Label   string `json:"label" example:"Delayed"`
	Color   string `json:"color" example:"text-yellow-700"`
	BgColor string `json:"bg_color" example:"bg-yellow-100"`
}

// FlightLegDTO is one end of a flight. Local times are in the leg airport's
// timezone.
type FlightLegDTO struct {
	Airport        AirportRefDTO `json:"airport"`
	Scheduled      time.Time     `json:"scheduled"`
	ScheduledLocal string        `json:"scheduled_local" example:"14:05"`
	Actual         *time.Time    `json:"actual,omitempty"`
	ActualLocal    string        `json:"actual_local,omitempty" example:"14:35"`
	DelayMinutes   int           `json:"delay_minutes"`
	Terminal       string        `json:"terminal,omitempty" example:"T2"`
	Gate           string        `json:"gate,omitempty" example:"C12"`
}

// FlightDTO is the data transfer object for flight responses.
type FlightDTO struct {
	ID              string       `json:"id" example:"SGN-departure-0"`
	FlightNumber    string       `json:"flight_number" example:"VN1234"`
	Airline         AirlineDTO   `json:"airline"`
	Codeshares      []string     `json:"codeshares"`
	Departure       FlightLegDTO `json:"departure"`
	Arrival         FlightLegDTO `json:"arrival"`
	Status          StatusDTO    `json:"status"`
	AircraftType    string       `json:"aircraft_type,omitempty" example:"Airbus A321"`
	DurationMinutes int          `json:"duration_minutes" example:"120"`
}

// BoardDTO is a departure or arrival board.
type BoardDTO struct {
	Airport     AirportRefDTO `json:"airport"`
	BoardType   string        `json:"board_type" example:"departure"`
	GeneratedAt time.Time     `json:"generated_at"`
	Total       int           `json:"total"`
	Flights     []FlightDTO   `json:"flights"`
}

// WeatherDTO is a reading expressed in the requested unit.
type WeatherDTO struct {
	Airport              string    `json:"airport" example:"SGN"`
	Temperature          float64   `json:"temperature" example:"30"`
	TemperatureUnit      string    `json:"temperature_unit" example:"celsius"`
	TemperatureFormatted string    `json:"temperature_formatted" example:"30°C"`
	TemperatureCelsius   float64   `json:"temperature_celsius" example:"29.6"`
	Condition            string    `json:"condition" example:"Rainy"`
	ConditionCode        string    `json:"condition_code" example:"rainy"`
	Icon                 string    `json:"icon"`
	WindSpeedKph         float64   `json:"wind_speed_kph" example:"11"`
	HumidityPercent      float64   `json:"humidity_percent" example:"74"`
	ObservedAt           time.Time `json:"observed_at"`
	Source               string    `json:"source" example:"live"`
	Authoritative        bool      `json:"authoritative"`
}

// PreferencesDTO is the saved device state.
type PreferencesDTO struct {
	SelectedAirport string   `json:"selected_airport" example:"SGN"`
	Favorites       []string `json:"favorites"`
	TemperatureUnit string   `json:"temperature_unit" example:"celsius"`
}

// FavoriteToggleDTO is the result of toggling a favorite.
type FavoriteToggleDTO struct {
	IATA        string         `json:"iata" example:"NRT"`
	IsFavorite  bool           `json:"is_favorite"`
	Preferences PreferencesDTO `json:"preferences"`
}

// StatusListDTO lists every flight status.
type StatusListDTO struct {
	Statuses []StatusDTO `json:"statuses"`
}
