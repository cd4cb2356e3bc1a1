package http

import (
	"time"

	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
	"github.com/flight-board/airport-flight-board/internal/usecase"
)

// ToAirportDTO converts a domain airport.
func ToAirportDTO(a domain.Airport) AirportDTO {
	return AirportDTO{
		IATA:      a.IATA,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Timezone:  a.Timezone,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

// ToAirportDTOs converts a list of airports. The result is never nil.
func ToAirportDTOs(airports []domain.Airport) []AirportDTO {
	out := make([]AirportDTO, 0, len(airports))
	for _, a := range airports {
		out = append(out, ToAirportDTO(a))
	}
	return out
}

func toAirportRef(a domain.Airport) AirportRefDTO {
	return AirportRefDTO{IATA: a.IATA, City: a.City, Name: a.Name}
}

// ToAirportSearchDTO converts search hits.
func ToAirportSearchDTO(query string, hits []domain.AirportSearchHit) AirportSearchDTO {
	results := make([]AirportSearchHitDTO, 0, len(hits))
	for _, h := range hits {
		results = append(results, AirportSearchHitDTO{
			AirportDTO: ToAirportDTO(h.Airport),
			MatchScore: h.MatchScore,
		})
	}
	return AirportSearchDTO{Query: query, Total: len(results), Results: results}
}

// ToAirportInfoDTO converts an airport with its local time.
func ToAirportInfoDTO(info usecase.AirportInfo, isFavorite bool) AirportInfoDTO {
	return AirportInfoDTO{
		Airport: ToAirportDTO(info.Airport),
		LocalTime: LocalTimeDTO{
			Time:          info.LocalTime.Time,
			FormattedTime: info.LocalTime.FormattedTime(),
			FormattedDate: info.LocalTime.FormattedDate(),
			Timezone:      info.LocalTime.Timezone,
			Offset:        info.LocalTime.OffsetLabel,
		},
		IsFavorite: isFavorite,
	}
}

// ToStatusDTO converts a status with its display metadata. Unknown values
// use the unknown status metadata but keep their own code.
func ToStatusDTO(s domain.FlightStatus) StatusDTO {
	info, ok := s.Info()
	if !ok {
		info, _ = domain.StatusUnknown.Info()
	}
	return StatusDTO{
		Code:    string(s),
		Label:   info.Label,
		Color:   info.Color,
		BgColor: info.BgColor,
	}
}

// ToStatusListDTO converts the status table.
func ToStatusListDTO(infos []domain.StatusInfo) StatusListDTO {
	out := make([]StatusDTO, 0, len(infos))
	for _, info := range infos {
		out = append(out, StatusDTO{
			Code:    string(info.Status),
			Label:   info.Label,
			Color:   info.Color,
			BgColor: info.BgColor,
		})
	}
	return StatusListDTO{Statuses: out}
}

// ToFlightDTO converts a flight.
func ToFlightDTO(f domain.Flight) FlightDTO {
	codeshares := f.Codeshares
	if codeshares == nil {
		codeshares = []string{}
	}
	return FlightDTO{
		ID:              f.ID,
		FlightNumber:    f.FlightNumber,
		Airline:         AirlineDTO{Code: f.Airline.Code, Name: f.Airline.Name},
		Codeshares:      codeshares,
		Departure:       toLegDTO(f.Origin, f.Departure),
		Arrival:         toLegDTO(f.Destination, f.Arrival),
		Status:          ToStatusDTO(f.Status),
		AircraftType:    f.AircraftType,
		DurationMinutes: int(f.Arrival.Scheduled.Sub(f.Departure.Scheduled).Minutes()),
	}
}

func toLegDTO(a domain.Airport, leg domain.FlightLeg) FlightLegDTO {
	dto := FlightLegDTO{
		Airport:        toAirportRef(a),
		Scheduled:      leg.Scheduled,
		ScheduledLocal: localClock(leg.Scheduled, a.Timezone),
		DelayMinutes:   int(leg.Delay().Minutes()),
		Terminal:       leg.Terminal,
		Gate:           leg.Gate,
	}
	if leg.Actual != nil {
		actual := *leg.Actual
		dto.Actual = &actual
		dto.ActualLocal = localClock(actual, a.Timezone)
	}
	return dto
}

// localClock formats t as HH:MM in the timezone, falling back to UTC.
func localClock(t time.Time, timezone string) string {
	local, err := timeutil.InTimezone(t, timezone)
	if err != nil {
		return timeutil.FormatTime(t.UTC())
	}
	return timeutil.FormatTime(local)
}

// ToBoardDTO converts a batch. base is the board's airport.
func ToBoardDTO(base domain.Airport, batch domain.FlightBatch) BoardDTO {
	flights := make([]FlightDTO, 0, len(batch.Flights))
	for _, f := range batch.Flights {
		flights = append(flights, ToFlightDTO(f))
	}
	return BoardDTO{
		Airport:     toAirportRef(base),
		BoardType:   string(batch.BoardType),
		GeneratedAt: batch.GeneratedAt,
		Total:       len(flights),
		Flights:     flights,
	}
}

// ToWeatherDTO converts a reading, expressing the temperature in unit.
func ToWeatherDTO(iata string, w domain.Weather, unit domain.TemperatureUnit) WeatherDTO {
	temp := unit.Convert(w.TemperatureC)
	return WeatherDTO{
		Airport:              iata,
		Temperature:          temp,
		TemperatureUnit:      string(unit),
		TemperatureFormatted: unit.Format(temp),
		TemperatureCelsius:   w.TemperatureC,
		Condition:            w.Condition,
		ConditionCode:        string(w.ConditionCode),
		Icon:                 w.Icon,
		WindSpeedKph:         w.WindSpeedKph,
		HumidityPercent:      w.HumidityPercent,
		ObservedAt:           w.ObservedAt,
		Source:               string(w.Source),
		Authoritative:        w.Authoritative,
	}
}

// ToPreferencesDTO converts saved preferences.
func ToPreferencesDTO(p domain.Preferences) PreferencesDTO {
	favorites := p.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return PreferencesDTO{
		SelectedAirport: p.SelectedAirport,
		Favorites:       favorites,
		TemperatureUnit: string(p.TemperatureUnit),
	}
}
