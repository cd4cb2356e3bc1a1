package domain

// FlightStatus is the board status of a flight.
type FlightStatus string

// Flight statuses, in the order used by the status distribution.
const (
	StatusScheduled FlightStatus = "scheduled"
	StatusEnRoute   FlightStatus = "en-route"
	StatusDelayed   FlightStatus = "delayed"
	StatusDelayed1h FlightStatus = "delayed-1h"
	StatusDelayed2h FlightStatus = "delayed-2h"
	StatusCancelled FlightStatus = "cancelled"
	StatusUnknown   FlightStatus = "unknown"
)

// StatusInfo is the fixed display metadata of a status.
type StatusInfo struct {
	Status  FlightStatus `json:"status"`
	Label   string       `json:"label"`
	Color   string       `json:"color"`
	BgColor string       `json:"bgColor"`
}

var flightStatuses = []StatusInfo{
	{Status: StatusScheduled, Label: "Scheduled", Color: "text-blue-700", BgColor: "bg-blue-100"},
	{Status: StatusEnRoute, Label: "En Route", Color: "text-green-700", BgColor: "bg-green-100"},
	{Status: StatusDelayed, Label: "Delayed", Color: "text-yellow-700", BgColor: "bg-yellow-100"},
	{Status: StatusDelayed1h, Label: "Delayed >1h", Color: "text-orange-700", BgColor: "bg-orange-100"},
	{Status: StatusDelayed2h, Label: "Delayed >2h", Color: "text-red-700", BgColor: "bg-red-100"},
	{Status: StatusCancelled, Label: "Cancelled", Color: "text-gray-700", BgColor: "bg-gray-100"},
	{Status: StatusUnknown, Label: "Unknown", Color: "text-gray-500", BgColor: "bg-gray-50"},
}

// FlightStatuses returns the display metadata of every status.
func FlightStatuses() []StatusInfo {
	out := make([]StatusInfo, len(flightStatuses))
	copy(out, flightStatuses)
	return out
}

// Info returns the display metadata of the status.
func (s FlightStatus) Info() (StatusInfo, bool) {
	for _, info := range flightStatuses {
		if info.Status == s {
			return info, true
		}
	}
	return StatusInfo{}, false
}

// Label returns the display label, falling back to the unknown label.
func (s FlightStatus) Label() string {
	if info, ok := s.Info(); ok {
		return info.Label
	}
	info, _ := StatusUnknown.Info()
	return info.Label
}

// IsValid checks if the status is a known value.
func (s FlightStatus) IsValid() bool {
	_, ok := s.Info()
	return ok
}

// IsDelayed reports whether the status is one of the delay buckets.
func (s FlightStatus) IsDelayed() bool {
	return s == StatusDelayed || s == StatusDelayed1h || s == StatusDelayed2h
}

// HasActualDeparture reports whether a flight in this status shows a
// revised departure time.
func (s FlightStatus) HasActualDeparture() bool {
	return s != StatusScheduled && s != StatusCancelled
}

// HasActualArrival reports whether a flight in this status shows a revised
// arrival time. Only an airborne flight has a confirmed ETA.
func (s FlightStatus) HasActualArrival() bool {
	return s == StatusEnRoute
}
