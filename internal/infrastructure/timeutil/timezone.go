package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores loaded timezone locations keyed by IANA name.
var locationCache sync.Map

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// InTimezone converts a time to the specified timezone.
func InTimezone(t time.Time, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return t, err
	}
	return t.In(loc), nil
}

// LocalTime is the wall clock of an airport at an instant.
type LocalTime struct {
	Time        time.Time
	Timezone    string
	OffsetLabel string
}

// FormattedTime returns HH:MM.
func (l LocalTime) FormattedTime() string {
	return FormatTime(l.Time)
}

// FormattedDate returns a long date such as "Mon, 15 Dec 2025".
func (l LocalTime) FormattedDate() string {
	return l.Time.Format("Mon, 02 Jan 2006")
}

// LocalTimeAt returns the wall clock of the timezone at instant t.
func LocalTimeAt(t time.Time, timezone string) (LocalTime, error) {
	local, err := InTimezone(t, timezone)
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTime{
		Time:        local,
		Timezone:    timezone,
		OffsetLabel: OffsetLabel(local),
	}, nil
}

// OffsetLabel renders the UTC offset of t as "GMT+7", "GMT-3:30" or "GMT+0".
func OffsetLabel(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}

// FormatTime formats a time as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ any) bool {
		locationCache.Delete(key)
		return true
	})
}
