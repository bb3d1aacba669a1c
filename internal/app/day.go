package app

import (
	"sort"
	"time"
)

// DayFormat is the calendar-day layout used for city and trip dates.
const DayFormat = "2006-01-02"

// ParseDay parses a YYYY-MM-DD calendar day in UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.UTC)
}

// FormatDay formats t as a YYYY-MM-DD calendar day.
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// dayOrZero parses a city date, treating unparseable dates as the zero
// time so they sort first instead of breaking the ordering invariant.
func dayOrZero(s string) time.Time {
	t, err := ParseDay(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortCitiesByDate returns a copy of cities sorted ascending by visit
// date. The sort is stable so same-day cities keep insertion order.
func SortCitiesByDate(cities []City) []City {
	sorted := make([]City, len(cities))
	copy(sorted, cities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dayOrZero(sorted[i].Date).Before(dayOrZero(sorted[j].Date))
	})
	return sorted
}

// DaysBetween returns the whole-day difference between two calendar
// days (b - a).
func DaysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}
