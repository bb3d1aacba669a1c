package app

import (
	"reflect"
	"testing"
	"time"
)

func TestParseFormatDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2024-06-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := FormatDay(day); got != "2024-06-15" {
		t.Errorf("round trip = %q", got)
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	if _, err := ParseDay("not-a-date"); err == nil {
		t.Error("expected an error for a malformed day")
	}
}

func TestSortCitiesByDate(t *testing.T) {
	cities := []City{
		{ID: "c3", Date: "2024-03-01"},
		{ID: "c1", Date: "2024-01-01"},
		{ID: "c2", Date: "2024-02-01"},
	}

	sorted := SortCitiesByDate(cities)

	got := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	if !reflect.DeepEqual(got, []string{"c1", "c2", "c3"}) {
		t.Errorf("sorted order = %v", got)
	}

	// Input untouched
	if cities[0].ID != "c3" {
		t.Error("sort must not modify its input")
	}
}

func TestSortCitiesByDateIsStable(t *testing.T) {
	cities := []City{
		{ID: "first", Date: "2024-01-01"},
		{ID: "second", Date: "2024-01-01"},
	}

	sorted := SortCitiesByDate(cities)
	if sorted[0].ID != "first" || sorted[1].ID != "second" {
		t.Error("same-day cities must keep insertion order")
	}
}

func TestSortCitiesByDateUnparseableFirst(t *testing.T) {
	cities := []City{
		{ID: "good", Date: "2024-01-01"},
		{ID: "bad", Date: ""},
	}

	sorted := SortCitiesByDate(cities)
	if sorted[0].ID != "bad" {
		t.Error("cities without a parseable date sort first")
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	if got := DaysBetween(a, b); got != 14 {
		t.Errorf("DaysBetween = %v, expected 14", got)
	}
	if got := DaysBetween(b, a); got != -14 {
		t.Errorf("DaysBetween reversed = %v, expected -14", got)
	}
}
