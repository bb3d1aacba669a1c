package stats

import (
	"fmt"

	"travelmap/internal/app"

	"github.com/rs/zerolog/log"
)

// TripGapDays is the maximum gap in days between consecutive visits
// that still counts as the same trip.
const TripGapDays = 14

// GroupTrips segments a date-ascending city sequence into trips and
// returns them most recent first. A new trip starts whenever the gap
// between consecutive visit dates exceeds TripGapDays; within a trip
// every adjacent pair is at most TripGapDays apart.
func (e *Engine) GroupTrips(cities []app.City) []app.Trip {
	if len(cities) == 0 {
		return []app.Trip{}
	}

	groups := [][]app.City{}
	current := []app.City{cities[0]}

	for i := 1; i < len(cities); i++ {
		prev := dayOf(cities[i-1])
		cur := dayOf(cities[i])

		if app.DaysBetween(prev, cur) <= TripGapDays {
			current = append(current, cities[i])
		} else {
			groups = append(groups, current)
			current = []app.City{cities[i]}
		}
	}
	groups = append(groups, current)

	trips := make([]app.Trip, 0, len(groups))
	// Latest trips first
	for i := len(groups) - 1; i >= 0; i-- {
		trips = append(trips, e.buildTrip(groups[i]))
	}

	log.Debug().
		Int("cities", len(cities)).
		Int("trips", len(trips)).
		Msg("Grouped cities into trips")

	return trips
}

// buildTrip turns one contiguous city group into a Trip value.
func (e *Engine) buildTrip(group []app.City) app.Trip {
	countries := dedupeCountries(group)

	name := fmt.Sprintf("%s Trip", countries[0])
	if len(countries) > 1 {
		name = fmt.Sprintf("%s & More", countries[0])
	}

	return app.Trip{
		ID:        e.newID(),
		Name:      name,
		StartDate: group[0].Date,
		EndDate:   group[len(group)-1].Date,
		Cities:    group,
		Countries: countries,
	}
}

// dedupeCountries returns the distinct countries of a group in order
// of first appearance.
func dedupeCountries(group []app.City) []string {
	seen := make(map[string]bool, len(group))
	countries := []string{}
	for _, c := range group {
		if !seen[c.Country] {
			seen[c.Country] = true
			countries = append(countries, c.Country)
		}
	}
	return countries
}
