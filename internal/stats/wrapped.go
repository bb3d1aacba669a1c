package stats

import (
	"math"
	"time"

	"travelmap/internal/app"
	"travelmap/internal/geo"

	"github.com/rs/zerolog/log"
)

// persona thresholds for the yearly digest
const (
	personaGlobeTrotterCountries = 5
	personaDeepDiverCities       = 10
	personaDeepDiverMaxCountries = 2
	personaCityHopperCities      = 5
)

// ComputeWrappedStats builds the yearly retrospective digest for the
// given calendar year. Returns nil when no visited city falls in that
// year; the caller decides how to tell the user.
//
// The distance covers only the year's date-sorted cities, not the
// global running total. Top city is the most recent visit of the year,
// not the most frequent destination.
func (e *Engine) ComputeWrappedStats(rec app.TravelRecord, year int) *app.WrappedStats {
	filtered := []app.City{}
	for _, c := range app.SortCitiesByDate(rec.VisitedCities) {
		if dayOf(c).Year() == year {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		log.Debug().Int("year", year).Msg("No visited cities in year, no wrapped stats")
		return nil
	}

	distance := 0.0
	for i := 0; i < len(filtered)-1; i++ {
		distance += geo.HaversineKm(
			filtered[i].Lat, filtered[i].Lng,
			filtered[i+1].Lat, filtered[i+1].Lng,
		)
	}

	countries := map[string]bool{}
	continents := map[string]bool{}
	var visitsPerMonth [13]int
	for _, c := range filtered {
		countries[c.Country] = true
		if cont := app.ContinentOf(c.Country); cont != "" {
			continents[cont] = true
		}
		visitsPerMonth[dayOf(c).Month()]++
	}

	// Ties go to the earliest month
	peak := time.January
	for m := time.January; m <= time.December; m++ {
		if visitsPerMonth[m] > visitsPerMonth[peak] {
			peak = m
		}
	}

	topCity := filtered[len(filtered)-1].Name

	stats := &app.WrappedStats{
		Year:           year,
		DistanceKm:     int(math.Round(distance)),
		CityCount:      len(filtered),
		CountryCount:   len(countries),
		ContinentCount: len(continents),
		PeakMonth:      peak.String(),
		TopCity:        topCity,
		Persona:        persona(len(filtered), len(countries)),
	}

	log.Debug().
		Int("year", year).
		Int("cities", stats.CityCount).
		Int("countries", stats.CountryCount).
		Str("persona", stats.Persona).
		Msg("Computed wrapped stats")

	return stats
}

// persona picks the digest label from the fixed rule table keyed on
// city and country counts. First matching rule wins.
func persona(cityCount, countryCount int) string {
	switch {
	case countryCount >= personaGlobeTrotterCountries:
		return "Globe Trotter"
	case cityCount >= personaDeepDiverCities && countryCount <= personaDeepDiverMaxCountries:
		return "Deep Diver"
	case cityCount >= personaCityHopperCities:
		return "City Hopper"
	default:
		return "Weekend Wanderer"
	}
}
