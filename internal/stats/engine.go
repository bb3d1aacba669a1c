// Package stats derives analytics snapshots from a travel record. The
// engine is pure: the same record always yields the same stats, and
// nothing here reads or writes storage.
package stats

import (
	"math"
	"time"

	"travelmap/internal/app"
	"travelmap/internal/geo"
	"travelmap/internal/record"

	"github.com/rs/zerolog/log"
)

// Engine computes derived statistics for travel records. The id
// generator is injected so trip ids are deterministic under test.
type Engine struct {
	newID func() string
}

// NewEngine creates an engine with the given trip id generator. A nil
// generator falls back to ULID ids.
func NewEngine(newID func() string) *Engine {
	if newID == nil {
		newID = record.NewULIDGenerator()
	}
	return &Engine{newID: newID}
}

// ComputeStats derives the full analytics snapshot for a record:
// world coverage, achievements, per-continent stats, cumulative
// travel distance, and trip groupings.
func (e *Engine) ComputeStats(rec app.TravelRecord) app.DerivedStats {
	visitedCount := len(rec.VisitedCountries)
	percentage := float64(visitedCount) / float64(app.TotalCountries) * 100

	continentStats := e.computeContinentStats(rec.VisitedCountries)
	achievements := e.computeAchievements(visitedCount, percentage, continentStats)

	sorted := app.SortCitiesByDate(rec.VisitedCities)
	distance := e.computeTotalDistance(sorted)
	trips := e.GroupTrips(sorted)

	log.Debug().
		Int("visited_countries", visitedCount).
		Int("visited_cities", len(sorted)).
		Int("achievements", len(achievements)).
		Int("trips", len(trips)).
		Int("total_distance_km", distance).
		Msg("Computed derived stats")

	return app.DerivedStats{
		VisitedCount:    visitedCount,
		TotalCount:      app.TotalCountries,
		Percentage:      round1(percentage),
		TotalDistanceKm: distance,
		Achievements:    achievements,
		ContinentStats:  continentStats,
		Trips:           trips,
	}
}

// computeAchievements evaluates the badge predicates against current
// state only. Order is display order; membership is never accumulated.
func (e *Engine) computeAchievements(visitedCount int, percentage float64, continents []app.ContinentStat) []app.Achievement {
	achievements := []app.Achievement{}

	if visitedCount >= 1 {
		achievements = append(achievements, app.Achievement{
			ID: "first_step", Title: "First Step",
			Description: "Visited your first country!", Icon: "👣",
		})
	}
	if percentage >= 5 {
		achievements = append(achievements, app.Achievement{
			ID: "explorer", Title: "Explorer",
			Description: "Reached 5% world coverage", Icon: "🗺️",
		})
	}
	if percentage >= 10 {
		achievements = append(achievements, app.Achievement{
			ID: "nomad", Title: "Total Nomad",
			Description: "Reached 10% world coverage", Icon: "🌎",
		})
	}

	touched := 0
	for _, cs := range continents {
		if cs.Visited >= 1 {
			touched++
		}
	}
	if touched >= 3 {
		achievements = append(achievements, app.Achievement{
			ID: "continent_hopper", Title: "Continent Hopper",
			Description: "Visited 3 different continents", Icon: "✈️",
		})
	}

	return achievements
}

// computeContinentStats counts visited countries per continent of the
// fixed taxonomy, in taxonomy display order.
func (e *Engine) computeContinentStats(visitedCountries []string) []app.ContinentStat {
	visited := make(map[string]bool, len(visitedCountries))
	for _, c := range visitedCountries {
		visited[c] = true
	}

	out := make([]app.ContinentStat, 0, len(app.Continents))
	for _, cont := range app.Continents {
		count := 0
		for _, c := range cont.Countries {
			if visited[c] {
				count++
			}
		}
		total := len(cont.Countries)
		out = append(out, app.ContinentStat{
			Name:       cont.Name,
			Visited:    count,
			Total:      total,
			Percentage: round1(float64(count) / float64(total) * 100),
		})
	}
	return out
}

// computeTotalDistance sums the great-circle distance over every
// consecutive pair of the date-sorted cities, rounded to whole km.
func (e *Engine) computeTotalDistance(sorted []app.City) int {
	total := 0.0
	for i := 0; i < len(sorted)-1; i++ {
		total += geo.HaversineKm(
			sorted[i].Lat, sorted[i].Lng,
			sorted[i+1].Lat, sorted[i+1].Lng,
		)
	}
	return int(math.Round(total))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func dayOf(c app.City) time.Time {
	t, err := app.ParseDay(c.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
