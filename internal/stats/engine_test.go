package stats

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"travelmap/internal/app"
)

// seqIDs returns a deterministic id generator for tests.
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func city(id, name, country, date string, lat, lng float64) app.City {
	return app.City{ID: id, Name: name, Country: country, Date: date, Lat: lat, Lng: lng}
}

func TestComputeStatsEmptyRecord(t *testing.T) {
	engine := NewEngine(seqIDs())
	derived := engine.ComputeStats(app.NewTravelRecord())

	if derived.VisitedCount != 0 {
		t.Errorf("expected 0 visited countries, got %d", derived.VisitedCount)
	}
	if derived.TotalCount != app.TotalCountries {
		t.Errorf("expected total %d, got %d", app.TotalCountries, derived.TotalCount)
	}
	if derived.Percentage != 0 {
		t.Errorf("expected 0%%, got %.1f", derived.Percentage)
	}
	if derived.TotalDistanceKm != 0 {
		t.Errorf("expected 0 km, got %d", derived.TotalDistanceKm)
	}
	if len(derived.Achievements) != 0 {
		t.Errorf("expected no achievements, got %v", derived.Achievements)
	}
	if len(derived.Trips) != 0 {
		t.Errorf("expected no trips, got %d", len(derived.Trips))
	}
	if len(derived.ContinentStats) != len(app.Continents) {
		t.Errorf("expected %d continent entries, got %d", len(app.Continents), len(derived.ContinentStats))
	}
}

func TestComputeStatsEndToEnd(t *testing.T) {
	engine := NewEngine(seqIDs())

	rec := app.NewTravelRecord()
	rec.VisitedCities = []app.City{
		city("c1", "Tokyo", "Japan", "2024-01-10", 35.68, 139.69),
	}
	rec.VisitedCountries = []string{"Japan"}

	derived := engine.ComputeStats(rec)
	if derived.VisitedCount != 1 {
		t.Fatalf("expected 1 visited country, got %d", derived.VisitedCount)
	}
	if derived.Percentage != 0.5 {
		t.Errorf("expected 0.5%%, got %.1f", derived.Percentage)
	}
	if derived.TotalDistanceKm != 0 {
		t.Errorf("single city should yield 0 km, got %d", derived.TotalDistanceKm)
	}
	if !hasAchievement(derived, "first_step") {
		t.Error("expected First Step achievement after one country")
	}

	rec.VisitedCities = append(rec.VisitedCities,
		city("c2", "Paris", "France", "2024-01-20", 48.85, 2.35))
	rec.VisitedCountries = append(rec.VisitedCountries, "France")

	derived = engine.ComputeStats(rec)
	if derived.VisitedCount != 2 {
		t.Fatalf("expected 2 visited countries, got %d", derived.VisitedCount)
	}
	if math.Abs(float64(derived.TotalDistanceKm)-9700) > 50 {
		t.Errorf("Tokyo-Paris distance = %d km, expected 9700 ± 50", derived.TotalDistanceKm)
	}
	if len(derived.Trips) != 1 {
		t.Fatalf("10-day gap should form one trip, got %d", len(derived.Trips))
	}
	trip := derived.Trips[0]
	if !reflect.DeepEqual(trip.Countries, []string{"Japan", "France"}) {
		t.Errorf("trip countries = %v, expected [Japan France]", trip.Countries)
	}
	if len(trip.Cities) != 2 {
		t.Errorf("trip should span both cities, got %d", len(trip.Cities))
	}
}

func TestAchievementThresholds(t *testing.T) {
	tests := []struct {
		name      string
		countries []string
		expected  []string
	}{
		{
			name:      "no countries no badges",
			countries: nil,
			expected:  []string{},
		},
		{
			name:      "one country earns first step",
			countries: []string{"Japan"},
			expected:  []string{"first_step"},
		},
		{
			name: "ten countries crosses 5 percent",
			countries: []string{
				"Japan", "China", "India", "Thailand", "Vietnam",
				"Laos", "Nepal", "Bhutan", "Mongolia", "South Korea",
			},
			expected: []string{"first_step", "explorer"},
		},
		{
			name: "three continents earns continent hopper",
			countries: []string{"Japan", "France", "Brazil"},
			expected:  []string{"first_step", "continent_hopper"},
		},
		{
			name: "twenty countries across continents earns everything",
			countries: []string{
				"Japan", "China", "India", "Thailand", "Vietnam", "Laos", "Nepal",
				"France", "Germany", "Spain", "Italy", "Portugal", "Norway",
				"Brazil", "Chile", "Peru", "Egypt", "Kenya", "Canada", "Australia",
			},
			expected: []string{"first_step", "explorer", "nomad", "continent_hopper"},
		},
	}

	engine := NewEngine(seqIDs())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.NewTravelRecord()
			rec.VisitedCountries = tt.countries

			derived := engine.ComputeStats(rec)

			got := make([]string, 0, len(derived.Achievements))
			for _, a := range derived.Achievements {
				got = append(got, a.ID)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("achievements = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestContinentStatsCoverage(t *testing.T) {
	engine := NewEngine(seqIDs())

	rec := app.NewTravelRecord()
	rec.VisitedCountries = []string{"Japan", "China", "France", "Brazil"}

	derived := engine.ComputeStats(rec)

	byName := map[string]app.ContinentStat{}
	sum := 0
	for _, cs := range derived.ContinentStats {
		byName[cs.Name] = cs
		sum += cs.Visited
	}

	if byName["Asia"].Visited != 2 {
		t.Errorf("Asia visited = %d, expected 2", byName["Asia"].Visited)
	}
	if byName["Europe"].Visited != 1 {
		t.Errorf("Europe visited = %d, expected 1", byName["Europe"].Visited)
	}
	if byName["South America"].Visited != 1 {
		t.Errorf("South America visited = %d, expected 1", byName["South America"].Visited)
	}

	// Every visited country is in the taxonomy, so per-continent counts
	// must add back up to the visited-country count.
	if sum != derived.VisitedCount {
		t.Errorf("continent counts sum to %d, expected %d", sum, derived.VisitedCount)
	}
}

func TestComputeStatsDeterministic(t *testing.T) {
	rec := app.NewTravelRecord()
	rec.VisitedCities = []app.City{
		city("c1", "Tokyo", "Japan", "2024-01-10", 35.68, 139.69),
		city("c2", "Paris", "France", "2024-03-20", 48.85, 2.35),
	}
	rec.VisitedCountries = []string{"Japan", "France"}

	a := NewEngine(seqIDs()).ComputeStats(rec)
	b := NewEngine(seqIDs()).ComputeStats(rec)

	if !reflect.DeepEqual(a, b) {
		t.Error("same record and id sequence must produce identical stats")
	}
}

func TestDistanceUsesDateOrderNotInsertionOrder(t *testing.T) {
	engine := NewEngine(seqIDs())

	rec := app.NewTravelRecord()
	// Inserted out of order on purpose
	rec.VisitedCities = []app.City{
		city("c2", "Paris", "France", "2024-02-01", 48.85, 2.35),
		city("c1", "Tokyo", "Japan", "2024-01-01", 35.68, 139.69),
		city("c3", "Lyon", "France", "2024-02-10", 45.76, 4.84),
	}
	rec.VisitedCountries = []string{"Japan", "France"}

	derived := engine.ComputeStats(rec)

	// Tokyo->Paris->Lyon, not Paris->Tokyo->Lyon
	if derived.TotalDistanceKm > 11000 {
		t.Errorf("distance %d km suggests insertion order was used instead of date order", derived.TotalDistanceKm)
	}
}

func hasAchievement(d app.DerivedStats, id string) bool {
	for _, a := range d.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
