package record

import (
	"time"

	"travelmap/internal/app"

	"github.com/rs/zerolog/log"
)

// Mutator applies commands to a travel record, returning a new record
// value each time. Id generation and the clock are injected so every
// transition is deterministic under test. Mutators hold no state of
// their own; serializing command application is the caller's job.
type Mutator struct {
	NewID func() string
	Now   func() time.Time
}

// NewMutator returns a mutator wired with ULID ids and the wall clock.
func NewMutator() *Mutator {
	return &Mutator{
		NewID: NewULIDGenerator(),
		Now:   time.Now,
	}
}

// AddCity appends a visited city and re-sorts by date. A newly seen
// country is promoted into the visited set, dropped from the bucket
// list, and any bucket-list city with the same name is removed.
func (m *Mutator) AddCity(city app.City, cur app.TravelRecord) app.TravelRecord {
	if city.ID == "" {
		city.ID = m.NewID()
	}
	if city.Date == "" {
		city.Date = app.FormatDay(m.Now())
	}

	next := cur
	next.VisitedCities = app.SortCitiesByDate(append(copyCities(cur.VisitedCities), city))

	if city.Country != "" && !cur.HasVisitedCountry(city.Country) {
		next.VisitedCountries = append(copyStrings(cur.VisitedCountries), city.Country)
		next.BucketListCountries = filterStrings(cur.BucketListCountries, func(c string) bool {
			return c != city.Country
		})
		next.BucketListCities = filterCities(cur.BucketListCities, func(c app.City) bool {
			return c.Name != city.Name
		})
	}

	log.Debug().
		Str("city_id", city.ID).
		Str("country", city.Country).
		Str("date", city.Date).
		Msg("Added visited city")

	return next
}

// AddBucketCity appends a wished-for city. Its country joins the
// bucket list unless already visited or already bucket-listed.
func (m *Mutator) AddBucketCity(city app.City, cur app.TravelRecord) app.TravelRecord {
	if city.ID == "" {
		city.ID = m.NewID()
	}

	next := cur
	next.BucketListCities = append(copyCities(cur.BucketListCities), city)

	if city.Country != "" && !cur.HasVisitedCountry(city.Country) && !cur.HasBucketCountry(city.Country) {
		next.BucketListCountries = append(copyStrings(cur.BucketListCountries), city.Country)
	}

	return next
}

// RemoveCity removes a visited city by id. When the last city of a
// country goes, the country leaves the visited set too, keeping the
// set consistent with actual visits. Unknown ids are a no-op.
func (m *Mutator) RemoveCity(cityID string, cur app.TravelRecord) app.TravelRecord {
	var removed *app.City
	for i := range cur.VisitedCities {
		if cur.VisitedCities[i].ID == cityID {
			removed = &cur.VisitedCities[i]
			break
		}
	}

	next := cur
	next.VisitedCities = filterCities(cur.VisitedCities, func(c app.City) bool {
		return c.ID != cityID
	})

	if removed != nil {
		stillThere := false
		for _, c := range next.VisitedCities {
			if c.Country == removed.Country {
				stillThere = true
				break
			}
		}
		if !stillThere {
			next.VisitedCountries = filterStrings(cur.VisitedCountries, func(c string) bool {
				return c != removed.Country
			})
		}
	}

	return next
}

// RemoveBucketCity removes a wished-for city by id. No cross-invariant.
func (m *Mutator) RemoveBucketCity(cityID string, cur app.TravelRecord) app.TravelRecord {
	next := cur
	next.BucketListCities = filterCities(cur.BucketListCities, func(c app.City) bool {
		return c.ID != cityID
	})
	return next
}

// CityUpdate is a partial update for a visited city. Nil fields are
// left untouched.
type CityUpdate struct {
	Name        *string
	Country     *string
	Lat         *float64
	Lng         *float64
	Date        *string
	Notes       *string
	Photo       *string
	CustomEmoji *string
	Weather     *app.Weather
	Cost        *float64
}

// UpdateCity merges a partial update into the matching city. The list
// is re-sorted only when the date changed. Unknown ids are a no-op.
func (m *Mutator) UpdateCity(cityID string, updates CityUpdate, cur app.TravelRecord) app.TravelRecord {
	cities := copyCities(cur.VisitedCities)
	dateChanged := false

	for i := range cities {
		if cities[i].ID != cityID {
			continue
		}
		if updates.Name != nil {
			cities[i].Name = *updates.Name
		}
		if updates.Country != nil {
			cities[i].Country = *updates.Country
		}
		if updates.Lat != nil {
			cities[i].Lat = *updates.Lat
		}
		if updates.Lng != nil {
			cities[i].Lng = *updates.Lng
		}
		if updates.Date != nil {
			dateChanged = cities[i].Date != *updates.Date
			cities[i].Date = *updates.Date
		}
		if updates.Notes != nil {
			cities[i].Notes = *updates.Notes
		}
		if updates.Photo != nil {
			cities[i].Photo = *updates.Photo
		}
		if updates.CustomEmoji != nil {
			cities[i].CustomEmoji = *updates.CustomEmoji
		}
		if updates.Weather != nil {
			w := *updates.Weather
			cities[i].Weather = &w
		}
		if updates.Cost != nil {
			cost := *updates.Cost
			cities[i].Cost = &cost
		}
		break
	}

	if dateChanged {
		cities = app.SortCitiesByDate(cities)
	}

	next := cur
	next.VisitedCities = cities
	return next
}

// ToggleCountry flips a country's visited status. Un-visiting cascades
// removal of every visited and bucket city in that country; visiting
// removes the country (only the country) from the bucket list.
func (m *Mutator) ToggleCountry(country string, cur app.TravelRecord) app.TravelRecord {
	next := cur

	if cur.HasVisitedCountry(country) {
		next.VisitedCountries = filterStrings(cur.VisitedCountries, func(c string) bool {
			return c != country
		})
		next.VisitedCities = filterCities(cur.VisitedCities, func(c app.City) bool {
			return c.Country != country
		})
		next.BucketListCities = filterCities(cur.BucketListCities, func(c app.City) bool {
			return c.Country != country
		})
	} else {
		next.VisitedCountries = append(copyStrings(cur.VisitedCountries), country)
		next.BucketListCountries = filterStrings(cur.BucketListCountries, func(c string) bool {
			return c != country
		})
	}

	log.Debug().
		Str("country", country).
		Bool("visited", !cur.HasVisitedCountry(country)).
		Msg("Toggled country")

	return next
}

// ToggleBucketList flips a country's bucket-list membership. Visited
// countries are never bucket-listed, so those calls are a no-op.
// Un-bucketing cascades removal of that country's bucket cities.
func (m *Mutator) ToggleBucketList(country string, cur app.TravelRecord) app.TravelRecord {
	if cur.HasVisitedCountry(country) {
		return cur
	}

	next := cur
	if cur.HasBucketCountry(country) {
		next.BucketListCountries = filterStrings(cur.BucketListCountries, func(c string) bool {
			return c != country
		})
		next.BucketListCities = filterCities(cur.BucketListCities, func(c app.City) bool {
			return c.Country != country
		})
	} else {
		next.BucketListCountries = append(copyStrings(cur.BucketListCountries), country)
	}
	return next
}

// UpdateSettings replaces the presentation settings wholesale.
func (m *Mutator) UpdateSettings(settings app.Settings, cur app.TravelRecord) app.TravelRecord {
	next := cur
	next.Settings = settings
	return next
}

// AddPassportStamp appends a stamp, backfilling id and timestamp.
// The caller owns the exactly-one-of URL/LocalImage invariant; the
// mutator stores whatever reference it is handed.
func (m *Mutator) AddPassportStamp(stamp app.Stamp, cur app.TravelRecord) app.TravelRecord {
	if stamp.ID == "" {
		stamp.ID = m.NewID()
	}
	if stamp.Date == "" {
		stamp.Date = m.Now().UTC().Format(time.RFC3339)
	}

	next := cur
	next.PassportStamps = append(copyStamps(cur.PassportStamps), stamp)
	return next
}

// RemovePassportStamp removes a stamp by id. Unknown ids are a no-op.
func (m *Mutator) RemovePassportStamp(stampID string, cur app.TravelRecord) app.TravelRecord {
	next := cur
	filtered := make([]app.Stamp, 0, len(cur.PassportStamps))
	for _, s := range cur.PassportStamps {
		if s.ID != stampID {
			filtered = append(filtered, s)
		}
	}
	next.PassportStamps = filtered
	return next
}

func copyCities(cities []app.City) []app.City {
	out := make([]app.City, len(cities))
	copy(out, cities)
	return out
}

func copyStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

func copyStamps(stamps []app.Stamp) []app.Stamp {
	out := make([]app.Stamp, len(stamps))
	copy(out, stamps)
	return out
}

func filterCities(cities []app.City, keep func(app.City) bool) []app.City {
	out := make([]app.City, 0, len(cities))
	for _, c := range cities {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func filterStrings(ss []string, keep func(string) bool) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
