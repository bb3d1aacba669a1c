package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"travelmap/internal/app"

	"github.com/rs/zerolog/log"
)

// ImportError signals a malformed or unrecognized import payload. The
// record is always left unchanged when one is returned.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import: %s", e.Reason)
}

func (e *ImportError) Unwrap() error { return e.Err }

// importKind classifies a payload before any merging happens.
type importKind int

const (
	importUnknown importKind = iota
	importNative             // travelmap backup JSON
	importHistory            // generic location-history export
)

// nativePayload mirrors the backup form of TravelRecord with every
// section optional, so partial backups still merge cleanly.
type nativePayload struct {
	VisitedCities       []app.City     `json:"visitedCities"`
	VisitedCountries    []string       `json:"visitedCountries"`
	BucketListCountries []string       `json:"bucketListCountries"`
	Settings            *settingsPatch `json:"settings"`
}

// settingsPatch shallow-merges onto current settings; nil fields keep
// the current value.
type settingsPatch struct {
	MapStyle    *string `json:"mapStyle"`
	GlobalEmoji *string `json:"globalEmoji"`
	ShowHeatmap *bool   `json:"showHeatmap"`
}

// historyItem is one entry of a generic location-history export.
// Coordinates arrive either as plain lat/lng or as E7 integers, and
// the timestamp either as a calendar day or epoch milliseconds.
type historyItem struct {
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Country     string    `json:"country"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	LatitudeE7  int64     `json:"latitudeE7"`
	LongitudeE7 int64     `json:"longitudeE7"`
	Date        string    `json:"date"`
	TimestampMs flexInt64 `json:"timestampMs"`
}

// flexInt64 decodes from a JSON number or a numeric string; history
// exports use both encodings for epoch milliseconds.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*f = flexInt64(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt64(n)
	return nil
}

// Import merges an external JSON payload into the current record. The
// payload is classified first (native backup vs location history) and
// dispatched; anything else yields an *ImportError with the record
// unchanged. After either merge the bucket list is filtered so it
// stays disjoint from the visited-country set.
func (m *Mutator) Import(raw []byte, cur app.TravelRecord) (app.TravelRecord, error) {
	kind, err := classifyImport(raw)
	if err != nil {
		return cur, err
	}

	switch kind {
	case importNative:
		return m.importNative(raw, cur)
	case importHistory:
		return m.importHistory(raw, cur)
	default:
		return cur, &ImportError{Reason: "unrecognized JSON format; expected a travelmap backup or a location history export"}
	}
}

// classifyImport decides the payload variant without merging anything.
func classifyImport(raw []byte) (importKind, error) {
	var probe map[string]json.RawMessage
	objErr := json.Unmarshal(raw, &probe)
	if objErr == nil {
		if _, ok := probe["visitedCities"]; ok {
			return importNative, nil
		}
		if _, ok := probe["visitedCountries"]; ok {
			return importNative, nil
		}
		if _, ok := probe["locations"]; ok {
			return importHistory, nil
		}
		return importUnknown, nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return importHistory, nil
	}

	return importUnknown, &ImportError{Reason: "malformed JSON", Err: objErr}
}

// importNative merges a travelmap backup: cities deduped by id with
// the imported copy winning, country sets unioned, settings patched.
func (m *Mutator) importNative(raw []byte, cur app.TravelRecord) (app.TravelRecord, error) {
	var payload nativePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return cur, &ImportError{Reason: "malformed travelmap backup", Err: err}
	}

	cities := copyCities(cur.VisitedCities)
	index := make(map[string]int, len(cities))
	for i, c := range cities {
		index[c.ID] = i
	}
	for _, c := range payload.VisitedCities {
		if c.ID == "" {
			c.ID = m.NewID()
		}
		if c.Date == "" {
			c.Date = app.FormatDay(m.Now())
		}
		if i, ok := index[c.ID]; ok {
			cities[i] = c
		} else {
			index[c.ID] = len(cities)
			cities = append(cities, c)
		}
	}

	next := cur
	next.VisitedCities = app.SortCitiesByDate(cities)
	next.VisitedCountries = unionStrings(cur.VisitedCountries, payload.VisitedCountries)
	next.BucketListCountries = unionStrings(cur.BucketListCountries, payload.BucketListCountries)

	if payload.Settings != nil {
		s := cur.Settings
		if payload.Settings.MapStyle != nil {
			s.MapStyle = *payload.Settings.MapStyle
		}
		if payload.Settings.GlobalEmoji != nil {
			s.GlobalEmoji = *payload.Settings.GlobalEmoji
		}
		if payload.Settings.ShowHeatmap != nil {
			s.ShowHeatmap = *payload.Settings.ShowHeatmap
		}
		next.Settings = s
	}

	next.BucketListCountries = subtractStrings(next.BucketListCountries, next.VisitedCountries)

	log.Info().
		Int("imported_cities", len(payload.VisitedCities)).
		Int("imported_countries", len(payload.VisitedCountries)).
		Msg("Merged travelmap backup")

	return next, nil
}

// importHistory maps a generic location-history export into cities
// and merges them as visits.
func (m *Mutator) importHistory(raw []byte, cur app.TravelRecord) (app.TravelRecord, error) {
	var items []historyItem

	var wrapper struct {
		Locations []historyItem `json:"locations"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Locations != nil {
		items = wrapper.Locations
	} else if err := json.Unmarshal(raw, &items); err != nil {
		return cur, &ImportError{Reason: "malformed location history", Err: err}
	}

	imported := make([]app.City, 0, len(items))
	for _, item := range items {
		imported = append(imported, m.cityFromHistory(item))
	}

	cities := app.SortCitiesByDate(append(copyCities(cur.VisitedCities), imported...))

	countries := copyStrings(cur.VisitedCountries)
	for _, c := range imported {
		countries = unionStrings(countries, []string{c.Country})
	}

	next := cur
	next.VisitedCities = cities
	next.VisitedCountries = countries
	next.BucketListCountries = subtractStrings(cur.BucketListCountries, countries)

	log.Info().
		Int("imported_locations", len(imported)).
		Msg("Merged location history")

	return next, nil
}

// cityFromHistory normalizes one history entry into a City.
func (m *Mutator) cityFromHistory(item historyItem) app.City {
	name := item.Name
	if name == "" {
		name = item.Address
	}
	if name == "" {
		name = "Unknown Location"
	}

	country := item.Country
	if country == "" {
		country = "Unknown"
	}

	lat := item.Lat
	if lat == 0 && item.LatitudeE7 != 0 {
		lat = float64(item.LatitudeE7) / 1e7
	}
	lng := item.Lng
	if lng == 0 && item.LongitudeE7 != 0 {
		lng = float64(item.LongitudeE7) / 1e7
	}

	date := item.Date
	if date == "" && item.TimestampMs != 0 {
		date = app.FormatDay(time.UnixMilli(int64(item.TimestampMs)))
	}
	if date == "" {
		date = app.FormatDay(m.Now())
	}

	return app.City{
		ID:      m.NewID(),
		Name:    name,
		Country: country,
		Lat:     lat,
		Lng:     lng,
		Date:    date,
		Notes:   "Imported Data",
	}
}

// unionStrings appends the members of add not already in base,
// preserving order of first appearance.
func unionStrings(base, add []string) []string {
	seen := make(map[string]bool, len(base))
	out := copyStrings(base)
	for _, s := range base {
		seen[s] = true
	}
	for _, s := range add {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// subtractStrings removes every member of drop from base.
func subtractStrings(base, drop []string) []string {
	dropSet := make(map[string]bool, len(drop))
	for _, s := range drop {
		dropSet[s] = true
	}
	return filterStrings(base, func(s string) bool { return !dropSet[s] })
}
