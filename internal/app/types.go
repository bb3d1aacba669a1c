package app

// Weather is a point-in-time snapshot attached to a city by the caller.
// The core never fetches it; it only carries the value around.
type Weather struct {
	TempC float64 `json:"temp"`
	Code  int     `json:"code"`
	Time  string  `json:"time"`
}

// City is a single visited or wished-for place. Identity is ID.
type City struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Notes       string   `json:"notes,omitempty"`
	Photo       string   `json:"photo,omitempty"`
	CustomEmoji string   `json:"customEmoji,omitempty"`
	Weather     *Weather `json:"weather,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
}

// Stamp is a passport stamp image reference. Exactly one of URL or
// LocalImage is set.
type Stamp struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	URL        string `json:"url,omitempty"`
	LocalImage string `json:"localImage,omitempty"`
}

// Settings are presentation preferences. Opaque to the stats and
// mutation code; carried through record replacements untouched.
type Settings struct {
	MapStyle    string `json:"mapStyle"`
	GlobalEmoji string `json:"globalEmoji"`
	ShowHeatmap bool   `json:"showHeatmap"`
}

// DefaultSettings returns the settings of a fresh record.
func DefaultSettings() Settings {
	return Settings{
		MapStyle:    "dark",
		GlobalEmoji: "📍",
		ShowHeatmap: false,
	}
}

// TravelRecord is the root aggregate. It is treated as an immutable
// value: mutators take a record and return a wholly new one, and
// VisitedCities stays sorted ascending by date.
type TravelRecord struct {
	VisitedCities       []City   `json:"visitedCities"`
	VisitedCountries    []string `json:"visitedCountries"`
	BucketListCountries []string `json:"bucketListCountries"`
	BucketListCities    []City   `json:"bucketListCities"`
	PassportStamps      []Stamp  `json:"passportStamps"`
	Settings            Settings `json:"settings"`
}

// NewTravelRecord returns an empty record with default settings.
func NewTravelRecord() TravelRecord {
	return TravelRecord{
		VisitedCities:       []City{},
		VisitedCountries:    []string{},
		BucketListCountries: []string{},
		BucketListCities:    []City{},
		PassportStamps:      []Stamp{},
		Settings:            DefaultSettings(),
	}
}

// HasVisitedCountry reports whether name is in the visited-country set.
func (r TravelRecord) HasVisitedCountry(name string) bool {
	for _, c := range r.VisitedCountries {
		if c == name {
			return true
		}
	}
	return false
}

// HasBucketCountry reports whether name is on the bucket list.
func (r TravelRecord) HasBucketCountry(name string) bool {
	for _, c := range r.BucketListCountries {
		if c == name {
			return true
		}
	}
	return false
}

// Achievement is a badge derived from the current record state only.
// Membership is recomputed every time; nothing is persisted.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ContinentStat is per-continent coverage against the fixed taxonomy.
type ContinentStat struct {
	Name       string  `json:"name"`
	Visited    int     `json:"visited"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Trip is a contiguous run of visited cities with gaps of at most 14
// days between consecutive visits. Trips are derived and ephemeral;
// IDs are regenerated on every computation.
type Trip struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Cities    []City   `json:"cities"`
	Countries []string `json:"countries"`
}

// DerivedStats is the full analytics snapshot for a record. Always
// recomputed from scratch, never stored.
type DerivedStats struct {
	VisitedCount    int             `json:"visitedCount"`
	TotalCount      int             `json:"totalCount"`
	Percentage      float64         `json:"percentage"`
	TotalDistanceKm int             `json:"totalDistance"`
	Achievements    []Achievement   `json:"achievements"`
	ContinentStats  []ContinentStat `json:"continentStats"`
	Trips           []Trip          `json:"trips"`
}

// WrappedStats is a single-year retrospective digest.
type WrappedStats struct {
	Year           int    `json:"year"`
	DistanceKm     int    `json:"distance"`
	CityCount      int    `json:"cityCount"`
	CountryCount   int    `json:"countryCount"`
	ContinentCount int    `json:"continentCount"`
	PeakMonth      string `json:"peakMonth"`
	TopCity        string `json:"topCity"`
	Persona        string `json:"persona"`
}
