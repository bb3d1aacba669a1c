// Package store persists the travel record. It is a collaborator of
// the core, not part of it: the core only ever sees plain record
// values. A single authoritative record is stored as one JSON blob,
// overwritten wholesale on every change.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"travelmap/internal/app"
	"travelmap/internal/record"

	"github.com/rs/zerolog/log"
)

// SQLiteStore holds the single travel record in a SQLite database.
// The id generator and clock back the load-time normalization and are
// swappable for deterministic tests.
type SQLiteStore struct {
	db    *sql.DB
	newID func() string
	now   func() time.Time
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:    db,
		newID: record.NewULIDGenerator(),
		now:   time.Now,
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS record (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns the stored record, or a fresh default record when the
// store is empty. Loaded cities are normalized the way the record
// invariants expect: ids and dates backfilled, sorted by date.
func (s *SQLiteStore) Load() (app.TravelRecord, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM record WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		log.Debug().Msg("No stored record, starting fresh")
		return app.NewTravelRecord(), nil
	}
	if err != nil {
		return app.TravelRecord{}, fmt.Errorf("load record: %w", err)
	}

	rec := app.NewTravelRecord()
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return app.TravelRecord{}, fmt.Errorf("decode record: %w", err)
	}
	return s.normalize(rec), nil
}

// Save overwrites the stored record with rec.
func (s *SQLiteStore) Save(rec app.TravelRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO record (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Apply runs one read-modify-write cycle: load the current record,
// derive the next one through fn, persist it, and return it. This is
// the serialization discipline the pure mutators rely on; there is one
// authoritative copy and the last writer wins.
func (s *SQLiteStore) Apply(fn func(app.TravelRecord) (app.TravelRecord, error)) (app.TravelRecord, error) {
	cur, err := s.Load()
	if err != nil {
		return app.TravelRecord{}, err
	}

	next, err := fn(cur)
	if err != nil {
		return cur, err
	}

	if err := s.Save(next); err != nil {
		return cur, err
	}
	return next, nil
}

// normalize repairs a loaded record so the rest of the code can rely
// on the invariants: nil sections left out by older backups become
// empty slices, cities missing an id or date get one backfilled, and
// the visited list is re-sorted by date.
func (s *SQLiteStore) normalize(rec app.TravelRecord) app.TravelRecord {
	if rec.VisitedCities == nil {
		rec.VisitedCities = []app.City{}
	}
	if rec.VisitedCountries == nil {
		rec.VisitedCountries = []string{}
	}
	if rec.BucketListCountries == nil {
		rec.BucketListCountries = []string{}
	}
	if rec.BucketListCities == nil {
		rec.BucketListCities = []app.City{}
	}
	if rec.PassportStamps == nil {
		rec.PassportStamps = []app.Stamp{}
	}
	for i := range rec.VisitedCities {
		if rec.VisitedCities[i].ID == "" {
			rec.VisitedCities[i].ID = s.newID()
		}
		if rec.VisitedCities[i].Date == "" {
			rec.VisitedCities[i].Date = app.FormatDay(s.now())
		}
	}
	rec.VisitedCities = app.SortCitiesByDate(rec.VisitedCities)
	return rec
}
