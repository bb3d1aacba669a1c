// Package record implements the pure state transitions of the travel
// record: add/remove/toggle mutators and the import/export codec. No
// function here performs I/O; each takes the current record value and
// returns a new one.
package record

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULIDGenerator returns an id generator producing ULIDs from a
// private entropy source. Injected into mutators and the stats engine
// so tests can substitute deterministic ids.
func NewULIDGenerator() func() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func() string {
		return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	}
}
