// Package tracker implements the goal lifecycle, streak accounting and
// profile/app-state operations on top of the record store.
//
// Operations report success as a bool: validation failures and storage
// failures both come back false, never as a panic or error to the caller.
// Storage failures are additionally logged.
package tracker

import (
	"time"

	"github.com/sohta-m/forge/internal/store"
)

// Tracker owns all mutations of the persisted records. Each read fetches
// current truth from the store; callers holding copies must reload after
// mutating.
type Tracker struct {
	store *store.RecordStore
	now   func() time.Time
}

// New creates a Tracker over s using the real clock.
func New(s *store.RecordStore) *Tracker {
	return &Tracker{store: s, now: time.Now}
}

// NewWithClock creates a Tracker with an injected clock for tests.
func NewWithClock(s *store.RecordStore, now func() time.Time) *Tracker {
	return &Tracker{store: s, now: now}
}
