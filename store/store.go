// Package store owns the live usage data shared between the sampling loop
// and the query side. One writer (the tracker tick) and any number of
// readers go through the same mutex, so a reader never observes a
// half-applied day bucket.
package store

import (
	"sync"
	"time"

	"github.com/wintrace/wintrace/models"
)

// Store is the process-wide handle to the usage data. It is created once at
// startup from the persisted state and passed to every component that needs
// it; there is no ambient global.
type Store struct {
	mu         sync.RWMutex
	data       models.UsageStore
	generation uint64
}

// New wraps the given initial data, typically the result of storage.Load.
// A nil initial store starts empty (cold start).
func New(initial models.UsageStore) *Store {
	if initial == nil {
		initial = make(models.UsageStore)
	}
	return &Store{data: initial}
}

// Record adds elapsed seconds to the app's bucket for the day of asOf,
// creating the day bucket and the app entry as needed.
//
// elapsed must already be clamped to >= 0 by the caller; the sampling loop
// computes it as the delta between consecutive ticks and is responsible for
// discarding negative deltas (clock adjustments).
func (s *Store) Record(appID string, elapsed float64, asOf time.Time) {
	day := models.DateKey(asOf)

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.data[day]
	if !ok {
		bucket = make(models.DayBucket)
		s.data[day] = bucket
	}
	bucket[appID] += elapsed
	s.generation++
}

// Snapshot returns a deep copy of the current data. Aggregation runs against
// snapshots so queries never hold the lock for longer than the copy.
func (s *Store) Snapshot() models.UsageStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Generation is a counter bumped on every write. Caches key their entries by
// it so any new sample invalidates previously computed reports.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Len returns the number of tracked days.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
