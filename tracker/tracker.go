package tracker

import (
	"context"
	"time"

	"github.com/wintrace/wintrace/logging"
	"github.com/wintrace/wintrace/storage"
	"github.com/wintrace/wintrace/store"
)

// Tracker drives the sampling loop. It is the single writer of the store:
// each tick attributes the wall time since the previous tick to the app in
// the foreground, and the store is flushed to disk on a fixed cadence plus
// once more at shutdown.
type Tracker struct {
	store   *store.Store
	storage *storage.Storage
	sampler Sampler
	logger  *logging.Logger

	sampleInterval time.Duration
	saveInterval   time.Duration

	lastTick time.Time
}

// New creates a tracker. sampleInterval is the polling period (1s in
// production); saveInterval is the persistence cadence (60s).
func New(st *store.Store, persist *storage.Storage, sampler Sampler, logger *logging.Logger, sampleInterval, saveInterval time.Duration) *Tracker {
	if sampleInterval <= 0 {
		sampleInterval = time.Second
	}
	if saveInterval <= 0 {
		saveInterval = 60 * time.Second
	}
	return &Tracker{
		store:          st,
		storage:        persist,
		sampler:        sampler,
		logger:         logger,
		sampleInterval: sampleInterval,
		saveInterval:   saveInterval,
	}
}

// Run blocks until ctx is cancelled, then performs one final synchronous
// flush. Persistence failures inside the loop are logged and retried on the
// next cadence; they never stop the loop.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.sampleInterval)
	defer ticker.Stop()

	t.lastTick = time.Now()
	lastSave := time.Now()

	for {
		select {
		case now := <-ticker.C:
			t.tick(now)
			if now.Sub(lastSave) >= t.saveInterval {
				if err := t.Flush(); err != nil {
					t.logger.Warnf("periodic save failed, will retry: %v", err)
				}
				lastSave = now
			}

		case <-ctx.Done():
			if err := t.Flush(); err != nil {
				t.logger.Errorf("final save failed: %v", err)
			}
			return
		}
	}
}

// tick attributes the time since the previous tick to the current foreground
// app. The elapsed delta is clamped to >= 0 here before it reaches the
// store; clock adjustments can make it negative.
func (t *Tracker) tick(now time.Time) {
	elapsed := now.Sub(t.lastTick).Seconds()
	t.lastTick = now
	if elapsed < 0 {
		elapsed = 0
	}

	appID, ok := t.sampler.Poll()
	if !ok {
		return
	}
	t.store.Record(appID, elapsed, now)
}

// Flush writes the current store snapshot to disk.
func (t *Tracker) Flush() error {
	return t.storage.Save(t.store.Snapshot())
}
