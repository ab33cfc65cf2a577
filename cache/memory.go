// Package cache holds computed reports so repeated queries over an unchanged
// store do not rescan it: an in-memory TTL cache for range reports and a
// BadgerDB-backed cache for yearly recaps.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/models"
)

// ReportCache is a bounded TTL cache for range reports. Keys include the
// store generation, so any new sample naturally misses.
type ReportCache struct {
	mu      sync.RWMutex
	entries map[string]reportEntry
	maxSize int
	ttl     time.Duration
}

type reportEntry struct {
	report  models.Report
	addedAt time.Time
}

// NewReportCache creates a cache holding at most maxSize reports for up to
// ttl each.
func NewReportCache(maxSize int, ttl time.Duration) *ReportCache {
	if maxSize <= 0 {
		maxSize = 64
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ReportCache{
		entries: make(map[string]reportEntry),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Key builds the cache key for a resolved range at a store generation.
func Key(kind calculations.PeriodKind, start, end time.Time, generation uint64) string {
	return fmt.Sprintf("%s_%s_%s_%d", kind,
		start.Format(models.DateKeyLayout), end.Format(models.DateKeyLayout), generation)
}

// Get returns the cached report for key, if present and fresh.
func (c *ReportCache) Get(key string) (models.Report, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return models.Report{}, false
	}
	if time.Since(entry.addedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return models.Report{}, false
	}
	return entry.report, true
}

// Set stores a report, evicting the oldest entry when full.
func (c *ReportCache) Set(key string, report models.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		oldestTime := time.Now()
		for k, v := range c.entries {
			if v.addedAt.Before(oldestTime) {
				oldestTime = v.addedAt
				oldestKey = k
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = reportEntry{report: report, addedAt: time.Now()}
}

// Len returns the number of cached reports.
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
