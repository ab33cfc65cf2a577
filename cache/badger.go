package cache

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v3"

	"github.com/wintrace/wintrace/models"
)

// RecapCache persists computed yearly recaps in a BadgerDB keyspace. Recaps
// scan a full year of buckets and are requested repeatedly by the UI, so
// they are worth keeping across queries within one run. Entries are keyed
// by store generation AND a per-boot marker: the generation counter restarts
// at zero with every process, so an entry written by a previous run must
// never satisfy a lookup after a restart, when the reloaded store no longer
// matches it. Stale entries from earlier boots expire via their TTL.
type RecapCache struct {
	db   *badger.DB
	ttl  time.Duration
	boot uint64
}

// NewRecapCache opens (or creates) the cache database at dir.
func NewRecapCache(dir string, ttl time.Duration) (*RecapCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open recap cache: %w", err)
	}

	return &RecapCache{db: db, ttl: ttl, boot: uint64(time.Now().UnixNano())}, nil
}

func (c *RecapCache) key(year int, generation uint64) []byte {
	return []byte(fmt.Sprintf("recap/%d/%d/%d", c.boot, year, generation))
}

// Get returns the cached recap for the year at the given store generation.
func (c *RecapCache) Get(year int, generation uint64) (models.RecapReport, bool) {
	var recap models.RecapReport
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(year, generation))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return sonic.Unmarshal(val, &recap)
		})
	})
	if err != nil {
		return models.RecapReport{}, false
	}
	return recap, true
}

// Set stores a recap. Errors are returned for logging; a failed cache write
// is never fatal to the query path.
func (c *RecapCache) Set(year int, generation uint64, recap models.RecapReport) error {
	data, err := sonic.Marshal(recap)
	if err != nil {
		return fmt.Errorf("failed to marshal recap: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(c.key(year, generation), data).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
}

// Close releases the underlying database.
func (c *RecapCache) Close() error {
	return c.db.Close()
}
