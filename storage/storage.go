// Package storage persists the usage store as a JSON blob on disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/wintrace/wintrace/models"
)

// Storage reads and writes the usage blob at a fixed path. Failures are
// advisory: Load always returns a usable store, and a failed Save leaves the
// previous blob intact.
type Storage struct {
	path string
}

// New creates a Storage for the given file path.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Path returns the backing file path.
func (s *Storage) Path() string {
	return s.path
}

// Load reads the persisted store. A missing file is a cold start and yields
// an empty store with no error. A corrupt or unreadable file also yields an
// empty store; the error is returned so the caller can log it.
func (s *Storage) Load() (models.UsageStore, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(models.UsageStore), nil
		}
		return make(models.UsageStore), fmt.Errorf("failed to read usage data %s: %w", s.path, err)
	}

	var usage models.UsageStore
	if err := sonic.Unmarshal(data, &usage); err != nil {
		return make(models.UsageStore), fmt.Errorf("failed to parse usage data %s: %w", s.path, err)
	}
	if usage == nil {
		usage = make(models.UsageStore)
	}
	return usage, nil
}

// Save writes the store atomically: marshal to a temp file in the same
// directory, then rename over the target. A crash mid-save never corrupts
// the existing blob.
func (s *Storage) Save(usage models.UsageStore) error {
	data, err := sonic.MarshalIndent(usage, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal usage data: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".usage-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write usage data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace usage data %s: %w", s.path, err)
	}
	return nil
}
