// Package categories maps app identifiers to category labels. User overrides
// take priority over the built-in defaults; anything unmapped resolves to
// models.OtherCategory.
package categories

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/wintrace/wintrace/models"
)

// defaultCategories maps lowercase executable names to category keys. The
// keys double as i18n identifiers on the presentation side.
var defaultCategories = map[string]string{
	"chrome.exe":  "Browsing",
	"firefox.exe": "Browsing",
	"msedge.exe":  "Browsing",
}

// Resolver answers category lookups and manages the user override map
// persisted as JSON next to the usage blob.
type Resolver struct {
	path      string
	mu        sync.RWMutex
	overrides map[string]string
}

// NewResolver creates a resolver backed by the override file at path and
// loads any existing overrides. A missing file is not an error.
func NewResolver(path string) (*Resolver, error) {
	r := &Resolver{
		path:      path,
		overrides: make(map[string]string),
	}
	if err := r.Reload(); err != nil {
		return r, err
	}
	return r, nil
}

// Resolve returns the category for the given app identifier. Lookups are
// case-insensitive. Priority: user override, then default map, then Other.
func (r *Resolver) Resolve(appID string) string {
	key := strings.ToLower(appID)

	r.mu.RLock()
	category, ok := r.overrides[key]
	r.mu.RUnlock()
	if ok {
		return category
	}

	if category, ok := defaultCategories[key]; ok {
		return category
	}
	return models.OtherCategory
}

// SetOverride records a user-assigned category for the app and persists the
// override map immediately.
func (r *Resolver) SetOverride(appID, category string) error {
	key := strings.ToLower(appID)

	r.mu.Lock()
	r.overrides[key] = category
	data, err := sonic.MarshalIndent(r.overrides, "", "  ")
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to marshal category overrides: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write category overrides %s: %w", r.path, err)
	}
	return nil
}

// Reload re-reads the override file, replacing the in-memory map. Called at
// startup and by the file watcher when the file changes on disk.
func (r *Resolver) Reload() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read category overrides %s: %w", r.path, err)
	}

	loaded := make(map[string]string)
	if err := sonic.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse category overrides %s: %w", r.path, err)
	}

	// Keys are normalized on write, but the file is user-editable.
	normalized := make(map[string]string, len(loaded))
	for app, category := range loaded {
		normalized[strings.ToLower(app)] = category
	}

	r.mu.Lock()
	r.overrides = normalized
	r.mu.Unlock()
	return nil
}

// Overrides returns a copy of the current override map.
func (r *Resolver) Overrides() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	copied := make(map[string]string, len(r.overrides))
	for app, category := range r.overrides {
		copied[app] = category
	}
	return copied
}

// Path returns the override file path.
func (r *Resolver) Path() string {
	return r.path
}
