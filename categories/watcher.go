package categories

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the resolver when the override file changes on disk, so
// edits made while the daemon is running take effect without a restart.
type Watcher struct {
	resolver *Resolver
	watcher  *fsnotify.Watcher
	onReload func(error)
	stopCh   chan struct{}
	stopOnce sync.Once

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
}

const reloadDebounce = 500 * time.Millisecond

// NewWatcher creates a watcher for the resolver's override file. onReload is
// invoked after each reload attempt with its result; it may be nil.
func NewWatcher(resolver *Resolver, onReload func(error)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		resolver: resolver,
		watcher:  fsWatcher,
		onReload: onReload,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. The containing directory is watched rather than the
// file itself so atomic replaces (write temp, rename) are still observed.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.resolver.Path())
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.processEvents()
	return nil
}

// Stop stops watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.debounceMu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.debounceMu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.resolver.Path()) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	// Editors and atomic saves fire bursts of events; collapse them.
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(reloadDebounce, func() {
		err := w.resolver.Reload()
		if w.onReload != nil {
			w.onReload(err)
		}
	})
}
