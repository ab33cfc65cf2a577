package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/wintrace/wintrace/cache"
	"github.com/wintrace/wintrace/categories"
	"github.com/wintrace/wintrace/config"
	"github.com/wintrace/wintrace/logging"
	"github.com/wintrace/wintrace/storage"
	"github.com/wintrace/wintrace/store"
	"github.com/wintrace/wintrace/tracker"
	"github.com/wintrace/wintrace/ui"
)

// Application owns the component lifecycle: load-or-empty bootstrap, the
// tracker goroutine, the query service handed to the UI, and the final flush
// on shutdown.
type Application struct {
	config   *config.Config
	logger   *logging.Logger
	store    *store.Store
	storage  *storage.Storage
	resolver *categories.Resolver
	watcher  *categories.Watcher
	tracker  *tracker.Tracker
	queries  *QueryService
	recaps   *cache.RecapCache

	headless bool
}

// NewApplication bootstraps all components from the configuration. headless
// disables the TUI; the daemon then just tracks and persists.
func NewApplication(cfg *config.Config, headless bool) (*Application, error) {
	logger := logging.GetGlobalLogger()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.Data.Dir, err)
	}

	persist := storage.New(cfg.UsageFilePath())
	usage, err := persist.Load()
	if err != nil {
		logger.Warnf("starting with empty usage store: %v", err)
	}
	st := store.New(usage)
	logger.Infof("loaded usage data: %d tracked days", st.Len())

	resolver, err := categories.NewResolver(cfg.CategoriesFilePath())
	if err != nil {
		logger.Warnf("category overrides unavailable: %v", err)
	}
	watcher, err := categories.NewWatcher(resolver, func(reloadErr error) {
		if reloadErr != nil {
			logger.Warnf("category override reload failed: %v", reloadErr)
		} else {
			logger.Info("category overrides reloaded")
		}
	})
	if err != nil {
		logger.Warnf("category override watching disabled: %v", err)
		watcher = nil
	}

	var reports *cache.ReportCache
	var recaps *cache.RecapCache
	if cfg.Cache.Enabled {
		reports = cache.NewReportCache(cfg.Cache.MaxSize, cfg.Cache.TTL)
		recaps, err = cache.NewRecapCache(cfg.CacheDir(), cfg.Cache.RecapTTL)
		if err != nil {
			logger.Warnf("recap cache disabled: %v", err)
			recaps = nil
		}
	}

	trk := tracker.New(st, persist, tracker.NewSystemSampler(), logger,
		cfg.Data.SampleInterval, cfg.Data.SaveInterval)

	return &Application{
		config:   cfg,
		logger:   logger,
		store:    st,
		storage:  persist,
		resolver: resolver,
		watcher:  watcher,
		tracker:  trk,
		queries:  NewQueryService(st, resolver, reports, recaps, logger),
		recaps:   recaps,
		headless: headless,
	}, nil
}

// Queries exposes the presentation boundary, used by the TUI and tests.
func (a *Application) Queries() *QueryService {
	return a.queries
}

// Run starts the tracker loop and blocks until the UI exits or a shutdown
// signal arrives. The tracker performs its final flush before Run returns.
func (a *Application) Run() error {
	a.logger.Infof("starting %s", a.config.App.Name)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.tracker.Run(ctx)
	}()

	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			a.logger.Warnf("category override watching disabled: %v", err)
		}
	}

	var runErr error
	if a.headless {
		<-sigCh
		a.logger.Info("received shutdown signal")
	} else {
		uiDone := make(chan error, 1)
		go func() {
			uiDone <- ui.RunWithTheme(a.queries, ui.ThemeByName(a.config.UI.Theme), a.config.UI.RefreshRate)
		}()
		select {
		case runErr = <-uiDone:
		case <-sigCh:
			a.logger.Info("received shutdown signal")
		}
	}

	cancel()
	wg.Wait()
	a.shutdown()

	a.logger.Infof("%s stopped", a.config.App.Name)
	return runErr
}

func (a *Application) shutdown() {
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warnf("failed to stop category watcher: %v", err)
		}
	}
	if a.recaps != nil {
		if err := a.recaps.Close(); err != nil {
			a.logger.Warnf("failed to close recap cache: %v", err)
		}
	}
}
