package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintrace/wintrace/cache"
	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/categories"
	"github.com/wintrace/wintrace/logging"
	"github.com/wintrace/wintrace/store"
)

func newTestQueryService(t *testing.T, reports *cache.ReportCache) (*QueryService, *store.Store) {
	t.Helper()
	st := store.New(nil)
	resolver, err := categories.NewResolver(filepath.Join(t.TempDir(), "user_categories.json"))
	require.NoError(t, err)
	logger := logging.NewLogger("error", "")
	return NewQueryService(st, resolver, reports, nil, logger), st
}

func TestRangeReportReflectsStoreState(t *testing.T) {
	qs, st := newTestQueryService(t, nil)

	asOf := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	st.Record("chrome.exe", 120, asOf)
	st.Record("code.exe", 60, asOf)

	report := qs.RangeReport("2024-03-15", calculations.PeriodDaily, nil)
	assert.Equal(t, 180, report.TotalDurationSeconds)
	require.Len(t, report.Apps, 2)
	assert.Equal(t, "Chrome", report.Apps[0].Name)
	assert.Equal(t, "Browsing", report.Apps[0].Category)
}

func TestRangeReportCacheInvalidatedByNewSamples(t *testing.T) {
	qs, st := newTestQueryService(t, cache.NewReportCache(8, time.Minute))

	asOf := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	st.Record("chrome.exe", 100, asOf)

	first := qs.RangeReport("2024-03-15", calculations.PeriodDaily, nil)
	assert.Equal(t, 100, first.TotalDurationSeconds)

	// A new sample bumps the generation, so the cached report misses.
	st.Record("chrome.exe", 50, asOf)
	second := qs.RangeReport("2024-03-15", calculations.PeriodDaily, nil)
	assert.Equal(t, 150, second.TotalDurationSeconds)
}

func TestYearlyRecapUsesCurrentYear(t *testing.T) {
	qs, st := newTestQueryService(t, nil)

	st.Record("chrome.exe", 7200, time.Now())
	recap := qs.YearlyRecap()

	assert.Equal(t, time.Now().Year(), recap.Year)
	assert.Equal(t, 2, recap.TotalHours)
	assert.Equal(t, "Chrome", recap.TopApp.Name)
}
