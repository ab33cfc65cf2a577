package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/models"
)

func TestReportCacheHitAndMiss(t *testing.T) {
	c := NewReportCache(10, time.Minute)
	start := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 6)

	key := Key(calculations.PeriodWeekly, start, end, 1)
	_, ok := c.Get(key)
	assert.False(t, ok)

	report := models.Report{Date: "11.03 - 17.03.2024", TotalDurationSeconds: 42}
	c.Set(key, report)

	cached, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, report, cached)

	// A new generation is a different key.
	_, ok = c.Get(Key(calculations.PeriodWeekly, start, end, 2))
	assert.False(t, ok)
}

func TestReportCacheExpiry(t *testing.T) {
	c := NewReportCache(10, time.Nanosecond)
	c.Set("k", models.Report{})
	time.Sleep(time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestReportCacheEvictsWhenFull(t *testing.T) {
	c := NewReportCache(2, time.Minute)
	c.Set("a", models.Report{})
	c.Set("b", models.Report{})
	c.Set("c", models.Report{})

	assert.Equal(t, 2, c.Len())
}

func TestRecapCacheRoundTrip(t *testing.T) {
	c, err := NewRecapCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(2024, 7)
	assert.False(t, ok)

	recap := models.RecapReport{
		Year:        2024,
		TotalHours:  120,
		TopCategory: "Browsing",
		TopApp:      models.AppReportEntry{ID: "chrome.exe", Name: "Chrome", DurationSeconds: 360000},
	}
	require.NoError(t, c.Set(2024, 7, recap))

	cached, ok := c.Get(2024, 7)
	require.True(t, ok)
	assert.Equal(t, recap.Year, cached.Year)
	assert.Equal(t, recap.TotalHours, cached.TotalHours)
	assert.Equal(t, recap.TopApp, cached.TopApp)

	// Different generation misses.
	_, ok = c.Get(2024, 8)
	assert.False(t, ok)
}

func TestRecapCacheDoesNotSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewRecapCache(dir, time.Hour)
	require.NoError(t, err)
	// Generation 0 is where every fresh store starts, so this is the entry a
	// restarted process would otherwise collide with.
	require.NoError(t, first.Set(2024, 0, models.RecapReport{Year: 2024}))
	_, ok := first.Get(2024, 0)
	require.True(t, ok)
	require.NoError(t, first.Close())

	second, err := NewRecapCache(dir, time.Hour)
	require.NoError(t, err)
	defer second.Close()

	_, ok = second.Get(2024, 0)
	assert.False(t, ok)
}
