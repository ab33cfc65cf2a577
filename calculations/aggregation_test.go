package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintrace/wintrace/models"
)

func testResolve(appID string) string {
	switch appID {
	case "chrome.exe":
		return "Browsing"
	case "code.exe":
		return "Development"
	default:
		return "Other"
	}
}

func TestAggregateSingleDay(t *testing.T) {
	snapshot := models.UsageStore{
		"2024-03-15": {"chrome.exe": 100.7, "code.exe": 50.2},
	}

	report := Aggregate(snapshot, date(2024, 3, 15), date(2024, 3, 15), PeriodDaily, testResolve)

	assert.Equal(t, "15 March 2024", report.Date)
	assert.Equal(t, "daily", report.ViewMode)
	assert.Equal(t, 150, report.TotalDurationSeconds) // floor(150.9)
	assert.Equal(t, models.StubProductivityScore, report.ProductivityScore)

	require.Len(t, report.Apps, 2)
	assert.Equal(t, "chrome.exe", report.Apps[0].ID)
	assert.Equal(t, "Chrome", report.Apps[0].Name)
	assert.Equal(t, 100, report.Apps[0].DurationSeconds)
	assert.Equal(t, "Browsing", report.Apps[0].Category)
	assert.True(t, report.Apps[0].IsProductive)
	assert.Equal(t, "Code", report.Apps[1].Name)
	assert.Equal(t, "Development", report.Apps[1].Category)
}

func TestAggregateMultiDaySumsPerApp(t *testing.T) {
	snapshot := models.UsageStore{
		"2024-03-15": {"chrome.exe": 100},
		"2024-03-16": {"chrome.exe": 50, "code.exe": 200},
		"2024-03-20": {"chrome.exe": 999}, // outside range
	}

	report := Aggregate(snapshot, date(2024, 3, 15), date(2024, 3, 17), PeriodWeekly, testResolve)

	assert.Equal(t, "15.03 - 17.03.2024", report.Date)
	assert.Equal(t, 350, report.TotalDurationSeconds)
	require.Len(t, report.Apps, 2)
	assert.Equal(t, "code.exe", report.Apps[0].ID)
	assert.Equal(t, 200, report.Apps[0].DurationSeconds)
	assert.Equal(t, "chrome.exe", report.Apps[1].ID)
	assert.Equal(t, 150, report.Apps[1].DurationSeconds)
}

func TestAggregateTotalEqualsFlooredSum(t *testing.T) {
	snapshot := models.UsageStore{
		"2024-03-15": {"a.exe": 0.4, "b.exe": 0.4},
		"2024-03-16": {"a.exe": 0.4},
	}

	report := Aggregate(snapshot, date(2024, 3, 15), date(2024, 3, 16), PeriodCustom, testResolve)

	// floor(1.2) == 1 even though every per-app floor is 0.
	assert.Equal(t, 1, report.TotalDurationSeconds)
	for _, app := range report.Apps {
		assert.Zero(t, app.DurationSeconds)
	}
}

func TestAggregateEmptyStore(t *testing.T) {
	report := Aggregate(models.UsageStore{}, date(2024, 3, 15), date(2024, 3, 17), PeriodWeekly, testResolve)

	assert.Zero(t, report.TotalDurationSeconds)
	assert.Empty(t, report.Apps)
}

func TestAggregateRangeWithNoMatchingDates(t *testing.T) {
	snapshot := models.UsageStore{"2020-01-01": {"chrome.exe": 500}}

	report := Aggregate(snapshot, date(2024, 3, 15), date(2024, 3, 15), PeriodDaily, testResolve)

	assert.Zero(t, report.TotalDurationSeconds)
	assert.Empty(t, report.Apps)
}

func TestAggregateTieKeepsFirstEncounteredOrder(t *testing.T) {
	// zulu.exe is met on the earlier day, alpha.exe on the later one; equal
	// durations must not be reordered by the sort.
	snapshot := models.UsageStore{
		"2024-03-15": {"zulu.exe": 100},
		"2024-03-16": {"alpha.exe": 100},
	}

	report := Aggregate(snapshot, date(2024, 3, 15), date(2024, 3, 16), PeriodCustom, testResolve)

	require.Len(t, report.Apps, 2)
	assert.Equal(t, "zulu.exe", report.Apps[0].ID)
	assert.Equal(t, "alpha.exe", report.Apps[1].ID)
}

func TestAggregateTieWithinDayIsLexicographic(t *testing.T) {
	// Within one day the scan order is the sorted identifier order.
	snapshot := models.UsageStore{
		"2024-03-15": {"beta.exe": 100, "alpha.exe": 100},
	}

	report := Aggregate(snapshot, date(2024, 3, 15), date(2024, 3, 15), PeriodDaily, testResolve)

	require.Len(t, report.Apps, 2)
	assert.Equal(t, "alpha.exe", report.Apps[0].ID)
	assert.Equal(t, "beta.exe", report.Apps[1].ID)
}
