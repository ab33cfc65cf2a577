package calculations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolveRangeDaily(t *testing.T) {
	start, end := ResolveRange("2024-03-15", PeriodDaily, nil)
	assert.Equal(t, date(2024, 3, 15), start)
	assert.Equal(t, date(2024, 3, 15), end)
}

func TestResolveRangeWeekly(t *testing.T) {
	// 2024-03-15 is a Friday; the ISO week runs Monday the 11th through
	// Sunday the 17th.
	start, end := ResolveRange("2024-03-15", PeriodWeekly, nil)
	assert.Equal(t, date(2024, 3, 11), start)
	assert.Equal(t, date(2024, 3, 17), end)

	// A Monday reference is its own week start.
	start, end = ResolveRange("2024-03-11", PeriodWeekly, nil)
	assert.Equal(t, date(2024, 3, 11), start)
	assert.Equal(t, date(2024, 3, 17), end)

	// A Sunday belongs to the week that started six days earlier.
	start, _ = ResolveRange("2024-03-17", PeriodWeekly, nil)
	assert.Equal(t, date(2024, 3, 11), start)
	_ = end
}

func TestResolveRangeMonthly(t *testing.T) {
	start, end := ResolveRange("2024-03-15", PeriodMonthly, nil)
	assert.Equal(t, date(2024, 3, 1), start)
	assert.Equal(t, date(2024, 3, 31), end)

	// Leap-year February.
	start, end = ResolveRange("2024-02-15", PeriodMonthly, nil)
	assert.Equal(t, date(2024, 2, 1), start)
	assert.Equal(t, date(2024, 2, 29), end)

	// Non-leap February.
	_, end = ResolveRange("2023-02-01", PeriodMonthly, nil)
	assert.Equal(t, date(2023, 2, 28), end)

	// 30-day month.
	_, end = ResolveRange("2024-04-10", PeriodMonthly, nil)
	assert.Equal(t, date(2024, 4, 30), end)
}

func TestResolveRangeYearly(t *testing.T) {
	start, end := ResolveRange("2024-06-01", PeriodYearly, nil)
	assert.Equal(t, date(2024, 1, 1), start)
	assert.Equal(t, date(2024, 12, 31), end)
}

func TestResolveRangeCustom(t *testing.T) {
	custom := &CustomRange{Start: "2024-01-10", End: "2024-01-20"}
	start, end := ResolveRange("2024-03-15", PeriodCustom, custom)
	assert.Equal(t, date(2024, 1, 10), start)
	assert.Equal(t, date(2024, 1, 20), end)
}

func TestResolveRangeCustomAcceptsUTCMarker(t *testing.T) {
	custom := &CustomRange{Start: "2024-01-10T08:30:00Z", End: "2024-01-20T23:00:00Z"}
	start, end := ResolveRange("2024-03-15", PeriodCustom, custom)
	assert.Equal(t, date(2024, 1, 10), start)
	assert.Equal(t, date(2024, 1, 20), end)
}

func TestResolveRangeCustomMalformedFallsBackToDay(t *testing.T) {
	custom := &CustomRange{Start: "not-a-date", End: "2024-01-20"}
	start, end := ResolveRange("2024-03-15", PeriodCustom, custom)
	assert.Equal(t, date(2024, 3, 15), start)
	assert.Equal(t, date(2024, 3, 15), end)

	start, end = ResolveRange("2024-03-15", PeriodCustom, nil)
	assert.Equal(t, date(2024, 3, 15), start)
	assert.Equal(t, date(2024, 3, 15), end)
}

func TestResolveRangeBadReferenceFallsBackToToday(t *testing.T) {
	fixed := time.Date(2024, 7, 4, 15, 30, 0, 0, time.Local)
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = time.Now }()

	start, end := ResolveRange("garbage", PeriodDaily, nil)
	assert.Equal(t, date(2024, 7, 4), start)
	assert.Equal(t, date(2024, 7, 4), end)
}

func TestResolveRangeDatetimeReference(t *testing.T) {
	start, end := ResolveRange("2024-03-15T22:45:00Z", PeriodDaily, nil)
	assert.Equal(t, date(2024, 3, 15), start)
	assert.Equal(t, date(2024, 3, 15), end)
}
