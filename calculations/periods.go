package calculations

import (
	"time"

	"github.com/wintrace/wintrace/models"
)

// PeriodKind selects how a reference date expands into a closed date range.
type PeriodKind string

const (
	PeriodDaily   PeriodKind = "daily"
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
	PeriodCustom  PeriodKind = "custom"
)

// CustomRange carries the verbatim start/end strings of a custom period.
type CustomRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// nowFunc is swapped in tests to pin the fallback date.
var nowFunc = time.Now

// isoDateLayouts are tried in order when parsing reference and custom
// boundary strings. A trailing "Z" is handled by the RFC 3339 layouts.
var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseISODate parses an ISO-8601 date or datetime string and truncates it
// to a calendar date. The bool reports whether parsing succeeded.
func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
		}
	}
	return time.Time{}, false
}

// ResolveRange converts a reference date and period kind into an inclusive
// [start, end] date range. Resolution is total: an unparsable reference date
// falls back to the current local date, and a missing or malformed custom
// range degrades to the daily behavior.
func ResolveRange(referenceDate string, kind PeriodKind, custom *CustomRange) (time.Time, time.Time) {
	ref, ok := parseISODate(referenceDate)
	if !ok {
		now := nowFunc()
		ref = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	}

	switch kind {
	case PeriodWeekly:
		start := ref.AddDate(0, 0, -models.Weekday(ref))
		return start, start.AddDate(0, 0, 6)

	case PeriodMonthly:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.Local)
		// Day 28 plus 4 days always lands in the next month, for any
		// 28/29/30/31-day month; backing up by its day-of-month gives the
		// last day of the reference month.
		next := time.Date(ref.Year(), ref.Month(), 28, 0, 0, 0, 0, time.Local).AddDate(0, 0, 4)
		end := next.AddDate(0, 0, -next.Day())
		return start, end

	case PeriodYearly:
		start := time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, time.Local)
		end := time.Date(ref.Year(), 12, 31, 0, 0, 0, 0, time.Local)
		return start, end

	case PeriodCustom:
		if custom != nil {
			start, okStart := parseISODate(custom.Start)
			end, okEnd := parseISODate(custom.End)
			if okStart && okEnd {
				return start, end
			}
		}
		return ref, ref

	default: // PeriodDaily and anything unrecognized
		return ref, ref
	}
}
