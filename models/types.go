package models

import (
	"strings"
	"time"
	"unicode"
)

// DateKeyLayout is the canonical calendar-date form used as the store's
// primary time bucket.
const DateKeyLayout = "2006-01-02"

// Placeholder values for fields that are not yet derived from data. They are
// surfaced as-is in reports until real productivity classification lands.
const (
	StubProductivityScore = 85
	StubPeakHour          = "14:00"
	StubIsProductive      = true
)

// OtherCategory is the label for applications without a category mapping.
const OtherCategory = "Other"

// DayBucket maps an app identifier (case preserved, as sampled) to the
// seconds accumulated for it on a single day.
type DayBucket map[string]float64

// UsageStore maps a DateKey to that day's bucket. This is both the in-memory
// working set and the persisted JSON shape.
type UsageStore map[string]DayBucket

// Total returns the sum of all app seconds in the bucket.
func (b DayBucket) Total() float64 {
	var total float64
	for _, seconds := range b {
		total += seconds
	}
	return total
}

// Clone returns a deep copy of the store, safe to read after the original
// keeps mutating.
func (s UsageStore) Clone() UsageStore {
	out := make(UsageStore, len(s))
	for day, bucket := range s {
		cp := make(DayBucket, len(bucket))
		for app, seconds := range bucket {
			cp[app] = seconds
		}
		out[day] = cp
	}
	return out
}

// DateKey formats t as a store key in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// AppReportEntry is one row of a ranked app list.
type AppReportEntry struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationSeconds int    `json:"durationSeconds"`
	Category        string `json:"category"`
	IsProductive    bool   `json:"isProductive"`
}

// Report is the result of aggregating the store over a closed date range.
type Report struct {
	Date                 string           `json:"date"`
	ViewMode             string           `json:"viewMode"`
	TotalDurationSeconds int              `json:"totalDurationSeconds"`
	ProductivityScore    int              `json:"productivityScore"`
	Apps                 []AppReportEntry `json:"apps"`
}

// MonthlyUsage holds whole tracked hours for one calendar month (1-12).
type MonthlyUsage struct {
	Month int `json:"month"`
	Hours int `json:"hours"`
}

// DailyAverage holds the average tracked hours for one weekday.
// Day follows the Monday=0 .. Sunday=6 convention.
type DailyAverage struct {
	Day   int     `json:"day"`
	Hours float64 `json:"hours"`
}

// CategoryShare is one slice of the recap category breakdown.
type CategoryShare struct {
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
}

// RecapReport is the full-year rollup.
type RecapReport struct {
	Year              int              `json:"year"`
	TotalHours        int              `json:"totalHours"`
	PeakHour          string           `json:"peakHour"`
	WeekendPercentage int              `json:"weekendPercentage"`
	MostProductiveDay int              `json:"mostProductiveDay"`
	TopApp            AppReportEntry   `json:"topApp"`
	TopCategory       string           `json:"topCategory"`
	CategoryBreakdown []CategoryShare  `json:"categoryBreakdown"`
	MonthlyUsage      []MonthlyUsage   `json:"monthlyUsage"`
	DailyAverages     []DailyAverage   `json:"dailyAverages"`
	Apps              []AppReportEntry `json:"apps"`
}

// DisplayName converts a raw app identifier to its display form: a trailing
// ".exe" (any case) is stripped, then the first character is uppercased. The
// rest of the string is left unchanged.
func DisplayName(id string) string {
	name := id
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".exe") {
		name = name[:len(name)-4]
	}
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Weekday returns t's weekday index under the Monday=0 .. Sunday=6
// convention used throughout the recap engine.
func Weekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}
