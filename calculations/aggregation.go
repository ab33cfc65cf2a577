package calculations

import (
	"fmt"
	"sort"
	"time"

	"github.com/wintrace/wintrace/models"
)

// CategoryFunc resolves an app identifier to its category label. The
// categories.Resolver satisfies it via a method value.
type CategoryFunc func(appID string) string

// appTotals accumulates per-app seconds while preserving the order in which
// apps were first encountered. Plain map iteration would make tie-breaks in
// the final sort depend on runtime map ordering; the explicit order slice
// keeps results deterministic across runs.
type appTotals struct {
	seconds map[string]float64
	order   []string
}

func newAppTotals() *appTotals {
	return &appTotals{seconds: make(map[string]float64)}
}

func (a *appTotals) add(appID string, seconds float64) {
	if _, seen := a.seconds[appID]; !seen {
		a.order = append(a.order, appID)
	}
	a.seconds[appID] += seconds
}

// entries builds the display-named, categorized report rows in accumulation
// order, durations floored to whole seconds.
func (a *appTotals) entries(resolve CategoryFunc) []models.AppReportEntry {
	out := make([]models.AppReportEntry, 0, len(a.order))
	for _, appID := range a.order {
		out = append(out, models.AppReportEntry{
			ID:              appID,
			Name:            models.DisplayName(appID),
			DurationSeconds: int(a.seconds[appID]),
			Category:        resolve(appID),
			IsProductive:    models.StubIsProductive,
		})
	}
	return out
}

// Aggregate sums the snapshot over the inclusive [start, end] date range and
// returns the ranked per-app report. Dates absent from the snapshot
// contribute nothing; an empty range yields total=0 and an empty app list.
func Aggregate(snapshot models.UsageStore, start, end time.Time, kind PeriodKind, resolve CategoryFunc) models.Report {
	totals := newAppTotals()
	var grandTotal float64

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		bucket, ok := snapshot[models.DateKey(day)]
		if !ok {
			continue
		}
		for _, appID := range sortedApps(bucket) {
			seconds := bucket[appID]
			grandTotal += seconds
			totals.add(appID, seconds)
		}
	}

	apps := totals.entries(resolve)
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].DurationSeconds > apps[j].DurationSeconds
	})

	return models.Report{
		Date:                 rangeLabel(start, end),
		ViewMode:             string(kind),
		TotalDurationSeconds: int(grandTotal),
		ProductivityScore:    models.StubProductivityScore,
		Apps:                 apps,
	}
}

// sortedApps returns the bucket's app identifiers in lexicographic order.
// Day buckets are plain maps in memory and on disk, so the scan order within
// one day has to be imposed explicitly to keep tie-breaks reproducible.
func sortedApps(bucket models.DayBucket) []string {
	apps := make([]string, 0, len(bucket))
	for appID := range bucket {
		apps = append(apps, appID)
	}
	sort.Strings(apps)
	return apps
}

// rangeLabel renders the report heading: "02 January 2006" for a single day,
// "02.01 - 02.01.2006" otherwise.
func rangeLabel(start, end time.Time) string {
	if start.Equal(end) {
		return start.Format("02 January 2006")
	}
	return fmt.Sprintf("%s - %s", start.Format("02.01"), end.Format("02.01.2006"))
}
