package calculations

import (
	"math"
	"sort"
	"time"

	"github.com/wintrace/wintrace/models"
)

// Recap performs a single pass over the snapshot and builds the full-year
// rollup for the given year. Store keys that do not parse as dates are
// skipped. Every derived value is total: zero denominators yield zero, an
// empty year yields placeholder top app and Other top category.
func Recap(snapshot models.UsageStore, year int, resolve CategoryFunc) models.RecapReport {
	var (
		grandTotal     float64
		weekendSeconds float64
		weekdaySeconds float64
	)
	monthlySeconds := make([]float64, 13) // 1-12
	daySums := make([]float64, 7)         // Monday=0 .. Sunday=6
	dayCounts := make([]int, 7)
	apps := newAppTotals()

	// Sorted key order fixes the first-encountered order of apps and
	// categories; map iteration order would leak into tie-breaks otherwise.
	for _, dateKey := range sortedDateKeys(snapshot) {
		date, err := time.ParseInLocation(models.DateKeyLayout, dateKey, time.Local)
		if err != nil || date.Year() != year {
			continue
		}

		bucket := snapshot[dateKey]
		dayTotal := bucket.Total()
		grandTotal += dayTotal
		monthlySeconds[int(date.Month())] += dayTotal

		weekday := models.Weekday(date)
		if weekday >= 5 {
			weekendSeconds += dayTotal
		} else {
			weekdaySeconds += dayTotal
		}
		daySums[weekday] += dayTotal
		dayCounts[weekday]++

		for _, appID := range sortedApps(bucket) {
			apps.add(appID, bucket[appID])
		}
	}

	appList := apps.entries(resolve)
	sort.SliceStable(appList, func(i, j int) bool {
		return appList[i].DurationSeconds > appList[j].DurationSeconds
	})

	topApp := models.AppReportEntry{Name: "-", Category: models.OtherCategory}
	if len(appList) > 0 {
		topApp = appList[0]
	}

	monthlyUsage := make([]models.MonthlyUsage, 0, 12)
	for month := 1; month <= 12; month++ {
		monthlyUsage = append(monthlyUsage, models.MonthlyUsage{
			Month: month,
			Hours: int(monthlySeconds[month] / 3600),
		})
	}

	trackedSeconds := weekendSeconds + weekdaySeconds
	weekendPct := 0
	if trackedSeconds > 0 {
		weekendPct = int(weekendSeconds / trackedSeconds * 100)
	}

	dailyAverages := make([]models.DailyAverage, 0, 7)
	for day := 0; day < 7; day++ {
		var avgSeconds float64
		if dayCounts[day] > 0 {
			avgSeconds = daySums[day] / float64(dayCounts[day])
		}
		dailyAverages = append(dailyAverages, models.DailyAverage{
			Day:   day,
			Hours: roundHours(avgSeconds / 3600),
		})
	}

	// Stable max scan over Monday..Sunday; a zero year pins Monday rather
	// than reporting an arbitrary max-of-zeros day.
	mostProductiveDay := 0
	if grandTotal > 0 {
		for day := 1; day < 7; day++ {
			if dailyAverages[day].Hours > dailyAverages[mostProductiveDay].Hours {
				mostProductiveDay = day
			}
		}
	}

	topCategory, breakdown := categoryStats(appList, grandTotal)

	return models.RecapReport{
		Year:              year,
		TotalHours:        int(grandTotal / 3600),
		PeakHour:          models.StubPeakHour,
		WeekendPercentage: weekendPct,
		MostProductiveDay: mostProductiveDay,
		TopApp:            topApp,
		TopCategory:       topCategory,
		CategoryBreakdown: breakdown,
		MonthlyUsage:      monthlyUsage,
		DailyAverages:     dailyAverages,
		Apps:              appList,
	}
}

// categoryStats aggregates the (already ranked) app list by category and
// returns the top category plus the top-5 percentage breakdown. The
// breakdown is empty when nothing was tracked.
func categoryStats(appList []models.AppReportEntry, grandTotal float64) (string, []models.CategoryShare) {
	categorySeconds := make(map[string]int)
	var order []string
	for _, app := range appList {
		if _, seen := categorySeconds[app.Category]; !seen {
			order = append(order, app.Category)
		}
		categorySeconds[app.Category] += app.DurationSeconds
	}

	if len(order) == 0 {
		return models.OtherCategory, nil
	}

	top := order[0]
	for _, category := range order[1:] {
		if categorySeconds[category] > categorySeconds[top] {
			top = category
		}
	}

	if grandTotal <= 0 {
		return top, nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return categorySeconds[order[i]] > categorySeconds[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}

	breakdown := make([]models.CategoryShare, 0, len(order))
	for _, category := range order {
		breakdown = append(breakdown, models.CategoryShare{
			Category:   category,
			Percentage: int(float64(categorySeconds[category]) / grandTotal * 100),
		})
	}
	return top, breakdown
}

// roundHours rounds to one decimal place, half away from zero. The rounding
// mode is pinned here and in the tests; hours are user-visible.
func roundHours(hours float64) float64 {
	return math.Floor(hours*10+0.5) / 10
}

func sortedDateKeys(snapshot models.UsageStore) []string {
	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
