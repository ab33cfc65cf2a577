package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/models"
)

type fakeQueries struct {
	lastKind calculations.PeriodKind
	report   models.Report
	recap    models.RecapReport
}

func (f *fakeQueries) RangeReport(date string, kind calculations.PeriodKind, custom *calculations.CustomRange) models.Report {
	f.lastKind = kind
	return f.report
}

func (f *fakeQueries) YearlyRecap() models.RecapReport {
	return f.recap
}

func testRecap() models.RecapReport {
	recap := models.RecapReport{
		Year:     2024,
		PeakHour: "14:00",
		TopApp:   models.AppReportEntry{Name: "-", Category: models.OtherCategory},
	}
	for month := 1; month <= 12; month++ {
		recap.MonthlyUsage = append(recap.MonthlyUsage, models.MonthlyUsage{Month: month})
	}
	for day := 0; day < 7; day++ {
		recap.DailyAverages = append(recap.DailyAverages, models.DailyAverage{Day: day})
	}
	return recap
}

func TestPeriodSwitchingKeys(t *testing.T) {
	queries := &fakeQueries{recap: testRecap()}
	m := NewModel(queries, DefaultTheme(), time.Second)

	cases := []struct {
		key  string
		want calculations.PeriodKind
	}{
		{"w", calculations.PeriodWeekly},
		{"m", calculations.PeriodMonthly},
		{"y", calculations.PeriodYearly},
		{"d", calculations.PeriodDaily},
	}
	for _, tc := range cases {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)})
		m = updated.(Model)
		assert.Equal(t, tc.want, m.period, "key %q", tc.key)
		assert.Equal(t, tc.want, queries.lastKind)
	}
}

func TestRecapToggle(t *testing.T) {
	queries := &fakeQueries{recap: testRecap()}
	m := NewModel(queries, DefaultTheme(), time.Second)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")})
	m = updated.(Model)
	assert.Equal(t, ViewRecap, m.view)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")})
	m = updated.(Model)
	assert.Equal(t, ViewReport, m.view)
}

func TestQuitKey(t *testing.T) {
	queries := &fakeQueries{recap: testRecap()}
	m := NewModel(queries, DefaultTheme(), time.Second)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestShiftReference(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.Local),
		shiftReference(ref, calculations.PeriodDaily, -1))
	assert.Equal(t, time.Date(2024, 3, 22, 0, 0, 0, 0, time.Local),
		shiftReference(ref, calculations.PeriodWeekly, 1))
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.Local),
		shiftReference(ref, calculations.PeriodMonthly, -1))
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
		shiftReference(ref, calculations.PeriodYearly, 1))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", formatDuration(45))
	assert.Equal(t, "4m 09s", formatDuration(249))
	assert.Equal(t, "2h 05m", formatDuration(7500))
}

func TestReportRowsComputeShares(t *testing.T) {
	report := models.Report{
		TotalDurationSeconds: 200,
		Apps: []models.AppReportEntry{
			{Name: "Chrome", Category: "Browsing", DurationSeconds: 150},
			{Name: "Code", Category: "Other", DurationSeconds: 50},
		},
	}
	rows := reportRows(report)
	assert.Len(t, rows, 2)
	assert.Equal(t, "75%", rows[0][3])
	assert.Equal(t, "25%", rows[1][3])

	rows = reportRows(models.Report{})
	assert.Empty(t, rows)
}
