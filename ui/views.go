package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/models"
)

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.view == ViewRecap {
		b.WriteString(m.renderRecap())
	} else {
		b.WriteString(m.renderReport())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("WinTrace")
	var sub string
	if m.view == ViewRecap {
		sub = m.styles.Subtitle.Render(fmt.Sprintf("Yearly Recap · %d", m.recap.Year))
	} else {
		sub = m.styles.Subtitle.Render(fmt.Sprintf("%s · %s", periodLabel(m.period), m.report.Date))
	}
	return m.styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", sub))
}

func (m Model) renderReport() string {
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		m.stat("Total", formatDuration(m.report.TotalDurationSeconds)),
		"   ",
		m.stat("Apps", fmt.Sprintf("%d", len(m.report.Apps))),
		"   ",
		m.stat("Productivity", fmt.Sprintf("%d%%", m.report.ProductivityScore)),
	)

	body := m.table.View()
	if len(m.report.Apps) == 0 {
		body = m.styles.Muted.Render("No activity recorded for this period.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, stats, "", m.styles.Panel.Render(body))
}

func (m Model) renderRecap() string {
	r := m.recap

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.stat("Total", fmt.Sprintf("%dh", r.TotalHours)),
		"   ",
		m.stat("Peak hour", r.PeakHour),
		"   ",
		m.stat("Weekend", fmt.Sprintf("%d%%", r.WeekendPercentage)),
		"   ",
		m.stat("Best day", weekdayNames[r.MostProductiveDay]),
	)

	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Top app: "))
	b.WriteString(m.styles.Normal.Render(fmt.Sprintf("%s (%s, %s)",
		r.TopApp.Name, r.TopApp.Category, formatDuration(r.TopApp.DurationSeconds))))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Categories"))
	b.WriteString("\n")
	if len(r.CategoryBreakdown) == 0 {
		b.WriteString(m.styles.Muted.Render("  no data"))
		b.WriteString("\n")
	}
	for _, share := range r.CategoryBreakdown {
		b.WriteString(fmt.Sprintf("  %-14s %s %3d%%\n",
			share.Category, renderBar(share.Percentage, 100, 20), share.Percentage))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Subtitle.Render("Monthly hours"))
	b.WriteString("\n")
	maxMonthly := 1
	for _, mu := range r.MonthlyUsage {
		if mu.Hours > maxMonthly {
			maxMonthly = mu.Hours
		}
	}
	for _, mu := range r.MonthlyUsage {
		b.WriteString(fmt.Sprintf("  %-4s %s %4dh\n",
			shortMonth(mu.Month), renderBar(mu.Hours, maxMonthly, 20), mu.Hours))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Subtitle.Render("Daily averages"))
	b.WriteString("\n")
	for _, avg := range r.DailyAverages {
		b.WriteString(fmt.Sprintf("  %-4s %.1fh\n", weekdayNames[avg.Day], avg.Hours))
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, "", m.styles.Panel.Render(b.String()))
}

func (m Model) renderFooter() string {
	if m.showHelp {
		return m.styles.Footer.Render(
			"d/w/m/y period · ←/→ shift range · t today · R recap · r refresh · ? help · q quit")
	}
	return m.styles.Footer.Render(fmt.Sprintf("updated %s · press ? for help",
		m.lastUpdate.Format("15:04:05")))
}

func (m Model) stat(label, value string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.StatLabel.Render(label),
		m.styles.StatValue.Render(value))
}

func reportColumns(width int) []table.Column {
	nameWidth := width - 40
	if nameWidth < 20 {
		nameWidth = 20
	}
	return []table.Column{
		{Title: "App", Width: nameWidth},
		{Title: "Category", Width: 14},
		{Title: "Duration", Width: 12},
		{Title: "Share", Width: 7},
	}
}

func reportRows(report models.Report) []table.Row {
	rows := make([]table.Row, 0, len(report.Apps))
	total := report.TotalDurationSeconds
	for _, app := range report.Apps {
		share := "-"
		if total > 0 {
			share = fmt.Sprintf("%d%%", app.DurationSeconds*100/total)
		}
		rows = append(rows, table.Row{
			app.Name,
			app.Category,
			formatDuration(app.DurationSeconds),
			share,
		})
	}
	return rows
}

// formatDuration renders whole seconds as 2h 05m or 4m 09s for short spans
func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %02dm", seconds/3600, (seconds%3600)/60)
}

func renderBar(value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func shortMonth(month int) string {
	names := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if month < 1 || month > 12 {
		return "?"
	}
	return names[month-1]
}

func periodLabel(kind calculations.PeriodKind) string {
	switch kind {
	case calculations.PeriodWeekly:
		return "Week"
	case calculations.PeriodMonthly:
		return "Month"
	case calculations.PeriodYearly:
		return "Year"
	default:
		return "Day"
	}
}
