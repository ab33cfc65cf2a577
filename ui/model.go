package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/models"
)

// Queries is the read side the dashboard renders from. It is satisfied by
// the application's query service.
type Queries interface {
	RangeReport(date string, kind calculations.PeriodKind, custom *calculations.CustomRange) models.Report
	YearlyRecap() models.RecapReport
}

// ViewType represents different views in the application
type ViewType int

const (
	ViewReport ViewType = iota
	ViewRecap
)

// Model represents the application state
type Model struct {
	queries Queries

	// Data
	report models.Report
	recap  models.RecapReport

	// UI State
	view       ViewType
	period     calculations.PeriodKind
	reference  time.Time
	width      int
	height     int
	showHelp   bool
	lastUpdate time.Time

	// Components
	table   table.Model
	keys    KeyMap
	styles  Styles
	refresh time.Duration
}

// refreshMsg asks the model to re-query the store
type refreshMsg time.Time

// NewModel creates the dashboard model
func NewModel(queries Queries, theme Theme, refresh time.Duration) Model {
	if refresh <= 0 {
		refresh = 5 * time.Second
	}

	styles := NewStyles(theme)
	t := table.New(
		table.WithColumns(reportColumns(60)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Inherit(styles.TableHeader)
	ts.Selected = ts.Selected.Inherit(styles.Selected)
	t.SetStyles(ts)

	m := Model{
		queries:   queries,
		view:      ViewReport,
		period:    calculations.PeriodDaily,
		reference: time.Now(),
		table:     t,
		keys:      DefaultKeyMap(),
		styles:    styles,
		refresh:   refresh,
	}
	m.reload()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.scheduleRefresh()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(reportColumns(m.width))
		if m.height > 12 {
			m.table.SetHeight(m.height - 9)
		}
		return m, nil

	case refreshMsg:
		return m, tea.Batch(m.reload(), m.scheduleRefresh())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reload()

	case key.Matches(msg, m.keys.Recap):
		if m.view == ViewRecap {
			m.view = ViewReport
		} else {
			m.view = ViewRecap
		}
		return m, m.reload()

	case key.Matches(msg, m.keys.Daily):
		return m.switchPeriod(calculations.PeriodDaily)
	case key.Matches(msg, m.keys.Weekly):
		return m.switchPeriod(calculations.PeriodWeekly)
	case key.Matches(msg, m.keys.Monthly):
		return m.switchPeriod(calculations.PeriodMonthly)
	case key.Matches(msg, m.keys.Yearly):
		return m.switchPeriod(calculations.PeriodYearly)

	case key.Matches(msg, m.keys.PrevPeriod):
		m.reference = shiftReference(m.reference, m.period, -1)
		m.view = ViewReport
		return m, m.reload()
	case key.Matches(msg, m.keys.NextPeriod):
		m.reference = shiftReference(m.reference, m.period, 1)
		m.view = ViewReport
		return m, m.reload()
	case key.Matches(msg, m.keys.Today):
		m.reference = time.Now()
		return m, m.reload()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) switchPeriod(kind calculations.PeriodKind) (tea.Model, tea.Cmd) {
	m.period = kind
	m.view = ViewReport
	return m, m.reload()
}

// reload re-queries the store synchronously. Queries are cheap reads of the
// in-memory snapshot, so this stays off the command goroutine path.
func (m *Model) reload() tea.Cmd {
	if m.view == ViewRecap {
		m.recap = m.queries.YearlyRecap()
	} else {
		m.report = m.queries.RangeReport(models.DateKey(m.reference), m.period, nil)
		m.table.SetRows(reportRows(m.report))
	}
	m.lastUpdate = time.Now()
	return nil
}

func (m Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// shiftReference moves the reference date by one period in either direction
func shiftReference(ref time.Time, kind calculations.PeriodKind, dir int) time.Time {
	switch kind {
	case calculations.PeriodWeekly:
		return ref.AddDate(0, 0, 7*dir)
	case calculations.PeriodMonthly:
		return ref.AddDate(0, dir, 0)
	case calculations.PeriodYearly:
		return ref.AddDate(dir, 0, 0)
	default:
		return ref.AddDate(0, 0, dir)
	}
}

// Run starts the dashboard and blocks until the user quits
func Run(queries Queries, refresh time.Duration) error {
	return RunWithTheme(queries, DefaultTheme(), refresh)
}

// RunWithTheme starts the dashboard with an explicit theme
func RunWithTheme(queries Queries, theme Theme, refresh time.Duration) error {
	p := tea.NewProgram(NewModel(queries, theme, refresh), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard terminated: %w", err)
	}
	return nil
}
