package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the application
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
}

// Styles contains all styled components
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	Panel       lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
	TableHeader lipgloss.Style
	Selected    lipgloss.Style

	StatLabel lipgloss.Style
	StatValue lipgloss.Style
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return DarkTheme()
}

// DarkTheme returns a dark color theme
func DarkTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#6366F1"), // Indigo
		Success:    lipgloss.Color("#10B981"), // Green
		Warning:    lipgloss.Color("#F59E0B"), // Amber
		Foreground: lipgloss.Color("#F3F4F6"), // Gray-100
		Muted:      lipgloss.Color("#9CA3AF"), // Gray-400
		Border:     lipgloss.Color("#374151"), // Gray-700
		Highlight:  lipgloss.Color("#FCD34D"), // Yellow-300
	}
}

// LightTheme returns a light color theme
func LightTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#6D28D9"),
		Secondary:  lipgloss.Color("#4F46E5"),
		Success:    lipgloss.Color("#059669"),
		Warning:    lipgloss.Color("#D97706"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#D1D5DB"),
		Highlight:  lipgloss.Color("#B45309"),
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// NewStyles builds the style set for a theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Secondary),
		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(theme.Highlight).
			Bold(true),
		StatLabel: lipgloss.NewStyle().
			Foreground(theme.Muted),
		StatValue: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),
	}
}
