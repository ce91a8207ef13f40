// Package ui provides the visual styling and report rendering for the
// spltrack terminal surfaces. Light and dark palettes are supported.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Navy and lime on light backgrounds, flipped on dark.
var (
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A")
	LightMuted      = lipgloss.Color("#8a94a3")
	LightBorder     = lipgloss.Color("#c4cad3")

	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A")
	DarkAccent     = lipgloss.Color("#2196F3")
	DarkMuted      = lipgloss.Color("#7d8a9e")
	DarkBorder     = lipgloss.Color("#2a3850")

	// Requirement status, same in both modes
	MetColor    = lipgloss.Color("#43a047")
	NotMetColor = lipgloss.Color("#e53935")
	NoticeColor = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode when COLORFGBG reports a dark background or
// SPLTRACK_DARK_MODE=1, light mode otherwise.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		// "foreground;background"; 0-6 and 8 are dark backgrounds.
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("SPLTRACK_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// ThemeFor resolves a configured theme name. Anything but light or dark
// falls back to detection.
func ThemeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	}
	return DetectTheme()
}

// Styles holds the styles of the viewer, the report cards and the
// requirements table.
type Styles struct {
	Theme Theme

	// Viewer chrome
	Banner     lipgloss.Style
	Prompt     lipgloss.Style
	FileLabel  lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
	EmptyState lipgloss.Style
	Spinner    lipgloss.Style
	Divider    lipgloss.Style
	Muted      lipgloss.Style

	// Report
	PilotHeader lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardMet     lipgloss.Style
	LineMet     lipgloss.Style
	LineNotMet  lipgloss.Style
	ErrorPanel  lipgloss.Style

	// Requirements table
	TableTitle  lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Banner: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		FileLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Status: lipgloss.NewStyle().
			Foreground(NoticeColor).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		EmptyState: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(1, 2),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		PilotHeader: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		CardTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		CardMet: lipgloss.NewStyle().
			Foreground(MetColor).
			Bold(true),

		LineMet: lipgloss.NewStyle().
			Foreground(MetColor),

		LineNotMet: lipgloss.NewStyle().
			Foreground(NotMetColor),

		ErrorPanel: lipgloss.NewStyle().
			Foreground(NotMetColor).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.ThickBorder()).
			BorderForeground(NotMetColor),

		TableTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Padding(0, 1),

		TableCell: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),
	}
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("─", max(0, width)))
}
