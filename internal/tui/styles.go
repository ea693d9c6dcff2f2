package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/mergeflow/internal/model"
)

// Color palette based on TUI design
var (
	// Status colors
	StatusNewColor        = lipgloss.Color("#4ECDC4") // Teal
	StatusAssignedColor   = lipgloss.Color("#7AA2F7") // Blue
	StatusInProgressColor = lipgloss.Color("#FFE66D") // Yellow
	StatusPendingColor    = lipgloss.Color("#FFB347") // Orange
	StatusDoneColor       = lipgloss.Color("#95E1A3") // Green
	StatusDelayedColor    = lipgloss.Color("#FF6B6B") // Red

	// UI colors
	Primary    = lipgloss.Color("#4ECDC4")
	Secondary  = lipgloss.Color("#6C757D")
	Background = lipgloss.Color("#1a1a2e")
	Surface    = lipgloss.Color("#16213e")
	Text       = lipgloss.Color("#FFFFFF")
	TextMuted  = lipgloss.Color("#888888")
	Border     = lipgloss.Color("#333333")
	Highlight  = lipgloss.Color("#4ECDC4")
	Warning    = lipgloss.Color("#FF6B6B")
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	// Tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 2)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	// Stat cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2).
			MarginRight(1)

	CardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(Text)

	// Project table
	TableStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextMuted)

	RowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	RowSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	RowDoneStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1)

	UrgentStyle = lipgloss.NewStyle().Foreground(Warning).Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	// Input modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// statusColors is the fixed colour for every display status
var statusColors = map[model.DisplayStatus]lipgloss.Color{
	model.DisplayNew:        StatusNewColor,
	model.DisplayAssigned:   StatusAssignedColor,
	model.DisplayInProgress: StatusInProgressColor,
	model.DisplayPending:    StatusPendingColor,
	model.DisplayDone:       StatusDoneColor,
	model.DisplayDelayed:    StatusDelayedColor,
}

// StatusStyle returns the style for a display status
func StatusStyle(s model.DisplayStatus) lipgloss.Style {
	c, ok := statusColors[s]
	if !ok {
		c = Secondary
	}
	style := lipgloss.NewStyle().Foreground(c)
	if s == model.DisplayDelayed {
		style = style.Bold(true)
	}
	return style
}

// FormatStatus renders a display status as a coloured badge
func FormatStatus(s model.DisplayStatus) string {
	return StatusStyle(s).Render("● " + string(s))
}

// RatingStyle colours an editor rating from red to green
func RatingStyle(r float64) lipgloss.Style {
	switch {
	case r >= 4.5:
		return lipgloss.NewStyle().Foreground(StatusDoneColor).Bold(true)
	case r >= 3.0:
		return lipgloss.NewStyle().Foreground(StatusInProgressColor)
	default:
		return lipgloss.NewStyle().Foreground(StatusDelayedColor)
	}
}
