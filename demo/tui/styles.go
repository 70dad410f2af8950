package tui

import "github.com/charmbracelet/lipgloss"

// Color palette, matching the render templates (amber captions, indigo and
// pink accents).
const (
	colorPrimary   = "#F59E0B"
	colorSuccess   = "#10B981"
	colorError     = "#EF4444"
	colorInfo      = "#94A3B8"
	colorHighlight = "#1E293B"
	colorBorder    = "#EC4899"
)

// Lipgloss styles shared by the demo views
var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginTop(1).
		MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSuccess))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorError))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(1, 2)

	HighlightStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorPrimary)).
		Padding(0, 1)
)
