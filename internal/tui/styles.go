package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by all views.
var (
	ColorHeader  = lipgloss.Color("39")  // bright blue
	ColorValue   = lipgloss.Color("255") // near white
	ColorLabel   = lipgloss.Color("245") // light gray
	ColorMuted   = lipgloss.Color("240") // dim gray
	ColorWarning = lipgloss.Color("214") // orange
	ColorError   = lipgloss.Color("196") // red
	ColorOK      = lipgloss.Color("42")  // green
	ColorBorder  = lipgloss.Color("240")
	ColorSelect  = lipgloss.Color("236") // selection background
)

// Styles shared by all views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorError)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorSelect).
				Foreground(ColorValue).
				Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorError).
				Foreground(ColorError).
				Padding(0, 1)
)
