package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	FailStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	WeekendStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
