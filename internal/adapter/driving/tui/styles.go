package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor = lipgloss.Color("#2563EB")
	warningColor = lipgloss.Color("#D97706")
	errorColor   = lipgloss.Color("#DC2626")
	subtleColor  = lipgloss.Color("#626262")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(subtleColor)

	focusedLabelStyle = labelStyle.
				Foreground(primaryColor).
				Bold(true)

	disabledStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Faint(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	submitStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	updateStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Align(lipgloss.Center)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	cardSubtleStyle = lipgloss.NewStyle().Foreground(subtleColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			MarginTop(1)
)
