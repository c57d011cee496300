package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorBlue  = lipgloss.Color("#268BD2")
	ColorGray  = lipgloss.Color("#6C7A89")
	ColorAmber = lipgloss.Color("#FFAA00")
	ColorGreen = lipgloss.Color("#44FF44")
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorGray).
			Padding(1, 3)

	digitStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	goalStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	statusSlotStyle = lipgloss.NewStyle().Width(statusSlotWidth)
)

const (
	pausedLabel     = "[PAUSED]"
	doneLabel       = "[DONE]"
	statusSlotWidth = len(pausedLabel)
)
