package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/pomo/internal/digits"
	"github.com/tinytelemetry/pomo/internal/model"
)

// View renders the countdown card, centered once the window size is known.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	card := m.renderCard()
	if m.width <= 0 || m.height <= 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m *Model) renderCard() string {
	remaining := m.timer.Remaining()

	width := digits.Width(remaining)

	parts := []string{m.renderHeader(width), ""}
	parts = append(parts, digitStyle.Render(strings.Join(digits.Render(remaining), "\n")), "")

	// The bar tracks the digit block so the card keeps a stable width per format.
	bar := m.progress
	bar.Width = width
	parts = append(parts, bar.ViewAs(m.elapsedFraction()), "")

	parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// renderHeader is the goal label followed by a fixed-width status slot. It is
// rendered in every status and never wider than width.
func (m *Model) renderHeader(width int) string {
	var label string
	switch m.timer.Status() {
	case model.Paused:
		label = pausedStyle.Render(pausedLabel)
	case model.Finished:
		label = doneStyle.Render(doneLabel)
	}
	slot := statusSlotStyle.Render(label)

	if m.cfg.Goal == "" {
		return slot
	}
	goalWidth := max(width-statusSlotWidth-1, 1)
	goal := goalStyle.MaxWidth(goalWidth).Render(m.cfg.Goal)
	return goal + " " + slot
}

func (m *Model) elapsedFraction() float64 {
	planned := m.cfg.InitialSeconds
	if planned <= 0 {
		return 1
	}
	return float64(planned-m.timer.Remaining()) / float64(planned)
}
