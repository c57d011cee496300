package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/tinytelemetry/pomo/internal/digits"
	"github.com/tinytelemetry/pomo/internal/model"
)

func TestViewShowsDigitsAndHelp(t *testing.T) {
	m := New(model.TimerConfig{Goal: "draft chapter", InitialSeconds: 125})
	v := m.View()

	for _, line := range digits.Render(125) {
		if !strings.Contains(v, line) {
			t.Fatalf("view missing digit row %q:\n%s", line, v)
		}
	}
	for _, want := range []string{"draft chapter", "pause/resume", "quit"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view missing %q:\n%s", want, v)
		}
	}
	if strings.Contains(v, "[PAUSED]") || strings.Contains(v, "[DONE]") {
		t.Fatalf("running view has a status label:\n%s", v)
	}
}

func TestViewStatusLabels(t *testing.T) {
	m, _ := newTestModel(t, 1)

	m.Update(spaceKey)
	if v := m.View(); !strings.Contains(v, "[PAUSED]") {
		t.Fatalf("paused view missing label:\n%s", v)
	}

	m.Update(spaceKey)
	tick(m)
	if v := m.View(); !strings.Contains(v, "[DONE]") {
		t.Fatalf("finished view missing label:\n%s", v)
	}
}

func TestViewStableWidthWithinFormat(t *testing.T) {
	m, _ := newTestModel(t, 600)
	width := maxLineWidth(m.View())
	for i := 0; i < 5; i++ {
		tick(m)
		if got := maxLineWidth(m.View()); got != width {
			t.Fatalf("frame width changed at %d remaining: %d -> %d", m.Remaining(), width, got)
		}
	}
}

func TestViewStableSizeAcrossStatus(t *testing.T) {
	goals := []string{"", "write the quarterly report draft"}

	for _, goal := range goals {
		t.Run(goal, func(t *testing.T) {
			clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC))
			m := New(model.TimerConfig{Goal: goal, InitialSeconds: 2}, WithClock(clock))
			m.Init()

			v := m.View()
			width, height := maxLineWidth(v), lipgloss.Height(v)
			check := func(stage string) {
				t.Helper()
				v := m.View()
				if got := maxLineWidth(v); got != width {
					t.Fatalf("%s: frame width = %d, want %d\n%s", stage, got, width, v)
				}
				if got := lipgloss.Height(v); got != height {
					t.Fatalf("%s: frame height = %d, want %d\n%s", stage, got, height, v)
				}
			}

			m.Update(spaceKey)
			check("paused")
			m.Update(spaceKey)
			check("resumed")
			tick(m)
			tick(m)
			if m.Status() != model.Finished {
				t.Fatalf("status = %s, want Finished", m.Status())
			}
			check("finished")
		})
	}
}

func TestViewTruncatesLongGoal(t *testing.T) {
	goal := strings.Repeat("long goal ", 10)
	m := New(model.TimerConfig{Goal: goal, InitialSeconds: 600})

	if got, limit := maxLineWidth(m.renderHeader(digits.Width(600))), digits.Width(600); got > limit {
		t.Fatalf("header width = %d, want <= %d", got, limit)
	}
}

func TestViewCentersInWindow(t *testing.T) {
	m, _ := newTestModel(t, 60)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Fatalf("view height = %d, want 40", len(lines))
	}
}

func TestViewEmptyAfterQuit(t *testing.T) {
	m, _ := newTestModel(t, 60)
	m.Update(quitKey)
	if v := m.View(); v != "" {
		t.Fatalf("view after quit = %q, want empty", v)
	}
}

func maxLineWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w
}
