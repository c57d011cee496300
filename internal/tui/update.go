package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/pomo/internal/duration"
	"github.com/tinytelemetry/pomo/internal/model"
)

// Init anchors the tick schedule and starts the first tick.
func (m *Model) Init() tea.Cmd {
	m.epoch = m.clock.Now()
	m.nextSeq = 1
	m.recorder.Record(m.timer.Status())
	log.Printf("timer: started %s goal=%q", duration.Format(m.timer.Remaining()), m.cfg.Goal)
	return m.tickCmd(m.nextSeq)
}

// tickCmd waits until tick seq is due. The deadline is computed from the
// epoch, not from the previous tick, so slow updates do not accumulate drift.
func (m *Model) tickCmd(seq int) tea.Cmd {
	clock := m.clock
	deadline := m.epoch.Add(time.Duration(seq) * m.interval)
	return func() tea.Msg {
		t := <-clock.After(clock.Until(deadline))
		return TickMsg{Seq: seq, Time: t}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m *Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.nextSeq {
		return m, nil
	}
	m.nextSeq++

	if status, changed := m.timer.Tick(); changed {
		m.recordChange(status)
	}
	return m, m.tickCmd(m.nextSeq)
}

// handleKeyPress maps a key to a timer event or to quitting. Keys without a
// binding do nothing.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit, k.ForceQuit):
		return m.quit()

	case key.Matches(msg, k.Pause):
		if status, changed := m.timer.Toggle(); changed {
			m.recordChange(status)
		}
	}

	return m, nil
}

func (m *Model) recordChange(status model.Status) {
	m.recorder.Record(status)
	log.Printf("timer: %s at %s", status, duration.Format(m.timer.Remaining()))
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.recorder.Finish(m.timer.Remaining())
	log.Printf("timer: quit with %s remaining (%s)", duration.Format(m.timer.Remaining()), m.timer.Status())
	return m, tea.Quit
}
