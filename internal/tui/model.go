package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/jonboulle/clockwork"

	"github.com/tinytelemetry/pomo/internal/model"
	"github.com/tinytelemetry/pomo/internal/session"
	"github.com/tinytelemetry/pomo/internal/timer"
)

// TickMsg is delivered once per tick interval. Seq counts ticks from the
// start of the loop so stale or duplicate ticks can be dropped.
type TickMsg struct {
	Seq  int
	Time time.Time
}

// Model is the Bubble Tea model for a single countdown.
type Model struct {
	cfg      model.TimerConfig
	timer    *timer.Timer
	recorder *session.Recorder

	keys     KeyMap
	help     help.Model
	progress progress.Model

	clock    clockwork.Clock
	interval time.Duration
	epoch    time.Time // set by Init; tick n is due at epoch + n*interval
	nextSeq  int

	width    int
	height   int
	quitting bool
}

// Option customizes a Model.
type Option func(*Model)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithTickInterval changes the tick period. Non-positive values are ignored.
func WithTickInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// New creates a countdown model for cfg.
func New(cfg model.TimerConfig, opts ...Option) *Model {
	m := &Model{
		cfg:      cfg,
		timer:    timer.New(cfg.InitialSeconds),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		clock:    clockwork.NewRealClock(),
		interval: model.DefaultTickInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.recorder = session.New(m.clock, cfg.Goal, m.timer.Remaining())
	return m
}

func (m *Model) Remaining() int       { return m.timer.Remaining() }
func (m *Model) Status() model.Status { return m.timer.Status() }
func (m *Model) Quitting() bool       { return m.quitting }

// Session closes the recording, if still open, and returns its summary.
func (m *Model) Session() model.Session {
	m.recorder.Finish(m.timer.Remaining())
	return m.recorder.Summary()
}
