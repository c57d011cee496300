// Package timer holds the countdown state machine.
//
// A Timer is not safe for concurrent use; it is owned by the event loop,
// which is its only mutator.
package timer

import "github.com/tinytelemetry/pomo/internal/model"

// Event is an input to the state machine. Quitting is not an Event: it ends
// the event loop without touching the timer.
type Event int

const (
	EventTick Event = iota
	EventToggle
)

func (e Event) String() string {
	switch e {
	case EventTick:
		return "tick"
	case EventToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

type transitionKey struct {
	from  model.Status
	event Event
}

// transitions is keyed by (status, event). Pairs that are absent, including
// everything out of Finished, are no-ops.
var transitions = map[transitionKey]func(*Timer) model.Status{
	{model.Running, EventTick}:   (*Timer).decrement,
	{model.Running, EventToggle}: func(*Timer) model.Status { return model.Paused },
	{model.Paused, EventTick}:    func(*Timer) model.Status { return model.Paused },
	{model.Paused, EventToggle}:  func(*Timer) model.Status { return model.Running },
}

// Timer is the remaining-seconds count and its run status.
type Timer struct {
	remaining int
	status    model.Status
}

// New creates a running timer, or a finished one when initialSeconds <= 0.
func New(initialSeconds int) *Timer {
	t := &Timer{remaining: max(initialSeconds, 0), status: model.Running}
	if t.remaining == 0 {
		t.status = model.Finished
	}
	return t
}

// Apply runs one event through the transition table and reports the
// resulting status and whether it changed.
func (t *Timer) Apply(ev Event) (model.Status, bool) {
	fn, ok := transitions[transitionKey{t.status, ev}]
	if !ok {
		return t.status, false
	}
	prev := t.status
	t.status = fn(t)
	return t.status, t.status != prev
}

// Tick applies EventTick.
func (t *Timer) Tick() (model.Status, bool) { return t.Apply(EventTick) }

// Toggle applies EventToggle.
func (t *Timer) Toggle() (model.Status, bool) { return t.Apply(EventToggle) }

func (t *Timer) decrement() model.Status {
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		return model.Finished
	}
	return model.Running
}

func (t *Timer) Remaining() int       { return t.remaining }
func (t *Timer) Status() model.Status { return t.status }
func (t *Timer) Done() bool           { return t.status == model.Finished }
