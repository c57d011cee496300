// Package session records how long a countdown spent in each status.
package session

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tinytelemetry/pomo/internal/model"
)

type event struct {
	status model.Status
	at     time.Time
}

// Recorder collects status changes for one run of the timer. It is owned by
// the event loop and is not safe for concurrent use.
type Recorder struct {
	clock     clockwork.Clock
	goal      string
	planned   int
	events    []event
	ended     time.Time
	remaining int
	finished  bool
}

// New creates a recorder. The caller records the initial status itself.
func New(clock clockwork.Clock, goal string, plannedSeconds int) *Recorder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Recorder{
		clock:     clock,
		goal:      goal,
		planned:   plannedSeconds,
		remaining: plannedSeconds,
	}
}

// Record notes a status if it differs from the last one recorded.
func (r *Recorder) Record(status model.Status) {
	if r.finished {
		return
	}
	if n := len(r.events); n > 0 && r.events[n-1].status == status {
		return
	}
	r.events = append(r.events, event{status: status, at: r.clock.Now()})
}

// Finish closes the last span. Calls after the first are ignored.
func (r *Recorder) Finish(remaining int) {
	if r.finished {
		return
	}
	r.finished = true
	r.remaining = remaining
	r.ended = r.clock.Now()
}

// Summary builds the session. Before Finish the open span runs up to now.
func (r *Recorder) Summary() model.Session {
	end := r.ended
	if !r.finished {
		end = r.clock.Now()
	}

	s := model.Session{
		Goal:             r.goal,
		PlannedSeconds:   r.planned,
		RemainingSeconds: r.remaining,
		Ended:            end,
		Spans:            []model.Span{},
	}
	if len(r.events) == 0 {
		s.Started = end
		return s
	}
	s.Started = r.events[0].at

	for i, ev := range r.events {
		next := end
		if i+1 < len(r.events) {
			next = r.events[i+1].at
		}
		s.Spans = append(s.Spans, model.Span{
			State:    ev.status,
			Duration: formatSpan(next.Sub(ev.at)),
		})
		if ev.status == model.Finished {
			s.Completed = true
		}
	}
	return s
}

func formatSpan(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	tenths := int64(d%time.Second) / int64(100*time.Millisecond)
	return fmt.Sprintf("%d.%d", secs, tenths)
}
