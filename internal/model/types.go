package model

import (
	"fmt"
	"time"
)

// Status is the run state of a countdown.
type Status int

const (
	Running Status = iota
	Paused
	Finished
)

var statusNames = [...]string{
	Running:  "Running",
	Paused:   "Paused",
	Finished: "Finished",
}

func (s Status) String() string {
	if s < Running || s > Finished {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText encodes the status by name so journals and summaries stay readable.
func (s Status) MarshalText() ([]byte, error) {
	if s < Running || s > Finished {
		return nil, fmt.Errorf("model: unknown status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("model: unknown status %q", string(text))
}

// TimerConfig is the startup input of a countdown.
type TimerConfig struct {
	Goal           string
	InitialSeconds int
}

// Span is the time spent in one status, formatted as "<secs>.<tenths>".
type Span struct {
	State    Status `json:"state" yaml:"state"`
	Duration string `json:"duration" yaml:"duration"`
}

// Session summarizes one run of the timer from start to quit.
type Session struct {
	Goal             string    `json:"title" yaml:"title"`
	PlannedSeconds   int       `json:"planned_seconds" yaml:"planned_seconds"`
	RemainingSeconds int       `json:"remaining_seconds" yaml:"remaining_seconds"`
	Completed        bool      `json:"completed" yaml:"completed"`
	Started          time.Time `json:"started" yaml:"started"`
	Ended            time.Time `json:"ended" yaml:"ended"`
	Spans            []Span    `json:"events" yaml:"events"`
}
