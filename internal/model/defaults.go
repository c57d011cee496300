package model

import "time"

// Shared defaults used by the CLI and the TUI.
const (
	DefaultTime          = "25:00"
	DefaultTickInterval  = time.Second
	DefaultSummaryFormat = "json"
)
