package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/pomo/internal/journal"
	"github.com/tinytelemetry/pomo/internal/model"
)

// writeSummary prints the finished session in the configured format.
func writeSummary(w io.Writer, format string, s *model.Session) error {
	switch format {
	case "none":
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
}

// saveHistory appends the session to the history journal. Failure is reported
// but does not fail the run: the timer itself completed.
func saveHistory(path string, s *model.Session) {
	if path == "" {
		return
	}
	j, err := journal.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
		return
	}
	defer j.Close()

	seq, err := j.Append(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
		return
	}
	log.Printf("history: saved session %d to %s", seq, path)
}
