package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/pomo/internal/model"
)

func testSession() *model.Session {
	start := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	return &model.Session{
		Goal:           "review PR",
		PlannedSeconds: 1500,
		Completed:      true,
		Started:        start,
		Ended:          start.Add(26 * time.Minute),
		Spans: []model.Span{
			{State: model.Running, Duration: "1500.0"},
			{State: model.Finished, Duration: "60.0"},
		},
	}
}

func TestWriteSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSummary(&buf, "json", testSession()); err != nil {
		t.Fatalf("writeSummary: %v", err)
	}

	var got struct {
		Title  string `json:"title"`
		Events []struct {
			State    string `json:"state"`
			Duration string `json:"duration"`
		} `json:"events"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.Title != "review PR" || len(got.Events) != 2 || got.Events[1].State != "Finished" {
		t.Fatalf("decoded summary = %+v", got)
	}
}

func TestWriteSummaryYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSummary(&buf, "yaml", testSession()); err != nil {
		t.Fatalf("writeSummary: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if got["title"] != "review PR" {
		t.Fatalf("title = %v", got["title"])
	}
	if !strings.Contains(buf.String(), "state: Running") {
		t.Fatalf("status not encoded by name:\n%s", buf.String())
	}
}

func TestWriteSummaryNone(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSummary(&buf, "none", testSession()); err != nil {
		t.Fatalf("writeSummary: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output = %q, want empty", buf.String())
	}
}
