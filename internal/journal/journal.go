package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tinytelemetry/pomo/internal/model"
)

const (
	defaultFileMode = 0644
	defaultDirMode  = 0755
)

type entry struct {
	Seq     uint64        `json:"seq"`
	Session model.Session `json:"session"`
}

// Journal is an append-only history of finished sessions.
// It stores one JSON entry per line.
type Journal struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	nextSeq uint64
}

// Open creates or opens a journal at path. A partially written trailing line
// from an interrupted write is terminated so later entries stay parseable.
func Open(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("journal: path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return nil, fmt.Errorf("journal: mkdir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, defaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}

	maxSeq, partial, err := scan(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if partial {
		if _, err := f.Write([]byte{'\n'}); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("journal: terminate partial line: %w", err)
		}
	}

	return &Journal{
		path:    path,
		file:    f,
		nextSeq: maxSeq + 1,
	}, nil
}

// Append persists one session and returns its sequence number.
func (j *Journal) Append(s *model.Session) (uint64, error) {
	if s == nil {
		return 0, errors.New("journal: nil session")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return 0, errors.New("journal: closed")
	}

	seq := j.nextSeq
	j.nextSeq++

	e := entry{
		Seq:     seq,
		Session: cloneSession(s),
	}
	line, err := json.Marshal(e)
	if err != nil {
		return 0, fmt.Errorf("journal: marshal entry: %w", err)
	}
	line = append(line, '\n')

	if _, err := j.file.Write(line); err != nil {
		return 0, fmt.Errorf("journal: write entry: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return 0, fmt.Errorf("journal: sync entry: %w", err)
	}
	return seq, nil
}

// Close closes the underlying journal file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}

// Read returns the sessions in path that started at or after since, in the
// order they were written. A missing journal is empty.
func Read(path string, since time.Time) ([]model.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Session{}, nil
		}
		return nil, fmt.Errorf("journal: open for read: %w", err)
	}
	defer f.Close()

	sessions := []model.Session{}
	err = each(f, func(e entry) {
		if !e.Session.Started.Before(since) {
			sessions = append(sessions, e.Session)
		}
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// scan finds the highest sequence number and whether the file ends with a
// partial line.
func scan(f *os.File) (maxSeq uint64, partial bool, err error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, false, fmt.Errorf("journal: seek: %w", err)
	}
	reader := bufio.NewReader(f)
	for {
		line, rerr := reader.ReadBytes('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return 0, false, fmt.Errorf("journal: scan read: %w", rerr)
		}
		if len(line) > 0 && !strings.HasSuffix(string(line), "\n") {
			partial = true
		} else if len(line) > 0 {
			var e entry
			if json.Unmarshal(line, &e) == nil && e.Seq > maxSeq {
				maxSeq = e.Seq
			}
		}
		if errors.Is(rerr, io.EOF) {
			return maxSeq, partial, nil
		}
	}
}

func each(r io.Reader, fn func(entry)) error {
	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("journal: read: %w", err)
		}
		if len(line) == 0 {
			if errors.Is(err, io.EOF) {
				return nil
			}
			continue
		}
		lineNo++
		if !strings.HasSuffix(string(line), "\n") {
			// Ignore a potentially partial trailing line.
			return nil
		}

		var e entry
		if uerr := json.Unmarshal(line, &e); uerr != nil {
			if strings.TrimSpace(string(line)) != "" {
				log.Printf("journal: skipping malformed line %d: %v", lineNo, uerr)
			}
		} else {
			fn(e)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func cloneSession(s *model.Session) model.Session {
	out := *s
	out.Spans = append([]model.Span(nil), s.Spans...)
	return out
}
