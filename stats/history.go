// Package stats records finished runs and summarises the current session.
package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// Run is one game from first move to crash.
type Run struct {
	ID       string  `csv:"id"`
	Start    string  `csv:"start"`
	End      string  `csv:"end"`
	Duration float64 `csv:"duration_sec"`
	Score    int     `csv:"score"`
	Length   int     `csv:"length"`
	Cause    string  `csv:"cause"`
}

// NewRun fills in the timestamp columns from start and end.
func NewRun(id string, start, end time.Time, score, length int, cause string) Run {
	return Run{
		ID:       id,
		Start:    start.UTC().Format(time.RFC3339),
		End:      end.UTC().Format(time.RFC3339),
		Duration: end.Sub(start).Seconds(),
		Score:    score,
		Length:   length,
		Cause:    cause,
	}
}

// History appends runs to a CSV file. A nil *History discards everything.
type History struct {
	file          *os.File
	headerWritten bool
}

// OpenHistory opens path for appending. Returns nil if path is empty (history disabled).
func OpenHistory(path string) (*History, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat history: %w", err)
	}

	return &History{file: f, headerWritten: info.Size() > 0}, nil
}

func (h *History) Append(run Run) error {
	if h == nil {
		return nil
	}

	records := []Run{run}
	if !h.headerWritten {
		if err := gocsv.Marshal(records, h.file); err != nil {
			return fmt.Errorf("writing run: %w", err)
		}
		h.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, h.file); err != nil {
		return fmt.Errorf("writing run: %w", err)
	}
	return nil
}

func (h *History) Close() error {
	if h == nil {
		return nil
	}
	return h.file.Close()
}
