// Package log provides structured event logging.
// This file appends JSON events to diagnostics.jsonl.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Event type constants.
const (
	EventAnalysisStarted  = "analysis_started"
	EventAnalysisComplete = "analysis_complete"
	EventAnalysisFailed   = "analysis_failed"
	EventExportBlocked    = "export_blocked"
	EventExported         = "exported"
	EventThemeToggled     = "theme_toggled"
	EventServeStarted     = "serve_started"
)

// Failure cause constants, recorded on analysis_failed events. The user
// sees a single message; the distinct cause lives only here.
const (
	CauseTransport = "transport"
	CauseRemote    = "remote"
	CauseMalformed = "malformed"
)

// Event represents a single structured event written to the log.
type Event struct {
	Time      time.Time `json:"time"`
	Event     string    `json:"event"`
	RequestID string    `json:"request_id,omitempty"`
	Filename  string    `json:"filename,omitempty"`
	Floors    int       `json:"floors,omitempty"`
	Tier      string    `json:"tier,omitempty"`
	Cause     string    `json:"cause,omitempty"`
	Status    int       `json:"status,omitempty"`
	Error     string    `json:"error,omitempty"`
	Document  string    `json:"document,omitempty"`
	Theme     string    `json:"theme,omitempty"`
	Addr      string    `json:"addr,omitempty"`
}

// Logger writes append-only JSONL events through a size-rotated file.
type Logger struct {
	out io.Writer
	mu  sync.Mutex
}

// NewLogger creates a Logger that writes to diagnostics.jsonl inside dir.
// Rotation keeps the log bounded; old segments are discarded after a week.
func NewLogger(dir string) *Logger {
	return &Logger{
		out: &lumberjack.Logger{
			Filename:   filepath.Join(dir, "diagnostics.jsonl"),
			MaxSize:    5, // MB
			MaxBackups: 2,
			MaxAge:     7, // days
		},
	}
}

// NewWriterLogger creates a Logger writing to an arbitrary writer.
// Used by tests.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Append writes a single Event as one JSON line.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
// Thread-safe via mutex.
func (l *Logger) Append(event Event) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}
