// Package logging writes the datepop log: plain error lines and, when
// tracing is on, one JSON object per picker event. All entries of a run
// share a run id and carry a sequence number so a session can be replayed
// from a log shared by several invocations.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "datepop.log"

type sink struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	trace   bool
	seq     uint64
	runID   string
	errors  *log.Logger
	encoder *json.Encoder
}

var std = &sink{
	path:  defaultLogFile,
	runID: fmt.Sprintf("%d-%d", os.Getpid(), time.Now().UnixNano()),
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Run     string      `json:"run"`
	Seq     uint64      `json:"seq"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Error appends err to the log as a plain line.
func Error(err error) {
	if err == nil {
		return
	}
	std.mu.Lock()
	defer std.mu.Unlock()
	if !std.ensureOpen() {
		return
	}
	std.errors.Printf("[%s] %v", std.runID, err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	std.mu.Lock()
	std.trace = enabled
	std.mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.trace
}

// Trace appends a JSON entry when tracing is enabled.
func Trace(event string, payload interface{}) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if !std.trace || !std.ensureOpen() {
		return
	}
	std.seq++
	entry := traceEntry{
		Time:    time.Now().UTC(),
		Run:     std.runID,
		Seq:     std.seq,
		Event:   event,
		Payload: payload,
	}
	if err := std.encoder.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination, closing any file already open. Blank
// paths fall back to the default; missing directories are created.
func Configure(path string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.closeLocked()
	std.path = defaultLogFile
	if strings.TrimSpace(path) == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		return
	}
	std.path = path
}

// Path returns the current log destination.
func Path() string {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.path
}

// Close flushes and releases the log file. Later writes reopen it.
func Close() {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.closeLocked()
}

// ensureOpen opens the log lazily so runs without errors or tracing never
// create the file. Callers hold mu.
func (s *sink) ensureOpen() bool {
	if s.file != nil {
		return true
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return false
	}
	s.file = f
	s.errors = log.New(f, "", log.LstdFlags)
	s.encoder = json.NewEncoder(f)
	return true
}

func (s *sink) closeLocked() {
	if s.file == nil {
		return
	}
	if err := s.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log failed: %v\n", err)
	}
	s.file, s.errors, s.encoder = nil, nil, nil
}
