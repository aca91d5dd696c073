package logger

import (
	"fmt"
	"sync"
)

// Entry is a single captured log line.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// Recorder implements Logger and keeps every entry in memory. Intended for
// tests that assert on what a component logged.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) append(level, msg string, fields map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg, Fields: fields})
}

func (r *Recorder) Debugf(format string, args ...any) {
	r.append("debug", fmt.Sprintf(format, args...), nil)
}

func (r *Recorder) Debugw(msg string, fields map[string]any) {
	r.append("debug", msg, fields)
}

func (r *Recorder) Infof(format string, args ...any) {
	r.append("info", fmt.Sprintf(format, args...), nil)
}

func (r *Recorder) Warnf(format string, args ...any) {
	r.append("warn", fmt.Sprintf(format, args...), nil)
}

func (r *Recorder) Errorf(format string, args ...any) {
	r.append("error", fmt.Sprintf(format, args...), nil)
}

// Entries returns a copy of all captured entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
