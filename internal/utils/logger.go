// Package utils provides common utilities shared across packages
package utils

import (
	"fmt"
	"strings"
	"sync"
)

// Logger is the diagnostic sink used throughout the application.
// Non-fatal problems (unreadable ignore files, permission errors, bad patterns)
// are reported through it instead of being printed directly.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger is a logger implementation that does nothing
type NoopLogger struct{}

func (l NoopLogger) Debug(format string, args ...interface{}) {}
func (l NoopLogger) Info(format string, args ...interface{})  {}
func (l NoopLogger) Warn(format string, args ...interface{})  {}
func (l NoopLogger) Error(format string, args ...interface{}) {}

// Entry is a single message captured by MemoryLogger.
type Entry struct {
	Level   string
	Message string
}

// MemoryLogger keeps every message in memory. Tests use it to assert on
// diagnostics without capturing process output.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

func (l *MemoryLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *MemoryLogger) Debug(format string, args ...interface{}) { l.record("DEBUG", format, args...) }
func (l *MemoryLogger) Info(format string, args ...interface{})  { l.record("INFO", format, args...) }
func (l *MemoryLogger) Warn(format string, args ...interface{})  { l.record("WARN", format, args...) }
func (l *MemoryLogger) Error(format string, args ...interface{}) { l.record("ERROR", format, args...) }

// Entries returns a copy of the recorded messages.
func (l *MemoryLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the recorded messages of the given level.
func (l *MemoryLogger) Messages(level string) []string {
	var out []string
	for _, e := range l.Entries() {
		if strings.EqualFold(e.Level, level) {
			out = append(out, e.Message)
		}
	}
	return out
}
