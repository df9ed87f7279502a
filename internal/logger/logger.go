package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel defines log severity levels
type LogLevel int

const (
	// Log levels from least to most restrictive
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// levelTags holds the prefix and its color for each printable level.
var levelTags = map[LogLevel]struct {
	name  string
	paint func(format string, a ...interface{}) string
}{
	LevelDebug: {"DEBUG", color.CyanString},
	LevelInfo:  {"INFO", color.BlueString},
	LevelWarn:  {"WARN", color.YellowString},
	LevelError: {"ERROR", color.RedString},
}

// Logger writes levelled diagnostics, one line per message.
type Logger struct {
	mu          sync.Mutex
	out         io.Writer
	useColors   bool
	level       LogLevel
	now         func() time.Time
	VerboseMode bool // Mirrors level == LevelDebug
}

// New creates a new Logger with the given settings
func New(out io.Writer, verbose bool, useColors bool) *Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}

	return &Logger{
		out:         out,
		useColors:   useColors,
		level:       level,
		now:         time.Now,
		VerboseMode: verbose,
	}
}

// WithLevel sets the log level and returns the logger
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.level = level
	l.VerboseMode = level <= LevelDebug
	return l
}

// SetLevel sets the log level from its name
func (l *Logger) SetLevel(levelStr string) {
	l.WithLevel(ParseLevel(levelStr))
}

// Level returns the current threshold.
func (l *Logger) Level() LogLevel { return l.level }

// ParseLevel converts a level name to LogLevel; unknown names map to LevelInfo
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	tag := levelTags[level]
	prefix := tag.name
	if l.useColors {
		prefix = tag.paint(prefix)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s %s] %s\n", l.now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}

// Debug logs a debug message if verbose mode is enabled
func (l *Logger) Debug(format string, args ...interface{}) { l.logf(LevelDebug, format, args...) }

// Info logs an informational message (standard level)
func (l *Logger) Info(format string, args ...interface{}) { l.logf(LevelInfo, format, args...) }

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) { l.logf(LevelWarn, format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) { l.logf(LevelError, format, args...) }
