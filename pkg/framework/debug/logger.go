// Package debug provides logging for plugin modules.
//
// A plugin runs inside somebody else's process, usually without a console,
// so the default logger only reports warnings and errors to stderr. Module
// configuration (see pkg/framework/config) can raise the level or redirect
// output to a file.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
	// LogLevelOff disables all logging.
	LogLevelOff
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name as written by String. "silent" and
// "disabled" are accepted as aliases for "off".
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "off", "silent", "disabled":
		return LogLevelOff, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Logger wraps zerolog with subsystem-scoped child loggers.
type Logger struct {
	zl    zerolog.Logger
	level LogLevel
}

// New creates a logger writing JSON lines to w at the given level. If w is
// nil, output goes to stderr in console format.
func New(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(w).With().Timestamp().Logger().Level(level.zerolog())
	return &Logger{zl: zl, level: level}
}

// NewConsole creates a logger writing human-readable lines to w.
func NewConsole(w io.Writer, level LogLevel) *Logger {
	return New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}, level)
}

// NewFileLogger creates a logger that appends to a file. The caller owns the
// returned file and closes it when the logger is no longer used.
func NewFileLogger(filename string, level LogLevel, console bool) (*Logger, *os.File, error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if console {
		return NewConsole(file, level), file, nil
	}
	return New(file, level), file, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), level: LogLevelOff}
}

// Sub returns a child logger tagged with a subsystem name.
func (l *Logger) Sub(subsystem string) *Logger {
	return &Logger{zl: l.zl.With().Str("subsystem", subsystem).Logger(), level: l.level}
}

// Level returns the minimum level the logger writes.
func (l *Logger) Level() LogLevel {
	return l.level
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level != LogLevelOff && level >= l.level && l.level != LogLevelOff
}

// Debug logs at debug level.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }

// Info logs at info level.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Warn logs at warn level.
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error logs at error level.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Zerolog returns the underlying zerolog.Logger for advanced use.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

// Global logger

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(nil, LogLevelWarn))
}

// Default returns the default logger instance.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the default logger. Loggers already derived from the
// previous default with Sub keep writing to the old destination.
func SetDefault(l *Logger) {
	if l == nil {
		l = Nop()
	}
	defaultLogger.Store(l)
}

// Debug logs a debug message using the default logger.
func Debug() *zerolog.Event { return Default().Debug() }

// Info logs an informational message using the default logger.
func Info() *zerolog.Event { return Default().Info() }

// Warn logs a warning message using the default logger.
func Warn() *zerolog.Event { return Default().Warn() }

// Error logs an error message using the default logger.
func Error() *zerolog.Event { return Default().Error() }

// Conditional logging helpers. The returned event is nil (and discards
// everything) when the condition is false.

// DebugIf logs a debug message if the condition is true.
func DebugIf(condition bool) *zerolog.Event {
	if !condition {
		return nil
	}
	return Default().Debug()
}

// WarnIf logs a warning message if the condition is true.
func WarnIf(condition bool) *zerolog.Event {
	if !condition {
		return nil
	}
	return Default().Warn()
}

// ErrorIf logs an error message if the condition is true.
func ErrorIf(condition bool) *zerolog.Event {
	if !condition {
		return nil
	}
	return Default().Error()
}
