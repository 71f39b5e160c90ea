package logutil

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "PSFIND_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	debugEnabled           = false
	isStructured           = false
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// SetupLogger configures the global logger.
//
// Parameters:
//   - debug: when true, enables debug-level logging
//   - structured: when true, outputs JSON-formatted logs; otherwise text
//
// The logger writes to stderr. Safe for concurrent use.
func SetupLogger(debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	debugEnabled = debug
	isStructured = structured
	outputWriter = os.Stderr
	rebuild()
}

// SetOutput redirects the logger to the given writer, keeping the current
// level and format. Useful for tests. Safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	rebuild()
}

// rebuild recreates the global logger from current settings.
// Caller must hold mu.
func rebuild() {
	level := slog.LevelInfo
	if debugEnabled || os.Getenv(EnvDebug) == "true" {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// Logger returns the current global logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// IsDebugEnabled returns true if debug logging is enabled, either
// programmatically or via the PSFIND_DEBUG environment variable.
func IsDebugEnabled() bool {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	return enabled || os.Getenv(EnvDebug) == "true"
}

// Debug logs a debug message with optional key-value pairs.
//
// Example:
//
//	logutil.Debug("snapshot taken", "pids", len(pids))
func Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		Logger().Debug(msg, args...)
	}
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
