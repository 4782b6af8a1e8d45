package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	// Default logger instance
	logger *log.Logger

	// Initialize logger once
	initLoggerOnce sync.Once
)

// InitLogger initializes the default logger
func InitLogger() {
	initLoggerOnce.Do(func() {
		// stdout is reserved for command results
		logger = log.New(os.Stderr)
		logger.SetLevel(log.InfoLevel)
	})
}

// ensureInitialized ensures the logger is initialized before use
func ensureInitialized() {
	InitLogger()
}

// SetLevel sets the logging level
func SetLevel(level log.Level) {
	ensureInitialized()
	logger.SetLevel(level)
}

// SetLevelName sets the logging level from its name (debug, info, warn, error, fatal)
func SetLevelName(name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	SetLevel(level)
	return nil
}

// SetDebug enables debug logging
func SetDebug(debug bool) {
	ensureInitialized()
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// GetLevel returns the current logging level
func GetLevel() log.Level {
	ensureInitialized()
	return logger.GetLevel()
}

// Info logs an info message
func Info(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Info(msg, keyvals...)
}

// Debug logs a debug message
func Debug(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Debug(msg, keyvals...)
}

// Error logs an error message
func Error(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Error(msg, keyvals...)
}

// Warn logs a warning message
func Warn(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Warn(msg, keyvals...)
}

// With returns a new logger with additional context
func With(keyvals ...any) *log.Logger {
	ensureInitialized()
	return logger.With(keyvals...)
}

// SetOutput redirects logging output
func SetOutput(w io.Writer) {
	ensureInitialized()
	logger.SetOutput(w)
}

// Disable completely disables logging output
func Disable() {
	SetOutput(io.Discard)
}

// Enable re-enables logging output to stderr
func Enable() {
	SetOutput(os.Stderr)
}
