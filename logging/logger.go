// Package logging provides the leveled logger shared by the daemon. The
// tracker loop logs to a file so a TUI on the same terminal stays clean.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger wraps the standard log package with level filtering.
type Logger struct {
	level  Level
	logger *log.Logger
}

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// NewLogger creates a logger writing to the given file. An empty path falls
// back to stderr.
func NewLogger(levelStr, logFile string) *Logger {
	var out io.Writer = os.Stderr
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory for %s: %v, logging to stderr\n", logFile, err)
		}
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v, logging to stderr\n", logFile, err)
		} else {
			out = file
		}
	}

	return &Logger{
		level:  parseLevel(levelStr),
		logger: log.New(out, "", log.LstdFlags),
	}
}

func parseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level <= LevelDebug {
		l.logger.Printf("[DEBUG] "+format, args...)
	}
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level <= LevelInfo {
		l.logger.Printf("[INFO] "+format, args...)
	}
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.level <= LevelWarn {
		l.logger.Printf("[WARN] "+format, args...)
	}
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.level <= LevelError {
		l.logger.Printf("[ERROR] "+format, args...)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string) { l.Infof("%s", msg) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string) { l.Warnf("%s", msg) }

// Error logs an error message.
func (l *Logger) Error(msg string) { l.Errorf("%s", msg) }

// InitGlobalLogger initializes the process-wide logger. Subsequent calls are
// no-ops.
func InitGlobalLogger(level, logFile string) {
	loggerOnce.Do(func() {
		globalLogger = NewLogger(level, logFile)
	})
}

// GetGlobalLogger returns the process-wide logger, creating a stderr logger
// if InitGlobalLogger was never called.
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		InitGlobalLogger("info", "")
	}
	return globalLogger
}
