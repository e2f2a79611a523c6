// Package logging provides categorized file-based logging for neonmart.
// Logs are written to <stateDir>/logs/ with one file per category. Logging
// is off by default and enabled through config; when disabled every call is
// a silent no-op so the interactive UI never pays for it.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/system.
type Category string

const (
	CategoryBoot    Category = "boot"    // startup, shutdown
	CategoryCatalog Category = "catalog" // catalog load, query evaluation
	CategoryCart    Category = "cart"    // cart mutations
	CategoryStorage Category = "storage" // durable key-value operations
	CategoryRender  Category = "render"  // lifecycle phase transitions
	CategoryAuth    Category = "auth"    // session label changes
)

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex

	stateMu  sync.RWMutex
	logsDir  string
	enabled  bool
	logLevel = LevelInfo
)

// Initialize points the logging system at the state directory and enables or
// disables it. Called once at startup; before that (and when disabled) every
// logging call is a no-op.
func Initialize(stateDir string, on bool, level string) error {
	stateMu.Lock()
	enabled = on
	logsDir = filepath.Join(stateDir, "logs")
	switch level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}
	stateMu.Unlock()

	if !on {
		return nil
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	Get(CategoryBoot).Info("=== neonmart logging initialized ===")
	return nil
}

// IsEnabled reports whether logging is active.
func IsEnabled() bool {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return enabled
}

// Get returns (or creates) a logger for the given category. Returns a no-op
// logger if logging is disabled or the log file cannot be opened.
func Get(category Category) *Logger {
	if !IsEnabled() {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date prefix keeps rotation a matter of deleting old files.
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message (only if level <= debug).
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message (only if level <= info).
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning message (only if level <= warn).
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error message (always logged if the logger exists).
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes all open log files (call at shutdown).
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Convenience functions. No-ops when logging is disabled.

// Boot logs to the boot category.
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Info(format, args...)
}

// Catalog logs to the catalog category.
func Catalog(format string, args ...interface{}) {
	Get(CategoryCatalog).Info(format, args...)
}

// Cart logs to the cart category.
func Cart(format string, args ...interface{}) {
	Get(CategoryCart).Info(format, args...)
}

// CartWarn logs a warning to the cart category.
func CartWarn(format string, args ...interface{}) {
	Get(CategoryCart).Warn(format, args...)
}

// Storage logs to the storage category.
func Storage(format string, args ...interface{}) {
	Get(CategoryStorage).Info(format, args...)
}

// StorageWarn logs a warning to the storage category.
func StorageWarn(format string, args ...interface{}) {
	Get(CategoryStorage).Warn(format, args...)
}

// Render logs to the render category.
func Render(format string, args ...interface{}) {
	Get(CategoryRender).Info(format, args...)
}

// Auth logs to the auth category.
func Auth(format string, args ...interface{}) {
	Get(CategoryAuth).Info(format, args...)
}
