// Package logging provides a small leveled wrapper over the standard logger.
package logging

import (
	"log"
)

// Log level constants.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var currentLevel = LevelInfo

// SetLevel sets the global logging level. Unknown values fall back to info.
func SetLevel(level string) {
	switch level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		currentLevel = level
	default:
		currentLevel = LevelInfo
	}
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	if shouldLog(LevelDebug) {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Info logs an info message.
func Info(format string, args ...interface{}) {
	if shouldLog(LevelInfo) {
		log.Printf("[INFO] "+format, args...)
	}
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	if shouldLog(LevelWarn) {
		log.Printf("[WARN] "+format, args...)
	}
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	if shouldLog(LevelError) {
		log.Printf("[ERROR] "+format, args...)
	}
}

func shouldLog(level string) bool {
	return rank(level) >= rank(currentLevel)
}

func rank(level string) int {
	switch level {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return 1
	}
}
