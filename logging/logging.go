package logging

import (
	"fmt"
	"log"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

var level = WarnLevel

// SetLevel sets the minimum criticality a message needs to be emitted
func SetLevel(l int) {
	level = l
}

// GetLevel returns the minimum criticality a message needs to be emitted
func GetLevel() int {
	return level
}

// Logf emits a formatted message through the standard logger, if lvl meets the package log level
func Logf(lvl int, format string, v ...interface{}) {
	if lvl < level {
		return
	}
	log.Printf("[%s] %s", LogLevelToString(lvl), fmt.Sprintf(format, v...))
}

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}
