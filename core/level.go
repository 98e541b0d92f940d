package core

import "strings"

// Level represents the severity of a log record. The ladder follows
// the java.util.logging levels that the single-line output format was
// designed around.
type Level int8

const (
	// FinestLevel for highly detailed trace output
	FinestLevel Level = iota
	// FinerLevel for fairly detailed trace output
	FinerLevel
	// FineLevel for tracing information
	FineLevel
	// ConfigLevel for static configuration messages
	ConfigLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for potential problems
	WarningLevel
	// SevereLevel for serious failures
	SevereLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case FinestLevel:
		return "FINEST"
	case FinerLevel:
		return "FINER"
	case FineLevel:
		return "FINE"
	case ConfigLevel:
		return "CONFIG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case SevereLevel:
		return "SEVERE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "FINEST":
		return FinestLevel
	case "FINER":
		return FinerLevel
	case "FINE":
		return FineLevel
	case "CONFIG":
		return ConfigLevel
	case "INFO":
		return InfoLevel
	case "WARNING", "WARN":
		return WarningLevel
	case "SEVERE", "ERROR":
		return SevereLevel
	default:
		return InfoLevel
	}
}
