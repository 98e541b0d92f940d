package core

import "time"

// Record represents a single log event handed to a formatter. It is
// owned by the caller and treated as immutable while being formatted.
type Record struct {
	Time  time.Time
	Level Level

	// SourceClass is the fully qualified dotted name of the origin
	// ("com.example.Foo"). May be empty when the caller has no origin
	// information.
	SourceClass string
	// SourceMethod is the originating method or function name. May be
	// empty.
	SourceMethod string

	// Message is the message template. It may contain positional
	// placeholders ({0}, {1}, ...) that are filled from Parameters.
	Message string
	// Parameters holds the positional placeholder values. A nil or
	// empty slice means the message is used verbatim.
	Parameters []any

	// Thrown is an optional error attached to the record. Errors that
	// carry a captured stack (see WithStack) render a full trace.
	Thrown error
}

// NewRecordAt builds a Record stamped with the given epoch
// milliseconds. Callers bridging from frameworks that carry millisecond
// timestamps can use this instead of converting at every call site.
func NewRecordAt(millis int64, level Level, message string) *Record {
	return &Record{
		Time:    time.UnixMilli(millis).UTC(),
		Level:   level,
		Message: message,
	}
}
