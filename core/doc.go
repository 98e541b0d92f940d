// Package core defines the shared types consumed by the formatters.
//
// Record represents one log event: a timestamp, a severity level, the
// originating class and method, a message template with positional
// parameters, and an optional thrown error. Records are caller-owned
// values; the formatters never retain or mutate them.
//
// Level follows the java.util.logging severity ladder (FINEST through
// SEVERE, including CONFIG) rather than the debug/info/warn/error
// ladder common in Go, because the rendered output assigns each of
// those levels a fixed two-character symbol.
//
// WithStack attaches a captured call stack to an arbitrary error so
// that a formatter can render a real trace for it.
package core
