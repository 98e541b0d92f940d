// Package formatter turns log records into single lines of text.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. The
// SingleLineFormatter implements both, plus FormatString for callers
// that want the rendered line as a string. It performs no I/O of its
// own; the logging pipeline that collects records and writes lines is
// an external collaborator.
//
// The rendered line is
//
//	<timestamp> <origin padded to 50 chars>  <symbol> <message>
//
// where the origin is the abbreviated source class plus method
// ("c.e.Foo.doSth()") and symbol is one of the two-character level
// glyphs:
//
//	.. FINEST
//	.- FINER
//	-- FINE
//	:: INFO
//	!? WARNING
//	!! SEVERE
//
// Formatting uses a pooled bytes.Buffer. Buffers larger than 64 KiB
// are not returned to the pool so a single huge stack trace cannot
// permanently inflate memory usage.
package formatter
