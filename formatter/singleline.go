package formatter

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/entrusc/log-formatters/core"
	"github.com/entrusc/log-formatters/msgfmt"
)

// SingleLineFormatter renders every record as exactly one line:
//
//	08:17:12 d.a.b.SomeClass.doSth()                             :: some info text
//
// The origin column abbreviates every package segment of the source
// class to its first character and is padded to a minimum width of 50
// characters; longer signatures overflow instead of being truncated.
// Two spaces separate the origin column from the level symbol, one
// space separates the symbol from the message.
//
// A formatter instance holds only immutable configuration and may be
// shared across goroutines.
type SingleLineFormatter struct {
	locale  language.Tag
	printer *message.Printer
	stamp   timestamper
}

// NewSingleLineFormatter creates a formatter with preset date and time
// styles, composing its output for the given locale.
func NewSingleLineFormatter(dateStyle, timeStyle Style, loc language.Tag) *SingleLineFormatter {
	return &SingleLineFormatter{
		locale:  loc,
		printer: message.NewPrinter(loc),
		stamp:   styleTimestamper(dateStyle, timeStyle),
	}
}

// NewSingleLinePatternFormatter creates a formatter whose timestamps
// are rendered with an explicit strftime pattern, e.g. "%H:%M:%S".
func NewSingleLinePatternFormatter(pattern string, loc language.Tag) *SingleLineFormatter {
	return &SingleLineFormatter{
		locale:  loc,
		printer: message.NewPrinter(loc),
		stamp:   patternTimestamper(pattern),
	}
}

// Format formats a record as a single newline-terminated line.
func (f *SingleLineFormatter) Format(r *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.formatToBuffer(r, buf); err != nil {
		return nil, err
	}

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer. The
// line is assembled completely before anything is written, so an
// interpolation failure leaves the writer untouched.
func (f *SingleLineFormatter) FormatTo(r *core.Record, w io.Writer) error {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.formatToBuffer(r, buf); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// FormatString is a convenience wrapper for callers that want the
// rendered line as a string.
func (f *SingleLineFormatter) FormatString(r *core.Record) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.formatToBuffer(r, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (f *SingleLineFormatter) formatToBuffer(r *core.Record, buf *bytes.Buffer) error {
	msg := r.Message
	if len(r.Parameters) > 0 {
		interpolated, err := msgfmt.Format(f.locale, r.Message, r.Parameters)
		if err != nil {
			return err
		}
		msg = interpolated
	}
	if msg == "" && r.Thrown != nil {
		msg = r.Thrown.Error()
	}
	if r.Thrown != nil {
		msg += "\n" + renderStack(r.Thrown)
	}

	_, err := f.printer.Fprintf(buf, "%s %-50s  %s %s\n",
		f.stamp.format(r.Time),
		signature(r.SourceClass, r.SourceMethod),
		Symbol(r.Level),
		msg)
	return err
}

// signature builds the abbreviated origin descriptor, e.g.
// "c.e.Foo.doSth()". Missing class or method information degrades to a
// partial signature rather than failing.
func signature(class, method string) string {
	var b strings.Builder
	if class != "" {
		b.WriteString(abbreviateClassName(class))
	}
	if method != "" {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(method)
	}
	b.WriteString("()")
	return b.String()
}

// abbreviateClassName shortens every dotted segment except the last to
// its first character: "com.example.Foo" becomes "c.e.Foo".
func abbreviateClassName(name string) string {
	parts := strings.Split(name, ".")
	var b strings.Builder
	b.Grow(2*len(parts) + len(parts[len(parts)-1]))
	for i, part := range parts {
		if i > 0 {
			b.WriteByte('.')
		}
		if i < len(parts)-1 && part != "" {
			_, size := utf8.DecodeRuneInString(part)
			part = part[:size]
		}
		b.WriteString(part)
	}
	return b.String()
}
