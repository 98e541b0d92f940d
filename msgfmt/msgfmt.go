package msgfmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// InterpolationError reports a template that cannot be interpolated:
// either a placeholder is malformed or it references a parameter index
// that was not supplied. It is always surfaced to the caller; partial
// output is never produced.
type InterpolationError struct {
	Template string
	// Pos is the byte offset of the offending '{' in the template.
	Pos int
	// Index is the referenced parameter index, or -1 for a malformed
	// placeholder.
	Index  int
	Reason string
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("msgfmt: %s at offset %d in %q", e.Reason, e.Pos, e.Template)
}

// Format substitutes positional placeholders ({0}, {1}, ...) in the
// template with the given parameters. Numeric parameters are rendered
// with the decimal and grouping separators of the given locale; strings
// pass through unchanged; errors render their Error() text.
//
// A placeholder index outside the parameter range and a '{' that is not
// followed by decimal digits and '}' both return an *InterpolationError.
// A template without any '{' is returned verbatim.
func Format(loc language.Tag, template string, params []any) (string, error) {
	if !strings.ContainsRune(template, '{') {
		return template, nil
	}

	p := message.NewPrinter(loc)
	var b strings.Builder
	b.Grow(len(template) + 16)

	for i := 0; i < len(template); {
		c := template[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}

		j := i + 1
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			j++
		}
		if j == i+1 || j == len(template) || template[j] != '}' {
			return "", &InterpolationError{
				Template: template,
				Pos:      i,
				Index:    -1,
				Reason:   "malformed placeholder",
			}
		}

		idx := 0
		for _, d := range template[i+1 : j] {
			idx = idx*10 + int(d-'0')
		}
		if idx >= len(params) {
			return "", &InterpolationError{
				Template: template,
				Pos:      i,
				Index:    idx,
				Reason:   fmt.Sprintf("placeholder index %d out of range (%d parameters)", idx, len(params)),
			}
		}

		b.WriteString(render(p, params[idx]))
		i = j + 1
	}

	return b.String(), nil
}

// render converts one parameter to display text. Numbers go through the
// locale-aware printer; everything else keeps fmt semantics.
func render(p *message.Printer, v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return p.Sprint(number.Decimal(x))
	default:
		return fmt.Sprint(v)
	}
}
