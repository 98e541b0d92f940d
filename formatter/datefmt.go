package formatter

import (
	"time"

	strftime "github.com/ncruces/go-strftime"
)

// Style selects one of the preset date or time renderings used by the
// style-based constructor.
type Style int8

const (
	StyleShort Style = iota
	StyleMedium
	StyleLong
	StyleFull
)

var dateLayouts = [...]string{
	StyleShort:  "1/2/06",
	StyleMedium: "Jan 2, 2006",
	StyleLong:   "January 2, 2006",
	StyleFull:   "Monday, January 2, 2006",
}

var timeLayouts = [...]string{
	StyleShort:  "3:04 PM",
	StyleMedium: "3:04:05 PM",
	StyleLong:   "3:04:05 PM MST",
	StyleFull:   "3:04:05 PM MST",
}

// timestamper renders a record timestamp to text. Either an explicit
// strftime pattern or a preset layout is used; both are stateless, so a
// timestamper is safe for concurrent use.
type timestamper struct {
	pattern string // strftime pattern; takes precedence when non-empty
	layout  string
}

func styleTimestamper(dateStyle, timeStyle Style) timestamper {
	return timestamper{
		layout: dateLayouts[clampStyle(dateStyle)] + " " + timeLayouts[clampStyle(timeStyle)],
	}
}

func patternTimestamper(pattern string) timestamper {
	return timestamper{pattern: pattern}
}

func clampStyle(s Style) Style {
	if s < StyleShort || s > StyleFull {
		return StyleMedium
	}
	return s
}

func (t timestamper) format(at time.Time) string {
	if t.pattern != "" {
		return strftime.Format(t.pattern, at)
	}
	return at.Format(t.layout)
}
