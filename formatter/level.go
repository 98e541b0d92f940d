package formatter

import "github.com/entrusc/log-formatters/core"

// fixed level symbols, one two-character glyph per severity:
//
//	.. FINEST
//	.- FINER
//	-- FINE
//	:: INFO
//	!? WARNING
//	!! SEVERE
var levelSymbols = [...]string{
	core.FinestLevel:  "..",
	core.FinerLevel:   ".-",
	core.FineLevel:    "--",
	core.InfoLevel:    "::",
	core.WarningLevel: "!?",
	core.SevereLevel:  "!!",
}

const unknownSymbol = "??"

// Symbol returns the two-character glyph for the given level. Levels
// without a glyph of their own, CONFIG included, render the placeholder
// "??" rather than an empty symbol.
func Symbol(l core.Level) string {
	if l >= 0 && int(l) < len(levelSymbols) && levelSymbols[l] != "" {
		return levelSymbols[l]
	}
	return unknownSymbol
}
