// Package msgfmt implements positional message-template interpolation.
//
// Templates reference parameters by decimal index: "moved {0} to {1}".
// Indices may repeat and may appear in any order. Interpolation never
// produces partial output: a malformed placeholder or an out-of-range
// index returns an *InterpolationError and an empty string.
//
// Rendering is locale-aware. Numeric parameters are formatted with
// golang.org/x/text, so "{0}" with the value 1234.5 renders as
// "1,234.5" under English and "1.234,5" under German.
package msgfmt
