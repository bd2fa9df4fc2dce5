package config

import (
	"strconv"
)

// Color is one element of a git color list: a palette index or 24-bit RGB
// value, or a keyword such as "red" or "bold".
type Color struct {
	isNumber bool
	number   uint32
	keyword  string
}

// ColorNumber returns a numeric color
func ColorNumber(n uint32) Color {
	return Color{isNumber: true, number: n}
}

// ColorKeyword returns a named color or attribute
func ColorKeyword(s string) Color {
	return Color{keyword: s}
}

// Number returns the numeric payload and whether c is numeric
func (c Color) Number() (uint32, bool) {
	return c.number, c.isNumber
}

// Keyword returns the keyword payload and whether c is a keyword
func (c Color) Keyword() (string, bool) {
	return c.keyword, !c.isNumber
}

// Document renders numbers below 256 as decimal and larger ones as 0x hex.
func (c Color) Document() string {
	if !c.isNumber {
		return quoteBasic(c.keyword)
	}
	if c.number < 256 {
		return strconv.FormatUint(uint64(c.number), 10)
	}
	return "0x" + strconv.FormatUint(uint64(c.number), 16)
}

// Git renders numbers below 256 as decimal and larger ones as #rrggbb-style hex.
func (c Color) Git() string {
	if !c.isNumber {
		return c.keyword
	}
	if c.number < 256 {
		return strconv.FormatUint(uint64(c.number), 10)
	}
	return "#" + strconv.FormatUint(uint64(c.number), 16)
}

// Native returns the payload as int64 or string
func (c Color) Native() any {
	if c.isNumber {
		return int64(c.number)
	}
	return c.keyword
}
