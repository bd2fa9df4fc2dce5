package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindString
	KindColorArray
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindColorArray:
		return "color array"
	default:
		return "unknown"
	}
}

// Value is a typed Git configuration value.
// Only the constructors below produce valid values; the zero Value is Boolean(false).
type Value struct {
	kind   Kind
	b      bool
	i      int64
	s      string
	colors []Color
}

// Boolean returns a boolean value
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// Integer returns an integer value
func Integer(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// String returns a string value
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// ColorArray returns a color list value. The slice is copied.
func ColorArray(colors ...Color) Value {
	return Value{kind: KindColorArray, colors: append([]Color(nil), colors...)}
}

// Kind returns the variant held by v
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload and whether v is a Boolean
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// Int returns the integer payload and whether v is an Integer
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// Str returns the string payload and whether v is a String
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Colors returns a copy of the color list and whether v is a ColorArray
func (v Value) Colors() ([]Color, bool) {
	if v.kind != KindColorArray {
		return nil, false
	}
	return append([]Color(nil), v.colors...), true
}

// Equal reports whether both values hold the same variant and payload
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.b == other.b
	case KindInteger:
		return v.i == other.i
	case KindString:
		return v.s == other.s
	case KindColorArray:
		if len(v.colors) != len(other.colors) {
			return false
		}
		for i := range v.colors {
			if v.colors[i] != other.colors[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Document renders v in the form written to the profiles file
func (v Value) Document() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return quoteDocument(v.s)
	case KindColorArray:
		parts := make([]string, len(v.colors))
		for i, c := range v.colors {
			parts[i] = c.Document()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	panic(fmt.Sprintf("config: unknown value kind %d", v.kind))
}

// Git renders v the way git expects it after "-c key=" or "git config key"
func (v Value) Git() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return v.s
	case KindColorArray:
		parts := make([]string, len(v.colors))
		for i, c := range v.colors {
			parts[i] = c.Git()
		}
		return strings.Join(parts, " ")
	}
	panic(fmt.Sprintf("config: unknown value kind %d", v.kind))
}

// Native returns the payload as a plain Go value (bool, int64, string or []any)
func (v Value) Native() any {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindInteger:
		return v.i
	case KindString:
		return v.s
	case KindColorArray:
		out := make([]any, len(v.colors))
		for i, c := range v.colors {
			out[i] = c.Native()
		}
		return out
	}
	return nil
}

func (v Value) String() string {
	return v.Document()
}

// ParseGitText classifies untyped text read back from git.
// Only the exact words "true" and "false" are booleans, so "1" or "yes" stay
// integers and strings. Color arrays are never produced: git's flat output
// does not say which keys hold color lists.
func ParseGitText(text string) Value {
	switch text {
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Integer(i)
	}
	return String(text)
}

// ParseGitColors reads git's color syntax ("bold red", "#ff0000 196") into
// a ColorArray. Decimal numbers and #hex become numbers, anything else a
// keyword.
func ParseGitColors(text string) (Value, error) {
	words := strings.Fields(text)
	colors := make([]Color, 0, len(words))
	for _, w := range words {
		if strings.HasPrefix(w, "#") {
			n, err := strconv.ParseUint(w[1:], 16, 32)
			if err != nil {
				return Value{}, fmt.Errorf("invalid hex color %q: %w", w, ErrUnsupportedValue)
			}
			colors = append(colors, ColorNumber(uint32(n)))
			continue
		}
		if n, err := strconv.ParseUint(w, 10, 32); err == nil {
			colors = append(colors, ColorNumber(uint32(n)))
			continue
		}
		colors = append(colors, ColorKeyword(w))
	}
	return ColorArray(colors...), nil
}
