package config

import (
	"fmt"
	"strings"
)

// quoteDocument quotes s as a TOML basic string, switching to the
// multi-line form when s contains a newline.
func quoteDocument(s string) string {
	if !strings.Contains(s, "\n") {
		return quoteBasic(s)
	}
	// The newline right after the opening delimiter is trimmed by TOML
	// readers, so a leading newline in s survives.
	return `"""` + "\n" + escape(s, true) + `"""`
}

func quoteBasic(s string) string {
	return `"` + escape(s, false) + `"`
}

func escape(s string, multiline bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n' && multiline:
			b.WriteByte('\n')
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

func quoteKey(s string) string {
	if isBareKey(s) {
		return s
	}
	return quoteBasic(s)
}

// renderKey writes a dotted field key as a TOML key.
// Git keys are section[.subsection].name where only the subsection may
// contain dots, so three or more segments keep the middle together.
func renderKey(key string) string {
	first := strings.Index(key, ".")
	if first < 0 {
		return quoteKey(key)
	}
	last := strings.LastIndex(key, ".")
	if first == last {
		return quoteKey(key[:first]) + "." + quoteKey(key[last+1:])
	}
	return quoteKey(key[:first]) + "." + quoteKey(key[first+1:last]) + "." + quoteKey(key[last+1:])
}
