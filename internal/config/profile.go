package config

import (
	"errors"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Profile is a named set of git configuration keys.
// Two profiles are the same profile when their names match, whatever their fields.
type Profile struct {
	name   string
	fields *orderedmap.OrderedMap
}

// GitPair is a key with its value already rendered for git
type GitPair struct {
	Key   string
	Value string
}

// NewProfile creates an empty profile
func NewProfile(name string) (*Profile, error) {
	if name == "" {
		return nil, errors.New("profile name must not be empty")
	}
	return &Profile{name: name, fields: orderedmap.New()}, nil
}

// Name returns the profile name
func (p *Profile) Name() string {
	return p.name
}

// Set stores value under key, replacing any previous value in place
func (p *Profile) Set(key string, value Value) {
	p.fields.Set(key, value)
}

// Get returns the value stored under key
func (p *Profile) Get(key string) (Value, bool) {
	v, ok := p.fields.Get(key)
	if !ok {
		return Value{}, false
	}
	return v.(Value), true
}

// Delete removes key and reports whether it was present
func (p *Profile) Delete(key string) bool {
	if _, ok := p.fields.Get(key); !ok {
		return false
	}
	p.fields.Delete(key)
	return true
}

// Keys returns field keys in insertion order
func (p *Profile) Keys() []string {
	return append([]string(nil), p.fields.Keys()...)
}

// Len returns the number of fields
func (p *Profile) Len() int {
	return len(p.fields.Keys())
}

// Fields returns a copy of the fields as a plain map
func (p *Profile) Fields() map[string]Value {
	out := make(map[string]Value, p.Len())
	for _, k := range p.fields.Keys() {
		v, _ := p.fields.Get(k)
		out[k] = v.(Value)
	}
	return out
}

// Equal compares profiles by name only
func (p *Profile) Equal(other *Profile) bool {
	return p.name == other.name
}

// Less orders profiles by name
func (p *Profile) Less(other *Profile) bool {
	return p.name < other.name
}

// GitPairs returns every field rendered for git, in insertion order
func (p *Profile) GitPairs() []GitPair {
	pairs := make([]GitPair, 0, p.Len())
	for _, k := range p.fields.Keys() {
		v, _ := p.fields.Get(k)
		pairs = append(pairs, GitPair{Key: k, Value: v.(Value).Git()})
	}
	return pairs
}

// Document renders the profile as a table with one line per field
func (p *Profile) Document() string {
	var b strings.Builder
	b.WriteString("[" + quoteKey(p.name) + "]\n")
	keys := p.fields.Keys()
	nested := nestedKeys(keys)
	for _, k := range keys {
		v, _ := p.fields.Get(k)
		if nested[k] {
			b.WriteString(quoteBasic(k))
		} else {
			b.WriteString(renderKey(k))
		}
		b.WriteString(" = ")
		b.WriteString(v.(Value).Document())
		b.WriteByte('\n')
	}
	return b.String()
}

// nestedKeys returns the keys that extend another key by a dotted suffix,
// such as color.diff.meta next to color.diff. Rendered as dotted paths they
// would redefine the shorter key as a table, so they are written as one
// quoted key instead.
func nestedKeys(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	nested := make(map[string]bool)
	for _, k := range keys {
		for i := 0; i < len(k); i++ {
			if k[i] == '.' && set[k[:i]] {
				nested[k] = true
				break
			}
		}
	}
	return nested
}
