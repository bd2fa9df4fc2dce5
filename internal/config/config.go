package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ActiveKey is the top-level document key naming the active profile
const ActiveKey = "active"

// Config holds every profile plus the name of the active one.
// Active is not required to name an existing profile; see ActiveProfile.
type Config struct {
	active   string
	profiles map[string]*Profile
}

// NewConfig creates an empty config
func NewConfig() *Config {
	return &Config{profiles: make(map[string]*Profile)}
}

// Active returns the active profile name and whether one is set
func (c *Config) Active() (string, bool) {
	return c.active, c.active != ""
}

// SetActive selects name as the active profile
func (c *Config) SetActive(name string) error {
	if _, ok := c.profiles[name]; !ok {
		return fmt.Errorf("profile '%s': %w", name, ErrNotFound)
	}
	c.active = name
	return nil
}

// ClearActive unsets the active profile
func (c *Config) ClearActive() {
	c.active = ""
}

// ActiveProfile resolves the active profile
func (c *Config) ActiveProfile() (*Profile, error) {
	if c.active == "" {
		return nil, fmt.Errorf("active profile: %w", ErrNotFound)
	}
	p, ok := c.profiles[c.active]
	if !ok {
		return nil, fmt.Errorf("active profile '%s': %w", c.active, ErrNotFound)
	}
	return p, nil
}

// Profile returns the profile called name
func (c *Config) Profile(name string) (*Profile, error) {
	p, ok := c.profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile '%s': %w", name, ErrNotFound)
	}
	return p, nil
}

// Has reports whether a profile called name exists
func (c *Config) Has(name string) bool {
	_, ok := c.profiles[name]
	return ok
}

// Insert adds p, discarding any existing profile with the same name
func (c *Config) Insert(p *Profile) {
	c.profiles[p.Name()] = p
}

// Remove deletes the named profile and clears active if it pointed there
func (c *Config) Remove(name string) bool {
	if _, ok := c.profiles[name]; !ok {
		return false
	}
	delete(c.profiles, name)
	if c.active == name {
		c.active = ""
	}
	return true
}

// Names returns profile names sorted
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns profiles sorted by name
func (c *Config) Profiles() []*Profile {
	out := make([]*Profile, 0, len(c.profiles))
	for _, name := range c.Names() {
		out = append(out, c.profiles[name])
	}
	return out
}

// Len returns the number of profiles
func (c *Config) Len() int {
	return len(c.profiles)
}

// Document renders the whole config in the persisted format.
// Parse(Document()) yields the same config.
func (c *Config) Document() string {
	var sections []string
	if c.active != "" {
		sections = append(sections, ActiveKey+" = "+quoteBasic(c.active)+"\n")
	}
	for _, p := range c.Profiles() {
		sections = append(sections, p.Document())
	}
	return strings.Join(sections, "\n")
}

// Parse decodes a TOML document into a Config
func Parse(data []byte) (*Config, error) {
	var tree map[string]any
	if _, err := toml.Decode(string(data), &tree); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return FromTree(tree)
}

// FromTree builds a Config from a decoded document tree.
// Top-level tables become profiles; other top-level values besides
// "active" are ignored.
func FromTree(root any) (*Config, error) {
	table, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root: %w", ErrNotTable)
	}

	cfg := NewConfig()
	for _, name := range sortedKeys(table) {
		value := table[name]
		if name == ActiveKey {
			active, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("'%s' must be a string, got %T: %w", ActiveKey, value, ErrNotTable)
			}
			cfg.active = active
			continue
		}

		sub, ok := value.(map[string]any)
		if !ok {
			continue
		}
		p, err := NewProfile(name)
		if err != nil {
			return nil, err
		}
		if err := flatten(p, sub); err != nil {
			return nil, fmt.Errorf("profile '%s': %w", name, err)
		}
		cfg.Insert(p)
	}
	return cfg, nil
}

type pending struct {
	key   string
	value any
}

// flatten walks table with an explicit stack, storing every leaf under its
// dotted path. Children are pushed in reverse order so keys pop sorted.
func flatten(p *Profile, table map[string]any) error {
	var stack []pending
	push := func(prefix string, t map[string]any) {
		keys := sortedKeys(t)
		for i := len(keys) - 1; i >= 0; i-- {
			key := keys[i]
			if prefix != "" {
				key = prefix + "." + key
			}
			stack = append(stack, pending{key: key, value: t[keys[i]]})
		}
	}
	push("", table)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if sub, ok := top.value.(map[string]any); ok {
			push(top.key, sub)
			continue
		}
		v, err := classify(top.value)
		if err != nil {
			return fmt.Errorf("key '%s': %w", top.key, err)
		}
		p.Set(top.key, v)
	}
	return nil
}

func classify(raw any) (Value, error) {
	switch v := raw.(type) {
	case bool:
		return Boolean(v), nil
	case int64:
		return Integer(v), nil
	case int:
		return Integer(int64(v)), nil
	case string:
		return String(v), nil
	case []any:
		colors := make([]Color, 0, len(v))
		for _, elem := range v {
			c, err := classifyColor(elem)
			if err != nil {
				return Value{}, err
			}
			colors = append(colors, c)
		}
		return ColorArray(colors...), nil
	case []map[string]any:
		return Value{}, fmt.Errorf("array of tables (non-color arrays are not representable): %w", ErrUnsupportedValue)
	default:
		return Value{}, fmt.Errorf("%T has no git representation: %w", raw, ErrUnsupportedValue)
	}
}

func classifyColor(raw any) (Color, error) {
	switch v := raw.(type) {
	case string:
		return ColorKeyword(v), nil
	case int:
		return classifyColor(int64(v))
	case int64:
		if v < 0 || v > 0xffffffff {
			return Color{}, fmt.Errorf("color %d out of range: %w", v, ErrUnsupportedValue)
		}
		return ColorNumber(uint32(v)), nil
	default:
		return Color{}, fmt.Errorf("array element of type %T (non-color arrays are not representable): %w", raw, ErrUnsupportedValue)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
