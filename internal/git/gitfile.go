package git

import (
	"fmt"
	"strings"

	"github.com/byterings/gid/internal/config"
	"gopkg.in/ini.v1"
)

// ReadConfigFile reads a gitconfig file without running git.
// Section and key names are lower-cased the way "git config --list" prints
// them; subsection names keep their case. Include directives are not
// followed, and for multi-valued keys every value is returned in order.
func ReadConfigFile(path string) ([]config.GitPair, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:          true,
		AllowShadows:              true,
		UnescapeValueDoubleQuotes: true,
		KeyValueDelimiters:        "=",
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse git config %s: %w", path, err)
	}

	var pairs []config.GitPair
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		prefix := sectionPrefix(section.Name())
		for _, key := range section.Keys() {
			name := prefix + "." + strings.ToLower(key.Name())
			for _, v := range key.ValueWithShadows() {
				pairs = append(pairs, config.GitPair{Key: name, Value: v})
			}
		}
	}
	return pairs, nil
}

// sectionPrefix maps `remote "origin"` to remote.origin and `core` to core
func sectionPrefix(raw string) string {
	name, sub, ok := strings.Cut(strings.TrimSpace(raw), " ")
	if !ok {
		// [section.subsection] is the deprecated spelling; only the section is case-folded
		section, rest, dotted := strings.Cut(name, ".")
		if dotted {
			return strings.ToLower(section) + "." + rest
		}
		return strings.ToLower(name)
	}
	sub = strings.TrimSpace(sub)
	sub = strings.TrimPrefix(sub, `"`)
	sub = strings.TrimSuffix(sub, `"`)
	sub = strings.ReplaceAll(sub, `\"`, `"`)
	sub = strings.ReplaceAll(sub, `\\`, `\`)
	return strings.ToLower(name) + "." + sub
}
