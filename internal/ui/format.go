package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/byterings/gid/internal/config"
	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// Format is an output format for a profile
type Format string

const (
	FormatTOML Format = "toml"
	FormatGit  Format = "git"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted --output values
var Formats = []Format{FormatTOML, FormatGit, FormatJSON, FormatYAML}

// ParseFormat validates an --output value
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want toml, git, json or yaml)", s)
}

// WriteProfile writes p to w in the given format.
// JSON and YAML nest the fields under the profile name and keep field order.
func WriteProfile(w io.Writer, p *config.Profile, format Format) error {
	switch format {
	case FormatTOML:
		_, err := io.WriteString(w, p.Document())
		return err
	case FormatGit:
		for _, pair := range p.GitPairs() {
			if _, err := fmt.Fprintf(w, "%s=%s\n", pair.Key, pair.Value); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return writeJSON(w, p)
	case FormatYAML:
		return writeYAML(w, p)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeJSON(w io.Writer, p *config.Profile) error {
	fields := orderedmap.New()
	fields.SetEscapeHTML(false)
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		fields.Set(key, v.Native())
	}
	root := orderedmap.New()
	root.SetEscapeHTML(false)
	root.Set(p.Name(), fields)

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeYAML(w io.Writer, p *config.Profile) error {
	fields := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(v.Native()); err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		fields.Content = append(fields.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			valueNode,
		)
	}
	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: p.Name()},
		fields,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
