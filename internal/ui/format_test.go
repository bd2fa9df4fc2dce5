package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/byterings/gid/internal/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleProfile(t *testing.T) *config.Profile {
	t.Helper()
	p, err := config.NewProfile("work")
	require.NoError(t, err)
	p.Set("user.name", config.String("Jane <Doe>"))
	p.Set("commit.gpgsign", config.Boolean(true))
	p.Set("diff.renamelimit", config.Integer(300))
	p.Set("color.diff.old", config.ColorArray(config.ColorNumber(1), config.ColorKeyword("bold")))
	return p
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestWriteProfile_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProfile(&buf, sampleProfile(t), FormatTOML))
	require.Equal(t, `[work]
user.name = "Jane <Doe>"
commit.gpgsign = true
diff.renamelimit = 300
color.diff.old = [1, "bold"]
`, buf.String())
}

func TestWriteProfile_Git(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProfile(&buf, sampleProfile(t), FormatGit))
	require.Equal(t, `user.name=Jane <Doe>
commit.gpgsign=true
diff.renamelimit=300
color.diff.old=1 bold
`, buf.String())
}

func TestWriteProfile_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProfile(&buf, sampleProfile(t), FormatJSON))

	out := buf.String()
	require.Contains(t, out, `"Jane <Doe>"`, "HTML characters must not be escaped")
	require.Less(t, strings.Index(out, "user.name"), strings.Index(out, "color.diff.old"), "field order must be kept")

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, map[string]any{
		"user.name":        "Jane <Doe>",
		"commit.gpgsign":   true,
		"diff.renamelimit": float64(300),
		"color.diff.old":   []any{float64(1), "bold"},
	}, decoded["work"])
}

func TestWriteProfile_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProfile(&buf, sampleProfile(t), FormatYAML))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "work:\n"))
	require.Less(t, strings.Index(out, "user.name"), strings.Index(out, "commit.gpgsign"))

	var decoded map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, map[string]any{
		"user.name":        "Jane <Doe>",
		"commit.gpgsign":   true,
		"diff.renamelimit": 300,
		"color.diff.old":   []any{1, "bold"},
	}, decoded["work"])
}

func TestWriteProfile_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteProfile(&buf, sampleProfile(t), Format("xml")))
}
