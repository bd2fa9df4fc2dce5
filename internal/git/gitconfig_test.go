package git

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/byterings/gid/internal/config"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !IsInstalled() {
		t.Skip("git not installed")
	}
}

func TestConfigArgs(t *testing.T) {
	pairs := []config.GitPair{
		{Key: "user.name", Value: "Jane Doe"},
		{Key: "color.diff.old", Value: "red bold"},
	}

	require.Equal(t, []string{
		"-c", "user.name=Jane Doe",
		"-c", "color.diff.old=red bold",
	}, ConfigArgs(pairs))
	require.Empty(t, ConfigArgs(nil))
}

func TestParseList(t *testing.T) {
	out := "user.name\nJane Doe\x00commit.gpgsign\ntrue\x00alias.multi\nline one\nline two\x00core.bare\x00user.signingkey\n\x00"

	require.Equal(t, []config.GitPair{
		{Key: "user.name", Value: "Jane Doe"},
		{Key: "commit.gpgsign", Value: "true"},
		{Key: "alias.multi", Value: "line one\nline two"},
		{Key: "core.bare", Value: "true"},
		{Key: "user.signingkey", Value: ""},
	}, ParseList(out))
	require.Empty(t, ParseList(""))
}

func TestScope(t *testing.T) {
	require.Equal(t, []string{"--global"}, Global.args())
	require.Equal(t, []string{"--local"}, Local.args())
	require.Equal(t, []string{"--file", "/tmp/x"}, File("/tmp/x").args())
	require.Equal(t, "global", Global.String())
}

func TestConfigRoundTrip(t *testing.T) {
	requireGit(t)

	scope := File(filepath.Join(t.TempDir(), "gitconfig"))

	require.NoError(t, SetConfig(scope, "user.name", "Jane Doe"))
	require.NoError(t, SetConfig(scope, "pull.rebase", "true"))

	got, err := GetConfig(scope, "user.name")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", got)

	missing, err := GetConfig(scope, "user.email")
	require.NoError(t, err)
	require.Empty(t, missing)

	pairs, err := ListConfig(scope)
	require.NoError(t, err)
	require.Equal(t, []config.GitPair{
		{Key: "user.name", Value: "Jane Doe"},
		{Key: "pull.rebase", Value: "true"},
	}, pairs)

	require.NoError(t, UnsetConfig(scope, "pull.rebase"))
	require.NoError(t, UnsetConfig(scope, "pull.rebase"), "unsetting a missing key is not an error")

	pairs, err = ListConfig(scope)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
}

func TestRun(t *testing.T) {
	requireGit(t)

	var stdout bytes.Buffer
	args := append(ConfigArgs([]config.GitPair{{Key: "gid.test", Value: "hello world"}}), "config", "--get", "gid.test")
	code, err := Run(args, nil, &stdout, os.Stderr)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "hello world\n", stdout.String())

	code, err = Run([]string{"config", "--get", "gid.missing-key"}, nil, &stdout, os.Stderr)
	require.NoError(t, err)
	require.Equal(t, 1, code)
}
