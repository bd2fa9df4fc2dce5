package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/byterings/gid/internal/config"
	"github.com/byterings/gid/internal/git"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileName(t *testing.T) {
	require.NoError(t, validateProfileName("work"))
	require.NoError(t, validateProfileName("my work"))
	require.Error(t, validateProfileName(""))
	require.Error(t, validateProfileName(config.ActiveKey))
}

func TestGitScope(t *testing.T) {
	require.Equal(t, git.Global, gitScope(false, ""))
	require.Equal(t, git.Local, gitScope(true, ""))
	require.Equal(t, git.File("x.cfg"), gitScope(true, "x.cfg"))
}

func TestTargetProfile(t *testing.T) {
	cfg := config.NewConfig()
	_, err := targetProfile(cfg, nil)
	require.ErrorContains(t, err, "no active profile")

	p, err := config.NewProfile("work")
	require.NoError(t, err)
	p.Set("user.email", config.String("jane@work.example"))
	cfg.Insert(p)

	got, err := targetProfile(cfg, []string{"work"})
	require.NoError(t, err)
	require.Equal(t, "work", got.Name())

	_, err = targetProfile(cfg, []string{"home"})
	require.ErrorContains(t, err, "profile 'home' not found")

	require.NoError(t, cfg.SetActive("work"))
	got, err = targetProfile(cfg, nil)
	require.NoError(t, err)
	require.Equal(t, "work", got.Name())
}

func TestTargetProfile_DanglingActive(t *testing.T) {
	cfg, err := config.Parse([]byte("active = \"gone\"\n[work]\nuser.name = \"Jane\"\n"))
	require.NoError(t, err)

	_, err = targetProfile(cfg, nil)
	require.ErrorContains(t, err, "active profile 'gone' does not exist")
}

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		in      string
		key     string
		value   string
		wantErr bool
	}{
		{in: "pull.rebase=true", key: "pull.rebase", value: "true"},
		{in: "alias.lg=log --graph --format=%h", key: "alias.lg", value: "log --graph --format=%h"},
		{in: "user.name=", key: "user.name", value: ""},
		{in: "pull.rebase", wantErr: true},
		{in: "rebase=true", wantErr: true},
		{in: ".rebase=true", wantErr: true},
		{in: "pull.=true", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, value, err := splitAssignment(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.key, key)
			require.Equal(t, tt.value, value)
		})
	}
}

func TestIsGitKey(t *testing.T) {
	require.True(t, isGitKey("user.email"))
	require.True(t, isGitKey("includeIf.gitdir:~/work/.path"))
	require.False(t, isGitKey("foo"))
	require.False(t, isGitKey(".foo"))
	require.False(t, isGitKey("foo."))
	require.False(t, isGitKey(""))
}

func TestProfileFromPairs(t *testing.T) {
	pairs := []config.GitPair{
		{Key: "user.name", Value: "Jane Doe"},
		{Key: "user.email", Value: "jane@example.com"},
		{Key: "commit.gpgsign", Value: "true"},
		{Key: "core.abbrev", Value: "12"},
		{Key: "include.path", Value: "~/a.inc"},
		{Key: "include.path", Value: "~/b.inc"},
	}

	p, err := profileFromPairs("home", pairs, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"user.name", "user.email", "commit.gpgsign", "core.abbrev", "include.path"}, p.Keys())

	v, _ := p.Get("commit.gpgsign")
	require.True(t, config.Boolean(true).Equal(v))
	v, _ = p.Get("core.abbrev")
	require.True(t, config.Integer(12).Equal(v))
	v, _ = p.Get("include.path")
	require.True(t, config.String("~/b.inc").Equal(v))

	p, err = profileFromPairs("home", pairs, []string{"User."})
	require.NoError(t, err)
	require.Equal(t, []string{"user.name", "user.email"}, p.Keys())
}

func TestProfileKeyPath(t *testing.T) {
	p, err := config.NewProfile("work")
	require.NoError(t, err)
	require.Empty(t, profileKeyPath(p))

	p.Set("core.sshCommand", config.String("ssh -i '/keys/gid work' -o IdentitiesOnly=yes"))
	require.Equal(t, "/keys/gid work", profileKeyPath(p))

	p.Set("core.sshCommand", config.Boolean(true))
	require.Empty(t, profileKeyPath(p))
}

func TestRemoveGeneratedKey(t *testing.T) {
	dir := t.TempDir()
	generated := filepath.Join(dir, "gid_work")
	foreign := filepath.Join(dir, "id_ed25519")
	for _, f := range []string{generated, generated + ".pub", foreign, foreign + ".pub"} {
		require.NoError(t, os.WriteFile(f, []byte("key"), 0600))
	}

	removeGeneratedKey("work", foreign)
	require.FileExists(t, foreign)

	removeGeneratedKey("work", generated)
	require.NoFileExists(t, generated)
	require.NoFileExists(t, generated+".pub")
}

func TestAddShowDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gid.toml")

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(append(args, "--config", path))
		require.NoError(t, rootCmd.Execute())
		return out.String()
	}

	run("add", "work", "--user-name", "Jane Doe", "--email", "jane@work.example", "--set", "pull.rebase=true", "--use")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	active, ok := cfg.Active()
	require.True(t, ok)
	require.Equal(t, "work", active)

	require.Equal(t, "pull.rebase=true\nuser.email=jane@work.example\nuser.name=Jane Doe\n", run("show", "-o", "git"))

	rootCmd.SetArgs([]string{"update", "work", "foo", "1", "--config", path})
	require.ErrorContains(t, rootCmd.Execute(), "invalid key 'foo'")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	p, err := cfg.Profile("work")
	require.NoError(t, err)
	_, ok = p.Get("foo")
	require.False(t, ok)

	run("delete", "work", "--yes")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Len())
	_, ok = cfg.Active()
	require.False(t, ok)
}
