package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocator_Resolve(t *testing.T) {
	work := t.TempDir()
	withFile := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(withFile, ConfigFileName), []byte(""), 0600))
	userDir := t.TempDir()

	tests := []struct {
		name       string
		loc        Locator
		wantPath   string
		wantSource Source
	}{
		{
			name:       "override wins",
			loc:        Locator{Override: "/tmp/a.toml", EnvPath: "/tmp/b.toml", WorkDir: withFile, UserDir: userDir},
			wantPath:   "/tmp/a.toml",
			wantSource: SourceFlag,
		},
		{
			name:       "environment next",
			loc:        Locator{EnvPath: "/tmp/b.toml", WorkDir: withFile, UserDir: userDir},
			wantPath:   "/tmp/b.toml",
			wantSource: SourceEnv,
		},
		{
			name:       "working directory file",
			loc:        Locator{WorkDir: withFile, UserDir: userDir},
			wantPath:   filepath.Join(withFile, ConfigFileName),
			wantSource: SourceWorkDir,
		},
		{
			name:       "working directory without file falls through",
			loc:        Locator{WorkDir: work, UserDir: userDir},
			wantPath:   filepath.Join(userDir, ConfigDirName, ConfigFileName),
			wantSource: SourceUserDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loc.Resolve()
			require.NoError(t, err)
			require.Equal(t, tt.wantPath, got.Path)
			require.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestLocator_ResolveNothing(t *testing.T) {
	_, err := Locator{}.Resolve()
	require.Error(t, err)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Len())
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[p]\nx.y = 1.0\n"), 0600))

	cfg, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedValue)
	require.Nil(t, cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", ConfigFileName)

	cfg := NewConfig()
	p, _ := NewProfile("work")
	p.Set("user.name", String("Jane"))
	p.Set("color.ui", ColorArray(ColorNumber(3)))
	cfg.Insert(p)
	require.NoError(t, cfg.SetActive("work"))

	require.NoError(t, Save(path, cfg))

	exists, err := Exists(path)
	require.NoError(t, err)
	require.True(t, exists)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := Load(path)
	require.NoError(t, err)
	requireSameConfig(t, cfg, loaded)
}
