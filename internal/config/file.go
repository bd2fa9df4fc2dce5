package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/byterings/gid/internal/platform"
)

const (
	ConfigFileName = "gid.toml"
	ConfigDirName  = "gid"
	EnvConfigPath  = "GID_CONFIG"
)

// Source says which rule located the config file
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "environment"
	SourceWorkDir Source = "working directory"
	SourceUserDir Source = "user config directory"
)

// Location is a resolved config file path
type Location struct {
	Path   string
	Source Source
}

// Locator holds the inputs used to find the config file.
// Empty fields are skipped.
type Locator struct {
	Override string // --config flag
	EnvPath  string // $GID_CONFIG
	WorkDir  string
	UserDir  string // os.UserConfigDir()
}

// DefaultLocator fills a Locator from the process environment
func DefaultLocator(override string) Locator {
	loc := Locator{
		Override: override,
		EnvPath:  os.Getenv(EnvConfigPath),
	}
	if wd, err := os.Getwd(); err == nil {
		loc.WorkDir = wd
	}
	if dir, err := os.UserConfigDir(); err == nil {
		loc.UserDir = dir
	}
	return loc
}

// Resolve picks the config file: explicit override, then the environment,
// then gid.toml in the working directory if it exists, then the user
// config directory (which need not exist yet).
func (l Locator) Resolve() (Location, error) {
	if l.Override != "" {
		p, err := platform.ExpandTilde(l.Override)
		if err != nil {
			return Location{}, err
		}
		return Location{Path: p, Source: SourceFlag}, nil
	}
	if l.EnvPath != "" {
		p, err := platform.ExpandTilde(l.EnvPath)
		if err != nil {
			return Location{}, err
		}
		return Location{Path: p, Source: SourceEnv}, nil
	}
	if l.WorkDir != "" {
		p := filepath.Join(l.WorkDir, ConfigFileName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return Location{Path: p, Source: SourceWorkDir}, nil
		}
	}
	if l.UserDir != "" {
		return Location{Path: filepath.Join(l.UserDir, ConfigDirName, ConfigFileName), Source: SourceUserDir}, nil
	}
	return Location{}, errors.New("could not detect config file location")
}

// Exists checks if the config file exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Load reads and parses the config file at path.
// A missing file is an empty config so first use needs no init step.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file missing, starting empty", "path", path)
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("loaded config", "path", path, "profiles", cfg.Len())
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed
func Save(path string, cfg *Config) error {
	if err := platform.MkdirSecure(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := platform.OpenFileSecure(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(cfg.Document()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	slog.Debug("saved config", "path", path, "profiles", cfg.Len())
	return nil
}
