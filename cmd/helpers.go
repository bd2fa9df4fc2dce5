package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/byterings/gid/internal/config"
	"github.com/byterings/gid/internal/git"
	"github.com/byterings/gid/internal/platform"
	"github.com/byterings/gid/internal/sshkey"
	"github.com/byterings/gid/internal/ui"
)

// loadConfig resolves the profiles file and parses it
func loadConfig() (*config.Config, string, error) {
	loc, err := config.DefaultLocator(configPath).Resolve()
	if err != nil {
		return nil, "", err
	}
	slog.Debug("resolved config file", "path", loc.Path, "source", loc.Source)

	cfg, err := config.Load(loc.Path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, loc.Path, nil
}

func saveConfig(path string, cfg *config.Config) error {
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// findProfile looks up name and turns a miss into a hint for the user
func findProfile(cfg *config.Config, name string) (*config.Profile, error) {
	p, err := cfg.Profile(name)
	if errors.Is(err, config.ErrNotFound) {
		return nil, fmt.Errorf("profile '%s' not found\nRun: gid list", name)
	}
	return p, err
}

// targetProfile returns the profile named by args, or the active profile
func targetProfile(cfg *config.Config, args []string) (*config.Profile, error) {
	if len(args) > 0 {
		return findProfile(cfg, args[0])
	}
	p, err := cfg.ActiveProfile()
	if errors.Is(err, config.ErrNotFound) {
		if name, ok := cfg.Active(); ok {
			return nil, fmt.Errorf("active profile '%s' does not exist\nRun: gid use <name>", name)
		}
		return nil, fmt.Errorf("no active profile set\nRun: gid use <name>")
	}
	return p, err
}

func validateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if name == config.ActiveKey {
		return fmt.Errorf("'%s' is reserved and cannot be used as a profile name", config.ActiveKey)
	}
	return nil
}

// confirm asks message unless assumeYes is set
func confirm(message string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	ok, err := ui.PromptConfirmation(message)
	if errors.Is(err, ui.ErrNotInteractive) {
		return false, fmt.Errorf("%w (use --yes to confirm)", err)
	}
	return ok, err
}

// profileKeyPath returns the private key named in p's core.sshCommand, or ""
func profileKeyPath(p *config.Profile) string {
	v, ok := p.Get(sshkey.CommandKey)
	if !ok {
		return ""
	}
	command, ok := v.Str()
	if !ok {
		return ""
	}
	keyPath := sshkey.KeyFromCommand(command)
	if keyPath == "" {
		return ""
	}
	expanded, err := platform.ExpandTilde(keyPath)
	if err != nil {
		return keyPath
	}
	return expanded
}

func gitScope(local bool, file string) git.Scope {
	switch {
	case file != "":
		return git.File(file)
	case local:
		return git.Local
	default:
		return git.Global
	}
}

// applyProfile writes next to git config, one git call per key. Keys the
// previous profile set that next lacks are unset. Failures are reported
// and do not undo keys already written.
func applyProfile(scope git.Scope, prev, next *config.Profile) (failed int) {
	if prev != nil && !prev.Equal(next) {
		for _, key := range prev.Keys() {
			if _, ok := next.Get(key); ok {
				continue
			}
			if err := git.UnsetConfig(scope, key); err != nil {
				ui.Error(err.Error())
				failed++
				continue
			}
			slog.Debug("unset stale key", "key", key, "scope", scope)
		}
	}

	for _, pair := range next.GitPairs() {
		if err := git.SetConfig(scope, pair.Key, pair.Value); err != nil {
			ui.Error(err.Error())
			failed++
			continue
		}
		slog.Debug("set key", "key", pair.Key, "scope", scope)
	}
	return failed
}
