package cmd

import (
	"fmt"

	"github.com/byterings/gid/internal/config"
	"github.com/byterings/gid/internal/git"
	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var (
	useApply bool
	useLocal bool
)

var useCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Switch the active profile",
	Long: `Make a profile the active one. Without a name, pick from a list.

With --apply the profile is also written to git config (global, or the
current repository with --local), and keys only the previous profile set
are removed.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  gid use work
  gid use personal --apply
  gid use client --apply --local`,
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.Flags().BoolVarP(&useApply, "apply", "a", false, "Also write the profile to git config")
	useCmd.Flags().BoolVarP(&useLocal, "local", "l", false, "With --apply, write to the current repository instead of global config")
}

func runUse(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Len() == 0 {
		return fmt.Errorf("no profiles configured\nRun: gid add <name>")
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		current, _ := cfg.Active()
		name, err = ui.PromptSelectProfile("Switch to profile:", cfg.Names(), current)
		if err != nil {
			return err
		}
	}

	next, err := findProfile(cfg, name)
	if err != nil {
		return err
	}
	// The previous profile may be missing; then nothing is unset.
	prev, _ := cfg.ActiveProfile()

	if err := cfg.SetActive(name); err != nil {
		return err
	}
	if err := saveConfig(path, cfg); err != nil {
		return err
	}
	ui.Success(fmt.Sprintf("Active profile: %s", name))

	if !useApply {
		return nil
	}
	return applyAndReport(gitScope(useLocal, ""), prev, next)
}

func applyAndReport(scope git.Scope, prev, next *config.Profile) error {
	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}
	if failed := applyProfile(scope, prev, next); failed > 0 {
		return fmt.Errorf("%d git config update(s) failed", failed)
	}
	ui.Success(fmt.Sprintf("Wrote %d key(s) to %s git config", next.Len(), scope))
	return nil
}
