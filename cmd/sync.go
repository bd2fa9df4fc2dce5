package cmd

import (
	"fmt"
	"os"

	"github.com/byterings/gid/internal/config"
	"github.com/byterings/gid/internal/git"
	"github.com/byterings/gid/internal/platform"
	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var (
	autoFix bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Check global git config against the active profile",
	Long: `Check that global git config holds every key of the active profile and
that the profile's SSH key exists with safe permissions.

Optionally fix any mismatches found.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVarP(&autoFix, "fix", "f", false, "Automatically fix issues without prompting")
}

// syncIssue is one mismatch found by sync, with the action that repairs it
type syncIssue struct {
	message string
	fix     func() error
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := targetProfile(cfg, nil)
	if err != nil {
		return err
	}
	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	fmt.Printf("Checking global git config for profile: %s\n\n", p.Name())

	issues := checkGitConfig(p)
	if keyPath := profileKeyPath(p); keyPath != "" {
		fmt.Println("\nChecking SSH key...")
		issues = append(issues, checkSSHKey(keyPath)...)
	}

	fmt.Println()
	if len(issues) == 0 {
		ui.Success("All checks passed! Configuration is in sync.")
		return nil
	}

	ui.Warning(fmt.Sprintf("Found %d issue(s)", len(issues)))
	fmt.Println()

	fix := autoFix
	if !autoFix {
		fix, err = confirm("Fix these issues automatically?", false)
		if err != nil {
			return err
		}
	}
	if !fix {
		fmt.Println("\nNo changes made. Run 'gid sync --fix' to auto-fix.")
		return nil
	}

	fmt.Println("\nApplying fixes...")
	failed := 0
	for _, issue := range issues {
		if issue.fix == nil {
			ui.Info(fmt.Sprintf("Cannot fix automatically: %s", issue.message))
			continue
		}
		if err := issue.fix(); err != nil {
			ui.Error(fmt.Sprintf("%s: %v", issue.message, err))
			failed++
			continue
		}
		ui.Success(fmt.Sprintf("Fixed: %s", issue.message))
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d fix(es) failed", failed)
	}
	ui.Success("Sync complete!")
	return nil
}

func checkGitConfig(p *config.Profile) []syncIssue {
	var issues []syncIssue
	for _, pair := range p.GitPairs() {
		got, err := git.GetConfig(git.Global, pair.Key)
		if err != nil {
			ui.Error(fmt.Sprintf("Failed to read %s: %v", pair.Key, err))
			issues = append(issues, syncIssue{message: "unreadable " + pair.Key, fix: setGlobal(pair)})
			continue
		}
		if got != pair.Value {
			msg := fmt.Sprintf("%s mismatch: got '%s', expected '%s'", pair.Key, got, pair.Value)
			ui.Error(msg)
			issues = append(issues, syncIssue{message: msg, fix: setGlobal(pair)})
			continue
		}
		ui.Success(fmt.Sprintf("%s matches", pair.Key))
	}
	return issues
}

func setGlobal(pair config.GitPair) func() error {
	return func() error {
		return git.SetConfig(git.Global, pair.Key, pair.Value)
	}
}

func checkSSHKey(keyPath string) []syncIssue {
	var issues []syncIssue

	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		msg := fmt.Sprintf("SSH key not found: %s", keyPath)
		ui.Error(msg)
		return append(issues, syncIssue{message: msg})
	}
	ui.Success("SSH key exists")

	ok, err := platform.CheckFilePermissions(keyPath)
	switch {
	case err != nil:
		ui.Error(fmt.Sprintf("Failed to check permissions: %v", err))
	case !ok:
		msg := fmt.Sprintf("SSH key has insecure permissions: %s", keyPath)
		ui.Error(msg)
		issues = append(issues, syncIssue{message: msg, fix: func() error {
			return platform.FixFilePermissions(keyPath)
		}})
	default:
		ui.Success("SSH key permissions OK")
	}

	pubKeyPath := keyPath + ".pub"
	if _, err := os.Stat(pubKeyPath); os.IsNotExist(err) {
		msg := fmt.Sprintf("SSH public key not found: %s", pubKeyPath)
		ui.Error(msg)
		issues = append(issues, syncIssue{message: msg})
	} else {
		ui.Success("SSH public key exists")
	}
	return issues
}
