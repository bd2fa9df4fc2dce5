package cmd

import (
	"fmt"

	"github.com/byterings/gid/internal/config"
	"github.com/byterings/gid/internal/platform"
	"github.com/byterings/gid/internal/sshkey"
	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var (
	updateUnset  bool
	updateColor  bool
	updateString bool
	updateSSHKey string
)

var updateCmd = &cobra.Command{
	Use:   "update <name> [key] [value]",
	Short: "Set or remove a key in a profile",
	Long: `Set one git key in a profile, or remove it with --unset.

Values are typed the way git prints them: "true" and "false" become
booleans and decimal numbers become integers. Use --string to keep the
text as a string, or --color to store a color list such as "bold red".`,
	Args: cobra.RangeArgs(1, 3),
	Example: `  gid update work user.email jane@work.example
  gid update work pull.rebase true
  gid update work color.diff.old "red bold" --color
  gid update work commit.gpgsign --unset
  gid update work --ssh-key ~/.ssh/id_work`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVar(&updateUnset, "unset", false, "Remove the key from the profile")
	updateCmd.Flags().BoolVar(&updateColor, "color", false, "Store the value as a color list")
	updateCmd.Flags().BoolVar(&updateString, "string", false, "Store the value as a string")
	updateCmd.Flags().StringVar(&updateSSHKey, "ssh-key", "", "Point core.sshCommand at this private key")
	updateCmd.MarkFlagsMutuallyExclusive("color", "string", "unset")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := findProfile(cfg, args[0])
	if err != nil {
		return err
	}

	switch {
	case updateSSHKey != "":
		if len(args) > 1 {
			return fmt.Errorf("--ssh-key takes no key or value arguments")
		}
		expanded, secure, err := sshkey.Validate(updateSSHKey)
		if err != nil {
			return err
		}
		if !secure {
			ui.Warning(fmt.Sprintf("Key file has insecure permissions. Fix with: %s", platform.GetPermissionFixCommand(expanded)))
		}
		p.Set(sshkey.CommandKey, config.String(sshkey.Command(expanded)))
		args = append(args, sshkey.CommandKey)

	case len(args) < 2:
		return fmt.Errorf("missing key\nUsage: gid update <name> <key> [value]")

	case updateUnset:
		if len(args) == 3 {
			return fmt.Errorf("--unset takes no value")
		}
		if !p.Delete(args[1]) {
			return fmt.Errorf("profile '%s' has no key '%s'", p.Name(), args[1])
		}

	default:
		if !isGitKey(args[1]) {
			return fmt.Errorf("invalid key '%s': want section.key", args[1])
		}
		if len(args) < 3 {
			return fmt.Errorf("missing value for '%s' (use --unset to remove it)", args[1])
		}
		value, err := typedValue(args[2])
		if err != nil {
			return err
		}
		p.Set(args[1], value)
	}

	if p.Len() == 0 {
		return fmt.Errorf("profile '%s' would be empty\nDelete it with: gid delete %s", p.Name(), p.Name())
	}
	if err := saveConfig(path, cfg); err != nil {
		return err
	}

	if updateUnset {
		ui.Success(fmt.Sprintf("Removed %s from '%s'", args[1], p.Name()))
	} else {
		v, _ := p.Get(args[1])
		ui.Success(fmt.Sprintf("Set %s = %s in '%s'", args[1], v.Git(), p.Name()))
	}
	if active, ok := cfg.Active(); ok && active == p.Name() {
		fmt.Println("Run 'gid apply' to write the change to git config")
	}
	return nil
}

func typedValue(text string) (config.Value, error) {
	switch {
	case updateColor:
		return config.ParseGitColors(text)
	case updateString:
		return config.String(text), nil
	default:
		return config.ParseGitText(text), nil
	}
}
