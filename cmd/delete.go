package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/byterings/gid/internal/sshkey"
	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var (
	deleteYes  bool
	deleteKeys bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a profile",
	Long: `Remove a profile from the profiles file. If it was active, no profile is
active afterwards. Git config files are not touched.

With --delete-keys, an SSH key that gid generated for the profile is
removed too.`,
	Args: cobra.ExactArgs(1),
	Example: `  gid delete work
  gid delete old --yes --delete-keys`,
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")
	deleteCmd.Flags().BoolVar(&deleteKeys, "delete-keys", false, "Also delete the profile's generated SSH key files")
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := findProfile(cfg, args[0])
	if err != nil {
		return err
	}

	confirmed, err := confirm(fmt.Sprintf("Delete profile '%s' (%d keys)?", p.Name(), p.Len()), deleteYes)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Cancelled")
		return nil
	}

	wasActive := false
	if active, ok := cfg.Active(); ok && active == p.Name() {
		wasActive = true
	}

	cfg.Remove(p.Name())
	if err := saveConfig(path, cfg); err != nil {
		return err
	}
	ui.Success(fmt.Sprintf("Profile '%s' deleted", p.Name()))
	if wasActive {
		ui.Info("Active profile cleared")
	}

	if deleteKeys {
		removeGeneratedKey(p.Name(), profileKeyPath(p))
	}

	if cfg.Len() == 0 {
		fmt.Println("\nNo profiles remaining. Add one with: gid add <name>")
	}
	return nil
}

// removeGeneratedKey deletes keyPath and its .pub only when it is the key
// "gid add --generate-ssh-key" creates for profile.
func removeGeneratedKey(profile, keyPath string) {
	if keyPath == "" {
		return
	}
	if !strings.EqualFold(filepath.Base(keyPath), sshkey.KeyFileName(profile)) {
		ui.Warning(fmt.Sprintf("Not deleting %s: it was not generated by gid", keyPath))
		return
	}

	for _, f := range []string{keyPath, keyPath + ".pub"} {
		if err := os.Remove(f); err != nil {
			ui.Warning(fmt.Sprintf("Could not delete %s: %v", f, err))
			continue
		}
		ui.Success(fmt.Sprintf("Deleted: %s", f))
	}
}
