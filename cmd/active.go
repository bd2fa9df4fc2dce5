package cmd

import (
	"errors"
	"fmt"

	"github.com/byterings/gid/internal/config"
	"github.com/byterings/gid/internal/sshkey"
	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active profile",
	Long:  `Display which profile is active and the git configuration it applies.`,
	Args:  cobra.NoArgs,
	RunE:  runActive,
}

func init() {
	rootCmd.AddCommand(activeCmd)
}

func runActive(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := cfg.ActiveProfile()
	if errors.Is(err, config.ErrNotFound) {
		if name, ok := cfg.Active(); ok {
			ui.Warning(fmt.Sprintf("Active profile '%s' not found in config", name))
			return nil
		}
		fmt.Println("No active profile set")
		fmt.Println("\nSet one with: gid use <name>")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Active profile: %s\n", p.Name())
	for _, pair := range p.GitPairs() {
		fmt.Printf("  %s = %s\n", pair.Key, pair.Value)
	}

	if key := profileKeyPath(p); key != "" {
		if fp, err := sshkey.Fingerprint(key); err == nil {
			fmt.Printf("  SSH key fingerprint: %s\n", fp)
		}
	}
	return nil
}
