package cmd

import (
	"fmt"

	"github.com/byterings/gid/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty profiles file",
	Long:  `Create an empty profiles file at the resolved location. This is optional - gid creates the file the first time it saves.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	loc, err := config.DefaultLocator(configPath).Resolve()
	if err != nil {
		return err
	}

	exists, err := config.Exists(loc.Path)
	if err != nil {
		return fmt.Errorf("failed to check config: %w", err)
	}
	if exists {
		fmt.Printf("gid is already initialized at: %s\n", loc.Path)
		return nil
	}

	if err := saveConfig(loc.Path, config.NewConfig()); err != nil {
		return err
	}

	fmt.Printf("✓ gid initialized at: %s\n", loc.Path)
	fmt.Println("\nNext: gid add <name>  or  gid import <name>")
	return nil
}
