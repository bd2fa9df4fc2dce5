package cmd

import (
	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a profile",
	Long:  `Print a profile (the active one by default) as it is stored, as git sees it, or as JSON or YAML.`,
	Args:  cobra.MaximumNArgs(1),
	Example: `  gid show work
  gid show -o git
  gid show personal -o yaml`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showOutput, "output", "o", string(ui.FormatTOML), "Output format: toml, git, json or yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := ui.ParseFormat(showOutput)
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := targetProfile(cfg, args)
	if err != nil {
		return err
	}
	return ui.WriteProfile(cmd.OutOrStdout(), p, format)
}
