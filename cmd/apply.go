package cmd

import (
	"github.com/spf13/cobra"
)

var (
	applyLocal bool
	applyFile  string
)

var applyCmd = &cobra.Command{
	Use:   "apply [name]",
	Short: "Write a profile to git config",
	Long: `Write every key of a profile (the active one by default) with one
"git config" call per key. A failed key does not undo the ones already written.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  gid apply
  gid apply work --local
  gid apply work --file ~/.gitconfig-work`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVarP(&applyLocal, "local", "l", false, "Write to the current repository's config")
	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "Write to this git config file")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := targetProfile(cfg, args)
	if err != nil {
		return err
	}
	return applyAndReport(gitScope(applyLocal, applyFile), nil, p)
}
