package cmd

import (
	"fmt"
	"os"

	"github.com/byterings/gid/internal/git"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

var (
	execProfile string
	execDryRun  bool
)

var execCmd = &cobra.Command{
	Use:     "exec [flags] [--] <git args>...",
	Aliases: []string{"git"},
	Short:   "Run git with a profile applied",
	Long: `Run git with every key of a profile passed as "-c key=value", leaving
your git config files untouched. Uses the active profile unless --profile
is given. Flags after the first git argument are passed to git.`,
	Example: `  gid exec commit -m "Fix typo"
  gid exec -p personal -- push origin main
  gid git --dry-run log`,
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().SetInterspersed(false)
	execCmd.Flags().StringVarP(&execProfile, "profile", "p", "", "Profile to apply instead of the active one")
	execCmd.Flags().BoolVarP(&execDryRun, "dry-run", "n", false, "Print the git command instead of running it")
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	var selector []string
	if execProfile != "" {
		selector = []string{execProfile}
	}
	p, err := targetProfile(cfg, selector)
	if err != nil {
		return err
	}

	gitArgs := append(git.ConfigArgs(p.GitPairs()), args...)
	if execDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), shellquote.Join(append([]string{git.Binary}, gitArgs...)...))
		return nil
	}

	code, err := git.Run(gitArgs, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}
