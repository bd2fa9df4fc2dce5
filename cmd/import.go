package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/byterings/gid/internal/config"
	"github.com/byterings/gid/internal/git"
	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var (
	importLocal bool
	importFile  string
	importOnly  []string
	importYes   bool
	importUse   bool
)

var importCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Create a profile from existing git config",
	Long: `Read git config (global by default) and store it as a profile. Values are
typed the way git prints them: "true"/"false" become booleans and decimal
numbers become integers.

With --file the file is parsed directly and git is not needed. Keys set
more than once keep their last value. An existing profile is replaced
only after confirmation.`,
	Args: cobra.ExactArgs(1),
	Example: `  gid import personal
  gid import work --local --only user. --only commit.
  gid import legacy --file ~/.gitconfig-legacy --yes`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importLocal, "local", "l", false, "Read the current repository's config")
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Read this git config file")
	importCmd.Flags().StringSliceVar(&importOnly, "only", nil, "Only import keys starting with these prefixes")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Replace an existing profile without asking")
	importCmd.Flags().BoolVar(&importUse, "use", false, "Make the imported profile active")
	importCmd.MarkFlagsMutuallyExclusive("local", "file")
}

func runImport(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateProfileName(name); err != nil {
		return err
	}

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	pairs, source, err := readGitConfig()
	if err != nil {
		return err
	}

	p, err := profileFromPairs(name, pairs, importOnly)
	if err != nil {
		return err
	}
	if p.Len() == 0 {
		return fmt.Errorf("nothing to import from %s", source)
	}

	if cfg.Has(name) {
		ok, err := confirm(fmt.Sprintf("Profile '%s' exists. Replace it?", name), importYes)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled")
			return nil
		}
	}

	cfg.Insert(p)
	if importUse {
		if err := cfg.SetActive(name); err != nil {
			return err
		}
	}
	if err := saveConfig(path, cfg); err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Imported %d key(s) from %s into '%s'", p.Len(), source, name))
	return nil
}

func readGitConfig() ([]config.GitPair, string, error) {
	if importFile != "" {
		pairs, err := git.ReadConfigFile(importFile)
		if err != nil {
			return nil, "", err
		}
		return pairs, importFile, nil
	}

	if !git.IsInstalled() {
		return nil, "", fmt.Errorf("git is not installed\nUse --file to read a config file directly")
	}
	scope := gitScope(importLocal, "")
	pairs, err := git.ListConfig(scope)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s git config: %w", scope, err)
	}
	return pairs, scope.String() + " git config", nil
}

// profileFromPairs builds a profile from git entries, keeping those that
// match one of prefixes (all when prefixes is empty). Later entries win.
func profileFromPairs(name string, pairs []config.GitPair, prefixes []string) (*config.Profile, error) {
	p, err := config.NewProfile(name)
	if err != nil {
		return nil, err
	}

	for _, pair := range pairs {
		if !hasAnyPrefix(pair.Key, prefixes) {
			continue
		}
		if _, dup := p.Get(pair.Key); dup {
			slog.Debug("multi-valued key, keeping last value", "key", pair.Key)
		}
		p.Set(pair.Key, config.ParseGitText(pair.Value))
	}
	return p, nil
}

func hasAnyPrefix(key string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	lower := strings.ToLower(key)
	for _, prefix := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}
