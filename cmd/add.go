package cmd

import (
	"fmt"
	"strings"

	"github.com/byterings/gid/internal/config"
	"github.com/byterings/gid/internal/platform"
	"github.com/byterings/gid/internal/sshkey"
	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var (
	addFlagUserName   string
	addFlagEmail      string
	addFlagSigningKey string
	addFlagSign       bool
	addFlagPullRebase bool
	addFlagSSHKey     string
	addFlagGenerate   bool
	addFlagSet        []string
	addFlagUse        bool
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Long: `Add a new profile. Identity fields can be given as flags; when neither
--user-name nor --email is given and the terminal is interactive, gid asks
for them. Any other git key can be added with --set key=value.`,
	Args: cobra.ExactArgs(1),
	Example: `  # Interactive mode
  gid add work

  # Using flags
  gid add work --user-name "Jane Doe" --email jane@work.example \
    --signing-key ABCDEF12 --sign --ssh-key ~/.ssh/id_work

  # Arbitrary keys
  gid add oss --email jane@oss.example --set pull.rebase=true --set core.autocrlf=input`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addFlagUserName, "user-name", "", "user.name for commits")
	addCmd.Flags().StringVar(&addFlagEmail, "email", "", "user.email for commits")
	addCmd.Flags().StringVar(&addFlagSigningKey, "signing-key", "", "user.signingkey (GPG key id or SSH key)")
	addCmd.Flags().BoolVar(&addFlagSign, "sign", false, "Set commit.gpgsign and tag.gpgsign")
	addCmd.Flags().BoolVar(&addFlagPullRebase, "pull-rebase", false, "Set pull.rebase")
	addCmd.Flags().StringVar(&addFlagSSHKey, "ssh-key", "", "Path to an existing SSH private key")
	addCmd.Flags().BoolVar(&addFlagGenerate, "generate-ssh-key", false, "Generate a new SSH key for this profile")
	addCmd.Flags().StringArrayVar(&addFlagSet, "set", nil, "Extra git key as key=value (repeatable)")
	addCmd.Flags().BoolVar(&addFlagUse, "use", false, "Make the new profile active")
	addCmd.MarkFlagsMutuallyExclusive("ssh-key", "generate-ssh-key")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateProfileName(name); err != nil {
		return err
	}

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Has(name) {
		return fmt.Errorf("profile '%s' already exists\nEdit it with: gid update %s <key> <value>", name, name)
	}

	p, err := config.NewProfile(name)
	if err != nil {
		return err
	}

	sshChoice := ""
	switch {
	case addFlagSSHKey != "":
		sshChoice = ui.SSHKeyImport
	case addFlagGenerate:
		sshChoice = ui.SSHKeyGenerate
	}

	if addFlagUserName == "" && addFlagEmail == "" && ui.IsInteractive() {
		fmt.Printf("Adding profile '%s'\n\n", name)
		answers, err := ui.PromptIdentity()
		if err != nil {
			return fmt.Errorf("failed to get profile info: %w", err)
		}
		addFlagUserName = answers.UserName
		addFlagEmail = answers.Email
		addFlagSigningKey = answers.SigningKey
		addFlagSign = answers.Sign
		if sshChoice == "" {
			sshChoice = answers.SSHKey
		}
	}

	setString(p, "user.name", addFlagUserName)
	setString(p, "user.email", addFlagEmail)
	setString(p, "user.signingkey", addFlagSigningKey)
	if addFlagSign {
		p.Set("commit.gpgsign", config.Boolean(true))
		p.Set("tag.gpgsign", config.Boolean(true))
	}
	if cmd.Flags().Changed("pull-rebase") {
		p.Set("pull.rebase", config.Boolean(addFlagPullRebase))
	}

	for _, kv := range addFlagSet {
		key, value, err := splitAssignment(kv)
		if err != nil {
			return err
		}
		p.Set(key, config.ParseGitText(value))
	}

	keyPath, err := resolveSSHKey(name, sshChoice)
	if err != nil {
		return err
	}
	if keyPath != "" {
		p.Set(sshkey.CommandKey, config.String(sshkey.Command(keyPath)))
	}

	if p.Len() == 0 {
		return fmt.Errorf("profile '%s' would be empty\nGive at least --user-name, --email or --set", name)
	}

	cfg.Insert(p)
	if addFlagUse {
		if err := cfg.SetActive(name); err != nil {
			return err
		}
	}
	if err := saveConfig(path, cfg); err != nil {
		return err
	}

	fmt.Println()
	ui.Success(fmt.Sprintf("Profile '%s' added", name))
	if !addFlagUse {
		fmt.Printf("\nNext: gid use %s\n", name)
	}
	return nil
}

func setString(p *config.Profile, key, value string) {
	if value != "" {
		p.Set(key, config.String(value))
	}
}

// splitAssignment parses key=value; the key must look like section.name
func splitAssignment(kv string) (string, string, error) {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || !isGitKey(key) {
		return "", "", fmt.Errorf("invalid --set %q: want section.key=value", kv)
	}
	return key, value, nil
}

// isGitKey reports whether key has the section.name shape git config accepts
func isGitKey(key string) bool {
	return strings.Contains(key, ".") && !strings.HasPrefix(key, ".") && !strings.HasSuffix(key, ".")
}

// resolveSSHKey returns the key path for the chosen option, or "" for none
func resolveSSHKey(profile, choice string) (string, error) {
	switch choice {
	case ui.SSHKeyGenerate:
		keyPath, err := sshkey.Generate(profile)
		if err != nil {
			return "", fmt.Errorf("failed to generate SSH key: %w", err)
		}
		ui.Success(fmt.Sprintf("SSH key generated: %s", keyPath))

		if pub, err := sshkey.PublicKey(keyPath); err == nil {
			fmt.Println("\n" + strings.Repeat("-", 70))
			fmt.Println("Add this public key to your Git host:")
			fmt.Println(strings.Repeat("-", 70))
			fmt.Print(pub)
			fmt.Println(strings.Repeat("-", 70))
		}
		return keyPath, nil

	case ui.SSHKeyImport:
		keyPath := addFlagSSHKey
		if keyPath == "" {
			var err error
			keyPath, err = ui.PromptExistingKeyPath()
			if err != nil {
				return "", fmt.Errorf("failed to get key path: %w", err)
			}
		}
		expanded, secure, err := sshkey.Validate(keyPath)
		if err != nil {
			return "", err
		}
		if !secure {
			ui.Warning(fmt.Sprintf("Key file has insecure permissions. Fix with: %s", platform.GetPermissionFixCommand(expanded)))
		}
		ui.Success(fmt.Sprintf("Using existing key: %s", expanded))
		return expanded, nil
	}
	return "", nil
}
