package ui

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when a prompt is needed but stdin is not a terminal
var ErrNotInteractive = errors.New("input required but stdin is not a terminal")

// IsInteractive reports whether prompts can be shown
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IdentityAnswers holds the answers to PromptIdentity
type IdentityAnswers struct {
	UserName   string
	Email      string
	SigningKey string
	Sign       bool
	SSHKey     string // one of the SSHKey* options
}

const (
	SSHKeyGenerate = "Generate new key pair"
	SSHKeyImport   = "Use existing key"
	SSHKeySkip     = "No SSH key"
)

// PromptIdentity asks for the common identity fields of a new profile
func PromptIdentity() (*IdentityAnswers, error) {
	if !IsInteractive() {
		return nil, ErrNotInteractive
	}

	emailValidator := func(val interface{}) error {
		if str, ok := val.(string); ok && !isValidEmail(str) {
			return fmt.Errorf("invalid email format")
		}
		return nil
	}

	questions := []*survey.Question{
		{
			Name:     "UserName",
			Prompt:   &survey.Input{Message: "Full name (user.name):", Help: "Name recorded on your commits"},
			Validate: survey.Required,
		},
		{
			Name:     "Email",
			Prompt:   &survey.Input{Message: "Email (user.email):", Help: "Email recorded on your commits"},
			Validate: survey.ComposeValidators(survey.Required, emailValidator),
		},
		{
			Name:   "SigningKey",
			Prompt: &survey.Input{Message: "Signing key (user.signingkey, optional):", Help: "GPG key id or SSH public key path"},
		},
		{
			Name:   "SSHKey",
			Prompt: &survey.Select{Message: "SSH key for this profile:", Options: []string{SSHKeyGenerate, SSHKeyImport, SSHKeySkip}, Default: SSHKeySkip},
		},
	}

	answers := &IdentityAnswers{}
	if err := survey.Ask(questions, answers); err != nil {
		return nil, err
	}

	if answers.SigningKey != "" {
		sign, err := PromptConfirmation("Sign commits and tags with this key?")
		if err != nil {
			return nil, err
		}
		answers.Sign = sign
	}
	return answers, nil
}

// PromptExistingKeyPath prompts for existing SSH key path
func PromptExistingKeyPath() (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}
	var path string
	prompt := &survey.Input{
		Message: "Path to existing SSH private key:",
		Help:    "Full path to your private key file (e.g., ~/.ssh/id_ed25519)",
	}
	if err := survey.AskOne(prompt, &path, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return path, nil
}

// PromptSelectProfile lets the user pick one of names
func PromptSelectProfile(message string, names []string, current string) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}
	var choice string
	if err := survey.AskOne(newProfileSelect(message, names, current), &choice); err != nil {
		return "", err
	}
	return choice, nil
}

// newProfileSelect preselects current only when it is one of names; survey
// rejects a default missing from the options.
func newProfileSelect(message string, names []string, current string) *survey.Select {
	prompt := &survey.Select{
		Message: message,
		Options: names,
	}
	if slices.Contains(names, current) {
		prompt.Default = current
	}
	return prompt
}

// PromptConfirmation prompts for yes/no confirmation
func PromptConfirmation(message string) (bool, error) {
	if !IsInteractive() {
		return false, ErrNotInteractive
	}
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
