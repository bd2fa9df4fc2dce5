package git

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/byterings/gid/internal/config"
)

// Binary is the git executable invoked by this package
var Binary = "git"

// Scope selects which git configuration file a command reads or writes
type Scope struct {
	name string
	file string
}

var (
	Global = Scope{name: "global"}
	Local  = Scope{name: "local"}
)

// File returns a scope for an explicit configuration file
func File(path string) Scope {
	return Scope{name: "file", file: path}
}

func (s Scope) args() []string {
	if s.file != "" {
		return []string{"--file", s.file}
	}
	return []string{"--" + s.name}
}

func (s Scope) String() string {
	if s.file != "" {
		return s.file
	}
	return s.name
}

// ConfigArgs turns pairs into repeated "-c key=value" arguments
func ConfigArgs(pairs []config.GitPair) []string {
	args := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		args = append(args, "-c", p.Key+"="+p.Value)
	}
	return args
}

// Run runs git with args and the given stdio, returning git's exit code.
// A non-zero exit is not an error; failing to start git is.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	slog.Debug("running git", "args", args)
	cmd := exec.Command(Binary, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("failed to execute git: %w", err)
	}
	return 0, nil
}

// SetConfig runs git config to set one value
func SetConfig(scope Scope, key, value string) error {
	args := append([]string{"config"}, scope.args()...)
	args = append(args, key, value)
	if _, err := output(args...); err != nil {
		return fmt.Errorf("failed to set git %s: %w", key, err)
	}
	return nil
}

// UnsetConfig removes key; a key that is not set is not an error
func UnsetConfig(scope Scope, key string) error {
	args := append([]string{"config"}, scope.args()...)
	args = append(args, "--unset-all", key)
	_, err := output(args...)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 5 {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to unset git %s: %w", key, err)
	}
	return nil
}

// GetConfig returns the value of key, or "" when it is not set
func GetConfig(scope Scope, key string) (string, error) {
	args := append([]string{"config"}, scope.args()...)
	args = append(args, "--get", key)
	out, err := output(args...)
	if err != nil {
		// If key doesn't exist, return empty string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("failed to get git %s: %w", key, err)
	}
	return strings.TrimSuffix(out, "\n"), nil
}

// ListConfig returns every key set in scope, in the order git prints them
func ListConfig(scope Scope) ([]config.GitPair, error) {
	args := append([]string{"config"}, scope.args()...)
	args = append(args, "--list", "-z")
	out, err := output(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list git config: %w", err)
	}
	return ParseList(out), nil
}

// ParseList parses "git config --list -z" output: NUL-terminated entries of
// key, newline, value. An entry without a newline is a valueless key, which
// git reads as true.
func ParseList(out string) []config.GitPair {
	var pairs []config.GitPair
	for _, entry := range strings.Split(out, "\x00") {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "\n")
		if !ok {
			value = "true"
		}
		pairs = append(pairs, config.GitPair{Key: key, Value: value})
	}
	return pairs
}

// IsInstalled checks if git is installed
func IsInstalled() bool {
	cmd := exec.Command(Binary, "--version")
	return cmd.Run() == nil
}

func output(args ...string) (string, error) {
	slog.Debug("running git", "args", args)
	cmd := exec.Command(Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w", msg, err)
		}
		return "", err
	}
	return string(out), nil
}
