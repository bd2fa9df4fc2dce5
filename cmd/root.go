// Package cmd implements the gid command line.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/byterings/gid/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "gid",
	Short: "Switch between Git identity profiles",
	Long: `gid keeps several Git identities (name, email, signing key, SSH key or any
other git config keys) in one file and lets you pick the active one.

Run git with the active profile:   gid exec -- commit -m "msg"
Or write it to your git config:     gid use work --apply

The profiles file is found via --config, $GID_CONFIG, ./gid.toml, or the
user config directory, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
		ui.InitStyles(!noColor)
	},
}

// exitCodeError carries the exit status of a wrapped git process
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("git exited with status %d", e.code)
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the profiles file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
