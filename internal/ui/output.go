package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Out receives everything this package prints
var Out io.Writer = os.Stdout

var (
	styled bool

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	activeStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// InitStyles enables colored output when stdout is a terminal and NO_COLOR is unset
func InitStyles(enable bool) {
	styled = enable && os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))
	if styled {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func render(s lipgloss.Style, text string) string {
	if !styled {
		return text
	}
	return s.Render(text)
}

// PrintProfilesList prints profile names, marking the active one
func PrintProfilesList(names []string, active string) {
	if len(names) == 0 {
		fmt.Fprintln(Out, "No profiles configured yet.")
		fmt.Fprintln(Out, "\nAdd your first profile with: gid add <name>")
		return
	}

	for _, name := range names {
		if name == active {
			fmt.Fprintf(Out, "→ %s\n", render(activeStyle, name))
			continue
		}
		fmt.Fprintf(Out, "  %s\n", name)
	}

	if active == "" {
		fmt.Fprintln(Out, render(mutedStyle, "\nNo active profile set. Use 'gid use <name>' to set one."))
	}
}

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Fprintln(Out, render(successStyle, "✓ "+message))
}

// Error prints an error message
func Error(message string) {
	fmt.Fprintln(Out, render(errorStyle, "✗ "+message))
}

// Info prints an info message
func Info(message string) {
	fmt.Fprintln(Out, render(infoStyle, "ℹ "+message))
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Fprintln(Out, render(warningStyle, "⚠ "+message))
}
