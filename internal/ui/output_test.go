package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestPrintProfilesList(t *testing.T) {
	buf := captureOutput(t)

	PrintProfilesList([]string{"personal", "work"}, "work")
	require.Equal(t, "  personal\n→ work\n", buf.String())
}

func TestPrintProfilesList_NoActive(t *testing.T) {
	buf := captureOutput(t)

	PrintProfilesList([]string{"work"}, "")
	require.Contains(t, buf.String(), "  work\n")
	require.Contains(t, buf.String(), "No active profile set")
}

func TestPrintProfilesList_Empty(t *testing.T) {
	buf := captureOutput(t)

	PrintProfilesList(nil, "")
	require.Contains(t, buf.String(), "No profiles configured yet.")
}

func TestMessages(t *testing.T) {
	buf := captureOutput(t)

	Success("done")
	Error("failed")
	Info("note")
	Warning("careful")
	require.Equal(t, "✓ done\n✗ failed\nℹ note\n⚠ careful\n", buf.String())
}

func TestIsValidEmail(t *testing.T) {
	require.True(t, isValidEmail("jane@example.com"))
	require.False(t, isValidEmail("jane"))
	require.False(t, isValidEmail("jane@localhost"))
}
