package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProfileSelect(t *testing.T) {
	names := []string{"home", "work"}

	prompt := newProfileSelect("Switch to profile:", names, "work")
	require.Equal(t, names, prompt.Options)
	require.Equal(t, "work", prompt.Default)

	// active may name a profile that was removed from the file
	prompt = newProfileSelect("Switch to profile:", names, "gone")
	require.Nil(t, prompt.Default)

	prompt = newProfileSelect("Switch to profile:", names, "")
	require.Nil(t, prompt.Default)
}
