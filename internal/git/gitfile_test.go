package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/byterings/gid/internal/config"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFile(t *testing.T) {
	content := `# personal settings
[user]
	name = Jane Doe
	email = jane@example.com
[core]
	sshCommand = ssh -i ~/.ssh/work
[remote "origin"]
	url = git@github.com:jane/dotfiles.git
[commit]
	gpgsign
`
	path := filepath.Join(t.TempDir(), "gitconfig")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	pairs, err := ReadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, []config.GitPair{
		{Key: "user.name", Value: "Jane Doe"},
		{Key: "user.email", Value: "jane@example.com"},
		{Key: "core.sshcommand", Value: "ssh -i ~/.ssh/work"},
		{Key: "remote.origin.url", Value: "git@github.com:jane/dotfiles.git"},
		{Key: "commit.gpgsign", Value: "true"},
	}, pairs)
}

func TestReadConfigFile_Missing(t *testing.T) {
	_, err := ReadConfigFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestSectionPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"core", "core"},
		{"Core", "core"},
		{`remote "origin"`, "remote.origin"},
		{`includeIf "gitdir:~/Work/"`, "includeif.gitdir:~/Work/"},
		{`url "a \"b\""`, `url.a "b"`},
		{"Branch.Main", "branch.Main"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, sectionPrefix(tt.in))
		})
	}
}
