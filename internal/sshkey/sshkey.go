package sshkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/byterings/gid/internal/platform"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh"
)

// CommandKey is the git key a profile's SSH key is stored under
const CommandKey = "core.sshCommand"

// Command builds the core.sshCommand value that pins ssh to keyPath
func Command(keyPath string) string {
	return shellquote.Join("ssh", "-i", platform.ToSlash(keyPath), "-o", "IdentitiesOnly=yes")
}

// KeyFromCommand extracts the -i argument of an ssh command line.
// Returns "" when the command does not name an identity file.
func KeyFromCommand(command string) string {
	words, err := shellquote.Split(command)
	if err != nil {
		return ""
	}
	for i, w := range words {
		if w == "-i" && i+1 < len(words) {
			return words[i+1]
		}
		if len(w) > 2 && w[:2] == "-i" {
			return w[2:]
		}
	}
	return ""
}

// Validate checks that path names a readable key file and returns the
// path with ~ expanded. secure is false when group or others can read it.
func Validate(path string) (expanded string, secure bool, err error) {
	expanded, err = platform.ExpandTilde(path)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, fmt.Errorf("key file does not exist: %s", expanded)
		}
		return "", false, fmt.Errorf("failed to access key file: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("path is a directory, not a file: %s", expanded)
	}

	secure, err = platform.CheckFilePermissions(expanded)
	if err != nil {
		return "", false, err
	}
	return expanded, secure, nil
}

// Fingerprint returns the SHA256 fingerprint of the public half of keyPath
func Fingerprint(keyPath string) (string, error) {
	data, err := os.ReadFile(keyPath + ".pub")
	if err != nil {
		return "", fmt.Errorf("failed to read public key: %w", err)
	}
	pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse public key: %w", err)
	}
	return ssh.FingerprintSHA256(pub), nil
}

// PublicKey returns the authorized_keys line for keyPath
func PublicKey(keyPath string) (string, error) {
	content, err := os.ReadFile(keyPath + ".pub")
	if err != nil {
		return "", fmt.Errorf("failed to read public key: %w", err)
	}
	return string(content), nil
}

// Generate creates ~/.ssh/gid_<profile>, using ssh-keygen when available
func Generate(profile string) (privateKeyPath string, err error) {
	sshDir, err := platform.GetSSHDir()
	if err != nil {
		return "", err
	}
	return GenerateIn(sshDir, profile)
}

// KeyFileName is the private key file name generated for profile
func KeyFileName(profile string) string {
	return "gid_" + keyNameReplacer.Replace(profile)
}

var keyNameReplacer = strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_")

// GenerateIn creates the key pair KeyFileName(profile) inside dir
func GenerateIn(dir, profile string) (string, error) {
	if err := platform.MkdirSecure(dir); err != nil {
		return "", fmt.Errorf("failed to create .ssh directory: %w", err)
	}

	privateKeyPath := filepath.Join(dir, KeyFileName(profile))
	if _, err := os.Stat(privateKeyPath); err == nil {
		return "", fmt.Errorf("key already exists at %s", privateKeyPath)
	}
	comment := profile + "@gid"

	if platform.HasCommand("ssh-keygen") {
		cmd := exec.Command("ssh-keygen", "-q", "-t", "ed25519", "-f", privateKeyPath, "-N", "", "-C", comment)
		if out, err := cmd.CombinedOutput(); err != nil {
			return "", fmt.Errorf("ssh-keygen failed: %s: %w", string(out), err)
		}
		return privateKeyPath, nil
	}

	return privateKeyPath, generateEd25519(privateKeyPath, comment)
}

func generateEd25519(privateKeyPath, comment string) error {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	block, err := ssh.MarshalPrivateKey(privKey, comment)
	if err != nil {
		return fmt.Errorf("failed to marshal private key: %w", err)
	}
	sshPubKey, err := ssh.NewPublicKey(pubKey)
	if err != nil {
		return fmt.Errorf("failed to convert public key: %w", err)
	}

	f, err := platform.OpenFileSecure(privateKeyPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
	if err != nil {
		return fmt.Errorf("failed to create private key file: %w", err)
	}
	defer f.Close()
	if err := pem.Encode(f, block); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	line := ssh.MarshalAuthorizedKey(sshPubKey)
	line = append(line[:len(line)-1], []byte(" "+comment+"\n")...)
	if err := os.WriteFile(privateKeyPath+".pub", line, 0644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}
	return nil
}
