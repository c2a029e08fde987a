package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/revpush/internal/git"
)

// NewTestGitClient creates a new git client in a temporary repository with an
// initial commit on main
func NewTestGitClient(t *testing.T) *git.Client {
	tempDir := t.TempDir()

	Git(t, tempDir, "init", "--initial-branch=main")
	Git(t, tempDir, "config", "user.email", "test@example.com")
	Git(t, tempDir, "config", "user.name", "test")

	gitClient, err := git.NewClientAt(tempDir)
	require.NoError(t, err)

	CreateCommit(t, gitClient, "Initial commit")

	return gitClient
}

// Git runs a git command in dir and fails the test on error
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
	return strings.TrimSpace(string(output))
}

// CreateCommit writes a file named after the message and commits it,
// returning the commit hash
func CreateCommit(t *testing.T, gitClient *git.Client, message string) string {
	t.Helper()

	name := strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' {
			return '-'
		}
		return r
	}, message)
	testFile := filepath.Join(gitClient.GitRoot(), fmt.Sprintf("file-%s.txt", name))
	err := os.WriteFile(testFile, []byte(message+"\n"), 0644)
	require.NoError(t, err)

	Git(t, gitClient.GitRoot(), "add", ".")
	Git(t, gitClient.GitRoot(), "commit", "-m", message)

	return Git(t, gitClient.GitRoot(), "rev-parse", "HEAD")
}

// GenerateChangeID fabricates a change identifier in the shape the review
// server's commit-msg hook produces: "I" followed by 40 hex characters.
func GenerateChangeID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "") +
		strings.ReplaceAll(uuid.New().String(), "-", "")
	return "I" + hex[:40]
}

// InstallFakeCommitMsgHook installs a commit-msg hook that stamps the given
// change identifier into every commit that does not already carry one,
// mimicking the server-provided hook.
func InstallFakeCommitMsgHook(t *testing.T, gitClient *git.Client, changeID string) {
	t.Helper()

	hooksDir := filepath.Join(gitClient.GitRoot(), ".git", "hooks")
	err := os.MkdirAll(hooksDir, 0755)
	require.NoError(t, err)

	script := fmt.Sprintf(`#!/bin/sh
grep -q "^Change-Id:" "$1" || printf "\nChange-Id: %s\n" >> "$1"
`, changeID)
	err = os.WriteFile(filepath.Join(hooksDir, "commit-msg"), []byte(script), 0755)
	require.NoError(t, err)
}
