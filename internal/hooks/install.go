package hooks

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// commitMsgHook is the hook the review server depends on. It stamps a
// Change-Id trailer into every commit message; this tool only verifies its
// effect and never generates identifiers itself.
const commitMsgHook = "commit-msg"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// hookPath returns the path of the commit-msg hook in a repository
func hookPath(gitRoot string) string {
	return filepath.Join(gitRoot, ".git", "hooks", commitMsgHook)
}

// CommitMsgInstalled reports whether the commit-msg hook is present and
// executable
func CommitMsgInstalled(gitRoot string) bool {
	info, err := os.Stat(hookPath(gitRoot))
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}

// InstallCommitMsg downloads the commit-msg hook from the review server and
// installs it. Refuses to overwrite an existing hook: whatever is already
// there was not put there by this tool.
func InstallCommitMsg(gitRoot string, hookURL string) error {
	path := hookPath(gitRoot)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("a %s hook already exists at %s; remove it first if you want to replace it", commitMsgHook, path)
	}

	resp, err := httpClient.Get(hookURL)
	if err != nil {
		return fmt.Errorf("failed to download hook from %s: %w", hookURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download hook from %s: server returned %s", hookURL, resp.Status)
	}

	script, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read hook body: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	if err := os.WriteFile(path, script, 0755); err != nil {
		return fmt.Errorf("failed to write hook: %w", err)
	}

	return nil
}
