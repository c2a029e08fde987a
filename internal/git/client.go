package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Client provides git operations for a repository
type Client struct {
	gitRoot string
}

// NewClient creates a new git client for the current directory
func NewClient() (*Client, error) {
	gitRoot, err := getGitRoot("")
	if err != nil {
		return nil, err
	}
	return &Client{gitRoot: gitRoot}, nil
}

// NewClientAt creates a new git client rooted at the given directory.
// Used by tests that operate on temporary repositories.
func NewClientAt(dir string) (*Client, error) {
	gitRoot, err := getGitRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Client{gitRoot: gitRoot}, nil
}

// GitRoot returns the root directory of the git repository
func (c *Client) GitRoot() string {
	return c.gitRoot
}

func (c *Client) git(args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.gitRoot
	return cmd
}

// CurrentBranch returns the name of the currently checked-out branch.
// Fails on a detached HEAD, which has no symbolic ref.
func (c *Client) CurrentBranch() (string, error) {
	output, err := c.git("symbolic-ref", "--short", "-q", "HEAD").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get current branch (detached HEAD?): %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// ConfigGet reads a scalar value from git config.
// Returns an empty string (and no error) if the key is unset.
func (c *Client) ConfigGet(key string) (string, error) {
	output, err := c.git("config", "--get", key).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			// Exit code 1 means the key is not set
			return "", nil
		}
		return "", fmt.Errorf("failed to read config %s: %w", key, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// FetchPrune fetches from the remote and prunes deleted remote branches
func (c *Client) FetchPrune(remote string) error {
	output, err := c.git("fetch", "--prune", remote).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to fetch from %s: %w\nOutput: %s", remote, err, string(output))
	}
	return nil
}

// ListRemoteBranches returns the remote-tracking branch names for the given
// remote, without the "<remote>/" prefix.
func (c *Client) ListRemoteBranches(remote string) ([]string, error) {
	output, err := c.git("branch", "-r", "--format=%(refname:short)").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list remote branches: %w", err)
	}

	prefix := remote + "/"
	var branches []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		name := strings.TrimSpace(line)
		if name == "" || !strings.HasPrefix(name, prefix) {
			continue
		}
		name = strings.TrimPrefix(name, prefix)
		if name == "HEAD" {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}

// RemoteExists checks whether the named remote is configured
func (c *Client) RemoteExists(remote string) bool {
	return c.git("remote", "get-url", remote).Run() == nil
}

// RemoteBranchExists checks whether a branch exists on the remote.
// This asks the remote directly, so it also verifies reachability.
func (c *Client) RemoteBranchExists(remote string, branch string) bool {
	return c.git("ls-remote", "--exit-code", "--heads", remote, branch).Run() == nil
}

// HasUncommittedChanges checks if there are any uncommitted changes in the working directory
func (c *Client) HasUncommittedChanges() (bool, error) {
	output, err := c.git("status", "--porcelain").Output()
	if err != nil {
		return false, fmt.Errorf("failed to check git status: %w", err)
	}
	return len(strings.TrimSpace(string(output))) > 0, nil
}

// IsAncestor reports whether ancestor is reachable from ref
func (c *Client) IsAncestor(ancestor string, ref string) (bool, error) {
	err := c.git("merge-base", "--is-ancestor", ancestor, ref).Run()
	if err == nil {
		return true, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("failed to check ancestry of %s in %s: %w", ancestor, ref, err)
}

// RevParse resolves a ref to a commit hash
func (c *Client) RevParse(ref string) (string, error) {
	output, err := c.git("rev-parse", ref).Output()
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", ref, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Checkout checks out the specified branch
func (c *Client) Checkout(name string) error {
	output, err := c.git("checkout", name).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w\nOutput: %s", name, err, string(output))
	}
	return nil
}

// CreateBranch creates a new branch at HEAD without checking it out
func (c *Client) CreateBranch(name string) error {
	if err := c.git("branch", name).Run(); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// SquashMerge merges the given branch into the current branch as a single
// staged change, without committing
func (c *Client) SquashMerge(branch string) error {
	output, err := c.git("merge", "--squash", branch).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to squash-merge %s: %w\nOutput: %s", branch, err, string(output))
	}
	return nil
}

// StageAll stages all changes in the working tree
func (c *Client) StageAll() error {
	if err := c.git("add", "-A").Run(); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message. The repository's
// commit-msg hook runs as part of this, so the recorded message may gain
// trailers the caller did not supply.
func (c *Client) Commit(message string) error {
	output, err := c.git("commit", "-m", message).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to commit: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// CommitMessage returns the full commit message (subject and body) of the
// last commit on the given ref
func (c *Client) CommitMessage(ref string) (string, error) {
	output, err := c.git("log", "--format=%B", "-n", "1", ref).Output()
	if err != nil {
		return "", fmt.Errorf("failed to read commit message of %s: %w", ref, err)
	}
	return string(output), nil
}

// DiffStat returns a human-readable summary of the differences between two refs
func (c *Client) DiffStat(from string, to string) (string, error) {
	output, err := c.git("diff", "--stat", from+".."+to).Output()
	if err != nil {
		return "", fmt.Errorf("failed to diff %s..%s: %w", from, to, err)
	}
	return strings.TrimRight(string(output), "\n"), nil
}

// PushRef pushes HEAD to an explicit refspec on the remote
func (c *Client) PushRef(remote string, refspec string) error {
	output, err := c.git("push", remote, refspec).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to push %s to %s: %w\nOutput: %s", refspec, remote, err, string(output))
	}
	return nil
}

// PushBranch pushes a branch to the remote and sets it up to track
func (c *Client) PushBranch(remote string, branch string) error {
	output, err := c.git("push", "-u", remote, branch).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w\nOutput: %s", branch, err, string(output))
	}
	return nil
}

// getGitRoot is a private helper to get the git root directory
func getGitRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	if dir != "" {
		cmd.Dir = dir
	}
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
