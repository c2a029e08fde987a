package review

import (
	"fmt"

	"github.com/bjulian5/revpush/internal/git"
)

// Verify runs the submission preconditions in order. Each failure is fatal
// and short-circuits the remaining checks: there is no point inspecting
// merge state against a remote that does not exist.
//
// Checks, in order:
//  1. the server's commit-msg hook is installed
//  2. the configured remote exists
//  3. the base branch exists on that remote
//  4. the working tree and index are clean
//  5. the base branch is merged into the current branch
//  6. the local base branch matches the remote base branch
func (c *Client) Verify() error {
	if !c.hookInstalled(c.git.GitRoot()) {
		return fmt.Errorf("the commit-msg hook is not installed, so commits will not get a %s trailer.\n"+
			"Install it with:\n"+
			"  revpush hook install\n"+
			"or fetch it yourself:\n"+
			"  curl -Lo .git/hooks/commit-msg %s && chmod +x .git/hooks/commit-msg",
			git.ChangeIDTrailer, c.config.HookURL())
	}

	if !c.git.RemoteExists(c.config.Remote) {
		return fmt.Errorf("remote %s is not configured.\nAdd it with:\n  git remote add %s <url>",
			c.config.Remote, c.config.Remote)
	}

	if !c.git.RemoteBranchExists(c.config.Remote, c.config.Branch) {
		return fmt.Errorf("branch %s does not exist on remote %s", c.config.Branch, c.config.Remote)
	}

	dirty, err := c.git.HasUncommittedChanges()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("you have uncommitted changes. Commit or stash them before submitting.")
	}

	merged, err := c.git.IsAncestor(c.config.Branch, "HEAD")
	if err != nil {
		return err
	}
	if !merged {
		return fmt.Errorf("%s has not been merged into %s, so squashing would drop history.\n"+
			"Merge it first:\n  git merge %s", c.config.Branch, c.branch, c.config.Branch)
	}

	localBase, err := c.git.RevParse(c.config.Branch)
	if err != nil {
		return err
	}
	remoteBase, err := c.git.RevParse(c.config.Remote + "/" + c.config.Branch)
	if err != nil {
		return err
	}
	if localBase != remoteBase {
		return fmt.Errorf("local %s is not up to date with %s/%s.\n"+
			"Update it first:\n  git checkout %s && git pull %s %s",
			c.config.Branch, c.config.Remote, c.config.Branch,
			c.config.Branch, c.config.Remote, c.config.Branch)
	}

	return nil
}
