package review

import (
	"fmt"
	"strings"

	"github.com/bjulian5/revpush/internal/git"
	"github.com/bjulian5/revpush/internal/ui"
)

// Result summarizes a successful submission
type Result struct {
	Branch         string // feature branch the run started and ended on
	Remote         string
	TargetRef      string // review-intake ref the change was pushed to
	RevisionBranch string
	ChangeID       string
	URL            string // review URL for the change
}

// Submit runs the submission sequence: discover the last revision branch,
// create the next one, squash the feature branch into it, commit, verify the
// change identifier, and push both the review ref and the revision branch.
//
// Steps are strictly ordered and nothing is retried or rolled back; a
// revision branch that was created before a later step failed stays in place
// for the operator to inspect.
func (c *Client) Submit(message string) (*Result, error) {
	cfg := c.config

	ui.Infof("Fetching %s", cfg.Remote)
	if err := c.git.FetchPrune(cfg.Remote); err != nil {
		return nil, err
	}

	branches, err := c.git.ListRemoteBranches(cfg.Remote)
	if err != nil {
		return nil, err
	}
	last := LastRevisionBranch(branches, c.branch, cfg.Suffix)

	// A first revision has no prior commit message to reuse, so the caller
	// must supply one. Checked before anything is mutated.
	if last == "" && strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("no revision branches exist for %s yet; a commit message is required.\n"+
			"Usage: revpush push <message>", c.branch)
	}

	stat, err := c.git.DiffStat(cfg.Branch, c.branch)
	if err != nil {
		return nil, err
	}
	ui.Println("")
	ui.Header(fmt.Sprintf("Changes %s..%s", cfg.Branch, c.branch))
	ui.Print(stat)
	ui.Println("")

	if err := c.git.Checkout(cfg.Branch); err != nil {
		return nil, err
	}

	next, err := NextRevisionBranch(c.branch, cfg.Suffix, last)
	if err != nil {
		return nil, err
	}

	if err := c.git.CreateBranch(next); err != nil {
		return nil, err
	}
	if err := c.git.Checkout(next); err != nil {
		return nil, err
	}

	if err := c.git.SquashMerge(c.branch); err != nil {
		return nil, err
	}
	if err := c.git.StageAll(); err != nil {
		return nil, err
	}

	// For a repeat submission the prior revision's full message wins over
	// whatever the caller supplied: that is how the change identifier and
	// the review narrative carry across revisions.
	priorID := ""
	if last != "" {
		prior, err := c.git.CommitMessage(cfg.Remote + "/" + last)
		if err != nil {
			return nil, err
		}
		message = strings.TrimRight(prior, "\n")
		priorID = git.ChangeID(prior)
		ui.Infof("Reusing commit message from %s/%s", cfg.Remote, last)
	}

	if err := c.git.Commit(message); err != nil {
		return nil, err
	}

	stat, err = c.git.DiffStat(cfg.Branch, next)
	if err != nil {
		return nil, err
	}
	ui.Println("")
	ui.Header(fmt.Sprintf("Changes %s..%s", cfg.Branch, next))
	ui.Print(stat)
	ui.Println("")

	head, err := c.git.CommitMessage("HEAD")
	if err != nil {
		return nil, err
	}
	changeID := git.ChangeID(head)
	if changeID == "" {
		return nil, fmt.Errorf("the new commit has no %s trailer, so the commit-msg hook did not run.\n"+
			"Install it with:\n  revpush hook install", git.ChangeIDTrailer)
	}
	if priorID != "" && changeID != priorID {
		return nil, fmt.Errorf("change identifier mismatch between revisions.\n"+
			"  expected: %s\n"+
			"  actual:   %s\n"+
			"The new commit would open a separate review instead of updating the existing one.",
			priorID, changeID)
	}

	if err := c.git.PushRef(cfg.Remote, "HEAD:"+cfg.TargetRef()); err != nil {
		return nil, err
	}
	if err := c.git.PushBranch(cfg.Remote, next); err != nil {
		return nil, err
	}

	if err := c.git.Checkout(c.branch); err != nil {
		return nil, err
	}

	return &Result{
		Branch:         c.branch,
		Remote:         cfg.Remote,
		TargetRef:      cfg.TargetRef(),
		RevisionBranch: next,
		ChangeID:       changeID,
		URL:            cfg.ReviewURL(changeID),
	}, nil
}
