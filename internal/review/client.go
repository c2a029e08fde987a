package review

import (
	"fmt"

	"github.com/bjulian5/revpush/internal/hooks"
)

// GitClient defines the git operations needed by the review client
type GitClient interface {
	GitRoot() string
	CurrentBranch() (string, error)
	ConfigGet(key string) (string, error)
	FetchPrune(remote string) error
	ListRemoteBranches(remote string) ([]string, error)
	RemoteExists(remote string) bool
	RemoteBranchExists(remote string, branch string) bool
	HasUncommittedChanges() (bool, error)
	IsAncestor(ancestor string, ref string) (bool, error)
	RevParse(ref string) (string, error)
	Checkout(name string) error
	CreateBranch(name string) error
	SquashMerge(branch string) error
	StageAll() error
	Commit(message string) error
	CommitMessage(ref string) (string, error)
	DiffStat(from string, to string) (string, error)
	PushRef(remote string, refspec string) error
	PushBranch(remote string, branch string) error
}

// Client carries the state of one submission run: the resolved configuration
// and the feature branch that was checked out when the run started. All
// repository access goes through the GitClient so nothing here depends on
// ambient working-directory state.
type Client struct {
	git    GitClient
	config *Config
	branch string

	// hookInstalled reports whether the server's commit-msg hook is present.
	// Swapped out in tests.
	hookInstalled func(gitRoot string) bool
}

// NewClient creates a review client for the currently checked-out branch
func NewClient(gitClient GitClient, config *Config) (*Client, error) {
	branch, err := gitClient.CurrentBranch()
	if err != nil {
		return nil, err
	}
	if branch == config.Branch {
		return nil, fmt.Errorf("you are on the base branch %s; check out a feature branch before submitting", config.Branch)
	}
	return &Client{
		git:           gitClient,
		config:        config,
		branch:        branch,
		hookInstalled: hooks.CommitMsgInstalled,
	}, nil
}

// Branch returns the feature branch the client was created on
func (c *Client) Branch() string {
	return c.branch
}

// Config returns the resolved configuration
func (c *Client) Config() *Config {
	return c.config
}
