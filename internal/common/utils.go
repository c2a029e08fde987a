package common

import (
	"fmt"
	"strings"

	"github.com/bjulian5/revpush/internal/git"
	"github.com/bjulian5/revpush/internal/ui"
)

// InitClient initializes the git client.
// Returns an error that is suitable for use in PreRunE hooks.
func InitClient() (*git.Client, error) {
	gitClient, err := git.NewClient()
	if err != nil {
		ui.Error("Not in a git repository")
		return nil, fmt.Errorf("git client initialization failed: %w", err)
	}
	return gitClient, nil
}

// JoinMessage joins the positional arguments of a push command into a single
// commit message, the way the shell would have passed it unquoted.
func JoinMessage(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
