package push

import (
	"github.com/spf13/cobra"

	"github.com/bjulian5/revpush/internal/common"
	"github.com/bjulian5/revpush/internal/git"
	"github.com/bjulian5/revpush/internal/review"
	"github.com/bjulian5/revpush/internal/ui"
)

// Command submits the current branch for review
type Command struct {
	Git *git.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "push [message...]",
		Short: "Submit the current branch for review",
		Long: `Submit the current feature branch for review.

The branch's changes are squashed onto the next numbered revision branch
and pushed to the review server. The commit message is required for the
first revision of a branch; later revisions silently reuse the previous
revision's message so the change identifier is preserved.

Example:
  revpush push Fix login timeout handling
  revpush push                              # later revisions`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, err = common.InitClient()
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(common.JoinMessage(args))
		},
		SilenceUsage: true,
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(message string) error {
	return Submit(c.Git, "", message)
}

// Submit resolves configuration for the given alias, verifies preconditions,
// runs the submission, and prints the summary. Shared with the pushto
// command.
func Submit(gitClient *git.Client, alias string, message string) error {
	config, err := review.LoadConfig(gitClient, alias)
	if err != nil {
		return err
	}

	client, err := review.NewClient(gitClient, config)
	if err != nil {
		return err
	}

	if err := client.Verify(); err != nil {
		return err
	}
	ui.Success("All preconditions satisfied")

	result, err := client.Submit(message)
	if err != nil {
		return err
	}

	ui.Println("")
	ui.Print(ui.RenderBox("Submitted for review", ui.RenderKeyValueList(map[string]string{
		"Branch":   result.Branch,
		"Remote":   result.Remote,
		"Target":   result.TargetRef,
		"Revision": result.RevisionBranch,
		"Change":   result.ChangeID,
		"Review":   ui.Highlight(result.URL),
	}, []string{"Branch", "Remote", "Target", "Revision", "Change", "Review"})))

	return nil
}
