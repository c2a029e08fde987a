package pushto

import (
	"github.com/spf13/cobra"

	"github.com/bjulian5/revpush/cmd/push"
	"github.com/bjulian5/revpush/internal/common"
	"github.com/bjulian5/revpush/internal/git"
)

// Command submits the current branch for review against a named
// configuration alias. This is the legacy entry point for repositories that
// talk to more than one review server.
type Command struct {
	Git *git.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pushto <alias> [message...]",
		Short: "Submit the current branch using an aliased configuration",
		Long: `Submit the current feature branch for review, reading configuration
from review.<alias>.* instead of review.*.

Example:
  git config review.staging.remote staging
  git config review.staging.branch main
  git config review.staging.url https://staging-review.example.com
  revpush pushto staging Fix login timeout handling`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, err = common.InitClient()
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return push.Submit(c.Git, args[0], common.JoinMessage(args[1:]))
		},
		SilenceUsage: true,
	}

	parent.AddCommand(cmd)
}
