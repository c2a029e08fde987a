package hook

import (
	"github.com/spf13/cobra"

	"github.com/bjulian5/revpush/internal/common"
	"github.com/bjulian5/revpush/internal/git"
	"github.com/bjulian5/revpush/internal/hooks"
	"github.com/bjulian5/revpush/internal/review"
	"github.com/bjulian5/revpush/internal/ui"
)

// InstallCommand downloads the commit-msg hook from the review server
type InstallCommand struct {
	// Flags
	Alias string // Configuration alias to read the server URL from

	Git *git.Client
}

// Register registers the install command
func (c *InstallCommand) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Download and install the server's commit-msg hook",
		Long: `Download the commit-msg hook from the configured review server and
install it into .git/hooks.

The hook stamps a change identifier into every commit message; submissions
fail without it. An existing commit-msg hook is never overwritten.

Example:
  revpush hook install`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, err = common.InitClient()
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run()
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&c.Alias, "alias", "", "Read the server URL from review.<alias>.url")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *InstallCommand) Run() error {
	config, err := review.LoadConfig(c.Git, c.Alias)
	if err != nil {
		return err
	}

	if hooks.CommitMsgInstalled(c.Git.GitRoot()) {
		ui.Warning("commit-msg hook is already installed")
		return nil
	}

	ui.Infof("Downloading %s", config.HookURL())
	if err := hooks.InstallCommitMsg(c.Git.GitRoot(), config.HookURL()); err != nil {
		return err
	}

	ui.Success("commit-msg hook installed")
	return nil
}
