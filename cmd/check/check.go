package check

import (
	"github.com/spf13/cobra"

	"github.com/bjulian5/revpush/internal/common"
	"github.com/bjulian5/revpush/internal/git"
	"github.com/bjulian5/revpush/internal/review"
	"github.com/bjulian5/revpush/internal/ui"
)

// Command runs the submission preconditions without submitting anything
type Command struct {
	// Flags
	Alias string // Configuration alias to check instead of review.*

	Git *git.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the repository is ready to submit",
		Long: `Run the submission preconditions and report the resolved configuration
without creating or pushing anything.

Example:
  revpush check
  revpush check --alias staging`,
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

	cmd.Flags().StringVar(&c.Alias, "alias", "", "Check the review.<alias>.* configuration")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run() error {
	config, err := review.LoadConfig(c.Git, c.Alias)
	if err != nil {
		return err
	}

	client, err := review.NewClient(c.Git, config)
	if err != nil {
		return err
	}

	if err := client.Verify(); err != nil {
		return err
	}

	ui.Success("All preconditions satisfied")
	ui.Print(ui.RenderSeparator(0))
	ui.Print(ui.RenderKeyValueList(map[string]string{
		"Branch": client.Branch(),
		"Remote": config.Remote,
		"Base":   config.Branch,
		"Server": config.URL,
		"Suffix": config.Suffix,
	}, []string{"Branch", "Remote", "Base", "Server", "Suffix"}))

	return nil
}
