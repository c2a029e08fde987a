package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjulian5/revpush/cmd/check"
	"github.com/bjulian5/revpush/cmd/hook"
	"github.com/bjulian5/revpush/cmd/push"
	"github.com/bjulian5/revpush/cmd/pushto"
	"github.com/bjulian5/revpush/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "revpush",
	Short: "Submit numbered revision branches for code review",
	Long: `Revpush submits the current feature branch for review.

Each submission squashes the branch's changes onto a fresh, numbered
revision branch (<feature>_<suffix>_<n>), pushes it to the review server's
intake ref, and carries the change identifier forward so the server groups
all revisions as one review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it. Every
// failure surfaces here: print the message, exit non-zero. No error is
// recovered anywhere below.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	// Register all commands
	commands := []Command{
		&push.Command{},
		&pushto.Command{},
		&check.Command{},
		&hook.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
