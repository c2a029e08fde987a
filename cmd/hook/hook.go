package hook

import (
	"github.com/spf13/cobra"
)

// Command is the parent for hook management subcommands
type Command struct{}

// Register registers the hook command and its subcommands
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the review server's commit-msg hook",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cobraCmd.Help()
		},
	}

	(&InstallCommand{}).Register(cmd)

	parent.AddCommand(cmd)
}
