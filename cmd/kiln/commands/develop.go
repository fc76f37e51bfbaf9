package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDevelopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "develop",
		Short: "Enter the development shell for the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Develop(cmd.Context())
		},
	}
}
