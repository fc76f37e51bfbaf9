package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOutputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outputs",
		Short: "Evaluate and list the workspace outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Outputs(cmd.Context())
		},
	}
}
