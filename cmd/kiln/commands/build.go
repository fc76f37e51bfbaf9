package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the workspace package and print its output path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			install, _ := cmd.Flags().GetString("install")
			image, _ := cmd.Flags().GetBool("image")
			return c.app.Build(cmd.Context(), app.BuildOptions{
				Install: install,
				Image:   image,
			})
		},
	}
	cmd.Flags().String("install", "", "Copy the built binaries into this directory")
	cmd.Flags().Bool("image", false, "Assemble the runtime container context after the build")
	return cmd
}
