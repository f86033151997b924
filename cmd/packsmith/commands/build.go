package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/packsmith/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Fetch assets and write the server and client packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			outputDir, _ := cmd.Flags().GetString("output")

			_, err := c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath: configPath,
				OutputDir:  outputDir,
			})
			return err
		},
	}
}
