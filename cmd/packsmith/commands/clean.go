package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/packsmith/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the build output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			outputDir, _ := cmd.Flags().GetString("output")
			cache, _ := cmd.Flags().GetBool("cache")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: configPath,
				OutputDir:  outputDir,
				Cache:      cache,
			})
		},
	}

	cmd.Flags().Bool("cache", false, "Also remove the catalog resolution cache")

	return cmd
}
