package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the dependency cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			return c.app.Clean(cmd.Context(), cacheDir)
		},
	}

	cmd.Flags().StringP("cache-dir", "d", "", "Cache directory (overrides depcache.yaml)")
	return cmd
}
