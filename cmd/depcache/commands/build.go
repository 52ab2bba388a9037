package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/depcache/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Cache every dependency of the resolution snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			resolution, _ := flags.GetString("resolution")
			cacheDir, _ := flags.GetString("cache-dir")
			manifest, _ := flags.GetString("manifest")
			jsonLogs, _ := flags.GetBool("json")
			trace, _ := flags.GetBool("trace")

			opts := app.BuildOptions{
				Resolution:    resolution,
				CacheDir:      cacheDir,
				FullNames:     changedBool(flags, "full-names"),
				LintJars:      changedBool(flags, "lint-jars"),
				Sources:       changedBool(flags, "sources"),
				VerifyDigests: changedBool(flags, "verify-digests"),
				Manifest:      manifest,
				JSON:          jsonLogs,
				Trace:         trace,
			}
			if noCleanup := changedBool(flags, "no-cleanup"); noCleanup != nil {
				cleanup := !*noCleanup
				opts.Cleanup = &cleanup
			}

			return c.app.Build(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringP("resolution", "r", "", "Resolution snapshot to cache (overrides depcache.yaml)")
	cmd.Flags().StringP("cache-dir", "d", "", "Cache directory (overrides depcache.yaml)")
	cmd.Flags().Bool("full-names", false, "Include the group in cache file names")
	cmd.Flags().Bool("lint-jars", false, "Extract lint jars bundled in .aar archives")
	cmd.Flags().Bool("sources", false, "Fetch and cache source archives")
	cmd.Flags().Bool("no-cleanup", false, "Keep cache entries not referenced by this build")
	cmd.Flags().Bool("verify-digests", false, "Report cache name collisions between different artifacts")
	cmd.Flags().StringP("manifest", "m", "", "Write a JSON manifest of the cached dependencies to this file")
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	cmd.Flags().Bool("trace", false, "Log a timing line for every cache phase")
	return cmd
}

// changedBool returns the flag value only when it was set on the command line.
func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetBool(name)
	return &v
}
