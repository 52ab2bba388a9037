// Package commands wires the depcache subcommands onto a cobra root.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/depcache/internal/app"
	"go.trai.ch/depcache/internal/build"
)

// Application is the subset of app.App the commands drive.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Clean(ctx context.Context, cacheDir string) error
}

// CLI is the depcache command tree.
type CLI struct {
	app  Application
	root *cobra.Command
}

// New builds the command tree around a.
func New(a Application) *CLI {
	c := &CLI{app: a}
	c.root = &cobra.Command{
		Use:   "depcache",
		Short: "Materialize resolved third-party dependencies into a stable local cache",
		Long: "depcache copies every jar and aar of a resolution snapshot into one cache directory,\n" +
			"extracts lint jars and annotation processor declarations next to them,\n" +
			"and evicts entries the snapshot no longer references.",
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.root.SetVersionTemplate(versionLine() + "\n")

	c.root.InitDefaultHelpFlag()
	c.root.InitDefaultVersionFlag()
	flags := c.root.Flags()
	flags.Lookup("help").Usage = "Show help for command"
	flags.Lookup("version").Usage = "Print the application version"

	for _, sub := range []func() *cobra.Command{c.newBuildCmd, c.newCleanCmd, c.newVersionCmd} {
		c.root.AddCommand(sub())
	}
	return c
}

// Execute runs the command selected by the configured arguments.
func (c *CLI) Execute(ctx context.Context) error {
	return c.root.ExecuteContext(ctx)
}

// SetArgs overrides os.Args[1:].
func (c *CLI) SetArgs(args []string) {
	c.root.SetArgs(args)
}

// SetOutput redirects command output and errors.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.root.SetOut(out)
	c.root.SetErr(errOut)
}
