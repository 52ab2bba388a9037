// Command depcache materializes a resolved dependency graph into a stable cache directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/cmd/depcache/commands"
	"go.trai.ch/depcache/internal/app"
	_ "go.trai.ch/depcache/internal/wiring"
)

// ComponentProvider builds the application graph. The returned func releases it.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func resolveComponents(ctx context.Context) (*app.Components, func(), error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	return components, func() {}, err
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, resolveComponents))
}

// run executes the CLI and returns the process exit code.
func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, release, err := provider(ctx)
	if err != nil {
		// No logger without components.
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer release()

	for _, apply := range opts {
		apply(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
