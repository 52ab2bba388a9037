package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/cmd/depcache/commands"
	"go.trai.ch/depcache/internal/app"
	"go.trai.ch/depcache/internal/build"
)

type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) error
	cleanFunc func(ctx context.Context, cacheDir string) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, cacheDir string) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, cacheDir)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"build",
			"--resolution", "snapshot.yaml",
			"-d", "out/cache",
			"--full-names",
			"--lint-jars=false",
			"--no-cleanup",
			"--manifest", "deps.json",
			"--json",
			"--trace",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "snapshot.yaml", captured.Resolution)
		assert.Equal(t, "out/cache", captured.CacheDir)
		require.NotNil(t, captured.FullNames)
		assert.True(t, *captured.FullNames)
		require.NotNil(t, captured.LintJars)
		assert.False(t, *captured.LintJars)
		require.NotNil(t, captured.Cleanup)
		assert.False(t, *captured.Cleanup)
		assert.Equal(t, "deps.json", captured.Manifest)
		assert.True(t, captured.JSON)
		assert.True(t, captured.Trace)
	})

	t.Run("leaves unset flags to the configuration", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Nil(t, captured.FullNames)
		assert.Nil(t, captured.LintJars)
		assert.Nil(t, captured.Sources)
		assert.Nil(t, captured.Cleanup)
		assert.Nil(t, captured.VerifyDigests)
		assert.Empty(t, captured.Manifest)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"build", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		assert.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Clean(t *testing.T) {
	var captured string
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context, cacheDir string) error {
			captured = cacheDir
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "--cache-dir", "tmp/cache"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Equal(t, "tmp/cache", captured)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "depcache version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "depcache version "+build.Version)
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}
