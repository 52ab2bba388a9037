// Package app implements the application layer for depcache.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/depcache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/engine/depcache"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolutions  ports.ResolutionLoader
	factory      *depcache.Factory
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolutions ports.ResolutionLoader,
	factory *depcache.Factory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolutions:  resolutions,
		factory:      factory,
		logger:       log,
		workDir:      ".",
	}
}

// WithWorkDir sets the directory configuration is looked up from.
// This is primarily used for testing.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// BuildOptions configuration for the Build method.
// Nil fields keep the configured value.
type BuildOptions struct {
	Resolution    string
	CacheDir      string
	FullNames     *bool
	LintJars      *bool
	Sources       *bool
	Cleanup       *bool
	VerifyDigests *bool
	Manifest      string
	JSON          bool
	Trace         bool
}

// Build caches every artifact of the resolution snapshot and optionally writes a manifest.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	if opts.JSON {
		a.setJSON()
	}

	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	a.applyOverrides(cfg, opts)

	resolution, err := a.resolutions.Load(ctx, cfg.ResolutionFile)
	if err != nil {
		return err
	}

	var overrides []depcache.Option
	if opts.Trace {
		tp := telemetry.NewTracerProvider(a.logger)
		defer func() {
			_ = tp.Shutdown(context.WithoutCancel(ctx))
		}()
		tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName, telemetry.WithTracerProvider(tp))
		overrides = append(overrides, depcache.WithTracer(tracer))
	}

	engine, err := a.factory.New(cfg.Options, overrides...)
	if err != nil {
		return err
	}

	artifacts := make([]ports.Artifact, len(resolution.Artifacts))
	for i, artifact := range resolution.Artifacts {
		artifacts[i] = artifact
	}

	res, err := engine.Build(ctx, artifacts, resolution.LocalFiles)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("cached %d dependencies in %s (%d copied, %d evicted, %d warnings)",
		len(res.Entries), engine.CacheDir(), len(res.Copied), len(res.Evicted), len(res.Warnings)))

	if opts.Manifest == "" {
		return nil
	}

	manifest, err := BuildManifest(ctx, engine)
	if err != nil {
		return err
	}
	if err := WriteManifest(a.resolve(opts.Manifest), manifest); err != nil {
		return err
	}
	a.logger.Info("wrote manifest " + opts.Manifest)
	return nil
}

// Clean deletes the cached archives, processor sidecars, and digest index from the configured
// cache directory, then the directory itself once nothing else is left in it. A directory that
// is, or contains, the project root or the working directory is refused.
func (a *App) Clean(_ context.Context, cacheDir string) error {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	dir := cfg.Options.CacheDir
	if cacheDir != "" {
		dir = a.resolve(cacheDir)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "path", dir)
	}

	for _, protected := range []string{cfg.Options.ProjectRoot, a.workDir} {
		if protected == "" {
			continue
		}
		if abs, err := filepath.Abs(protected); err == nil && containsPath(dir, abs) {
			return zerr.With(zerr.With(domain.ErrUnsafeCacheDir, "path", dir), "project", abs)
		}
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		a.logger.Info("nothing to clean in " + dir)
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirReadFailed.Error()), "path", dir)
	}

	a.logger.Info(fmt.Sprintf("removing %s...", dir))
	var errs error
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !domain.IsCacheOwned(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "path", path))
		}
	}
	if errs != nil {
		return errs
	}

	// Fails while foreign files remain, which keeps them.
	if err := os.Remove(dir); err != nil {
		a.logger.Warn(fmt.Sprintf("kept %s: it holds files depcache did not write", dir))
		return nil
	}
	a.logger.Info(fmt.Sprintf("removed %s", dir))
	return nil
}

// containsPath reports whether path is dir or lies below it.
func containsPath(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && filepath.IsLocal(rel)
}

func (a *App) applyOverrides(cfg *domain.Config, opts BuildOptions) {
	if opts.Resolution != "" {
		cfg.ResolutionFile = a.resolve(opts.Resolution)
	}
	if opts.CacheDir != "" {
		cfg.Options.CacheDir = a.resolve(opts.CacheDir)
	}
	override(&cfg.Options.UseFullDepName, opts.FullNames)
	override(&cfg.Options.ExtractLintJars, opts.LintJars)
	override(&cfg.Options.FetchSources, opts.Sources)
	override(&cfg.Options.Cleanup, opts.Cleanup)
	override(&cfg.Options.VerifyDigests, opts.VerifyDigests)
}

// resolve anchors a path given on the command line at the working directory.
func (a *App) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(filepath.Join(a.workDir, path))
	if err != nil {
		return path
	}
	return abs
}

func (a *App) setJSON() {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(true)
	}
}

func override(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}
