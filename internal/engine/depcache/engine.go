// Package depcache materializes resolved third-party artifacts into a stable on-disk cache,
// extracts the payloads bundled inside them, and evicts entries no longer referenced.
package depcache

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Engine runs one cache pass and answers lookups about it.
//
// An Engine is bound to a single build invocation: Build runs at most once, and the lookups
// only answer for identities ingested by that Build. PathFor and LintJarFor are read-only after
// Build and safe for concurrent use; AnnotationProcessorsFor is safe for concurrent use.
type Engine struct {
	opts     domain.CacheOptions
	root     string
	cacheDir string

	inspector ports.ArchiveInspector
	locator   ports.SourceLocator
	fetcher   ports.SourceFetcher
	index     ports.CacheIndex
	hasher    ports.Hasher
	tracer    ports.Tracer
	logger    ports.Logger

	started atomic.Bool
	built   atomic.Bool

	// Populated by Build, read-only afterwards.
	entries  []domain.CacheEntry
	paths    map[domain.DependencyIdentity]string
	lintJars map[domain.DependencyIdentity]string
	greatest map[domain.VersionlessIdentity]domain.DependencyIdentity

	processorsMu sync.Mutex
	processors   map[domain.DependencyIdentity][]string
	requestGroup singleflight.Group
}

// New creates an Engine for one cache pass. Relative directories in opts resolve against the
// process working directory (ProjectRoot) and ProjectRoot (CacheDir).
func New(
	opts domain.CacheOptions,
	inspector ports.ArchiveInspector,
	locator ports.SourceLocator,
	fetcher ports.SourceFetcher,
	index ports.CacheIndex,
	hasher ports.Hasher,
	tracer ports.Tracer,
	logger ports.Logger,
) (*Engine, error) {
	rootDir := opts.ProjectRoot
	if rootDir == "" {
		rootDir = "."
	}
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", rootDir)
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = domain.DefaultCachePath()
	}
	if !filepath.IsAbs(cacheDir) {
		cacheDir = filepath.Join(root, cacheDir)
	}

	return &Engine{
		opts:       opts,
		root:       root,
		cacheDir:   filepath.Clean(cacheDir),
		inspector:  inspector,
		locator:    locator,
		fetcher:    fetcher,
		index:      index,
		hasher:     hasher,
		tracer:     tracer,
		logger:     logger,
		paths:      make(map[domain.DependencyIdentity]string),
		lintJars:   make(map[domain.DependencyIdentity]string),
		greatest:   make(map[domain.VersionlessIdentity]domain.DependencyIdentity),
		processors: make(map[domain.DependencyIdentity][]string),
	}, nil
}

// CacheDir returns the absolute cache directory.
func (e *Engine) CacheDir() string { return e.cacheDir }

// Build ingests the resolved artifacts and local files, materializes them into the cache
// directory, and sweeps stale entries. It fails with ErrBuildAlreadyRun when called twice.
//
// Unreadable backing files and copy failures abort the pass before the sweep runs. Extraction,
// source, digest, and eviction problems are reported in CacheResult.Warnings.
func (e *Engine) Build(ctx context.Context, artifacts []ports.Artifact, localFiles []string) (*domain.CacheResult, error) {
	if !e.started.CompareAndSwap(false, true) {
		return nil, domain.ErrBuildAlreadyRun
	}

	ctx, span := e.tracer.Start(ctx, "depcache.build", ports.WithAttribute("cache_dir", e.cacheDir))
	defer span.End()

	res, err := e.build(ctx, artifacts, localFiles)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheBuildFailed.Error()), "cache_dir", e.cacheDir)
	}

	span.SetAttribute("entries", len(res.Entries))
	span.SetAttribute("warnings", len(res.Warnings))
	e.entries = res.Entries
	e.built.Store(true)
	return res, nil
}

func (e *Engine) build(ctx context.Context, artifacts []ports.Artifact, localFiles []string) (*domain.CacheResult, error) {
	ids, err := e.ingest(ctx, artifacts, localFiles)
	if err != nil {
		return nil, err
	}

	plan := make([]string, len(ids))
	for i, id := range ids {
		plan[i] = id.Coordinate().String()
	}
	e.tracer.EmitPlan(ctx, plan)

	if err := os.MkdirAll(e.cacheDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", e.cacheDir)
	}

	res := &domain.CacheResult{Entries: make([]domain.CacheEntry, 0, len(ids))}

	if e.opts.FetchSources && len(ids) > 0 {
		if err := e.fetcher.FetchSources(ctx, ids); err != nil {
			e.warn(res, "source fetch", err)
		}
	}

	index := e.loadIndex(res)
	live := make(map[string]struct{}, len(ids))

	if err := e.materializeAll(ctx, ids, live, index, res); err != nil {
		return nil, err
	}

	if e.opts.Cleanup {
		e.sweep(ctx, live, index, res)
	}

	if index != nil {
		e.saveIndex(index, res)
	}
	return res, nil
}

// PathFor returns the cached copy of id, relative to the project root when the cache lives
// inside it.
func (e *Engine) PathFor(id domain.DependencyIdentity) (string, error) {
	if !e.built.Load() {
		return "", domain.ErrBuildNotRun
	}
	path, ok := e.paths[id]
	if !ok {
		return "", zerr.With(domain.ErrDependencyNotFound, "dependency", id.String())
	}
	return e.relPath(path), nil
}

// LintJarFor returns the lint jar extracted from id's archive, if any.
func (e *Engine) LintJarFor(id domain.DependencyIdentity) (string, bool) {
	if !e.built.Load() {
		return "", false
	}
	path, ok := e.lintJars[id]
	if !ok {
		return "", false
	}
	return e.relPath(path), true
}

// Entries returns the entries materialized by Build, in ingestion order.
func (e *Engine) Entries() []domain.CacheEntry {
	if !e.built.Load() {
		return nil
	}
	return slices.Clone(e.entries)
}

// relPath expresses path relative to the project root, or returns it unchanged when it lies
// outside the project.
func (e *Engine) relPath(path string) string {
	rel, err := filepath.Rel(e.root, path)
	if err != nil || !filepath.IsLocal(rel) {
		return path
	}
	return rel
}

// warn records a non-fatal problem and logs it.
func (e *Engine) warn(res *domain.CacheResult, subject string, err error) {
	res.Warnings = append(res.Warnings, err)
	e.logger.Warn(subject + ": " + err.Error())
}
