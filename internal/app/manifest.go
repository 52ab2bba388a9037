package app

import (
	"cmp"
	"context"
	"encoding/json"
	"os"
	"runtime"
	"slices"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DependencyCache is the lookup surface a build-file generator queries after a cache pass.
type DependencyCache interface {
	Entries() []domain.CacheEntry
	PathFor(id domain.DependencyIdentity) (string, error)
	LintJarFor(id domain.DependencyIdentity) (string, bool)
	AnnotationProcessorsFor(ctx context.Context, id domain.DependencyIdentity) ([]string, error)
}

// Manifest lists every cached dependency of a pass.
type Manifest struct {
	Dependencies []ManifestEntry `json:"dependencies"`
}

// ManifestEntry describes one cached dependency.
type ManifestEntry struct {
	Coordinate string   `json:"coordinate"`
	Path       string   `json:"path"`
	LintJar    string   `json:"lintJar,omitempty"`
	SourcesJar string   `json:"sourcesJar,omitempty"`
	Processors []string `json:"processors"`
	Error      string   `json:"error,omitempty"`
}

// BuildManifest queries cache for every entry concurrently. Processor extraction failures are
// recorded on their entry; lookup failures abort.
func BuildManifest(ctx context.Context, cache DependencyCache) (*Manifest, error) {
	entries := cache.Entries()
	deps := make([]ManifestEntry, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, entry := range entries {
		g.Go(func() error {
			id := entry.Identity
			path, err := cache.PathFor(id)
			if err != nil {
				return err
			}

			dep := ManifestEntry{
				Coordinate: id.Coordinate().String(),
				Path:       path,
				SourcesJar: entry.SourcesJar,
				Processors: []string{},
			}
			if lint, ok := cache.LintJarFor(id); ok {
				dep.LintJar = lint
			}

			processors, err := cache.AnnotationProcessorsFor(ctx, id)
			if err != nil {
				dep.Error = err.Error()
			} else {
				dep.Processors = processors
			}

			deps[i] = dep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(deps, func(a, b ManifestEntry) int {
		return cmp.Or(
			cmp.Compare(a.Coordinate, b.Coordinate),
			cmp.Compare(a.Path, b.Path),
		)
	})
	return &Manifest{Dependencies: deps}, nil
}

// WriteManifest writes m to path as indented JSON.
func WriteManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}
