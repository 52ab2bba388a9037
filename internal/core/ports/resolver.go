package ports

import (
	"context"

	"go.trai.ch/depcache/internal/core/domain"
)

// Artifact is the capability a resolver-provided artifact must expose to be cached.
// It keeps the cache independent of any particular resolver's object model.
type Artifact interface {
	// DisplayID returns the resolver's display identifier.
	DisplayID() string
	// Coordinates returns the group, name, version, and classifier.
	Coordinates() domain.Coordinate
	// BackingFile returns the path of the physical archive.
	BackingFile() string
}

// ResolutionLoader loads a resolver snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ResolutionLoader interface {
	// Load reads the snapshot at path.
	Load(ctx context.Context, path string) (*domain.Resolution, error)
}

// SourceFetcher triggers the resolver's best-effort source archive resolution.
type SourceFetcher interface {
	// FetchSources resolves source archives for the given identities. Failures are
	// non-fatal for the cache pass.
	FetchSources(ctx context.Context, ids []domain.DependencyIdentity) error
}

// SourceLocator searches a directory tree for a file by name.
type SourceLocator interface {
	// FindFile returns the first file named name below root.
	FindFile(root, name string) (path string, found bool)
}
