// Package resolution reads resolver snapshots and serves the resolver's source archives.
package resolution

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.ResolutionLoader = (*Adapter)(nil)
	_ ports.SourceFetcher    = (*Adapter)(nil)
)

// Adapter implements ports.ResolutionLoader over YAML snapshots and ports.SourceFetcher over
// the source archives those snapshots declare.
type Adapter struct {
	mu sync.RWMutex
	// sources maps an absolute backing file to the source archive declared for it.
	sources map[string]string
}

// NewAdapter creates a new Adapter.
func NewAdapter() *Adapter {
	return &Adapter{sources: make(map[string]string)}
}

// Load reads the snapshot at path. Relative paths inside it resolve against its directory.
func (a *Adapter) Load(_ context.Context, path string) (*domain.Resolution, error) {
	//nolint:gosec // Path is provided by configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrResolutionReadFailed.Error()), "path", path)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrResolutionParseFailed.Error()), "path", path)
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrResolutionReadFailed.Error()), "path", path)
	}

	res := &domain.Resolution{
		Artifacts:  make([]domain.ResolvedArtifact, 0, len(snapshot.Artifacts)),
		LocalFiles: make([]string, 0, len(snapshot.LocalFiles)),
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, dto := range snapshot.Artifacts {
		artifact, err := toArtifact(baseDir, dto)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "index", i)
		}
		if artifact.Sources != "" {
			a.sources[artifact.File] = artifact.Sources
		}
		res.Artifacts = append(res.Artifacts, artifact)
	}

	for _, file := range snapshot.LocalFiles {
		if file == "" {
			continue
		}
		res.LocalFiles = append(res.LocalFiles, resolvePath(baseDir, file))
	}

	return res, nil
}

func toArtifact(baseDir string, dto ArtifactDTO) (domain.ResolvedArtifact, error) {
	if dto.File == "" {
		return domain.ResolvedArtifact{}, zerr.With(domain.ErrInvalidArtifact, "reason", "missing file")
	}

	coord := domain.Coordinate{
		Group:      dto.Group,
		Name:       dto.Name,
		Version:    dto.Version,
		Classifier: dto.Classifier,
	}

	id := dto.ID
	if id == "" {
		id = coord.String()
	}
	if domain.IsCoordinateID(id) && (coord.Name == "" || coord.Version == "") {
		err := zerr.With(domain.ErrInvalidArtifact, "reason", "missing name or version")
		return domain.ResolvedArtifact{}, zerr.With(err, "artifact", id)
	}

	artifact := domain.ResolvedArtifact{
		ID:         id,
		Coordinate: coord,
		File:       resolvePath(baseDir, dto.File),
	}
	if dto.Sources != "" {
		artifact.Sources = resolvePath(baseDir, dto.Sources)
	}
	return artifact, nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
