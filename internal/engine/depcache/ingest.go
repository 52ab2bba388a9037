package depcache

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Artifact = domain.ResolvedArtifact{}

// identitySet keeps identities in insertion order.
type identitySet struct {
	ids   []domain.DependencyIdentity
	seen  map[domain.DependencyIdentity]struct{}
	files map[string]struct{}
}

func newIdentitySet() *identitySet {
	return &identitySet{
		seen:  make(map[domain.DependencyIdentity]struct{}),
		files: make(map[string]struct{}),
	}
}

func (s *identitySet) add(id domain.DependencyIdentity) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.files[id.File()] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *identitySet) hasFile(abs string) bool {
	_, ok := s.files[abs]
	return ok
}

// ingest unions coordinate artifacts with local files into one ordered identity set.
// Every unreadable backing file is reported in the returned error.
func (e *Engine) ingest(ctx context.Context, artifacts []ports.Artifact, localFiles []string) ([]domain.DependencyIdentity, error) {
	_, span := e.tracer.Start(ctx, "depcache.ingest")
	defer span.End()

	set := newIdentitySet()
	var errs error

	// Flat-file dependencies reported with a path-like id join the local files.
	flat := make([]string, 0, len(localFiles))
	for _, a := range artifacts {
		if !domain.IsCoordinateID(a.DisplayID()) {
			flat = append(flat, a.BackingFile())
			continue
		}
		id, err := domain.NewDependencyIdentity(a.Coordinates(), a.BackingFile())
		if err != nil {
			errs = errors.Join(errs, zerr.With(err, "dependency", a.DisplayID()))
			continue
		}
		set.add(id)
	}
	flat = append(flat, localFiles...)

	for _, file := range flat {
		abs, err := filepath.Abs(file)
		if err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrBackingFileUnreadable.Error()), "path", file))
			continue
		}
		if set.hasFile(abs) {
			continue
		}
		id, err := domain.NewLocalIdentity(abs)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		set.add(id)
	}

	span.SetAttribute("dependencies", len(set.ids))
	if errs != nil {
		span.RecordError(errs)
		return nil, errs
	}
	return set.ids, nil
}
