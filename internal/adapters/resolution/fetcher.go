package resolution

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/depcache/internal/adapters/fs"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// FetchSources publishes the declared source archive of every requested identity as
// <base>-sources.jar next to its backing file. Identities without a declared archive are
// skipped. Failures are joined and do not stop the remaining identities.
func (a *Adapter) FetchSources(ctx context.Context, ids []domain.DependencyIdentity) error {
	var errs error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return errors.Join(errs, err)
		}

		a.mu.RLock()
		src, ok := a.sources[id.File()]
		a.mu.RUnlock()
		if !ok {
			continue
		}

		target := filepath.Join(filepath.Dir(id.File()), domain.SourcesJarName(id.File()))
		if target == src {
			continue
		}
		if _, err := os.Stat(target); err == nil {
			continue
		}

		if err := fs.CopyFile(src, target); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrSourceFetchFailed.Error()), "artifact", id.Coordinate().String())
			errs = errors.Join(errs, zerr.With(err, "path", src))
		}
	}
	return errs
}
