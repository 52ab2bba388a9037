package depcache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// sweep deletes every .jar and .aar directly inside the cache directory that the current pass
// did not mark live, together with the processor sidecar of evicted jars.
func (e *Engine) sweep(ctx context.Context, live map[string]struct{}, index map[string]domain.IndexEntry, res *domain.CacheResult) {
	_, span := e.tracer.Start(ctx, "depcache.sweep")
	defer span.End()

	dirEntries, err := os.ReadDir(e.cacheDir)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCacheDirReadFailed.Error()), "path", e.cacheDir)
		span.RecordError(err)
		e.warn(res, "sweep", err)
		return
	}

	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !domain.IsCacheArchive(name) {
			continue
		}
		if _, ok := live[name]; ok {
			continue
		}

		path := filepath.Join(e.cacheDir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			e.warn(res, name, zerr.With(zerr.Wrap(err, domain.ErrEvictionFailed.Error()), "path", path))
			continue
		}
		res.Evicted = append(res.Evicted, name)
		if index != nil {
			delete(index, name)
		}

		if strings.EqualFold(filepath.Ext(name), domain.JarExt) {
			sidecar := filepath.Join(e.cacheDir, domain.ProcessorsFileName(name))
			if err := os.Remove(sidecar); err != nil && !errors.Is(err, fs.ErrNotExist) {
				e.warn(res, name, zerr.With(zerr.Wrap(err, domain.ErrEvictionFailed.Error()), "path", sidecar))
			}
		}
	}

	span.SetAttribute("evicted", len(res.Evicted))
}
