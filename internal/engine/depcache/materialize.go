package depcache

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/depcache/internal/adapters/fs" //nolint:depguard // Shared atomic file writes
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// materializeAll copies every identity into the cache and marks what it produced as live.
// The last identity of a versionless identity wins the greatest-version table.
func (e *Engine) materializeAll(
	ctx context.Context,
	ids []domain.DependencyIdentity,
	live map[string]struct{},
	index map[string]domain.IndexEntry,
	res *domain.CacheResult,
) error {
	ctx, span := e.tracer.Start(ctx, "depcache.materialize")
	defer span.End()

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return err
		}

		e.greatest[id.Versionless()] = id

		cached, copied, err := e.materialize(id, index, res)
		if err != nil {
			span.RecordError(err)
			return err
		}
		name := filepath.Base(cached)
		live[name] = struct{}{}
		// A backing file kept inside the cache directory is an input, not a stale entry.
		if filepath.Dir(id.File()) == e.cacheDir {
			live[filepath.Base(id.File())] = struct{}{}
		}
		e.paths[id] = cached
		if copied {
			res.Copied = append(res.Copied, name)
		}

		entry := domain.CacheEntry{Identity: id, Path: e.relPath(cached)}

		if e.opts.ExtractLintJars && id.IsAar() {
			if lint, ok := e.extractLintJar(id, cached, res); ok {
				live[filepath.Base(lint)] = struct{}{}
				e.lintJars[id] = lint
				entry.LintJar = e.relPath(lint)
			}
		}

		if e.opts.FetchSources {
			if src, ok := e.cacheSources(id, live, res); ok {
				entry.SourcesJar = e.relPath(src)
			}
		}

		res.Entries = append(res.Entries, entry)
	}

	span.SetAttribute("copied", len(res.Copied))
	return nil
}

// materialize copies id's backing file under its cache name unless that name already exists.
func (e *Engine) materialize(
	id domain.DependencyIdentity,
	index map[string]domain.IndexEntry,
	res *domain.CacheResult,
) (string, bool, error) {
	name := domain.CacheName(id, e.opts.UseFullDepName)
	target := filepath.Join(e.cacheDir, name)

	if fileExists(target) {
		if index != nil {
			e.verifyDigest(id, name, target, index, res)
		}
		return target, false, nil
	}

	if err := fs.CopyFile(id.File(), target); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "artifact", id.Coordinate().String())
		return "", false, zerr.With(err, "path", target)
	}

	if index != nil {
		e.recordDigest(id, name, index, res)
	}
	return target, true, nil
}

func (e *Engine) extractLintJar(id domain.DependencyIdentity, cached string, res *domain.CacheResult) (string, bool) {
	lint, found, err := e.inspector.ExtractPackagedLintJar(cached)
	if err != nil {
		e.warn(res, id.Coordinate().String(), zerr.With(err, "artifact", id.Coordinate().String()))
		return "", false
	}
	return lint, found
}

// cacheSources copies the source archive found for id under its source cache name.
// A missing archive is not reported.
func (e *Engine) cacheSources(id domain.DependencyIdentity, live map[string]struct{}, res *domain.CacheResult) (string, bool) {
	src, ok := e.locateSources(id)
	if !ok {
		return "", false
	}

	name := domain.SourceCacheName(id, e.opts.UseFullDepName)
	target := filepath.Join(e.cacheDir, name)
	if !fileExists(target) {
		if err := fs.CopyFile(src, target); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "artifact", id.Coordinate().String())
			e.warn(res, id.Coordinate().String(), zerr.With(err, "path", src))
			return "", false
		}
		res.Copied = append(res.Copied, name)
	}

	live[name] = struct{}{}
	return target, true
}

// locateSources looks for <base>-sources.jar next to backing files inside the project tree,
// and anywhere below the grandparent directory of backing files outside of it.
func (e *Engine) locateSources(id domain.DependencyIdentity) (string, bool) {
	name := domain.SourcesJarName(id.File())
	dir := filepath.Dir(id.File())

	if isWithin(e.root, id.File()) {
		candidate := filepath.Join(dir, name)
		return candidate, fileExists(candidate)
	}
	return e.locator.FindFile(filepath.Dir(dir), name)
}

func (e *Engine) loadIndex(res *domain.CacheResult) map[string]domain.IndexEntry {
	if !e.opts.VerifyDigests {
		return nil
	}
	index, err := e.index.Load(e.cacheDir)
	if err != nil {
		e.warn(res, "cache index", err)
		return make(map[string]domain.IndexEntry)
	}
	return index
}

// saveIndex drops entries whose file is gone and persists the rest.
func (e *Engine) saveIndex(index map[string]domain.IndexEntry, res *domain.CacheResult) {
	for name := range index {
		if !fileExists(filepath.Join(e.cacheDir, name)) {
			delete(index, name)
		}
	}
	if err := e.index.Save(e.cacheDir, index); err != nil {
		e.warn(res, "cache index", err)
	}
}

func (e *Engine) digest(path string) (string, error) {
	sum, err := e.hasher.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(sum, 16), nil
}

func (e *Engine) recordDigest(id domain.DependencyIdentity, name string, index map[string]domain.IndexEntry, res *domain.CacheResult) {
	sum, err := e.digest(id.File())
	if err != nil {
		e.warn(res, id.Coordinate().String(), err)
		return
	}
	index[name] = domain.IndexEntry{
		Name:       name,
		Coordinate: id.Coordinate().String(),
		Source:     id.File(),
		Digest:     sum,
	}
}

// verifyDigest reports a name collision when the cached bytes under name differ from id's
// backing file. The cached file is never replaced.
func (e *Engine) verifyDigest(
	id domain.DependencyIdentity,
	name, target string,
	index map[string]domain.IndexEntry,
	res *domain.CacheResult,
) {
	incoming, err := e.digest(id.File())
	if err != nil {
		e.warn(res, id.Coordinate().String(), err)
		return
	}

	entry, ok := index[name]
	if !ok || entry.Digest == "" {
		existing, err := e.digest(target)
		if err != nil {
			e.warn(res, id.Coordinate().String(), err)
			return
		}
		entry = domain.IndexEntry{Name: name, Digest: existing}
		if existing == incoming {
			entry.Coordinate = id.Coordinate().String()
			entry.Source = id.File()
		}
		index[name] = entry
	}

	if entry.Digest != incoming {
		err := zerr.With(domain.ErrNameCollision, "name", name)
		err = zerr.With(err, "artifact", id.Coordinate().String())
		if entry.Coordinate != "" {
			err = zerr.With(err, "cached_from", entry.Coordinate)
		}
		e.warn(res, name, err)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
