// Package cas records the content digests of cached artifacts.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheIndex = (*Store)(nil)

// indexFile is the on-disk shape of the cache index.
type indexFile struct {
	Entries map[string]domain.IndexEntry `json:"entries"`
}

// Store implements ports.CacheIndex using a flat JSON file inside the cache directory.
type Store struct{}

// NewStore creates a new Store.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Load reads the index of cacheDir. A missing or empty index yields an empty map.
func (s *Store) Load(cacheDir string) (map[string]domain.IndexEntry, error) {
	path := indexPath(cacheDir)
	//nolint:gosec // Path is constructed from the configured cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]domain.IndexEntry{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return map[string]domain.IndexEntry{}, nil
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexUnmarshalFailed.Error()), "path", path)
	}
	if file.Entries == nil {
		file.Entries = map[string]domain.IndexEntry{}
	}
	return file.Entries, nil
}

// Save replaces the index of cacheDir.
func (s *Store) Save(cacheDir string, entries map[string]domain.IndexEntry) error {
	if entries == nil {
		entries = map[string]domain.IndexEntry{}
	}
	data, err := json.MarshalIndent(indexFile{Entries: entries}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexMarshalFailed.Error())
	}

	if err := os.MkdirAll(cacheDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", cacheDir)
	}

	path := indexPath(cacheDir)
	tmp, err := os.CreateTemp(cacheDir, ".index-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "path", path)
	}
	tmpPath := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, domain.FilePerm)
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "path", path)
	}
	return nil
}

func indexPath(cacheDir string) string {
	return filepath.Join(cacheDir, domain.IndexFileName)
}
