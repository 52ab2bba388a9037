package ports

import "go.trai.ch/depcache/internal/core/domain"

// CacheIndex records the origin and digest of cache files.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheIndex interface {
	// Load reads the index of cacheDir. A missing index is empty.
	Load(cacheDir string) (map[string]domain.IndexEntry, error)

	// Save replaces the index of cacheDir.
	Save(cacheDir string, entries map[string]domain.IndexEntry) error
}
