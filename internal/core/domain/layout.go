package domain

import "path/filepath"

const (
	// DepcacheDirName is the name of the internal workspace directory.
	DepcacheDirName = ".depcache"

	// CacheDirName is the name of the artifact cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "depcache.yaml"

	// ResolutionFileName is the default name of the resolver snapshot.
	ResolutionFileName = "depcache.resolution.yaml"

	// IndexFileName is the name of the digest index kept inside the cache directory.
	IndexFileName = ".depcache-index.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the default cache directory, relative to the project root.
// It joins .depcache and cache.
func DefaultCachePath() string {
	return filepath.Join(DepcacheDirName, CacheDirName)
}
