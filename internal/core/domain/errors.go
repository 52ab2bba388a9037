package domain

import "go.trai.ch/zerr"

var (
	// ErrDependencyNotFound is returned when a lookup uses an identity that was never ingested
	// by the current cache pass.
	ErrDependencyNotFound = zerr.New("dependency not found in cache")

	// ErrBackingFileUnreadable is returned when a resolved artifact's file is missing or unreadable.
	ErrBackingFileUnreadable = zerr.New("backing file is missing or unreadable")

	// ErrExtractionFailed is returned when an archive cannot be opened or one of its entries cannot be read.
	ErrExtractionFailed = zerr.New("failed to extract archive entry")

	// ErrCopyFailed is returned when an artifact cannot be copied into the cache directory.
	ErrCopyFailed = zerr.New("failed to copy artifact into cache")

	// ErrSourceFetchFailed is returned when the resolver could not fetch source archives.
	ErrSourceFetchFailed = zerr.New("failed to fetch source archives")

	// ErrNameCollision is reported when an existing cache entry was produced from different bytes
	// than the artifact now mapping to the same name.
	ErrNameCollision = zerr.New("cache name collision")

	// ErrEvictionFailed is returned when a stale cache entry cannot be removed.
	ErrEvictionFailed = zerr.New("failed to evict stale cache entry")

	// ErrBuildAlreadyRun is returned when Build is called twice on the same engine.
	ErrBuildAlreadyRun = zerr.New("cache build already ran for this engine")

	// ErrBuildNotRun is returned when lookups are attempted before Build completed.
	ErrBuildNotRun = zerr.New("cache build has not completed")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheDirReadFailed is returned when the cache directory cannot be listed.
	ErrCacheDirReadFailed = zerr.New("failed to list cache directory")

	// ErrIndexReadFailed is returned when the cache index cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read cache index")

	// ErrIndexUnmarshalFailed is returned when the cache index cannot be decoded.
	ErrIndexUnmarshalFailed = zerr.New("failed to unmarshal cache index")

	// ErrIndexMarshalFailed is returned when the cache index cannot be encoded.
	ErrIndexMarshalFailed = zerr.New("failed to marshal cache index")

	// ErrIndexWriteFailed is returned when the cache index cannot be written.
	ErrIndexWriteFailed = zerr.New("failed to write cache index")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrResolutionReadFailed is returned when the resolution file cannot be read.
	ErrResolutionReadFailed = zerr.New("failed to read resolution file")

	// ErrResolutionParseFailed is returned when the resolution file cannot be parsed.
	ErrResolutionParseFailed = zerr.New("failed to parse resolution file")

	// ErrInvalidArtifact is returned when a resolution entry is missing required fields.
	ErrInvalidArtifact = zerr.New("invalid resolved artifact")

	// ErrManifestWriteFailed is returned when the dependency manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrUnsafeCacheDir is returned when clean targets a directory that holds the project.
	ErrUnsafeCacheDir = zerr.New("refusing to clean a cache directory that contains the project")

	// ErrCacheCleanFailed is returned when a cache entry cannot be removed by clean.
	ErrCacheCleanFailed = zerr.New("failed to clean cache directory")

	// ErrCacheBuildFailed is returned when the cache pass failed.
	ErrCacheBuildFailed = zerr.New("dependency cache build failed")
)
