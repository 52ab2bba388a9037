package domain

// CacheOptions controls a single cache pass.
type CacheOptions struct {
	// CacheDir is the directory holding cached artifacts. Relative paths are resolved
	// against ProjectRoot.
	CacheDir string

	// ProjectRoot is the root of the build's own project tree. It anchors relative paths and
	// decides which source-archive heuristic applies.
	ProjectRoot string

	// UseFullDepName includes the group in cache file names.
	UseFullDepName bool

	// ExtractLintJars extracts lint.jar payloads bundled in .aar archives.
	ExtractLintJars bool

	// FetchSources resolves and caches source archives next to the binaries.
	FetchSources bool

	// Cleanup evicts every cache entry not referenced by the current pass.
	Cleanup bool

	// VerifyDigests compares content digests whenever an existing cache entry is reused and
	// reports name collisions.
	VerifyDigests bool
}

// DefaultCacheOptions returns the options used when nothing is configured.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		CacheDir:    DefaultCachePath(),
		ProjectRoot: ".",
		Cleanup:     true,
	}
}

// Config is the loaded project configuration.
type Config struct {
	// ResolutionFile is the resolver snapshot to cache.
	ResolutionFile string

	// Options are the cache options for the pass.
	Options CacheOptions
}
