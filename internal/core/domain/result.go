package domain

// CacheEntry describes one identity materialized by a cache pass.
// Paths are relative to the project root when the cache lives inside it.
type CacheEntry struct {
	Identity   DependencyIdentity
	Path       string
	LintJar    string
	SourcesJar string
}

// CacheResult summarizes a cache pass.
type CacheResult struct {
	// Entries holds one entry per ingested identity, in ingestion order.
	Entries []CacheEntry

	// Copied lists cache file names written during the pass.
	Copied []string

	// Evicted lists cache file names removed by the sweep.
	Evicted []string

	// Warnings collects per-artifact failures that did not abort the pass.
	Warnings []error
}
