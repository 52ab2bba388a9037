package domain

// IndexEntry records where a cache file came from.
type IndexEntry struct {
	Name       string `json:"name,omitzero"`
	Coordinate string `json:"coordinate,omitzero"`
	Source     string `json:"source,omitzero"`
	Digest     string `json:"digest,omitzero"`
}
