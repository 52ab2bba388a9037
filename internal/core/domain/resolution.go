package domain

import "strings"

// ResolvedArtifact is one artifact handed over by the external resolver.
type ResolvedArtifact struct {
	// ID is the resolver's display identifier. Flat-file dependencies are reported with a
	// path-like identifier instead of a coordinate.
	ID string

	// Coordinate is the resolved coordinate.
	Coordinate Coordinate

	// File is the backing file path.
	File string

	// Sources is an optional source archive the resolver knows about.
	Sources string
}

// DisplayID returns the resolver's display identifier.
func (a ResolvedArtifact) DisplayID() string { return a.ID }

// Coordinates returns the resolved coordinate.
func (a ResolvedArtifact) Coordinates() Coordinate { return a.Coordinate }

// BackingFile returns the backing file path.
func (a ResolvedArtifact) BackingFile() string { return a.File }

// IsCoordinateID reports whether a resolver display identifier names a coordinate.
// Identifiers containing a space are path-like descriptions of flat files.
func IsCoordinateID(id string) bool {
	return !strings.Contains(id, " ")
}

// Resolution is one resolver snapshot: coordinate artifacts plus flat local files.
type Resolution struct {
	Artifacts  []ResolvedArtifact
	LocalFiles []string
}
