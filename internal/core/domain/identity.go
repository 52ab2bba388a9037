package domain

import (
	"cmp"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// LocalVersion is the synthetic version assigned to dependencies resolved outside the
// coordinate system (flat files on disk).
const LocalVersion = "1.0.0"

// Coordinate is the (group, name, version[, classifier]) tuple reported by a resolver.
type Coordinate struct {
	Group      string
	Name       string
	Version    string
	Classifier string
}

// String renders the coordinate as group:name:version[:classifier].
func (c Coordinate) String() string {
	s := c.Group + ":" + c.Name + ":" + c.Version
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	return s
}

// VersionlessIdentity groups every version of the same logical dependency.
type VersionlessIdentity struct {
	group InternedString
	name  InternedString
}

// NewVersionlessIdentity creates a VersionlessIdentity.
func NewVersionlessIdentity(group, name string) VersionlessIdentity {
	return VersionlessIdentity{
		group: NewInternedString(group),
		name:  NewInternedString(name),
	}
}

// Group returns the group of the identity.
func (v VersionlessIdentity) Group() string { return v.group.String() }

// Name returns the name of the identity.
func (v VersionlessIdentity) Name() string { return v.name.String() }

// String renders the identity as group:name.
func (v VersionlessIdentity) String() string {
	return v.Group() + ":" + v.Name()
}

// Compare orders identities by group, then name.
func (v VersionlessIdentity) Compare(other VersionlessIdentity) int {
	if c := cmp.Compare(v.Group(), other.Group()); c != 0 {
		return c
	}
	return cmp.Compare(v.Name(), other.Name())
}

// DependencyIdentity is the full identity of one resolved artifact: its coordinate plus the
// physical file backing it. Two artifacts with the same coordinate but different backing files
// are distinct identities.
//
// DependencyIdentity is an immutable value and is safe to use as a map key.
type DependencyIdentity struct {
	group      InternedString
	name       InternedString
	version    InternedString
	classifier InternedString
	file       InternedString
}

// NewDependencyIdentity creates a DependencyIdentity for the given coordinate and backing file.
// It fails with ErrBackingFileUnreadable if the file does not exist or cannot be opened.
func NewDependencyIdentity(coord Coordinate, file string) (DependencyIdentity, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return DependencyIdentity{}, zerr.With(zerr.Wrap(err, ErrBackingFileUnreadable.Error()), "path", file)
	}

	f, err := os.Open(abs) //nolint:gosec // Path comes from the resolver
	if err != nil {
		err = zerr.With(zerr.Wrap(err, ErrBackingFileUnreadable.Error()), "path", abs)
		return DependencyIdentity{}, zerr.With(err, "artifact", coord.String())
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil {
		return DependencyIdentity{}, zerr.With(zerr.Wrap(err, ErrBackingFileUnreadable.Error()), "path", abs)
	}
	if info.IsDir() {
		return DependencyIdentity{}, zerr.With(ErrBackingFileUnreadable, "path", abs)
	}

	return DependencyIdentity{
		group:      NewInternedString(coord.Group),
		name:       NewInternedString(coord.Name),
		version:    NewInternedString(coord.Version),
		classifier: NewInternedString(coord.Classifier),
		file:       NewInternedString(abs),
	}, nil
}

// NewLocalIdentity synthesizes an identity for a file resolved outside the coordinate system.
// The base file name (without extension) is used as both group and name, and the version is
// LocalVersion, so the same file always yields the same identity.
func NewLocalIdentity(file string) (DependencyIdentity, error) {
	base := stem(filepath.Base(file))
	return NewDependencyIdentity(Coordinate{
		Group:   base,
		Name:    base,
		Version: LocalVersion,
	}, file)
}

// Group returns the group of the dependency.
func (d DependencyIdentity) Group() string { return d.group.String() }

// Name returns the name of the dependency.
func (d DependencyIdentity) Name() string { return d.name.String() }

// Version returns the version of the dependency.
func (d DependencyIdentity) Version() string { return d.version.String() }

// Classifier returns the classifier of the dependency, or "" if none.
func (d DependencyIdentity) Classifier() string { return d.classifier.String() }

// File returns the absolute path of the backing file.
func (d DependencyIdentity) File() string { return d.file.String() }

// Coordinate returns the coordinate of the dependency.
func (d DependencyIdentity) Coordinate() Coordinate {
	return Coordinate{
		Group:      d.Group(),
		Name:       d.Name(),
		Version:    d.Version(),
		Classifier: d.Classifier(),
	}
}

// Versionless drops the version, classifier, and backing file.
func (d DependencyIdentity) Versionless() VersionlessIdentity {
	return VersionlessIdentity{group: d.group, name: d.name}
}

// Extension returns the backing file extension including the dot (e.g. ".jar").
func (d DependencyIdentity) Extension() string {
	return filepath.Ext(d.File())
}

// IsJar reports whether the backing file is a .jar archive.
func (d DependencyIdentity) IsJar() bool {
	return strings.EqualFold(d.Extension(), JarExt)
}

// IsAar reports whether the backing file is an .aar archive.
func (d DependencyIdentity) IsAar() bool {
	return strings.EqualFold(d.Extension(), AarExt)
}

// IsZero reports whether d is the zero identity.
func (d DependencyIdentity) IsZero() bool {
	return d == DependencyIdentity{}
}

// String renders the coordinate followed by the backing file.
func (d DependencyIdentity) String() string {
	return d.Coordinate().String() + "@" + d.File()
}
