package fs

import (
	"path/filepath"

	"go.trai.ch/depcache/internal/core/ports"
)

var _ ports.SourceLocator = (*Locator)(nil)

// Locator implements ports.SourceLocator by walking a directory tree.
type Locator struct {
	walker *Walker
}

// NewLocator creates a new Locator.
func NewLocator(walker *Walker) *Locator {
	return &Locator{walker: walker}
}

// FindFile returns the first file named name below root, in lexical walk order.
func (l *Locator) FindFile(root, name string) (string, bool) {
	for path := range l.walker.WalkFiles(root, nil) {
		if filepath.Base(path) == name {
			return path, true
		}
	}
	return "", false
}
