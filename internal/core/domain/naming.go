package domain

import (
	"path/filepath"
	"strings"
)

const (
	// JarExt is the extension of plain java archives.
	JarExt = ".jar"

	// AarExt is the extension of android archives.
	AarExt = ".aar"

	// LintJarSuffix is appended to an archive's base name to name its extracted lint jar.
	LintJarSuffix = "-lint.jar"

	// SourcesJarSuffix is appended to an artifact's base name to name its source archive.
	SourcesJarSuffix = "-sources.jar"

	// ProcessorsExt is the extension of annotation processor sidecar files.
	ProcessorsExt = ".processors"
)

// CacheName maps an identity to its file name inside the cache directory.
//
// With useFullName the name is group-name-version[-classifier].ext, otherwise
// name-version[-classifier].ext. Distinct coordinates that share name and version collide
// in the short form.
func CacheName(id DependencyIdentity, useFullName bool) string {
	return cacheStem(id, useFullName) + id.Extension()
}

// SourceCacheName maps an identity to the cache file name of its source archive.
func SourceCacheName(id DependencyIdentity, useFullName bool) string {
	return cacheStem(id, useFullName) + SourcesJarSuffix
}

// LintJarName returns the sibling file name of the lint jar extracted from archive.
func LintJarName(archive string) string {
	return stem(filepath.Base(archive)) + LintJarSuffix
}

// ProcessorsFileName returns the sibling file name of the processor sidecar for jar.
func ProcessorsFileName(jar string) string {
	return stem(filepath.Base(jar)) + ProcessorsExt
}

// SourcesJarName returns the file name of the source archive published next to file.
func SourcesJarName(file string) string {
	return stem(filepath.Base(file)) + SourcesJarSuffix
}

// IsCacheArchive reports whether name is a file the cache sweep is responsible for.
func IsCacheArchive(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == JarExt || ext == AarExt
}

// IsCacheOwned reports whether name is a file depcache itself writes into a cache directory:
// cached archives, processor sidecars, and the digest index.
func IsCacheOwned(name string) bool {
	return IsCacheArchive(name) ||
		strings.EqualFold(filepath.Ext(name), ProcessorsExt) ||
		name == IndexFileName
}

func cacheStem(id DependencyIdentity, useFullName bool) string {
	parts := make([]string, 0, 4)
	if useFullName {
		parts = append(parts, id.Group())
	}
	parts = append(parts, id.Name(), id.Version())
	if c := id.Classifier(); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, "-")
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
