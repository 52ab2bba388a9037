// Package archive reads lint rules and annotation processor declarations out of jar and aar
// archives.
package archive

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/depcache/internal/adapters/fs"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// LintJarEntry is the root entry of an aar holding packaged lint rules.
	LintJarEntry = "lint.jar"

	// ProcessorServiceEntry is the service-provider file declaring annotation processors.
	ProcessorServiceEntry = "META-INF/services/javax.annotation.processing.Processor"
)

var _ ports.ArchiveInspector = (*Inspector)(nil)

// OpenFunc opens an archive for random access.
type OpenFunc func(path string) (*zip.ReadCloser, error)

// Inspector implements ports.ArchiveInspector over zip containers.
type Inspector struct {
	open OpenFunc
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithOpener replaces the function used to open archives.
func WithOpener(open OpenFunc) Option {
	return func(i *Inspector) {
		i.open = open
	}
}

// NewInspector creates a new Inspector.
func NewInspector(opts ...Option) *Inspector {
	i := &Inspector{open: zip.OpenReader}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ExtractPackagedLintJar copies the root lint.jar entry of archivePath next to it.
// An existing sibling is returned without opening the archive.
func (i *Inspector) ExtractPackagedLintJar(archivePath string) (string, bool, error) {
	target := filepath.Join(filepath.Dir(archivePath), domain.LintJarName(archivePath))
	if fileExists(target) {
		return target, true, nil
	}

	r, err := i.openArchive(archivePath)
	if err != nil {
		return "", false, err
	}
	defer r.Close() //nolint:errcheck // Read-only archive

	entry := findEntry(&r.Reader, LintJarEntry)
	if entry == nil {
		return "", false, nil
	}

	rc, err := entry.Open()
	if err != nil {
		return "", false, entryError(err, archivePath, LintJarEntry)
	}
	defer rc.Close() //nolint:errcheck // Read-only entry

	if err := fs.WriteFileAtomic(target, rc); err != nil {
		return "", false, entryError(err, archivePath, LintJarEntry)
	}
	return target, true, nil
}

// ExtractAnnotationProcessorDescriptor writes the processor classes declared by jarPath into
// its sibling sidecar file. An existing sidecar is returned as is, even when empty.
func (i *Inspector) ExtractAnnotationProcessorDescriptor(jarPath string) (string, error) {
	target := filepath.Join(filepath.Dir(jarPath), domain.ProcessorsFileName(jarPath))
	if fileExists(target) {
		return target, nil
	}

	r, err := i.openArchive(jarPath)
	if err != nil {
		return "", err
	}
	defer r.Close() //nolint:errcheck // Read-only archive

	var classes []string
	if entry := findEntry(&r.Reader, ProcessorServiceEntry); entry != nil {
		classes, err = readServiceEntry(entry)
		if err != nil {
			return "", entryError(err, jarPath, ProcessorServiceEntry)
		}
	}

	content := strings.Join(classes, "\n")
	if err := fs.WriteFileAtomic(target, strings.NewReader(content)); err != nil {
		return "", entryError(err, jarPath, ProcessorServiceEntry)
	}
	return target, nil
}

// ReadProcessorDescriptor reads the class names stored in a sidecar file.
func (i *Inspector) ReadProcessorDescriptor(sidecarPath string) ([]string, error) {
	data, err := os.ReadFile(sidecarPath) //nolint:gosec // Sidecar lives in the cache directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExtractionFailed.Error()), "path", sidecarPath)
	}
	return parseServiceLines(data), nil
}

func (i *Inspector) openArchive(path string) (*zip.ReadCloser, error) {
	r, err := i.open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExtractionFailed.Error()), "path", path)
	}
	return r, nil
}

func findEntry(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readServiceEntry(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck // Read-only entry

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return parseServiceLines(data), nil
}

// parseServiceLines keeps one class name per non-blank line, skipping # comments.
// Lines are not length-limited.
func parseServiceLines(data []byte) []string {
	var classes []string
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		classes = append(classes, line)
	}
	return classes
}

func entryError(err error, archive, entry string) error {
	err = zerr.With(zerr.Wrap(err, domain.ErrExtractionFailed.Error()), "path", archive)
	return zerr.With(err, "entry", entry)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
