// Package ports defines the core interfaces for the application.
package ports

// ArchiveInspector reads auxiliary payloads out of jar and aar archives without extracting
// the whole archive. Results are memoized as sibling files next to the inspected archive.
//
//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type ArchiveInspector interface {
	// ExtractPackagedLintJar extracts the root lint.jar entry of archivePath into the sibling
	// <base>-lint.jar. It returns found=false when the archive bundles no lint jar.
	ExtractPackagedLintJar(archivePath string) (path string, found bool, err error)

	// ExtractAnnotationProcessorDescriptor writes the processor classes declared by jarPath into
	// the sibling <base>.processors file and returns its path. An empty file means the jar
	// declares no processors.
	ExtractAnnotationProcessorDescriptor(jarPath string) (string, error)

	// ReadProcessorDescriptor reads the class names stored in a sidecar file.
	ReadProcessorDescriptor(sidecarPath string) ([]string, error)
}
