package depcache_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/archive"
	"go.trai.ch/depcache/internal/adapters/cas"
	"go.trai.ch/depcache/internal/adapters/fs"
	"go.trai.ch/depcache/internal/adapters/telemetry"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/core/ports/mocks"
	"go.trai.ch/depcache/internal/engine/depcache"
	"go.uber.org/mock/gomock"
)

const serviceEntry = "META-INF/services/javax.annotation.processing.Processor"

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func writeZip(t *testing.T, path string, entries map[string]string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))

	f, err := os.Create(path) //nolint:gosec // Test file
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func artifact(group, name, version, file string) domain.ResolvedArtifact {
	coord := domain.Coordinate{Group: group, Name: name, Version: version}
	return domain.ResolvedArtifact{ID: coord.String(), Coordinate: coord, File: file}
}

func artifacts(as ...domain.ResolvedArtifact) []ports.Artifact {
	out := make([]ports.Artifact, len(as))
	for i, a := range as {
		out[i] = a
	}
	return out
}

func identity(t *testing.T, a domain.ResolvedArtifact) domain.DependencyIdentity {
	t.Helper()
	id, err := domain.NewDependencyIdentity(a.Coordinate, a.File)
	require.NoError(t, err)
	return id
}

// listDir returns the sorted file names directly inside dir.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // Test file
	require.NoError(t, err)
	return string(data)
}

// harness builds engines over real adapters, with a counting archive opener.
type harness struct {
	t       *testing.T
	root    string
	opens   atomic.Int32
	fetcher ports.SourceFetcher
	tracer  ports.Tracer
	logger  *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return &harness{
		t:      t,
		root:   t.TempDir(),
		tracer: telemetry.NewNoOpTracer(),
		logger: logger,
	}
}

func (h *harness) cacheDir() string {
	return filepath.Join(h.root, "cache")
}

func (h *harness) options() domain.CacheOptions {
	opts := domain.DefaultCacheOptions()
	opts.ProjectRoot = h.root
	opts.CacheDir = "cache"
	return opts
}

func (h *harness) inspector() ports.ArchiveInspector {
	return archive.NewInspector(archive.WithOpener(func(path string) (*zip.ReadCloser, error) {
		h.opens.Add(1)
		return zip.OpenReader(path)
	}))
}

func (h *harness) engine(opts domain.CacheOptions) *depcache.Engine {
	return h.engineWith(opts, h.inspector())
}

func (h *harness) engineWith(opts domain.CacheOptions, inspector ports.ArchiveInspector) *depcache.Engine {
	h.t.Helper()
	store, err := cas.NewStore()
	require.NoError(h.t, err)

	fetcher := h.fetcher
	if fetcher == nil {
		fetcher = mocks.NewMockSourceFetcher(gomock.NewController(h.t))
	}

	e, err := depcache.New(
		opts,
		inspector,
		fs.NewLocator(fs.NewWalker()),
		fetcher,
		store,
		fs.NewHasher(),
		h.tracer,
		h.logger,
	)
	require.NoError(h.t, err)
	return e
}
