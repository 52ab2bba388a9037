package depcache_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestEngine_AnnotationProcessorsFor(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	jar := writeZip(t, filepath.Join(t.TempDir(), "dagger-compiler-2.0.jar"), map[string]string{
		serviceEntry: "# generated\ncom.z.ZProcessor\n\ncom.a.AProcessor\ncom.z.ZProcessor\n",
	})
	a := artifact("com.google.dagger", "dagger-compiler", "2.0", jar)

	e := h.engine(h.options())
	_, err := e.Build(context.Background(), artifacts(a), nil)
	require.NoError(t, err)

	classes, err := e.AnnotationProcessorsFor(context.Background(), identity(t, a))
	require.NoError(t, err)
	assert.Equal(t, []string{"com.a.AProcessor", "com.z.ZProcessor"}, classes)
	assert.FileExists(t, filepath.Join(h.cacheDir(), "dagger-compiler-2.0.processors"))

	// The caller owns the returned slice.
	classes[0] = "mutated"
	again, err := e.AnnotationProcessorsFor(context.Background(), identity(t, a))
	require.NoError(t, err)
	assert.Equal(t, []string{"com.a.AProcessor", "com.z.ZProcessor"}, again)
	assert.Equal(t, int32(1), h.opens.Load())
}

func TestEngine_AnnotationProcessorsFor_NoneDeclared(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	jar := writeZip(t, filepath.Join(t.TempDir(), "guava-31.0.jar"), map[string]string{
		"com/google/common/Foo.class": "bytes",
	})
	a := artifact("com.google.guava", "guava", "31.0", jar)
	as := artifacts(a)

	e := h.engine(h.options())
	_, err := e.Build(context.Background(), as, nil)
	require.NoError(t, err)

	for range 3 {
		classes, err := e.AnnotationProcessorsFor(context.Background(), identity(t, a))
		require.NoError(t, err)
		assert.NotNil(t, classes)
		assert.Empty(t, classes)
	}
	assert.Equal(t, int32(1), h.opens.Load())

	// A later pass reuses the empty sidecar without reopening the jar.
	next := h.engine(h.options())
	_, err = next.Build(context.Background(), as, nil)
	require.NoError(t, err)
	classes, err := next.AnnotationProcessorsFor(context.Background(), identity(t, a))
	require.NoError(t, err)
	assert.Empty(t, classes)
	assert.Equal(t, int32(1), h.opens.Load())
}

func TestEngine_AnnotationProcessorsFor_Aar(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	aar := writeZip(t, filepath.Join(t.TempDir(), "foo-1.0.aar"), map[string]string{serviceEntry: "com.a.A"})
	a := artifact("com.example", "foo", "1.0", aar)

	e := h.engine(h.options())
	_, err := e.Build(context.Background(), artifacts(a), nil)
	require.NoError(t, err)

	classes, err := e.AnnotationProcessorsFor(context.Background(), identity(t, a))
	require.NoError(t, err)
	assert.Equal(t, []string{}, classes)
	assert.Zero(t, h.opens.Load())
}

func TestEngine_AnnotationProcessorsFor_GreatestVersionWins(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	dir := t.TempDir()
	older := artifact("com.example", "proc", "1.0", writeZip(t, filepath.Join(dir, "proc-1.0.jar"), map[string]string{
		serviceEntry: "com.example.OldProcessor",
	}))
	newer := artifact("com.example", "proc", "2.0", writeZip(t, filepath.Join(dir, "proc-2.0.jar"), map[string]string{
		serviceEntry: "com.example.NewProcessor",
	}))

	e := h.engine(h.options())
	_, err := e.Build(context.Background(), artifacts(older, newer), nil)
	require.NoError(t, err)

	for _, a := range []domain.ResolvedArtifact{older, newer} {
		classes, err := e.AnnotationProcessorsFor(context.Background(), identity(t, a))
		require.NoError(t, err)
		assert.Equal(t, []string{"com.example.NewProcessor"}, classes, a.ID)
	}
	assert.NoFileExists(t, filepath.Join(h.cacheDir(), "proc-1.0.processors"))
}

func TestEngine_AnnotationProcessorsFor_Lookups(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	dir := t.TempDir()
	known := artifact("com.example", "foo", "1.0", writeZip(t, filepath.Join(dir, "foo-1.0.jar"), nil))
	unknown := artifact("com.example", "bar", "1.0", writeZip(t, filepath.Join(dir, "bar-1.0.jar"), nil))

	e := h.engine(h.options())

	_, err := e.AnnotationProcessorsFor(context.Background(), identity(t, known))
	require.ErrorIs(t, err, domain.ErrBuildNotRun)

	_, err = e.Build(context.Background(), artifacts(known), nil)
	require.NoError(t, err)

	_, err = e.AnnotationProcessorsFor(context.Background(), identity(t, unknown))
	assert.ErrorContains(t, err, domain.ErrDependencyNotFound.Error())
}

func TestEngine_AnnotationProcessorsFor_ConcurrentCallersShareExtraction(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	jar := writeFile(t, filepath.Join(t.TempDir(), "proc-1.0.jar"), "jar")
	a := artifact("com.example", "proc", "1.0", jar)

	ctrl := gomock.NewController(t)
	inspector := mocks.NewMockArchiveInspector(ctrl)
	sidecar := filepath.Join(h.cacheDir(), "proc-1.0.processors")
	inspector.EXPECT().
		ExtractAnnotationProcessorDescriptor(filepath.Join(h.cacheDir(), "proc-1.0.jar")).
		DoAndReturn(func(string) (string, error) {
			time.Sleep(50 * time.Millisecond)
			return sidecar, nil
		}).
		Times(1)
	inspector.EXPECT().
		ReadProcessorDescriptor(sidecar).
		Return([]string{"com.example.B", "com.example.A"}, nil).
		Times(1)

	e := h.engineWith(h.options(), inspector)
	_, err := e.Build(context.Background(), artifacts(a), nil)
	require.NoError(t, err)

	const callers = 16
	results := make([][]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = e.AnnotationProcessorsFor(context.Background(), identity(t, a))
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, []string{"com.example.A", "com.example.B"}, results[i])
	}
}

func TestEngine_AnnotationProcessorsFor_FailureIsRetried(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	jar := writeFile(t, filepath.Join(t.TempDir(), "proc-1.0.jar"), "jar")
	a := artifact("com.example", "proc", "1.0", jar)

	ctrl := gomock.NewController(t)
	inspector := mocks.NewMockArchiveInspector(ctrl)
	sidecar := filepath.Join(h.cacheDir(), "proc-1.0.processors")
	gomock.InOrder(
		inspector.EXPECT().
			ExtractAnnotationProcessorDescriptor(gomock.Any()).
			Return("", errors.New("disk full")),
		inspector.EXPECT().
			ExtractAnnotationProcessorDescriptor(gomock.Any()).
			Return(sidecar, nil),
	)
	inspector.EXPECT().ReadProcessorDescriptor(sidecar).Return([]string{"com.example.A"}, nil)

	e := h.engineWith(h.options(), inspector)
	_, err := e.Build(context.Background(), artifacts(a), nil)
	require.NoError(t, err)

	_, err = e.AnnotationProcessorsFor(context.Background(), identity(t, a))
	require.ErrorContains(t, err, "disk full")

	classes, err := e.AnnotationProcessorsFor(context.Background(), identity(t, a))
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.A"}, classes)
}
