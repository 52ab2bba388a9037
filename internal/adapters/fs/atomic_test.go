package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/fs"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "okio-3.2.0.jar")

	require.NoError(t, fs.WriteFileAtomic(target, strings.NewReader("jar bytes")))

	data, err := os.ReadFile(target) //nolint:gosec // Test file
	require.NoError(t, err)
	assert.Equal(t, "jar bytes", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestWriteFileAtomic_ReadFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "okio-3.2.0.jar")

	err := fs.WriteFileAtomic(target, iotest.ErrReader(errors.New("truncated")))
	require.ErrorContains(t, err, "truncated")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCopyFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jar")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o600))

	dst := filepath.Join(dir, "dst.jar")
	require.NoError(t, fs.CopyFile(src, dst))

	data, err := os.ReadFile(dst) //nolint:gosec // Test file
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	assert.Error(t, fs.CopyFile(filepath.Join(dir, "missing.jar"), filepath.Join(dir, "out.jar")))
}
