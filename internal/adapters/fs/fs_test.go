package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/fs"
	"go.trai.ch/depcache/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestWalker_WalkFiles(t *testing.T) {
	t.Parallel()

	// tmp/
	//   .git/config
	//   ignored/file
	//   src/main.go
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "src", "main.go"), "package main")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files[rel] = true
	}

	assert.False(t, files[filepath.Join(".git", "config")], "expected .git/config to be skipped")
	assert.False(t, files[filepath.Join("ignored", "file")], "expected ignored/file to be skipped")
	assert.True(t, files[filepath.Join("src", "main.go")])
	assert.True(t, files["README.md"])
}

func TestLocator_FindFile(t *testing.T) {
	t.Parallel()

	// Gradle-style layout: <version>/<hash>/<file>
	versionDir := t.TempDir()
	binary := filepath.Join(versionDir, "aaa111", "okio-3.2.0.jar")
	sources := filepath.Join(versionDir, "bbb222", "okio-3.2.0-sources.jar")
	writeFile(t, binary, "classes")
	writeFile(t, sources, "sources")

	locator := fs.NewLocator(fs.NewWalker())

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		path, found := locator.FindFile(versionDir, "okio-3.2.0-sources.jar")
		require.True(t, found)
		assert.Equal(t, sources, path)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		path, found := locator.FindFile(versionDir, "okio-9.9.9-sources.jar")
		assert.False(t, found)
		assert.Empty(t, path)
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()
		_, found := locator.FindFile(filepath.Join(versionDir, "nope"), "okio-3.2.0-sources.jar")
		assert.False(t, found)
	})
}

func TestHasher_ComputeFileHash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.jar")
	second := filepath.Join(dir, "b.jar")
	writeFile(t, first, "hello world")
	writeFile(t, second, "hello world!")

	hasher := fs.NewHasher()

	hash1, err := hasher.ComputeFileHash(first)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	again, err := hasher.ComputeFileHash(first)
	require.NoError(t, err)
	assert.Equal(t, hash1, again, "expected deterministic hash")

	hash2, err := hasher.ComputeFileHash(second)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash2)

	_, err = hasher.ComputeFileHash(filepath.Join(dir, "missing.jar"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}
