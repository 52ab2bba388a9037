package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/depcache/internal/core/domain"
)

// WriteFileAtomic streams r into path through a temporary file in the same directory, so
// readers never observe a partial file. The temporary file is removed on any failure.
func WriteFileAtomic(path string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".depcache-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	_, err = io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, domain.FilePerm)
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
	}
	return err
}

// CopyFile copies src to dst with WriteFileAtomic.
func CopyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Paths come from the resolver or the cache
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	return WriteFileAtomic(dst, in)
}
