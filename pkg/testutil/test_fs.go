package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/modlauncher/pkg/filesystem"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewMemory()
}

// FailingFS wraps a filesystem and returns injected errors for specific paths.
type FailingFS struct {
	types.FS

	readErrors  map[string]error
	writeErrors map[string]error
	mkdirErrors map[string]error
}

// NewFailingFS wraps base with no injected errors.
func NewFailingFS(base types.FS) *FailingFS {
	return &FailingFS{
		FS:          base,
		readErrors:  make(map[string]error),
		writeErrors: make(map[string]error),
		mkdirErrors: make(map[string]error),
	}
}

// FailRead makes ReadFile on path return err.
func (f *FailingFS) FailRead(path string, err error) *FailingFS {
	f.readErrors[filepath.Clean(path)] = err
	return f
}

// FailWrite makes WriteFile on path return err.
func (f *FailingFS) FailWrite(path string, err error) *FailingFS {
	f.writeErrors[filepath.Clean(path)] = err
	return f
}

// FailMkdir makes MkdirAll on path return err.
func (f *FailingFS) FailMkdir(path string, err error) *FailingFS {
	f.mkdirErrors[filepath.Clean(path)] = err
	return f
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrors[filepath.Clean(name)]; ok {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := f.writeErrors[filepath.Clean(name)]; ok {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err, ok := f.mkdirErrors[filepath.Clean(path)]; ok {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}
