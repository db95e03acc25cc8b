package types

import "io/fs"

// FS is the slice of filesystem behaviour the launcher touches: reading
// manifests and conflict-files, writing the merged mod, renaming the movies
// folder and clearing caches. pkg/filesystem provides the host and
// in-memory implementations.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)

	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error

	Remove(name string) error
	RemoveAll(path string) error
}
