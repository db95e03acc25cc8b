package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/spf13/afero"
)

// backend adapts an afero.Fs to types.FS
type backend struct {
	fs afero.Fs
}

// NewOS returns the host filesystem
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// NewAferoFS wraps any afero filesystem
func NewAferoFS(base afero.Fs) types.FS {
	return &backend{fs: base}
}

func (b *backend) Stat(name string) (fs.FileInfo, error) {
	return b.fs.Stat(name)
}

// ReadFile refuses directories; MemMapFs would otherwise return empty data.
func (b *backend) ReadFile(name string) ([]byte, error) {
	if info, err := b.fs.Stat(name); err != nil {
		return nil, err
	} else if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(b.fs, name)
}

func (b *backend) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(b.fs, name, data, perm)
}

func (b *backend) MkdirAll(path string, perm fs.FileMode) error {
	return b.fs.MkdirAll(path, perm)
}

// ReadDir returns entries sorted by name.
func (b *backend) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(b.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (b *backend) Remove(name string) error {
	return b.fs.Remove(name)
}

func (b *backend) RemoveAll(path string) error {
	return b.fs.RemoveAll(path)
}

func (b *backend) Rename(oldpath, newpath string) error {
	return b.fs.Rename(oldpath, newpath)
}
