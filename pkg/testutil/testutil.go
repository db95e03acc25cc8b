package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name on the real disk, creating parents,
// and returns the full path.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadString returns the content of path in fsys, failing the test if it
// cannot be read.
func ReadString(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// SkipOnWindows skips tests that spawn POSIX shells.
func SkipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}
