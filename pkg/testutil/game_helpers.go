package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/stretchr/testify/require"
)

// GameDir is a game installation laid out on a test filesystem.
type GameDir struct {
	FS   types.FS
	Root string
}

// ModSpec describes one mod to create inside a GameDir.
type ModSpec struct {
	Name         string
	ManifestFile string // defaults to Name + ".mod"
	Folder       string // defaults to Name
	Dependencies []string
	UserDir      string
	// EventModifiers is written to <folder>/common/event_modifiers.txt when non-nil
	EventModifiers *string
}

// NewGameDir creates a game root with an empty mod directory.
func NewGameDir(t *testing.T, fs types.FS, root string) *GameDir {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Join(root, "mod"), 0755))
	return &GameDir{FS: fs, Root: root}
}

// ModDir returns the mod directory path.
func (g *GameDir) ModDir() string {
	return filepath.Join(g.Root, "mod")
}

// Text returns a pointer to s, for ModSpec.EventModifiers.
func Text(s string) *string {
	return &s
}

// AddMod writes the manifest and optional conflict-file for spec.
func (g *GameDir) AddMod(t *testing.T, spec ModSpec) {
	t.Helper()

	manifest := spec.ManifestFile
	if manifest == "" {
		manifest = spec.Name + ".mod"
	}
	folder := spec.Folder
	if folder == "" {
		folder = spec.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "name = %q\n", spec.Name)
	fmt.Fprintf(&b, "path = \"mod/%s\"\n", folder)
	if len(spec.Dependencies) > 0 {
		quoted := make([]string, len(spec.Dependencies))
		for i, d := range spec.Dependencies {
			quoted[i] = fmt.Sprintf("%q", d)
		}
		fmt.Fprintf(&b, "dependencies = { %s }\n", strings.Join(quoted, ", "))
	}
	if spec.UserDir != "" {
		fmt.Fprintf(&b, "user_dir = %q\n", spec.UserDir)
	}
	g.AddManifest(t, manifest, b.String())

	require.NoError(t, g.FS.MkdirAll(filepath.Join(g.ModDir(), folder), 0755))
	if spec.EventModifiers != nil {
		g.AddFile(t, filepath.Join("mod", folder, "common", "event_modifiers.txt"), *spec.EventModifiers)
	}
}

// AddManifest writes raw manifest content into the mod directory.
func (g *GameDir) AddManifest(t *testing.T, filename, content string) string {
	t.Helper()
	return g.AddFile(t, filepath.Join("mod", filename), content)
}

// AddFile writes content at a path relative to the game root.
func (g *GameDir) AddFile(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(g.Root, rel)
	require.NoError(t, g.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, g.FS.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadFile returns the content at a path relative to the game root.
func (g *GameDir) ReadFile(t *testing.T, rel string) string {
	t.Helper()
	return ReadString(t, g.FS, filepath.Join(g.Root, rel))
}

// Exists reports whether a path relative to the game root exists.
func (g *GameDir) Exists(rel string) bool {
	_, err := g.FS.Stat(filepath.Join(g.Root, rel))
	return err == nil
}
