// pkg/commands/list/list_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test mod discovery, tree grouping and selection marks

package list_test

import (
	"testing"

	"github.com/arthur-debert/modlauncher/pkg/commands/list"
	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/launcher"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMods_TreeOrder(t *testing.T) {
	fs := testutil.NewTestFS()
	game := testutil.NewGameDir(t, fs, "/game")
	layout := paths.NewLayout("/game", "/docs")
	game.AddMod(t, testutil.ModSpec{Name: "HPM", EventModifiers: testutil.Text("a=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "HPM Addon", Dependencies: []string{"HPM"}})
	game.AddMod(t, testutil.ModSpec{Name: "Alpha"})
	_, err := launcher.EnsureReservedMod(fs, layout)
	require.NoError(t, err)

	result, err := list.ListMods(list.ListModsOptions{
		FS:       fs,
		Layout:   layout,
		Selected: []string{"HPM Addon"},
	})
	require.NoError(t, err)

	require.Len(t, result.Mods, 3, "reserved mod is hidden")
	assert.Equal(t, "Alpha", result.Mods[0].Name)
	assert.Equal(t, "HPM", result.Mods[1].Name)
	assert.True(t, result.Mods[1].HasConflictFile)
	assert.Equal(t, "HPM Addon", result.Mods[2].Name)
	assert.Equal(t, 1, result.Mods[2].Depth)
	assert.True(t, result.Mods[2].Selected)
	assert.False(t, result.Mods[1].Selected)
	assert.Equal(t, "HPM Addon.mod", result.Mods[2].ManifestFile)
}

func TestListMods_Empty(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.NewGameDir(t, fs, "/game")

	result, err := list.ListMods(list.ListModsOptions{FS: fs, Layout: paths.NewLayout("/game", "/docs")})
	require.NoError(t, err)
	assert.Empty(t, result.Mods)
}

func TestListMods_MissingModDir(t *testing.T) {
	_, err := list.ListMods(list.ListModsOptions{
		FS:     testutil.NewTestFS(),
		Layout: paths.NewLayout("/nowhere", "/docs"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrModDirNotFound))
}
