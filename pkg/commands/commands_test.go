// pkg/commands/commands_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, temp config file
// PURPOSE: Test the re-exported command surface used by the CLI

package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modlauncher/pkg/commands"
	"github.com/arthur-debert/modlauncher/pkg/commands/selection"
	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/arthur-debert/modlauncher/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectModes_MatchSelectionPackage(t *testing.T) {
	modes := map[commands.SelectMode]selection.Mode{
		commands.ModeShow:   selection.ModeShow,
		commands.ModeSet:    selection.ModeSet,
		commands.ModeAdd:    selection.ModeAdd,
		commands.ModeRemove: selection.ModeRemove,
		commands.ModeClear:  selection.ModeClear,
	}
	assert.Len(t, modes, 5)
	for exported, want := range modes {
		assert.Equal(t, want, exported)
	}
}

func TestSelect_ThroughCommands(t *testing.T) {
	fs := testutil.NewTestFS()
	game := testutil.NewGameDir(t, fs, "/game")
	game.AddMod(t, testutil.ModSpec{Name: "HPM"})
	game.AddMod(t, testutil.ModSpec{Name: "PDM"})

	cfg, err := config.Load(filepath.Join(t.TempDir(), "launcher.toml"), map[string]interface{}{"game_root": "/game"})
	require.NoError(t, err)

	result, err := commands.Select(commands.SelectOptions{FS: fs, Config: cfg, Mode: commands.ModeSet, Mods: []string{"PDM"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"PDM"}, result.Selected)

	result, err = commands.Select(commands.SelectOptions{FS: fs, Config: cfg, Mode: commands.ModeAdd, Mods: []string{"HPM"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"PDM", "HPM"}, result.Selected)

	result, err = commands.Select(commands.SelectOptions{FS: fs, Config: cfg, Mode: commands.ModeRemove, Mods: []string{"PDM"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"HPM"}, result.Selected)

	result, err = commands.Select(commands.SelectOptions{FS: fs, Config: cfg, Mode: commands.ModeShow})
	require.NoError(t, err)
	assert.Equal(t, []string{"HPM"}, result.Selected)

	result, err = commands.Select(commands.SelectOptions{FS: fs, Config: cfg, Mode: commands.ModeClear})
	require.NoError(t, err)
	assert.Empty(t, result.Selected)
}
