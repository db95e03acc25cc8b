package launcher

import (
	"path/filepath"
	"testing"

	lerrors "github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandSnapshot() *mods.Snapshot {
	return mods.NewSnapshot("/game/mod",
		types.ModRecord{Name: "Historical Project Mod", ManifestFile: "HPM.mod", FolderName: "HPM"},
		types.ModRecord{Name: "PDM", ManifestFile: "PDM.mod", FolderName: "PDM"},
	)
}

func TestModArgs(t *testing.T) {
	args, err := ModArgs(commandSnapshot(), []string{"Historical Project Mod", "PDM", types.ReservedModName})
	require.NoError(t, err)
	assert.Equal(t, []string{"-mod=mod/HPM.mod", "-mod=mod/PDM.mod", "-mod=mod/z_launcher.mod"}, args)
}

func TestModArgs_Unknown(t *testing.T) {
	_, err := ModArgs(commandSnapshot(), []string{"Ghost"})
	require.Error(t, err)
	assert.True(t, lerrors.IsErrorCode(err, lerrors.ErrModNotFound))
}

func TestBuildCommand_Windows(t *testing.T) {
	cmd, err := BuildCommand(commandSnapshot(), CommandOptions{
		GameRoot:   `C:\Games\Victoria 2`,
		Executable: "v2game.exe",
		Mods:       []string{"PDM"},
		GOOS:       "windows",
	})
	require.NoError(t, err)

	assert.Equal(t, "cmd", cmd.Path)
	assert.Equal(t, []string{
		"/C", "start", "Victoria II", "/high", "/affinity", "1", "/node", "0",
		"v2game.exe", "-mod=mod/PDM.mod",
	}, cmd.Args)
	assert.Equal(t, "v2game.exe -mod=mod/PDM.mod", cmd.GameLine())
	assert.Equal(t, `cmd /C start "Victoria II" /high /affinity 1 /node 0 v2game.exe -mod=mod/PDM.mod`, cmd.String())
	assert.Equal(t, `C:\Games\Victoria 2`, cmd.Dir)
}

func TestBuildCommand_Realtime(t *testing.T) {
	cmd, err := BuildCommand(commandSnapshot(), CommandOptions{
		GameRoot:   "/game",
		Executable: "v2game.exe",
		Realtime:   true,
		GOOS:       "windows",
	})
	require.NoError(t, err)
	assert.Equal(t, PriorityRealtime, cmd.Priority)
	assert.Contains(t, cmd.Args, "/realtime")
	assert.Equal(t, "v2game.exe", cmd.GameLine())
}

func TestBuildCommand_Direct(t *testing.T) {
	cmd, err := BuildCommand(commandSnapshot(), CommandOptions{
		GameRoot:   "/game",
		Executable: "v2game.exe",
		Mods:       []string{"PDM", types.ReservedModName},
		GOOS:       "linux",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/game", "v2game.exe"), cmd.Path)
	assert.Equal(t, []string{"-mod=mod/PDM.mod", "-mod=mod/z_launcher.mod"}, cmd.Args)
}

func TestBuildCommand_Wrapper(t *testing.T) {
	cmd, err := BuildCommand(commandSnapshot(), CommandOptions{
		GameRoot:   "/game",
		Executable: "v2game.exe",
		Mods:       []string{"PDM"},
		Wrapper:    "wine",
		GOOS:       "linux",
	})
	require.NoError(t, err)
	assert.Equal(t, "wine", cmd.Path)
	assert.Equal(t, []string{"v2game.exe", "-mod=mod/PDM.mod"}, cmd.Args)
}

func TestBuildCommand_NoExecutable(t *testing.T) {
	_, err := BuildCommand(commandSnapshot(), CommandOptions{GameRoot: "/game"})
	assert.True(t, lerrors.IsErrorCode(err, lerrors.ErrInvalidInput))
}
