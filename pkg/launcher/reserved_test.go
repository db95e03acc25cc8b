package launcher

import (
	"errors"
	"testing"

	lerrors "github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/manifest"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/testutil"
	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureReservedMod(t *testing.T) {
	fs := testutil.NewTestFS()
	game := testutil.NewGameDir(t, fs, "/game")
	layout := paths.NewLayout("/game", "/docs")

	created, err := EnsureReservedMod(fs, layout)
	require.NoError(t, err)
	assert.Len(t, created, 3)

	rec, ok := manifest.Parse(game.ReadFile(t, "mod/z_launcher.mod"))
	require.True(t, ok)
	assert.Equal(t, types.ReservedModName, rec.Name)
	assert.Equal(t, "mod/z_launcher", rec.InstallPath)
	assert.Equal(t, "z_launcher", rec.FolderName)
	assert.Equal(t, "z_launcher", rec.UserDir)

	assert.Equal(t, "", game.ReadFile(t, "mod/z_launcher/common/event_modifiers.txt"))
	assert.Equal(t, ReservedReadme, game.ReadFile(t, "mod/z_launcher/readme.txt"))
}

func TestEnsureReservedMod_KeepsExistingFiles(t *testing.T) {
	fs := testutil.NewTestFS()
	game := testutil.NewGameDir(t, fs, "/game")
	layout := paths.NewLayout("/game", "/docs")
	game.AddFile(t, "mod/z_launcher/common/event_modifiers.txt", "a=1\n")

	created, err := EnsureReservedMod(fs, layout)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{layout.ReservedManifest(), layout.ReservedReadme()}, created)
	assert.Equal(t, "a=1\n", game.ReadFile(t, "mod/z_launcher/common/event_modifiers.txt"))

	created, err = EnsureReservedMod(fs, layout)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestEnsureReservedMod_MkdirFailure(t *testing.T) {
	base := testutil.NewTestFS()
	layout := paths.NewLayout("/game", "/docs")
	fs := testutil.NewFailingFS(base).FailMkdir("/game/mod/z_launcher/common", errors.New("read-only"))

	_, err := EnsureReservedMod(fs, layout)
	require.Error(t, err)
	assert.True(t, lerrors.IsErrorCode(err, lerrors.ErrDirCreate))
}
