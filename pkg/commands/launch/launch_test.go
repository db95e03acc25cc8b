// pkg/commands/launch/launch_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, temp config file, fake process starter
// PURPOSE: Test the full launch flow from selection to command line

package launch_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modlauncher/pkg/commands/launch"
	"github.com/arthur-debert/modlauncher/pkg/config"
	lerrors "github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/launcher"
	"github.com/arthur-debert/modlauncher/pkg/testutil"
	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStarter struct {
	started []*launcher.Command
	exitErr error
	err     error
}

func (f *fakeStarter) start(ctx context.Context, cmd *launcher.Command) (*launcher.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.started = append(f.started, cmd)
	task, finish := launcher.NewTask(4242)
	finish(f.exitErr)
	return task, nil
}

func setup(t *testing.T) (*testutil.GameDir, *config.Config) {
	t.Helper()
	fs := testutil.NewTestFS()
	game := testutil.NewGameDir(t, fs, "/game")
	game.AddMod(t, testutil.ModSpec{Name: "HPM", UserDir: "HPM", EventModifiers: testutil.Text("a=1\nb=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "Addon", Dependencies: []string{"HPM"}, EventModifiers: testutil.Text("a=2\n")})
	game.AddMod(t, testutil.ModSpec{Name: "Music"})
	game.AddFile(t, "movies/intro.bk2", "x")
	require.NoError(t, fs.MkdirAll("/docs/HPM", 0755))
	require.NoError(t, fs.WriteFile("/docs/HPM/settings.txt", []byte("shortcut=yes\nupdate_time=1.000000\n"), 0644))

	cfg, err := config.Load(filepath.Join(t.TempDir(), "launcher.toml"), map[string]interface{}{
		"game_root":     "/game",
		"documents_dir": "/docs",
		"update_time":   3.0,
		"skip_intro":    true,
	})
	require.NoError(t, err)
	return game, cfg
}

func TestLaunch_FullFlow(t *testing.T) {
	game, cfg := setup(t)
	starter := &fakeStarter{}

	result, err := launch.Launch(context.Background(), launch.LaunchOptions{
		FS:       game.FS,
		Config:   cfg,
		Selected: []string{"Addon", "HPM", "Music"},
		Start:    starter.start,
		GOOS:     "windows",
		Wait:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Addon", "HPM", "Music", types.ReservedModName}, result.Mods)
	assert.Equal(t, "v2game.exe -mod=mod/Addon.mod -mod=mod/HPM.mod -mod=mod/Music.mod -mod=mod/z_launcher.mod", result.GameLine)
	assert.Contains(t, result.Command, `start "Victoria II" /high /affinity 1 /node 0`)
	assert.True(t, result.Launched)
	assert.Equal(t, 4242, result.Pid)
	require.NotNil(t, result.Merge)
	assert.Equal(t, []string{"HPM", "Addon"}, result.Merge.Order)

	assert.Equal(t, "a=2\nb=1\n", game.ReadFile(t, "mod/z_launcher/common/event_modifiers.txt"))

	assert.Equal(t, "shortcut=yes\nupdate_time=3.000000\n", testutil.ReadString(t, game.FS, "/docs/HPM/settings.txt"))

	assert.False(t, game.Exists("movies"))
	assert.True(t, game.Exists("moviesdisabled"))

	require.Len(t, starter.started, 1)
	assert.Equal(t, "/game", starter.started[0].Dir)

	reloaded, err := config.Load(cfg.Path(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Addon", "HPM", "Music"}, reloaded.CheckedMods)
}

func TestLaunch_UsesStoredSelection(t *testing.T) {
	game, cfg := setup(t)
	cfg.CheckedMods = []string{"Music"}
	cfg.Realtime = true
	starter := &fakeStarter{}

	result, err := launch.Launch(context.Background(), launch.LaunchOptions{
		FS:     game.FS,
		Config: cfg,
		Start:  starter.start,
		GOOS:   "windows",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Music"}, result.Mods)
	assert.Nil(t, result.Merge)
	assert.Contains(t, result.Command, "/realtime")
	// vanilla user dir has no settings file
	assert.True(t, result.Warnings.HasCode(types.WarnSettingsMissing))
}

func TestLaunch_DryRun(t *testing.T) {
	game, cfg := setup(t)
	starter := &fakeStarter{}

	result, err := launch.Launch(context.Background(), launch.LaunchOptions{
		FS:       game.FS,
		Config:   cfg,
		Selected: []string{"HPM", "Addon"},
		DryRun:   true,
		Start:    starter.start,
		GOOS:     "windows",
	})
	require.NoError(t, err)

	assert.False(t, result.Launched)
	assert.Empty(t, starter.started)
	assert.False(t, result.Merge.Written)
	assert.False(t, game.Exists("mod/z_launcher"))
	assert.True(t, game.Exists("movies"))
	assert.Empty(t, cfg.CheckedMods)
}

func TestLaunch_NoGameRoot(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "launcher.toml"), nil)
	require.NoError(t, err)
	cfg.GameRoot = ""

	_, err = launch.Launch(context.Background(), launch.LaunchOptions{FS: testutil.NewTestFS(), Config: cfg})
	require.Error(t, err)
	assert.True(t, lerrors.IsErrorCode(err, lerrors.ErrGameNotFound))
}

func TestLaunch_StartFailure(t *testing.T) {
	game, cfg := setup(t)
	starter := &fakeStarter{err: lerrors.New(lerrors.ErrLaunch, "cannot start")}

	_, err := launch.Launch(context.Background(), launch.LaunchOptions{
		FS:       game.FS,
		Config:   cfg,
		Selected: []string{"HPM"},
		Start:    starter.start,
	})
	require.Error(t, err)
	assert.True(t, lerrors.IsErrorCode(err, lerrors.ErrLaunch))
	assert.Empty(t, cfg.CheckedMods, "selection is only stored after a successful start")
}

func TestLaunch_WaitReturnsExitError(t *testing.T) {
	game, cfg := setup(t)
	starter := &fakeStarter{exitErr: errors.New("exit status 1")}

	result, err := launch.Launch(context.Background(), launch.LaunchOptions{
		FS:       game.FS,
		Config:   cfg,
		Selected: []string{"HPM"},
		Start:    starter.start,
		Wait:     true,
	})
	require.Error(t, err)
	assert.True(t, result.Launched)
}
