package launcher

import (
	"errors"
	"testing"

	lerrors "github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/testutil"
	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGame(t *testing.T) (types.FS, *testutil.GameDir, paths.Layout) {
	t.Helper()
	fs := testutil.NewTestFS()
	game := testutil.NewGameDir(t, fs, "/game")
	return fs, game, paths.NewLayout("/game", "/docs")
}

func TestPrepare_MergesInDependencyOrder(t *testing.T) {
	fs, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "B", Dependencies: []string{"A"}, EventModifiers: testutil.Text("x=2\ny=2\n")})
	game.AddMod(t, testutil.ModSpec{Name: "A", EventModifiers: testutil.Text("x=1\nz=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "C", UserDir: "CUser"})

	plan, err := NewPipeline(fs, layout, Options{Merge: true}).Prepare([]string{"B", "C", "A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, plan.Candidates)
	assert.Equal(t, []string{"A", "B"}, plan.LoadOrder.Order)
	assert.Equal(t, []string{"B", "C", "A", types.ReservedModName}, plan.Mods)
	assert.Equal(t, "CUser", plan.UserDir)
	require.True(t, plan.MergeApplied())

	assert.Equal(t, "x=2\nz=1\ny=2\n", game.ReadFile(t, "mod/z_launcher/common/event_modifiers.txt"))
	assert.True(t, game.Exists("mod/z_launcher.mod"))
}

func TestPrepare_SingleCandidateSkipsMerge(t *testing.T) {
	fs, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "A", EventModifiers: testutil.Text("x=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "B"})

	plan, err := NewPipeline(fs, layout, Options{Merge: true}).Prepare([]string{"A", "B"})
	require.NoError(t, err)

	assert.False(t, plan.MergeApplied())
	assert.Equal(t, []string{"A", "B"}, plan.Mods)
	// reserved mod is still set up, with an empty conflict-file
	assert.Equal(t, "", game.ReadFile(t, "mod/z_launcher/common/event_modifiers.txt"))
}

func TestPrepare_MergeDisabled(t *testing.T) {
	fs, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "A", EventModifiers: testutil.Text("x=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "B", EventModifiers: testutil.Text("x=2\n")})

	plan, err := NewPipeline(fs, layout, Options{Merge: false}).Prepare([]string{"A", "B"})
	require.NoError(t, err)

	assert.False(t, plan.MergeApplied())
	assert.Equal(t, []string{"A", "B"}, plan.Mods)
	assert.False(t, game.Exists("mod/z_launcher"))
}

func TestPrepare_DryRunWritesNothing(t *testing.T) {
	fs, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "A", EventModifiers: testutil.Text("x=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "B", EventModifiers: testutil.Text("x=2\n")})

	plan, err := NewPipeline(fs, layout, Options{Merge: true, DryRun: true}).Prepare([]string{"A", "B"})
	require.NoError(t, err)

	require.True(t, plan.MergeApplied())
	assert.Equal(t, "x=2\n", plan.Merged.Render())
	assert.Equal(t, []string{"A", "B", types.ReservedModName}, plan.Mods)
	assert.False(t, game.Exists("mod/z_launcher"))
}

func TestPrepare_UnknownAndDuplicateSelection(t *testing.T) {
	fs, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "A"})

	plan, err := NewPipeline(fs, layout, Options{Merge: true}).Prepare([]string{"A", "Ghost", "A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, plan.Selected)
	assert.Equal(t, []string{"Ghost"}, plan.Unknown)
	assert.True(t, plan.Warnings.HasCode(types.WarnUnknownMod))
	assert.Equal(t, []string{"A"}, plan.Mods)
}

func TestPrepare_CycleFallsBackToSortedOrder(t *testing.T) {
	fs, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "Y", Dependencies: []string{"X"}, EventModifiers: testutil.Text("k=Y\n")})
	game.AddMod(t, testutil.ModSpec{Name: "X", Dependencies: []string{"Y"}, EventModifiers: testutil.Text("k=X\n")})

	plan, err := NewPipeline(fs, layout, Options{Merge: true}).Prepare([]string{"Y", "X"})
	require.NoError(t, err)

	assert.True(t, plan.LoadOrder.FellBack)
	assert.Equal(t, []string{"X", "Y"}, plan.LoadOrder.Order)
	assert.True(t, plan.Warnings.HasCode(types.WarnLoadOrderCycle))
	assert.Equal(t, "k=Y\n", game.ReadFile(t, "mod/z_launcher/common/event_modifiers.txt"))
}

func TestPrepare_UnreadableConflictFileIsSkipped(t *testing.T) {
	base, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "A", EventModifiers: testutil.Text("x=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "B", EventModifiers: testutil.Text("x=2\n")})
	game.AddMod(t, testutil.ModSpec{Name: "C", EventModifiers: testutil.Text("x=3\n")})
	fs := testutil.NewFailingFS(base).FailRead(layout.ConflictFile("C"), errors.New("locked"))

	plan, err := NewPipeline(fs, layout, Options{Merge: true}).Prepare([]string{"A", "B", "C"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, plan.Merged.Sources)
	require.Len(t, plan.Warnings.ForMod("C"), 1)
	assert.Equal(t, types.WarnConflictUnreadable, plan.Warnings.ForMod("C")[0].Code)
	assert.Equal(t, "x=2\n", game.ReadFile(t, "mod/z_launcher/common/event_modifiers.txt"))
}

func TestPrepare_MergeWriteFailure(t *testing.T) {
	base, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "A", EventModifiers: testutil.Text("x=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "B", EventModifiers: testutil.Text("x=2\n")})
	// reserved mod already set up so only the merged write hits the disk
	_, err := EnsureReservedMod(base, layout)
	require.NoError(t, err)
	fs := testutil.NewFailingFS(base).FailWrite(layout.ReservedConflictFile(), errors.New("disk full"))

	_, err = NewPipeline(fs, layout, Options{Merge: true}).Prepare([]string{"A", "B"})
	require.Error(t, err)
	assert.True(t, lerrors.IsErrorCode(err, lerrors.ErrMergeWrite))
}

func TestPrepare_MissingModDir(t *testing.T) {
	fs := testutil.NewTestFS()
	layout := paths.NewLayout("/nowhere", "/docs")

	_, err := NewPipeline(fs, layout, Options{Merge: true}).Prepare([]string{"A"})
	require.Error(t, err)
	assert.True(t, lerrors.IsErrorCode(err, lerrors.ErrModDirNotFound))
}

func TestPrepare_ReservedModNotSelectable(t *testing.T) {
	fs, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "A", EventModifiers: testutil.Text("x=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "B", EventModifiers: testutil.Text("x=2\n")})
	_, err := EnsureReservedMod(fs, layout)
	require.NoError(t, err)

	plan, err := NewPipeline(fs, layout, Options{Merge: true}).Prepare([]string{"A", types.ReservedModName, "B"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, plan.Candidates)
	assert.Equal(t, []string{"A", "B", types.ReservedModName}, plan.Mods)
}

func TestCandidates(t *testing.T) {
	fs, game, layout := setupGame(t)
	game.AddMod(t, testutil.ModSpec{Name: "A", EventModifiers: testutil.Text("x=1\n")})
	game.AddMod(t, testutil.ModSpec{Name: "B"})
	game.AddManifest(t, "NoPath.mod", "name = \"NoPath\"\n")
	game.AddMod(t, testutil.ModSpec{Name: "D", EventModifiers: testutil.Text("")})

	plan, err := NewPipeline(fs, layout, Options{}).Prepare(nil)
	require.NoError(t, err)

	got := Candidates(fs, layout, plan.Snapshot, []string{"D", "B", "NoPath", "Ghost", "A", "D"})
	assert.Equal(t, []string{"D", "A"}, got)
}
