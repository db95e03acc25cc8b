package list

import (
	"github.com/arthur-debert/modlauncher/pkg/launcher"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// ListModsOptions defines the options for the ListMods command.
type ListModsOptions struct {
	FS     types.FS
	Layout paths.Layout

	// Selected marks mods as selected in the result
	Selected []string
}

// ListMods scans the mod directory and returns installed mods in tree order.
func ListMods(opts ListModsOptions) (*types.ListModsResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListMods").Msg("Executing command")

	snap, err := mods.Scan(opts.FS, opts.Layout.ModDir())
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(opts.Selected))
	for _, name := range opts.Selected {
		selected[name] = true
	}
	withConflict := make(map[string]bool)
	for _, name := range launcher.Candidates(opts.FS, opts.Layout, snap, snap.Names()) {
		withConflict[name] = true
	}

	result := &types.ListModsResult{
		ModDir:   snap.ModDir,
		Mods:     []types.ModInfo{},
		Warnings: snap.Warnings,
	}
	mods.Walk(snap.Tree(), func(node *mods.TreeNode, depth int) {
		rec, _ := snap.Lookup(node.Name)
		result.Mods = append(result.Mods, types.ModInfo{
			Name:            rec.Name,
			ManifestFile:    rec.ManifestFile,
			Folder:          rec.FolderName,
			Dependencies:    rec.Dependencies,
			UserDir:         rec.UserDir,
			Version:         rec.Version,
			Selected:        selected[rec.Name],
			HasConflictFile: withConflict[rec.Name],
			Depth:           depth,
		})
	})

	log.Info().Str("command", "ListMods").Int("modCount", len(result.Mods)).Msg("Command finished")
	return result, nil
}
