package launcher

import (
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// Candidates returns the selected mods, in selection order and without
// repeats, that are installed, declare a folder and ship a conflict-file.
func Candidates(fs types.FS, layout paths.Layout, snap *mods.Snapshot, selected []string) []string {
	seen := make(map[string]bool, len(selected))
	candidates := []string{}
	for _, name := range selected {
		if seen[name] || name == types.ReservedModName {
			continue
		}
		seen[name] = true

		rec, ok := snap.Lookup(name)
		if !ok {
			continue
		}
		path := layout.ModConflictFile(rec)
		if path == "" {
			continue
		}
		info, err := fs.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		candidates = append(candidates, name)
	}
	return candidates
}
