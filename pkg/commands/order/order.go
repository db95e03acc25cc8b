package order

import (
	"github.com/arthur-debert/modlauncher/pkg/launcher"
	"github.com/arthur-debert/modlauncher/pkg/loadorder"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// LoadOrderOptions defines the options for the LoadOrder command.
type LoadOrderOptions struct {
	FS       types.FS
	Layout   paths.Layout
	Selected []string
}

// LoadOrder resolves the merge order of the selected mods that ship a
// conflict-file, without merging anything.
func LoadOrder(opts LoadOrderOptions) (*types.LoadOrderResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "LoadOrder").Msg("Executing command")

	snap, err := mods.Scan(opts.FS, opts.Layout.ModDir())
	if err != nil {
		return nil, err
	}

	known, unknown := snap.Known(opts.Selected)
	candidates := launcher.Candidates(opts.FS, opts.Layout, snap, known)
	resolved := loadorder.Resolve(candidates, snap.Dependencies)

	result := &types.LoadOrderResult{
		Candidates: candidates,
		Order:      resolved.Order,
		FellBack:   resolved.FellBack,
	}
	result.Warnings.Extend(snap.Warnings)
	for _, name := range unknown {
		result.Warnings.Add(types.Warning{
			Code:    types.WarnUnknownMod,
			Mod:     name,
			Message: "selected mod is not installed",
		})
	}
	result.Warnings.Extend(resolved.Warnings)

	log.Info().Str("command", "LoadOrder").Strs("order", result.Order).Msg("Command finished")
	return result, nil
}
