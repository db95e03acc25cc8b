package selection

import (
	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// Mode says how Mods change the stored selection.
type Mode string

const (
	ModeShow   Mode = "show"
	ModeSet    Mode = "set"
	ModeAdd    Mode = "add"
	ModeRemove Mode = "remove"
	ModeClear  Mode = "clear"
)

// SelectOptions defines the options for the Select command.
type SelectOptions struct {
	FS     types.FS
	Config *config.Config
	Mode   Mode
	Mods   []string
	DryRun bool
}

// Select shows or changes the stored mod selection. Mods that are not
// installed are reported and left out.
func Select(opts SelectOptions) (*types.SelectionResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Select").Str("mode", string(opts.Mode)).Msg("Executing command")

	cfg := opts.Config
	result := &types.SelectionResult{}

	var unknown []string
	next := cfg.CheckedMods
	switch opts.Mode {
	case ModeShow, "":
		result.Selected = append([]string{}, cfg.CheckedMods...)
		return result, nil
	case ModeClear:
		next = []string{}
	case ModeSet, ModeAdd:
		known, missing, err := installed(opts.FS, cfg, opts.Mods)
		if err != nil {
			return nil, err
		}
		unknown = missing
		if opts.Mode == ModeSet {
			next = known
		} else {
			next = union(cfg.CheckedMods, known)
		}
	case ModeRemove:
		next = without(cfg.CheckedMods, opts.Mods)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown selection mode %q", opts.Mode)
	}

	result.Selected = next
	result.Unknown = unknown
	if opts.DryRun {
		return result, nil
	}

	cfg.CheckedMods = next
	if err := cfg.Save(); err != nil {
		return nil, err
	}
	result.Saved = true

	log.Info().Str("command", "Select").Strs("selected", next).Msg("Command finished")
	return result, nil
}

func installed(fs types.FS, cfg *config.Config, names []string) ([]string, []string, error) {
	if err := cfg.RequireGameRoot(); err != nil {
		return nil, nil, err
	}
	snap, err := mods.Scan(fs, cfg.Layout().ModDir())
	if err != nil {
		return nil, nil, err
	}
	known, unknown := snap.Known(names)
	return known, unknown, nil
}

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := []string{}
	for _, list := range [][]string{a, b} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

func without(list, remove []string) []string {
	drop := make(map[string]bool, len(remove))
	for _, name := range remove {
		drop[name] = true
	}
	out := []string{}
	for _, name := range list {
		if !drop[name] {
			out = append(out, name)
		}
	}
	return out
}
