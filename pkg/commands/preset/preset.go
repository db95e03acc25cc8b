package preset

import (
	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// PresetOptions defines the options shared by the preset commands.
type PresetOptions struct {
	Config *config.Config

	// Name of the preset to act on
	Name string

	// Mods to store; SavePreset uses the current selection when empty
	Mods []string

	// Path of the YAML file for export and import
	Path string

	// Names limits an export; all presets when empty
	Names []string
}

// ListPresets returns the stored presets sorted by name.
func ListPresets(opts PresetOptions) (*types.PresetListResult, error) {
	result := &types.PresetListResult{Presets: []types.PresetInfo{}}
	for _, name := range opts.Config.PresetNames() {
		p, err := opts.Config.Preset(name)
		if err != nil {
			return nil, err
		}
		result.Presets = append(result.Presets, types.PresetInfo{Name: p.Name, Mods: p.Mods})
	}
	return result, nil
}

// SavePreset stores a preset and writes the config.
func SavePreset(opts PresetOptions) (*types.PresetListResult, error) {
	log := logging.GetLogger("core.commands")

	mods := opts.Mods
	if len(mods) == 0 {
		mods = opts.Config.CheckedMods
	}
	if len(mods) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no mods given and no mods selected")
	}
	if err := opts.Config.SavePreset(opts.Name, mods); err != nil {
		return nil, err
	}
	if err := opts.Config.Save(); err != nil {
		return nil, err
	}

	log.Info().Str("command", "SavePreset").Str("preset", opts.Name).Strs("mods", mods).Msg("Command finished")
	return onePreset(opts.Config, opts.Name)
}

// UsePreset makes the preset the current selection.
func UsePreset(opts PresetOptions) (*types.SelectionResult, error) {
	log := logging.GetLogger("core.commands")

	p, err := opts.Config.Preset(opts.Name)
	if err != nil {
		return nil, err
	}
	opts.Config.CheckedMods = append([]string{}, p.Mods...)
	if err := opts.Config.Save(); err != nil {
		return nil, err
	}

	log.Info().Str("command", "UsePreset").Str("preset", opts.Name).Msg("Command finished")
	return &types.SelectionResult{Selected: opts.Config.CheckedMods, Saved: true}, nil
}

// DeletePreset removes a preset and writes the config.
func DeletePreset(opts PresetOptions) (*types.PresetListResult, error) {
	if err := opts.Config.DeletePreset(opts.Name); err != nil {
		return nil, err
	}
	if err := opts.Config.Save(); err != nil {
		return nil, err
	}
	return ListPresets(opts)
}

// ExportPresets writes presets to a YAML file.
func ExportPresets(opts PresetOptions) (*types.PresetListResult, error) {
	if err := opts.Config.ExportPresets(opts.Path, opts.Names...); err != nil {
		return nil, err
	}
	result := &types.PresetListResult{Presets: []types.PresetInfo{}}
	names := opts.Names
	if len(names) == 0 {
		names = opts.Config.PresetNames()
	}
	for _, name := range names {
		one, err := onePreset(opts.Config, name)
		if err != nil {
			return nil, err
		}
		result.Presets = append(result.Presets, one.Presets...)
	}
	return result, nil
}

// ImportPresets reads presets from a YAML file and writes the config.
func ImportPresets(opts PresetOptions) (*types.PresetListResult, error) {
	names, err := opts.Config.ImportPresets(opts.Path)
	if err != nil {
		return nil, err
	}
	if err := opts.Config.Save(); err != nil {
		return nil, err
	}
	result := &types.PresetListResult{Presets: []types.PresetInfo{}}
	for _, name := range names {
		one, err := onePreset(opts.Config, name)
		if err != nil {
			return nil, err
		}
		result.Presets = append(result.Presets, one.Presets...)
	}
	return result, nil
}

func onePreset(cfg *config.Config, name string) (*types.PresetListResult, error) {
	p, err := cfg.Preset(name)
	if err != nil {
		return nil, err
	}
	return &types.PresetListResult{Presets: []types.PresetInfo{{Name: p.Name, Mods: p.Mods}}}, nil
}
