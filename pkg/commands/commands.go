// Package commands provides high-level command implementations for modlauncher.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the launcher pipeline.
//
// Each command is implemented in its own subdirectory:
//   - list/      - ListMods command
//   - order/     - LoadOrder command
//   - merge/     - Merge command
//   - launch/    - Launch command
//   - selection/ - Select command
//   - preset/    - preset list/save/use/delete/export/import
//   - cache/     - ClearCache command
//   - genconfig/ - GenConfig command
//
// This file re-exports the command functions so the CLI depends on a single
// package.
package commands

import (
	"context"

	"github.com/arthur-debert/modlauncher/pkg/commands/cache"
	"github.com/arthur-debert/modlauncher/pkg/commands/genconfig"
	"github.com/arthur-debert/modlauncher/pkg/commands/launch"
	"github.com/arthur-debert/modlauncher/pkg/commands/list"
	"github.com/arthur-debert/modlauncher/pkg/commands/merge"
	"github.com/arthur-debert/modlauncher/pkg/commands/order"
	"github.com/arthur-debert/modlauncher/pkg/commands/preset"
	"github.com/arthur-debert/modlauncher/pkg/commands/selection"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// ListMods finds all installed mods.
type ListModsOptions = list.ListModsOptions

func ListMods(opts ListModsOptions) (*types.ListModsResult, error) {
	return list.ListMods(opts)
}

// LoadOrder resolves the merge order of the selected mods.
type LoadOrderOptions = order.LoadOrderOptions

func LoadOrder(opts LoadOrderOptions) (*types.LoadOrderResult, error) {
	return order.LoadOrder(opts)
}

// Merge merges event_modifiers.txt into the reserved mod.
type MergeOptions = merge.MergeOptions

func Merge(opts MergeOptions) (*types.MergeResult, error) {
	return merge.Merge(opts)
}

// Launch prepares and starts the game.
type LaunchOptions = launch.LaunchOptions

func Launch(ctx context.Context, opts LaunchOptions) (*types.LaunchResult, error) {
	return launch.Launch(ctx, opts)
}

// Select shows or changes the stored mod selection.
type SelectOptions = selection.SelectOptions
type SelectMode = selection.Mode

const (
	ModeShow   = selection.ModeShow
	ModeSet    = selection.ModeSet
	ModeAdd    = selection.ModeAdd
	ModeRemove = selection.ModeRemove
	ModeClear  = selection.ModeClear
)

func Select(opts SelectOptions) (*types.SelectionResult, error) {
	return selection.Select(opts)
}

// Preset commands share one options type.
type PresetOptions = preset.PresetOptions

func ListPresets(opts PresetOptions) (*types.PresetListResult, error) {
	return preset.ListPresets(opts)
}

func SavePreset(opts PresetOptions) (*types.PresetListResult, error) {
	return preset.SavePreset(opts)
}

func UsePreset(opts PresetOptions) (*types.SelectionResult, error) {
	return preset.UsePreset(opts)
}

func DeletePreset(opts PresetOptions) (*types.PresetListResult, error) {
	return preset.DeletePreset(opts)
}

func ExportPresets(opts PresetOptions) (*types.PresetListResult, error) {
	return preset.ExportPresets(opts)
}

func ImportPresets(opts PresetOptions) (*types.PresetListResult, error) {
	return preset.ImportPresets(opts)
}

// ClearCache removes the game's map, gfx and music caches.
type ClearCacheOptions = cache.ClearCacheOptions

func ClearCache(opts ClearCacheOptions) (*types.CacheClearResult, error) {
	return cache.ClearCache(opts)
}

// GenConfig outputs or writes a commented default configuration.
type GenConfigOptions = genconfig.GenConfigOptions
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
