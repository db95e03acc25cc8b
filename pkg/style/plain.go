package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/types"
)

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) RenderModList(result *types.ListModsResult) string {
	if len(result.Mods) == 0 {
		return "No mods found in " + result.ModDir
	}

	var b strings.Builder
	for _, mod := range result.Mods {
		mark := " "
		if mod.Selected {
			mark = "x"
		}
		line := fmt.Sprintf("%s[%s] %s", strings.Repeat("  ", mod.Depth), mark, mod.Name)
		if mod.HasConflictFile {
			line += " [event_modifiers]"
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(r.RenderWarnings(result.Warnings))
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderLoadOrder(result *types.LoadOrderResult) string {
	if len(result.Order) == 0 {
		return "No selected mods ship event_modifiers.txt"
	}

	var b strings.Builder
	for i, name := range result.Order {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
	}
	if result.FellBack {
		b.WriteString("warning: dependency cycle, using alphabetical order\n")
	}
	b.WriteString(r.RenderWarnings(result.Warnings))
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderMerge(result *types.MergeResult) string {
	if result == nil || len(result.Order) == 0 {
		return "Nothing to merge"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("order: %s\n", strings.Join(result.Order, ", ")))
	b.WriteString(fmt.Sprintf("keys: %d\n", result.Keys))
	if result.Written {
		b.WriteString(fmt.Sprintf("written: %s\n", result.OutputPath))
	} else {
		b.WriteString(fmt.Sprintf("would write: %s\n", result.OutputPath))
	}
	if result.FellBack {
		b.WriteString("warning: dependency cycle, using alphabetical order\n")
	}
	b.WriteString(r.RenderWarnings(result.Warnings))
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderLaunch(result *types.LaunchResult) string {
	var b strings.Builder
	if result.Merge != nil {
		b.WriteString(r.RenderMerge(result.Merge) + "\n")
	}
	b.WriteString(result.Command + "\n")
	switch {
	case result.DryRun:
		b.WriteString("dry run, game not started\n")
	case result.Launched:
		b.WriteString(fmt.Sprintf("game started (pid %d)\n", result.Pid))
	}
	b.WriteString(r.RenderWarnings(result.Warnings))
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderSelection(result *types.SelectionResult) string {
	var b strings.Builder
	if len(result.Selected) == 0 {
		b.WriteString("No mods selected\n")
	}
	for _, name := range result.Selected {
		b.WriteString(name + "\n")
	}
	for _, name := range result.Unknown {
		b.WriteString(fmt.Sprintf("warning: %s is not installed\n", name))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderPresets(result *types.PresetListResult) string {
	if len(result.Presets) == 0 {
		return "No presets saved"
	}
	var b strings.Builder
	for _, p := range result.Presets {
		b.WriteString(fmt.Sprintf("%s: %s\n", p.Name, strings.Join(p.Mods, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderCacheClear(result *types.CacheClearResult) string {
	if len(result.Removed) == 0 {
		return "Cache already empty"
	}
	verb := "removed"
	if result.DryRun {
		verb = "would remove"
	}
	var b strings.Builder
	for _, dir := range result.Removed {
		b.WriteString(fmt.Sprintf("%s %s\n", verb, dir))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderWarnings(warnings types.Warnings) string {
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString("warning: " + w.String() + "\n")
	}
	return b.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
