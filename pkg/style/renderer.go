package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer defines the interface for rendering command results
type Renderer interface {
	RenderModList(result *types.ListModsResult) string
	RenderLoadOrder(result *types.LoadOrderResult) string
	RenderMerge(result *types.MergeResult) string
	RenderLaunch(result *types.LaunchResult) string
	RenderSelection(result *types.SelectionResult) string
	RenderPresets(result *types.PresetListResult) string
	RenderCacheClear(result *types.CacheClearResult) string
	RenderWarnings(warnings types.Warnings) string
	RenderError(err error) string
}

// NewRenderer returns the renderer for a resolved format.
func NewRenderer(f Format) Renderer {
	switch f {
	case FormatTerminal:
		return NewTerminalRenderer()
	case FormatJSON:
		return NewJSONRenderer()
	default:
		return NewPlainRenderer()
	}
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderModList renders installed mods as a tree grouped by dependency
func (r *TerminalRenderer) RenderModList(result *types.ListModsResult) string {
	if len(result.Mods) == 0 {
		return MutedStyle.Render("No mods found in " + result.ModDir)
	}

	root := pterm.TreeNode{}
	// stack[d] is the last node added at depth d
	stack := []*pterm.TreeNode{&root}
	for _, mod := range result.Mods {
		depth := mod.Depth + 1
		if depth > len(stack) {
			depth = len(stack)
		}
		stack = stack[:depth]
		parent := stack[depth-1]
		parent.Children = append(parent.Children, pterm.TreeNode{Text: r.modLine(mod)})
		stack = append(stack, &parent.Children[len(parent.Children)-1])
	}

	tree, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return NewPlainRenderer().RenderModList(result)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Installed mods") + "\n")
	b.WriteString(tree)
	if w := r.RenderWarnings(result.Warnings); w != "" {
		b.WriteString("\n" + w)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) modLine(mod types.ModInfo) string {
	indicator := UnselectedIndicator
	name := ModStyle.Render(mod.Name)
	if mod.Selected {
		indicator = SelectedIndicator
		name = SelectedModStyle.Render(mod.Name)
	}
	line := fmt.Sprintf("%s %s", indicator, name)
	if mod.HasConflictFile {
		line += " " + MergeStyle.Render("[event_modifiers]")
	}
	if mod.UserDir != "" {
		line += " " + MutedStyle.Render("user_dir="+mod.UserDir)
	}
	return line
}

// RenderLoadOrder renders the numbered merge order
func (r *TerminalRenderer) RenderLoadOrder(result *types.LoadOrderResult) string {
	if len(result.Order) == 0 {
		return MutedStyle.Render("No selected mods ship event_modifiers.txt")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Load order") + "\n")
	for i, name := range result.Order {
		b.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render(fmt.Sprintf("%2d.", i+1)), ModStyle.Render(name)))
	}
	if result.FellBack {
		b.WriteString(WarningIndicator + " " + WarningStyle.Render("dependency cycle, using alphabetical order") + "\n")
	}
	if w := r.RenderWarnings(result.Warnings); w != "" {
		b.WriteString(w)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderMerge renders a merge summary
func (r *TerminalRenderer) RenderMerge(result *types.MergeResult) string {
	if result == nil || len(result.Order) == 0 {
		return MutedStyle.Render("Nothing to merge")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Merged event modifiers") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render("order:"), strings.Join(result.Order, " → ")))
	b.WriteString(fmt.Sprintf("  %s %d\n", MutedStyle.Render("keys:"), result.Keys))
	target := PathStyle.Render(result.OutputPath)
	if result.Written {
		b.WriteString(fmt.Sprintf("  %s %s\n", SuccessStyle.Render("written:"), target))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render("would write:"), target))
	}
	if result.FellBack {
		b.WriteString(WarningIndicator + " " + WarningStyle.Render("dependency cycle, using alphabetical order") + "\n")
	}
	if w := r.RenderWarnings(result.Warnings); w != "" {
		b.WriteString(w)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderLaunch renders the assembled command and launch status
func (r *TerminalRenderer) RenderLaunch(result *types.LaunchResult) string {
	var b strings.Builder
	if result.Merge != nil {
		b.WriteString(r.RenderMerge(result.Merge) + "\n")
	}
	b.WriteString(TitleStyle.Render("Mods") + "\n")
	for i, name := range result.Mods {
		styled := ModStyle.Render(name)
		if name == types.ReservedModName {
			styled = ReservedModStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render(fmt.Sprintf("%2d.", i+1)), styled))
	}
	b.WriteString(TitleStyle.Render("Command") + "\n")
	b.WriteString("  " + CommandStyle.Render(result.Command) + "\n")
	switch {
	case result.DryRun:
		b.WriteString(InfoStyle.Render("Dry run, game not started") + "\n")
	case result.Launched:
		b.WriteString(SuccessStyle.Render(fmt.Sprintf("Game started (pid %d)", result.Pid)) + "\n")
	}
	if w := r.RenderWarnings(result.Warnings); w != "" {
		b.WriteString(w)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderSelection renders the stored mod selection
func (r *TerminalRenderer) RenderSelection(result *types.SelectionResult) string {
	var b strings.Builder
	if len(result.Selected) == 0 {
		b.WriteString(MutedStyle.Render("No mods selected") + "\n")
	} else {
		b.WriteString(TitleStyle.Render("Selected mods") + "\n")
		for _, name := range result.Selected {
			b.WriteString(fmt.Sprintf("  %s %s\n", SelectedIndicator, SelectedModStyle.Render(name)))
		}
	}
	for _, name := range result.Unknown {
		b.WriteString(fmt.Sprintf("  %s %s\n", WarningIndicator, WarningStyle.Render(name+" is not installed")))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderPresets renders preset names with their mods
func (r *TerminalRenderer) RenderPresets(result *types.PresetListResult) string {
	if len(result.Presets) == 0 {
		return MutedStyle.Render("No presets saved")
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Presets") + "\n")
	for _, p := range result.Presets {
		b.WriteString(fmt.Sprintf("  %s %s\n", Bold(p.Name), MutedStyle.Render(strings.Join(p.Mods, ", "))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCacheClear renders removed cache folders
func (r *TerminalRenderer) RenderCacheClear(result *types.CacheClearResult) string {
	if len(result.Removed) == 0 {
		return MutedStyle.Render("Cache already empty")
	}
	verb := "Removed"
	if result.DryRun {
		verb = "Would remove"
	}
	var b strings.Builder
	for _, dir := range result.Removed {
		b.WriteString(fmt.Sprintf("%s %s\n", SuccessStyle.Render(verb), PathStyle.Render(dir)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderWarnings renders one line per warning
func (r *TerminalRenderer) RenderWarnings(warnings types.Warnings) string {
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(fmt.Sprintf("%s %s\n", WarningIndicator, WarningStyle.Render(w.String())))
	}
	return b.String()
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s Error [%s]: %s", ErrorIndicator, ErrorStyle.Render(string(code)), err.Error())
	}
	return fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render(err.Error()))
}
