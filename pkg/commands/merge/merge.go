package merge

import (
	"github.com/arthur-debert/modlauncher/pkg/launcher"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// MergeOptions defines the options for the Merge command.
type MergeOptions struct {
	FS       types.FS
	Layout   paths.Layout
	Selected []string
	DryRun   bool

	// IncludeContent puts the merged text into the result
	IncludeContent bool
}

// Merge merges event_modifiers.txt of the selected mods into the reserved
// mod without launching the game.
func Merge(opts MergeOptions) (*types.MergeResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Merge").Msg("Executing command")

	pipeline := launcher.NewPipeline(opts.FS, opts.Layout, launcher.Options{
		Merge:  true,
		DryRun: opts.DryRun,
	})
	plan, err := pipeline.Prepare(opts.Selected)
	if err != nil {
		return nil, err
	}

	result := FromPlan(plan, opts.DryRun, opts.IncludeContent)
	if result == nil {
		result = &types.MergeResult{
			Order:      []string{},
			OutputPath: plan.MergePath,
			Warnings:   plan.Warnings,
		}
	}

	log.Info().Str("command", "Merge").Int("keys", result.Keys).Bool("written", result.Written).Msg("Command finished")
	return result, nil
}

// FromPlan summarizes the merge part of a plan, or returns nil when no
// merge ran.
func FromPlan(plan *launcher.Plan, dryRun, includeContent bool) *types.MergeResult {
	if !plan.MergeApplied() {
		return nil
	}
	result := &types.MergeResult{
		Order:      plan.LoadOrder.Order,
		FellBack:   plan.LoadOrder.FellBack,
		Sources:    plan.Merged.Sources,
		Keys:       plan.Merged.Len(),
		OutputPath: plan.MergePath,
		Written:    !dryRun,
		Warnings:   plan.Warnings,
	}
	if includeContent {
		result.Content = plan.Merged.Render()
	}
	return result
}
