package launcher

import (
	"github.com/arthur-debert/modlauncher/pkg/conflict"
	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/loadorder"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/rs/zerolog"
)

// MinMergeCandidates is the number of conflict-files needed before a merge
// is worth writing.
const MinMergeCandidates = 2

// Options control a Pipeline.
type Options struct {
	// Merge enables the event_modifiers merge
	Merge bool

	// DryRun computes everything but writes nothing
	DryRun bool
}

// Pipeline prepares launches for one game installation.
type Pipeline struct {
	fs     types.FS
	layout paths.Layout
	opts   Options
	logger zerolog.Logger
}

// Plan is the outcome of Prepare.
type Plan struct {
	Snapshot *mods.Snapshot

	// Selected are the requested mods that are installed, in request order
	Selected []string

	// Unknown are requested mods with no manifest
	Unknown []string

	// Candidates are the selected mods that ship a conflict-file
	Candidates []string

	// LoadOrder is the resolved merge order; empty when no merge ran
	LoadOrder loadorder.Result

	// Merged is the merged document; nil when no merge ran
	Merged *types.MergedDocument

	// MergePath is where the merged document was (or in dry run would be) written
	MergePath string

	// Mods is the final list passed to the game, reserved mod last
	Mods []string

	// UserDir is the save-data folder the game will use
	UserDir string

	Warnings types.Warnings
}

// MergeApplied reports whether the reserved mod is part of the launch.
func (p *Plan) MergeApplied() bool {
	return p.Merged != nil
}

// NewPipeline creates a pipeline over fs.
func NewPipeline(fs types.FS, layout paths.Layout, opts Options) *Pipeline {
	return &Pipeline{
		fs:     fs,
		layout: layout,
		opts:   opts,
		logger: logging.GetLogger("launcher.pipeline"),
	}
}

// Layout returns the pipeline's path layout.
func (p *Pipeline) Layout() paths.Layout {
	return p.layout
}

// Prepare scans the installed mods and builds the launch plan for selected.
// Each call starts from a fresh scan.
func (p *Pipeline) Prepare(selected []string) (*Plan, error) {
	done := logging.LogOperationStart(p.logger, "prepare")
	defer done()

	snap, err := mods.Scan(p.fs, p.layout.ModDir())
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Snapshot:   snap,
		Candidates: []string{},
		MergePath:  p.layout.ReservedConflictFile(),
	}
	plan.Warnings.Extend(snap.Warnings)

	known, unknown := snap.Known(dedupe(selected))
	plan.Selected = known
	plan.Unknown = unknown
	for _, name := range unknown {
		plan.Warnings.Add(types.Warning{
			Code:    types.WarnUnknownMod,
			Mod:     name,
			Message: "selected mod is not installed",
		})
	}
	plan.Mods = append([]string{}, known...)
	plan.UserDir = snap.UserDir(known)

	if !p.opts.Merge || len(known) == 0 {
		p.logger.Debug().Bool("merge", p.opts.Merge).Int("selected", len(known)).Msg("Skipping merge")
		return plan, nil
	}

	if !p.opts.DryRun {
		if _, err := EnsureReservedMod(p.fs, p.layout); err != nil {
			return nil, err
		}
	}

	plan.Candidates = Candidates(p.fs, p.layout, snap, known)
	if len(plan.Candidates) < MinMergeCandidates {
		p.logger.Debug().Strs("candidates", plan.Candidates).Msg("Not enough conflict-files to merge")
		return plan, nil
	}

	plan.LoadOrder = loadorder.Resolve(plan.Candidates, snap.Dependencies)
	plan.Warnings.Extend(plan.LoadOrder.Warnings)

	doc, warnings := conflict.Merge(plan.LoadOrder.Order, conflict.FileReader(p.fs, p.layout, snap))
	plan.Warnings.Extend(warnings)
	plan.Merged = doc

	if !p.opts.DryRun {
		if err := p.writeMerged(doc); err != nil {
			return nil, err
		}
	}
	plan.Mods = append(plan.Mods, types.ReservedModName)

	p.logger.Info().
		Strs("order", plan.LoadOrder.Order).
		Int("keys", doc.Len()).
		Bool("fell_back", plan.LoadOrder.FellBack).
		Bool("dry_run", p.opts.DryRun).
		Msg("Merged event modifiers")
	return plan, nil
}

func (p *Pipeline) writeMerged(doc *types.MergedDocument) error {
	path := p.layout.ReservedConflictFile()
	if err := p.fs.WriteFile(path, []byte(doc.Render()), 0644); err != nil {
		return errors.Wrap(err, errors.ErrMergeWrite, "cannot write merged conflict-file").
			WithDetail("path", path)
	}
	return nil
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
