package launch

import (
	"context"

	"github.com/arthur-debert/modlauncher/pkg/commands/merge"
	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/arthur-debert/modlauncher/pkg/gamesettings"
	"github.com/arthur-debert/modlauncher/pkg/launcher"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// StartFunc starts a built command.
type StartFunc func(ctx context.Context, cmd *launcher.Command) (*launcher.Task, error)

// LaunchOptions defines the options for the Launch command.
type LaunchOptions struct {
	FS     types.FS
	Config *config.Config

	// Selected overrides the stored selection when non-empty
	Selected []string

	DryRun bool

	// Wait blocks until the game exits
	Wait bool

	// Start defaults to launcher.Launch
	Start StartFunc

	// GOOS overrides the platform used to build the command
	GOOS string
}

// Launch merges conflict-files, applies game settings, builds the command
// line and starts the game. A non-empty selection is stored in the config
// once the game has started.
func Launch(ctx context.Context, opts LaunchOptions) (*types.LaunchResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Launch").Msg("Executing command")

	cfg := opts.Config
	if err := cfg.RequireGameRoot(); err != nil {
		return nil, err
	}
	layout := cfg.Layout()

	selected := opts.Selected
	if len(selected) == 0 {
		selected = cfg.CheckedMods
	}

	pipeline := launcher.NewPipeline(opts.FS, layout, launcher.Options{
		Merge:  cfg.MergeEventModifiers,
		DryRun: opts.DryRun,
	})
	plan, err := pipeline.Prepare(selected)
	if err != nil {
		return nil, err
	}

	result := &types.LaunchResult{
		Mods:         plan.Mods,
		Merge:        merge.FromPlan(plan, opts.DryRun, false),
		UserDir:      plan.UserDir,
		SettingsPath: layout.SettingsFile(plan.UserDir),
		DryRun:       opts.DryRun,
	}
	result.Warnings.Extend(plan.Warnings)

	if !opts.DryRun {
		warnings, err := gamesettings.ApplyUpdateTime(opts.FS, result.SettingsPath, cfg.UpdateTime)
		if err != nil {
			return nil, err
		}
		result.Warnings.Extend(warnings)

		if _, err := gamesettings.SetSkipIntro(opts.FS, layout, cfg.SkipIntro); err != nil {
			return nil, err
		}
	}

	cmd, err := launcher.BuildCommand(plan.Snapshot, launcher.CommandOptions{
		GameRoot:   layout.GameRoot,
		Executable: cfg.Executable,
		Mods:       plan.Mods,
		Realtime:   cfg.Realtime,
		Wrapper:    cfg.Wrapper,
		GOOS:       opts.GOOS,
	})
	if err != nil {
		return nil, err
	}
	result.Command = cmd.String()
	result.GameLine = cmd.GameLine()

	if opts.DryRun {
		log.Info().Str("command", "Launch").Str("game", result.GameLine).Msg("Dry run, not starting game")
		return result, nil
	}

	start := opts.Start
	if start == nil {
		start = launcher.Launch
	}
	task, err := start(ctx, cmd)
	if err != nil {
		return nil, err
	}
	result.Launched = true
	result.Pid = task.Pid

	if len(plan.Selected) > 0 {
		cfg.CheckedMods = plan.Selected
		if err := cfg.Save(); err != nil {
			log.Warn().Err(err).Msg("Could not store mod selection")
		}
	}

	if opts.Wait {
		if err := task.Wait(ctx); err != nil {
			return result, err
		}
	}

	log.Info().Str("command", "Launch").Int("pid", result.Pid).Msg("Command finished")
	return result, nil
}
