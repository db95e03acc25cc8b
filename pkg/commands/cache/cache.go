package cache

import (
	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/arthur-debert/modlauncher/pkg/gamesettings"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// ClearCacheOptions defines the options for the ClearCache command.
type ClearCacheOptions struct {
	FS     types.FS
	Config *config.Config

	// UserDir selects the documents subfolder. When empty it is taken from
	// the selected mods, like a launch would.
	UserDir string

	DryRun bool
}

// ClearCache removes the game's rebuildable map, gfx and music caches.
func ClearCache(opts ClearCacheOptions) (*types.CacheClearResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ClearCache").Msg("Executing command")

	cfg := opts.Config
	layout := cfg.Layout()

	userDir := opts.UserDir
	if userDir == "" && cfg.GameRoot != "" && len(cfg.CheckedMods) > 0 {
		snap, err := mods.Scan(opts.FS, layout.ModDir())
		if err != nil {
			return nil, err
		}
		userDir = snap.UserDir(cfg.CheckedMods)
	}

	removed, err := gamesettings.ClearCache(opts.FS, layout, userDir, opts.DryRun)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ClearCache").Int("removed", len(removed)).Msg("Command finished")
	return &types.CacheClearResult{
		UserDir: userDir,
		Removed: removed,
		DryRun:  opts.DryRun,
	}, nil
}
