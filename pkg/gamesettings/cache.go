package gamesettings

import (
	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// ClearCache removes the map, gfx and music folders of userDir and returns
// the folders that were removed. With dryRun it only reports them.
func ClearCache(fs types.FS, layout paths.Layout, userDir string, dryRun bool) ([]string, error) {
	logger := logging.GetLogger("gamesettings")

	var removed []string
	for _, dir := range layout.CacheDirs(userDir) {
		if !exists(fs, dir) {
			continue
		}
		if !dryRun {
			if err := fs.RemoveAll(dir); err != nil {
				return removed, errors.Wrap(err, errors.ErrFileAccess, "cannot remove cache folder").
					WithDetail("path", dir)
			}
		}
		removed = append(removed, dir)
		logger.Debug().Str("path", dir).Bool("dry_run", dryRun).Msg("Cleared cache folder")
	}

	logger.Info().Int("removed", len(removed)).Str("user_dir", userDir).Msg("Cache cleared")
	return removed, nil
}
