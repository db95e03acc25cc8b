package gamesettings

import (
	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// SetSkipIntro hides the intro movies folder when skip is true and restores
// it otherwise. It is a no-op when the folder is already in the requested
// state or the destination name is taken.
func SetSkipIntro(fs types.FS, layout paths.Layout, skip bool) (bool, error) {
	logger := logging.GetLogger("gamesettings")

	from, to := layout.DisabledMoviesDir(), layout.MoviesDir()
	if skip {
		from, to = to, from
	}

	if !exists(fs, from) {
		return false, nil
	}
	if exists(fs, to) {
		logger.Warn().
			Str("from", from).
			Str("to", to).
			Msg("Both movies folders exist, leaving them alone")
		return false, nil
	}

	if err := fs.Rename(from, to); err != nil {
		return false, errors.Wrap(err, errors.ErrFileAccess, "cannot rename movies folder").
			WithDetail("from", from).
			WithDetail("to", to)
	}

	logger.Info().Bool("skip_intro", skip).Str("path", to).Msg("Renamed movies folder")
	return true, nil
}

// IntroSkipped reports whether the movies folder is currently hidden.
func IntroSkipped(fs types.FS, layout paths.Layout) bool {
	return !exists(fs, layout.MoviesDir()) && exists(fs, layout.DisabledMoviesDir())
}

func exists(fs types.FS, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
