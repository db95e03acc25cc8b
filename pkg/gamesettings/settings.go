package gamesettings

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

const updateTimeKey = "update_time"

// FormatUpdateTime renders the update_time line written to settings.txt.
func FormatUpdateTime(value float64) string {
	return fmt.Sprintf("%s=%.6f", updateTimeKey, value)
}

// RewriteUpdateTime replaces every line starting with update_time. Other
// lines, including their line endings, are kept as they are. It reports
// how many lines were rewritten.
func RewriteUpdateTime(text string, value float64) (string, int) {
	lines := strings.SplitAfter(text, "\n")
	replaced := 0
	for i, line := range lines {
		if !strings.HasPrefix(line, updateTimeKey) {
			continue
		}
		ending := ""
		switch {
		case strings.HasSuffix(line, "\r\n"):
			ending = "\r\n"
		case strings.HasSuffix(line, "\n"):
			ending = "\n"
		}
		lines[i] = FormatUpdateTime(value) + ending
		replaced++
	}
	return strings.Join(lines, ""), replaced
}

// ApplyUpdateTime rewrites update_time in the settings file at path. A
// missing settings file is reported as a warning; the game creates it on
// first start.
func ApplyUpdateTime(fs types.FS, path string, value float64) (types.Warnings, error) {
	logger := logging.GetLogger("gamesettings")
	var warnings types.Warnings

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			warnings.Add(types.Warning{
				Code:    types.WarnSettingsMissing,
				Path:    path,
				Message: "game settings file not found, update_time not applied",
			})
			return warnings, nil
		}
		return warnings, errors.Wrap(err, errors.ErrFileAccess, "cannot read game settings").
			WithDetail("path", path)
	}

	text, replaced := RewriteUpdateTime(string(data), value)
	if replaced == 0 {
		logger.Debug().Str("path", path).Msg("No update_time entry in settings")
		return warnings, nil
	}

	if err := fs.WriteFile(path, []byte(text), 0644); err != nil {
		return warnings, errors.Wrap(err, errors.ErrFileWrite, "cannot write game settings").
			WithDetail("path", path)
	}

	logger.Info().
		Str("path", path).
		Str("value", FormatUpdateTime(value)).
		Msg("Applied update_time")
	return warnings, nil
}
