package launcher

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// ReservedReadme is written next to the merged file.
const ReservedReadme = "This folder and mod is used to fix conflicts with event_modifiers and is hidden by default."

// ReservedManifest returns the manifest content of the reserved mod.
func ReservedManifest() string {
	return fmt.Sprintf("name = %q\npath = \"%s/%s\"\nuser_dir = %q\n",
		types.ReservedModName, paths.ModDirName, types.ReservedModName, types.ReservedModName)
}

// EnsureReservedMod creates the reserved mod's folder, manifest, empty
// conflict-file and readme. Existing files are left untouched. It returns
// the files it created.
func EnsureReservedMod(fs types.FS, layout paths.Layout) ([]string, error) {
	logger := logging.GetLogger("launcher.reserved")

	commonDir := filepath.Dir(layout.ReservedConflictFile())
	if err := fs.MkdirAll(commonDir, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create reserved mod folder").
			WithDetail("path", commonDir)
	}

	files := []struct {
		path    string
		content string
	}{
		{layout.ReservedManifest(), ReservedManifest()},
		{layout.ReservedConflictFile(), ""},
		{layout.ReservedReadme(), ReservedReadme},
	}

	var created []string
	for _, f := range files {
		if _, err := fs.Stat(f.path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return created, errors.Wrap(err, errors.ErrFileAccess, "cannot access reserved mod file").
				WithDetail("path", f.path)
		}
		if err := fs.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return created, errors.Wrap(err, errors.ErrFileWrite, "cannot write reserved mod file").
				WithDetail("path", f.path)
		}
		created = append(created, f.path)
	}

	if len(created) > 0 {
		logger.Info().Strs("files", created).Msg("Set up reserved mod")
	}
	return created, nil
}
