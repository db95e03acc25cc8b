package conflict

import (
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// ReadFunc returns the conflict-file text of the named mod.
type ReadFunc func(name string) (string, error)

// Merge merges the conflict-files of order, read fresh through read. It
// always returns a document; unreadable mods are skipped and reported.
func Merge(order []string, read ReadFunc) (*types.MergedDocument, types.Warnings) {
	logger := logging.GetLogger("conflict.merge")

	doc := types.NewMergedDocument(order)
	var warnings types.Warnings

	for _, name := range order {
		text, err := read(name)
		if err != nil {
			warnings.Add(types.Warning{
				Code:    types.WarnConflictUnreadable,
				Mod:     name,
				Path:    pathDetail(err),
				Message: "skipping mod with unreadable " + paths.ConflictFileName,
				Err:     err,
			})
			continue
		}

		entries := Parse(text)
		for _, e := range entries {
			doc.Set(e.Key, e.Value)
		}
		doc.Sources = append(doc.Sources, name)

		logger.Trace().
			Str("mod", name).
			Int("entries", len(entries)).
			Int("keys", doc.Len()).
			Msg("Merged conflict-file")
	}

	return doc, warnings
}

// FileReader returns a ReadFunc that reads each mod's conflict-file from
// the layout, using the snapshot to find the mod's folder.
func FileReader(fs types.FS, layout paths.Layout, snap *mods.Snapshot) ReadFunc {
	return func(name string) (string, error) {
		rec, ok := snap.Lookup(name)
		if !ok {
			return "", errors.New(errors.ErrModNotFound, "mod is not installed").
				WithDetail("mod", name)
		}
		path := layout.ModConflictFile(rec)
		if path == "" {
			return "", errors.New(errors.ErrConflictRead, "mod declares no install path").
				WithDetail("mod", name)
		}
		data, err := fs.ReadFile(path)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrConflictRead, "cannot read conflict-file").
				WithDetail("mod", name).
				WithDetail("path", path)
		}
		return strings.ToValidUTF8(string(data), ""), nil
	}
}

func pathDetail(err error) string {
	if p, ok := errors.GetErrorDetails(err)["path"].(string); ok {
		return p
	}
	return ""
}
