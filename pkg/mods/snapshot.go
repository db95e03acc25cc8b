package mods

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/manifest"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// ManifestExt is the manifest file extension.
const ManifestExt = ".mod"

// Snapshot is the result of one manifest scan.
type Snapshot struct {
	ModDir       string
	Records      map[string]types.ModRecord
	Dependencies map[string][]string
	Warnings     types.Warnings
}

// NewSnapshot builds a snapshot from already parsed records. Later records
// replace earlier ones with the same name.
func NewSnapshot(modDir string, records ...types.ModRecord) *Snapshot {
	s := &Snapshot{
		ModDir:       modDir,
		Records:      make(map[string]types.ModRecord, len(records)),
		Dependencies: make(map[string][]string, len(records)),
	}
	for _, rec := range records {
		s.add(rec)
	}
	return s
}

func (s *Snapshot) add(rec types.ModRecord) {
	s.Records[rec.Name] = rec
	s.Dependencies[rec.Name] = append([]string(nil), rec.Dependencies...)
}

// Scan reads all manifests in modDir. Only a missing or unreadable mod
// directory is an error; per-manifest failures become warnings.
func Scan(fs types.FS, modDir string) (*Snapshot, error) {
	logger := logging.GetLogger("mods.scan")
	done := logging.LogOperationStart(logger, "scan")
	defer done()

	info, err := fs.Stat(modDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrModDirNotFound, "mod directory does not exist").
				WithDetail("path", modDir)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access mod directory").
			WithDetail("path", modDir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrModDirNotFound, "mod directory is not a directory").
			WithDetail("path", modDir)
	}

	entries, err := fs.ReadDir(modDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read mod directory").
			WithDetail("path", modDir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ManifestExt) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	snap := NewSnapshot(modDir)
	for _, file := range files {
		path := filepath.Join(modDir, file)
		rec, ok, err := manifest.ParseFile(fs, path)
		if err != nil {
			snap.Warnings.Add(types.Warning{
				Code:    types.WarnManifestUnreadable,
				Path:    path,
				Message: "skipping unreadable manifest",
				Err:     err,
			})
			continue
		}
		if !ok {
			logger.Trace().Str("file", file).Msg("Manifest has no name, skipping")
			continue
		}

		if prev, exists := snap.Records[rec.Name]; exists {
			snap.Warnings.Add(types.Warning{
				Code:    types.WarnDuplicateMod,
				Mod:     rec.Name,
				Path:    path,
				Message: "mod name declared by " + prev.ManifestFile + " is redeclared, later manifest wins",
			})
		}
		snap.add(*rec)
		logger.Trace().
			Str("mod", rec.Name).
			Str("folder", rec.FolderName).
			Strs("dependencies", rec.Dependencies).
			Msg("Loaded manifest")
	}

	logger.Info().
		Int("count", len(snap.Records)).
		Int("warnings", len(snap.Warnings)).
		Msg("Scanned mods")
	return snap, nil
}

// Lookup returns the record for name, including the reserved mod.
func (s *Snapshot) Lookup(name string) (types.ModRecord, bool) {
	rec, ok := s.Records[name]
	return rec, ok
}

// Names returns the user-facing mod names sorted, without the reserved mod.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.Records))
	for name := range s.Records {
		if name == types.ReservedModName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known splits names into those present in the snapshot and those that are not,
// preserving order. The reserved mod is never selectable.
func (s *Snapshot) Known(names []string) (known, unknown []string) {
	for _, name := range names {
		if _, ok := s.Records[name]; ok && name != types.ReservedModName {
			known = append(known, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	return known, unknown
}

// UserDir returns the user_dir of the last selected mod that declares one.
func (s *Snapshot) UserDir(selected []string) string {
	dir := ""
	for _, name := range selected {
		if rec, ok := s.Records[name]; ok && rec.UserDir != "" {
			dir = rec.UserDir
		}
	}
	return dir
}
