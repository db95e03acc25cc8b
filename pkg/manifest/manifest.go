package manifest

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// Recognized manifest keys
const (
	KeyName         = "name"
	KeyDependencies = "dependencies"
	KeyPath         = "path"
	KeyUserDir      = "user_dir"
	KeyGithub       = "github"
	KeyVersion      = "version"
)

// Parse parses manifest text into a ModRecord. It returns false when the
// manifest declares no name.
func Parse(text string) (*types.ModRecord, bool) {
	rec := &types.ModRecord{}

	for _, line := range strings.Split(text, "\n") {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}

		switch key {
		case KeyName:
			rec.Name = value
		case KeyDependencies:
			rec.Dependencies = parseDependencies(value)
		case KeyPath:
			rec.InstallPath = value
		case KeyUserDir:
			rec.UserDir = value
		case KeyGithub:
			rec.GithubURL = value
		case KeyVersion:
			rec.Version = value
		}
	}

	if rec.Name == "" {
		return nil, false
	}
	rec.FolderName = types.FolderFromPath(rec.InstallPath)
	return rec, true
}

// ParseFile reads and parses the manifest at path. Invalid UTF-8 is dropped.
// The returned bool is false when the manifest has no name.
func ParseFile(fs types.FS, path string) (*types.ModRecord, bool, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, false, errors.Wrap(err, errors.ErrManifestRead, "cannot read manifest").
			WithDetail("path", path)
	}

	rec, ok := Parse(strings.ToValidUTF8(string(data), ""))
	if !ok {
		return nil, false, nil
	}
	rec.ManifestFile = filepath.Base(path)
	return rec, true, nil
}

// parseLine splits a candidate key=value line. Surrounding double quotes
// are removed from the value.
func parseLine(line string) (string, string, bool) {
	s := strings.TrimSpace(line)
	if s == "" || strings.HasPrefix(s, "#") || strings.HasPrefix(s, "//") {
		return "", "", false
	}

	key, value, found := strings.Cut(s, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// parseDependencies turns `{ "A", "B" }` into [A B].
func parseDependencies(value string) []string {
	inner := strings.Trim(strings.TrimSpace(value), "{}")

	var deps []string
	for _, piece := range strings.Split(inner, ",") {
		dep := strings.Trim(strings.TrimSpace(piece), `"`)
		if dep == "" {
			continue
		}
		deps = append(deps, dep)
	}
	return deps
}
