package types

import "strings"

// ReservedModName is the internal mod that receives the merged conflict-file.
// It is hidden from user-facing listings but stays addressable by name.
const ReservedModName = "z_launcher"

// ModRecord is one parsed mod manifest.
type ModRecord struct {
	// Name is the unique display identifier declared by the manifest
	Name string

	// ManifestFile is the manifest filename inside the mod directory, e.g. "Foo.mod"
	ManifestFile string

	// InstallPath is the declared path, e.g. "mod/Foo"
	InstallPath string

	// FolderName is the final segment of InstallPath
	FolderName string

	// Dependencies lists the names this mod declares it depends on.
	// They are not required to reference installed mods.
	Dependencies []string

	GithubURL string
	Version   string

	// UserDir names the save-data subdirectory the game uses for this mod
	UserDir string
}

// IsReserved reports whether the record is the internal merge-output mod.
func (m ModRecord) IsReserved() bool {
	return m.Name == ReservedModName
}

// HasDependency reports whether name is one of the declared dependencies.
func (m ModRecord) HasDependency(name string) bool {
	for _, dep := range m.Dependencies {
		if dep == name {
			return true
		}
	}
	return false
}

// FolderFromPath derives the folder name from a declared install path.
func FolderFromPath(path string) string {
	if path == "" {
		return ""
	}
	return path[strings.LastIndex(path, "/")+1:]
}
