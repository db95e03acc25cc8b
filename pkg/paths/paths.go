package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// Environment variable names
const (
	// EnvGameRoot points at the game installation
	EnvGameRoot = "MODLAUNCHER_GAME_ROOT"

	// EnvConfigDir overrides the XDG config directory for modlauncher
	EnvConfigDir = "MODLAUNCHER_CONFIG_DIR"
)

// Fixed names inside the game installation. These follow the game's own
// layout and are not user-configurable.
const (
	AppDirName = "modlauncher"

	ConfigFileName = "launcher.toml"

	ModDirName = "mod"

	CommonDirName = "common"

	// ConflictFileName is the data file merged across mods
	ConflictFileName = "event_modifiers.txt"

	ReadmeFileName = "readme.txt"

	SettingsFileName = "settings.txt"

	MoviesDirName = "movies"

	DisabledMoviesDirName = "moviesdisabled"
)

// CacheDirNames are the documents subfolders the game rebuilds on start.
var CacheDirNames = []string{"map", "gfx", "music"}

// Layout resolves paths for one game installation.
type Layout struct {
	GameRoot     string
	DocumentsDir string
}

// NewLayout returns a layout with ~ expanded. An empty documentsDir uses
// DefaultDocumentsDir.
func NewLayout(gameRoot, documentsDir string) Layout {
	if documentsDir == "" {
		documentsDir = DefaultDocumentsDir()
	}
	return Layout{
		GameRoot:     ExpandHome(gameRoot),
		DocumentsDir: ExpandHome(documentsDir),
	}
}

func (l Layout) ModDir() string {
	return filepath.Join(l.GameRoot, ModDirName)
}

// ModFolder returns the directory of a mod given its folder name.
func (l Layout) ModFolder(folder string) string {
	return filepath.Join(l.ModDir(), folder)
}

// ConflictFile returns <mod>/<folder>/common/event_modifiers.txt.
func (l Layout) ConflictFile(folder string) string {
	return filepath.Join(l.ModFolder(folder), CommonDirName, ConflictFileName)
}

// ModConflictFile returns the conflict-file path of rec, or "" when the
// record declares no folder.
func (l Layout) ModConflictFile(rec types.ModRecord) string {
	if rec.FolderName == "" {
		return ""
	}
	return l.ConflictFile(rec.FolderName)
}

func (l Layout) ReservedDir() string {
	return l.ModFolder(types.ReservedModName)
}

func (l Layout) ReservedManifest() string {
	return filepath.Join(l.ModDir(), types.ReservedModName+".mod")
}

func (l Layout) ReservedConflictFile() string {
	return l.ConflictFile(types.ReservedModName)
}

func (l Layout) ReservedReadme() string {
	return filepath.Join(l.ReservedDir(), ReadmeFileName)
}

// Executable returns the game executable path.
func (l Layout) Executable(name string) string {
	return filepath.Join(l.GameRoot, name)
}

func (l Layout) MoviesDir() string {
	return filepath.Join(l.GameRoot, MoviesDirName)
}

func (l Layout) DisabledMoviesDir() string {
	return filepath.Join(l.GameRoot, DisabledMoviesDirName)
}

// UserDataDir returns the documents folder for a mod's user_dir. An empty
// userDir is the vanilla folder.
func (l Layout) UserDataDir(userDir string) string {
	return filepath.Join(l.DocumentsDir, userDir)
}

func (l Layout) SettingsFile(userDir string) string {
	return filepath.Join(l.UserDataDir(userDir), SettingsFileName)
}

// CacheDirs returns the rebuildable cache folders for userDir.
func (l Layout) CacheDirs(userDir string) []string {
	dirs := make([]string, len(CacheDirNames))
	for i, name := range CacheDirNames {
		dirs[i] = filepath.Join(l.UserDataDir(userDir), name)
	}
	return dirs
}

// DefaultDocumentsDir is where the game keeps per-user data.
func DefaultDocumentsDir() string {
	return filepath.Join(xdg.UserDirs.Documents, "Paradox Interactive", "Victoria II")
}

// ConfigDir returns the launcher config directory, honoring EnvConfigDir.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the default launcher config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
