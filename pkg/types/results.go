package types

// ListModsResult holds the result of the 'list' command.
type ListModsResult struct {
	ModDir   string    `json:"modDir"`
	Mods     []ModInfo `json:"mods"`
	Warnings Warnings  `json:"warnings,omitempty"`
}

// ModInfo contains summary information about a single mod. Mods are listed
// in tree order: each mod follows the mod it is grouped under, one level
// deeper.
type ModInfo struct {
	Name            string   `json:"name"`
	ManifestFile    string   `json:"manifestFile"`
	Folder          string   `json:"folder"`
	Dependencies    []string `json:"dependencies,omitempty"`
	UserDir         string   `json:"userDir,omitempty"`
	Version         string   `json:"version,omitempty"`
	Selected        bool     `json:"selected"`
	HasConflictFile bool     `json:"hasConflictFile"`
	Depth           int      `json:"depth"`
}

// LoadOrderResult holds the result of the 'order' command.
type LoadOrderResult struct {
	Candidates []string `json:"candidates"`
	Order      []string `json:"order"`
	FellBack   bool     `json:"fellBack"`
	Warnings   Warnings `json:"warnings,omitempty"`
}

// MergeResult holds the outcome of an event_modifiers merge.
type MergeResult struct {
	Order      []string `json:"order"`
	FellBack   bool     `json:"fellBack"`
	Sources    []string `json:"sources"`
	Keys       int      `json:"keys"`
	OutputPath string   `json:"outputPath"`
	Written    bool     `json:"written"`
	Content    string   `json:"content,omitempty"`
	Warnings   Warnings `json:"warnings,omitempty"`
}

// LaunchResult holds the result of the 'launch' command.
type LaunchResult struct {
	Mods         []string     `json:"mods"`
	Merge        *MergeResult `json:"merge,omitempty"`
	Command      string       `json:"command"`
	GameLine     string       `json:"gameLine"`
	UserDir      string       `json:"userDir"`
	SettingsPath string       `json:"settingsPath"`
	Launched     bool         `json:"launched"`
	DryRun       bool         `json:"dryRun"`
	Pid          int          `json:"pid,omitempty"`
	Warnings     Warnings     `json:"warnings,omitempty"`
}

// SelectionResult holds the result of the 'select' command.
type SelectionResult struct {
	Selected []string `json:"selected"`
	Unknown  []string `json:"unknown,omitempty"`
	Saved    bool     `json:"saved"`
}

// PresetInfo is one named mod selection.
type PresetInfo struct {
	Name string   `json:"name"`
	Mods []string `json:"mods"`
}

// PresetListResult holds the result of the 'preset list' command.
type PresetListResult struct {
	Presets []PresetInfo `json:"presets"`
}

// CacheClearResult holds the result of the 'cache clear' command.
type CacheClearResult struct {
	UserDir string   `json:"userDir"`
	Removed []string `json:"removed"`
	DryRun  bool     `json:"dryRun"`
}
