package modlauncher

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Launch Victoria II with merged mods"
	MsgListShort        = "List installed mods"
	MsgListLong         = "List displays every mod manifest found in <game_root>/mod, grouped under the mod it depends on. Selected mods are marked."
	MsgOrderShort       = "Show the merge order of the selected mods"
	MsgOrderLong        = "Order shows the load order used to merge event_modifiers.txt: dependencies come before the mods that need them, otherwise the selection order is kept."
	MsgMergeShort       = "Merge event_modifiers.txt without launching"
	MsgLaunchShort      = "Launch the game with the selected mods"
	MsgSelectShort      = "Show or change the selected mods"
	MsgPresetShort      = "Manage named mod selections"
	MsgPresetListShort  = "List presets"
	MsgPresetSaveShort  = "Save the selection (or the given mods) as a preset"
	MsgPresetUseShort   = "Make a preset the current selection"
	MsgPresetDelShort   = "Delete a preset"
	MsgPresetExpShort   = "Export presets to a YAML file"
	MsgPresetImpShort   = "Import presets from a YAML file"
	MsgCacheShort       = "Manage the game's caches"
	MsgCacheClearShort  = "Remove the map, gfx and music caches"
	MsgCacheClearLong   = "Clear removes the map, gfx and music folders under the documents folder of the selected mods' user_dir. The game rebuilds them on the next start."
	MsgGenConfigShort   = "Print or write a default config file"
	MsgGenConfigLong    = "Output the default configuration to stdout, or write it to the config path with -w. An existing file is never overwritten."
	MsgTopicsShort      = "Display available documentation topics"
	MsgTopicsLong       = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort  = "Generate shell completion script"
	MsgVersionShort     = "Print version information"
	MsgDryRunNotice     = "\nDRY RUN MODE - No changes were made"
	MsgGenConfigWritten = "Wrote default config to %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load config: %w"
	MsgErrFormat     = "invalid --format: %w"

	MsgErrUnknownShell = "unknown shell %q (supported: %s)"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/modlauncher/launcher.toml)"
	MsgFlagGameRoot  = "Game install directory, overrides game_root"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagWait      = "Wait until the game exits"
	MsgFlagShow      = "Print the merged event_modifiers.txt"
	MsgFlagUserDir   = "Documents subfolder to clear (default: from the selected mods)"
	MsgFlagWrite     = "Write the config file instead of printing it"
	MsgFlagPresetOut = "Limit the export to these presets"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/launch-long.txt
	msgLaunchLongRaw string
	MsgLaunchLong    = strings.TrimSpace(msgLaunchLongRaw)

	//go:embed msgs/launch-example.txt
	msgLaunchExampleRaw string
	MsgLaunchExample    = strings.TrimRight(msgLaunchExampleRaw, "\n")

	//go:embed msgs/merge-long.txt
	msgMergeLongRaw string
	MsgMergeLong    = strings.TrimSpace(msgMergeLongRaw)

	//go:embed msgs/select-long.txt
	msgSelectLongRaw string
	MsgSelectLong    = strings.TrimSpace(msgSelectLongRaw)

	//go:embed msgs/select-example.txt
	msgSelectExampleRaw string
	MsgSelectExample    = strings.TrimRight(msgSelectExampleRaw, "\n")

	//go:embed msgs/preset-long.txt
	msgPresetLongRaw string
	MsgPresetLong    = strings.TrimSpace(msgPresetLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
