package launcher

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// Process priorities understood by the Windows start command.
const (
	PriorityHigh     = "high"
	PriorityRealtime = "realtime"
)

// WindowTitle is the title passed to start.
const WindowTitle = "Victoria II"

// CommandOptions describe the game command to build.
type CommandOptions struct {
	GameRoot   string
	Executable string
	Mods       []string
	Realtime   bool

	// Wrapper runs the executable through another program, e.g. wine.
	// Ignored on Windows.
	Wrapper string

	// GOOS selects the launch wrapper; empty uses runtime.GOOS
	GOOS string
}

// Command is a ready to run game command.
type Command struct {
	// Dir is the working directory, the game root
	Dir string

	// Path and Args are what gets executed
	Path string
	Args []string

	// Game is the bare game invocation, executable first
	Game []string

	Priority string
}

// ModArgs returns the -mod= arguments for mods, reserved mod included.
func ModArgs(snap *mods.Snapshot, modNames []string) ([]string, error) {
	args := make([]string, 0, len(modNames))
	for _, name := range modNames {
		file := types.ReservedModName + mods.ManifestExt
		if name != types.ReservedModName {
			rec, ok := snap.Lookup(name)
			if !ok {
				return nil, errors.Newf(errors.ErrModNotFound, "mod %q is not installed", name).
					WithDetail("mod", name)
			}
			file = rec.ManifestFile
		}
		args = append(args, "-mod="+paths.ModDirName+"/"+file)
	}
	return args, nil
}

// BuildCommand builds the game command for opts. On Windows the game is
// started through cmd's start so priority and CPU affinity apply.
func BuildCommand(snap *mods.Snapshot, opts CommandOptions) (*Command, error) {
	if opts.Executable == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no game executable configured")
	}

	modArgs, err := ModArgs(snap, opts.Mods)
	if err != nil {
		return nil, err
	}

	priority := PriorityHigh
	if opts.Realtime {
		priority = PriorityRealtime
	}

	game := append([]string{opts.Executable}, modArgs...)
	cmd := &Command{
		Dir:      opts.GameRoot,
		Game:     game,
		Priority: priority,
	}

	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos == "windows" {
		cmd.Path = "cmd"
		cmd.Args = append([]string{
			"/C", "start", WindowTitle,
			"/" + priority,
			"/affinity", "1",
			"/node", "0",
		}, game...)
	} else if opts.Wrapper != "" {
		cmd.Path = opts.Wrapper
		cmd.Args = game
	} else {
		cmd.Path = filepath.Join(opts.GameRoot, opts.Executable)
		cmd.Args = modArgs
	}
	return cmd, nil
}

// GameLine renders the bare game invocation.
func (c *Command) GameLine() string {
	return strings.Join(c.Game, " ")
}

// String renders the full command as a shell line.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Path))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
