package modlauncher

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/modlauncher/internal/version"
	"github.com/arthur-debert/modlauncher/pkg/cobrax/topics"
	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/arthur-debert/modlauncher/pkg/filesystem"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/style"
	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var helpTopics embed.FS

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	dryRun     bool
	configPath string
	gameRoot   string
	format     string

	fs types.FS
}

// loadConfig reads the launcher config, applying --game-root.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if g.gameRoot != "" {
		overrides["game_root"] = g.gameRoot
	}
	cfg, err := config.Load(g.configPath, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// loadGameConfig is loadConfig for commands that read the game install.
func (g *globalOptions) loadGameConfig() (*config.Config, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireGameRoot(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (g *globalOptions) renderer() (style.Renderer, error) {
	f, err := style.ParseFormat(g.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	return style.NewRenderer(f.Resolve(os.Stdout)), nil
}

// render prints the renderer output for a result and logs its warnings.
func (g *globalOptions) render(cmd *cobra.Command, warnings types.Warnings, fn func(style.Renderer) string) error {
	r, err := g.renderer()
	if err != nil {
		return err
	}
	warnings.Log(logging.GetLogger("cmd"))
	fmt.Fprintln(cmd.OutOrStdout(), fn(r))
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globalOptions{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "modlauncher",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Short(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.gameRoot, "game-root", "", MsgFlagGameRoot)
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Mods and launch"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "Selection and config"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Other"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newOrderCmd(g))
	rootCmd.AddCommand(newMergeCmd(g))
	rootCmd.AddCommand(newLaunchCmd(g))
	rootCmd.AddCommand(newSelectCmd(g))
	rootCmd.AddCommand(newPresetCmd(g))
	rootCmd.AddCommand(newCacheCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	files, err := fs.Sub(helpTopics, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, files, topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
