package modlauncher

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/modlauncher/internal/version"
	"github.com/arthur-debert/modlauncher/pkg/commands"
	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/arthur-debert/modlauncher/pkg/mods"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/arthur-debert/modlauncher/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// modNamesCompletion provides shell completion for installed mod names
func modNamesCompletion(g *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := g.loadGameConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		snap, err := mods.Scan(g.fs, cfg.Layout().ModDir())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		given := make(map[string]bool, len(args))
		for _, arg := range args {
			given[arg] = true
		}
		var names []string
		for _, name := range snap.Names() {
			if !given[name] {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// presetNamesCompletion provides shell completion for stored preset names
func presetNamesCompletion(g *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := g.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return cfg.PresetNames(), cobra.ShellCompDirectiveNoFileComp
	}
}

// selectionOrArgs returns args, or the stored selection when args is empty.
func selectionOrArgs(cfg *config.Config, args []string) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.CheckedMods
}

func newListCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadGameConfig()
			if err != nil {
				return err
			}

			log.Info().Str("game_root", cfg.GameRoot).Msg("Listing mods")

			result, err := commands.ListMods(commands.ListModsOptions{
				FS:       g.fs,
				Layout:   cfg.Layout(),
				Selected: cfg.CheckedMods,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, result.Warnings, func(r style.Renderer) string {
				return r.RenderModList(result)
			})
		},
	}
}

func newOrderCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "order [mods...]",
		Short:             MsgOrderShort,
		Long:              MsgOrderLong,
		GroupID:           "core",
		ValidArgsFunction: modNamesCompletion(g),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadGameConfig()
			if err != nil {
				return err
			}

			result, err := commands.LoadOrder(commands.LoadOrderOptions{
				FS:       g.fs,
				Layout:   cfg.Layout(),
				Selected: selectionOrArgs(cfg, args),
			})
			if err != nil {
				return err
			}
			return g.render(cmd, result.Warnings, func(r style.Renderer) string {
				return r.RenderLoadOrder(result)
			})
		},
	}
}

func newMergeCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "merge [mods...]",
		Short:             MsgMergeShort,
		Long:              MsgMergeLong,
		GroupID:           "core",
		ValidArgsFunction: modNamesCompletion(g),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadGameConfig()
			if err != nil {
				return err
			}
			show, _ := cmd.Flags().GetBool("show")

			log.Info().Bool("dry_run", g.dryRun).Msg("Merging event_modifiers.txt")

			result, err := commands.Merge(commands.MergeOptions{
				FS:             g.fs,
				Layout:         cfg.Layout(),
				Selected:       selectionOrArgs(cfg, args),
				DryRun:         g.dryRun,
				IncludeContent: show,
			})
			if err != nil {
				return err
			}
			if err := g.render(cmd, result.Warnings, func(r style.Renderer) string {
				return r.RenderMerge(result)
			}); err != nil {
				return err
			}
			if show && result.Content != "" && g.format != "json" {
				fmt.Fprint(cmd.OutOrStdout(), "\n"+result.Content)
			}
			if g.dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return nil
		},
	}

	cmd.Flags().Bool("show", false, MsgFlagShow)

	return cmd
}

func newLaunchCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "launch [mods...]",
		Short:             MsgLaunchShort,
		Long:              MsgLaunchLong,
		Example:           MsgLaunchExample,
		GroupID:           "core",
		ValidArgsFunction: modNamesCompletion(g),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			wait, _ := cmd.Flags().GetBool("wait")

			log.Info().
				Str("game_root", cfg.GameRoot).
				Bool("dry_run", g.dryRun).
				Strs("mods", args).
				Msg("Launching game")

			result, err := commands.Launch(cmd.Context(), commands.LaunchOptions{
				FS:       g.fs,
				Config:   cfg,
				Selected: args,
				DryRun:   g.dryRun,
				Wait:     wait,
			})
			if result != nil {
				if rerr := g.render(cmd, result.Warnings, func(r style.Renderer) string {
					return r.RenderLaunch(result)
				}); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return err
			}
			if g.dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return nil
		},
	}

	cmd.Flags().Bool("wait", false, MsgFlagWait)

	return cmd
}

func newSelectCmd(g *globalOptions) *cobra.Command {
	run := func(mode commands.SelectMode) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			result, err := commands.Select(commands.SelectOptions{
				FS:     g.fs,
				Config: cfg,
				Mode:   mode,
				Mods:   args,
				DryRun: g.dryRun,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, nil, func(r style.Renderer) string {
				return r.RenderSelection(result)
			})
		}
	}

	cmd := &cobra.Command{
		Use:     "select",
		Short:   MsgSelectShort,
		Long:    MsgSelectLong,
		Example: MsgSelectExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE:    run(commands.ModeShow),
	}

	cmd.AddCommand(&cobra.Command{
		Use:               "set <mods...>",
		Short:             "Replace the selection",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: modNamesCompletion(g),
		RunE:              run(commands.ModeSet),
	})
	cmd.AddCommand(&cobra.Command{
		Use:               "add <mods...>",
		Short:             "Add mods to the selection",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: modNamesCompletion(g),
		RunE:              run(commands.ModeAdd),
	})
	cmd.AddCommand(&cobra.Command{
		Use:               "remove <mods...>",
		Short:             "Remove mods from the selection",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: modNamesCompletion(g),
		RunE:              run(commands.ModeRemove),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Select no mods",
		Args:  cobra.NoArgs,
		RunE:  run(commands.ModeClear),
	})

	return cmd
}

func newPresetCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Short:   MsgPresetShort,
		Long:    MsgPresetLong,
		GroupID: "config",
	}

	withConfig := func(fn func(cmd *cobra.Command, cfg *config.Config, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			return fn(cmd, cfg, args)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgPresetListShort,
		Args:  cobra.NoArgs,
		RunE: withConfig(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			result, err := commands.ListPresets(commands.PresetOptions{Config: cfg})
			if err != nil {
				return err
			}
			return g.render(cmd, nil, func(r style.Renderer) string { return r.RenderPresets(result) })
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "save <name> [mods...]",
		Short: MsgPresetSaveShort,
		Args:  cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return presetNamesCompletion(g)(cmd, args, toComplete)
			}
			return modNamesCompletion(g)(cmd, args[1:], toComplete)
		},
		RunE: withConfig(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			result, err := commands.SavePreset(commands.PresetOptions{Config: cfg, Name: args[0], Mods: args[1:]})
			if err != nil {
				return err
			}
			return g.render(cmd, nil, func(r style.Renderer) string { return r.RenderPresets(result) })
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "use <name>",
		Short:             MsgPresetUseShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: presetNamesCompletion(g),
		RunE: withConfig(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			result, err := commands.UsePreset(commands.PresetOptions{Config: cfg, Name: args[0]})
			if err != nil {
				return err
			}
			return g.render(cmd, nil, func(r style.Renderer) string { return r.RenderSelection(result) })
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "delete <name>",
		Short:             MsgPresetDelShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: presetNamesCompletion(g),
		RunE: withConfig(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			result, err := commands.DeletePreset(commands.PresetOptions{Config: cfg, Name: args[0]})
			if err != nil {
				return err
			}
			return g.render(cmd, nil, func(r style.Renderer) string { return r.RenderPresets(result) })
		}),
	})

	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: MsgPresetExpShort,
		Args:  cobra.ExactArgs(1),
		RunE: withConfig(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			names, _ := cmd.Flags().GetStringSlice("preset")
			result, err := commands.ExportPresets(commands.PresetOptions{
				Config: cfg,
				Path:   paths.ExpandHome(args[0]),
				Names:  names,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, nil, func(r style.Renderer) string { return r.RenderPresets(result) })
		}),
	}
	exportCmd.Flags().StringSliceP("preset", "p", nil, MsgFlagPresetOut)
	_ = exportCmd.RegisterFlagCompletionFunc("preset", presetNamesCompletion(g))
	cmd.AddCommand(exportCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: MsgPresetImpShort,
		Args:  cobra.ExactArgs(1),
		RunE: withConfig(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			result, err := commands.ImportPresets(commands.PresetOptions{
				Config: cfg,
				Path:   paths.ExpandHome(args[0]),
			})
			if err != nil {
				return err
			}
			return g.render(cmd, nil, func(r style.Renderer) string { return r.RenderPresets(result) })
		}),
	})

	return cmd
}

func newCacheCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		Short:   MsgCacheShort,
		GroupID: "misc",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: MsgCacheClearShort,
		Long:  MsgCacheClearLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			userDir, _ := cmd.Flags().GetString("user-dir")

			result, err := commands.ClearCache(commands.ClearCacheOptions{
				FS:      g.fs,
				Config:  cfg,
				UserDir: userDir,
				DryRun:  g.dryRun,
			})
			if err != nil {
				return err
			}
			if err := g.render(cmd, nil, func(r style.Renderer) string { return r.RenderCacheClear(result) }); err != nil {
				return err
			}
			if g.dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return nil
		},
	}
	clearCmd.Flags().String("user-dir", "", MsgFlagUserDir)
	cmd.AddCommand(clearCmd)

	return cmd
}

func newGenConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			path := g.configPath
			if path == "" {
				path = paths.ConfigFile()
			}
			result, err := commands.GenConfig(commands.GenConfigOptions{Path: path, Write: write})
			if err != nil {
				return err
			}
			if result.FileWritten != "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgGenConfigWritten, result.FileWritten)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				helpCmd.SetOut(cmd.OutOrStdout())
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}

// CompletionShells are the shells WriteCompletion supports.
var CompletionShells = []string{"bash", "zsh", "fish", "powershell"}

// WriteCompletion writes the completion script of root for shell to w.
func WriteCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf(MsgErrUnknownShell, shell, strings.Join(CompletionShells, ", "))
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [" + strings.Join(CompletionShells, "|") + "]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             CompletionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return WriteCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
