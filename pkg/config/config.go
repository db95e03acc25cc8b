package config

import (
	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/paths"
)

// Config is the launcher configuration.
type Config struct {
	GameRoot            string   `koanf:"game_root" toml:"game_root"`
	DocumentsDir        string   `koanf:"documents_dir" toml:"documents_dir"`
	Executable          string   `koanf:"executable" toml:"executable"`
	Wrapper             string   `koanf:"wrapper" toml:"wrapper"`
	UpdateTime          float64  `koanf:"update_time" toml:"update_time"`
	Realtime            bool     `koanf:"realtime" toml:"realtime"`
	SkipIntro           bool     `koanf:"skip_intro" toml:"skip_intro"`
	MergeEventModifiers bool     `koanf:"merge_event_modifiers" toml:"merge_event_modifiers"`
	CheckedMods         []string `koanf:"checked_mods" toml:"checked_mods"`
	Presets             []Preset `koanf:"presets" toml:"presets,omitempty"`

	// path the config was loaded from and is saved to
	path string
}

// Preset is a named mod selection.
type Preset struct {
	Name string   `koanf:"name" toml:"name" yaml:"name"`
	Mods []string `koanf:"mods" toml:"mods" yaml:"mods"`
}

// Path returns the file the configuration is bound to.
func (c *Config) Path() string {
	return c.path
}

// Layout returns the path layout for the configured game.
func (c *Config) Layout() paths.Layout {
	return paths.NewLayout(c.GameRoot, c.DocumentsDir)
}

// RequireGameRoot fails when no game root is configured.
func (c *Config) RequireGameRoot() error {
	if c.GameRoot == "" {
		return errors.Newf(errors.ErrGameNotFound,
			"no game root configured; set game_root in %s, %s or pass --game-root", c.path, paths.EnvGameRoot)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.UpdateTime <= 0 {
		return errors.Newf(errors.ErrConfigParse, "update_time must be positive, got %v", c.UpdateTime).
			WithDetail("path", c.path)
	}
	if c.Executable == "" {
		return errors.New(errors.ErrConfigParse, "executable must not be empty").
			WithDetail("path", c.path)
	}
	return nil
}
