package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. MODLAUNCHER_GAME_ROOT.
const EnvPrefix = "MODLAUNCHER_"

// Load reads the configuration: embedded defaults, then the file at path
// (paths.ConfigFile() when empty) if it exists, then environment variables,
// then overrides. Override keys are config keys such as "game_root".
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")

	if path == "" {
		path = paths.ConfigFile()
	}

	k := koanf.New(".")

	defaults, err := defaultValues()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse defaults")
	}
	if err := k.Load(confmap.Provider(defaults, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config file").
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot access config file").
			WithDetail("path", path)
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration").
			WithDetail("path", path)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("game_root", cfg.GameRoot).
		Int("checked_mods", len(cfg.CheckedMods)).
		Int("presets", len(cfg.Presets)).
		Msg("Configuration loaded")
	return &cfg, nil
}
