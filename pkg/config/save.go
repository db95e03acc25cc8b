package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Save writes the configuration back to its file.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New(errors.ErrConfigSave, "configuration is not bound to a file")
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to encode configuration")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create config directory").
			WithDetail("path", filepath.Dir(c.path))
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to write configuration").
			WithDetail("path", c.path)
	}
	return nil
}
