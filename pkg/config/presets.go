package config

import (
	"os"
	"sort"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"gopkg.in/yaml.v3"
)

// presetFile is the YAML layout used by export and import.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// PresetNames returns the stored preset names, sorted.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for _, p := range c.Presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named preset.
func (c *Config) Preset(name string) (Preset, error) {
	if i := c.presetIndex(name); i >= 0 {
		return c.Presets[i], nil
	}
	return Preset{}, errors.Newf(errors.ErrPresetNotFound, "preset %q not found", name).
		WithDetail("preset", name)
}

// SavePreset stores mods under name, replacing an existing preset.
func (c *Config) SavePreset(name string, mods []string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "preset name must not be empty")
	}
	p := Preset{Name: name, Mods: append([]string{}, mods...)}
	if i := c.presetIndex(name); i >= 0 {
		c.Presets[i] = p
		return nil
	}
	c.Presets = append(c.Presets, p)
	return nil
}

// DeletePreset removes the named preset.
func (c *Config) DeletePreset(name string) error {
	i := c.presetIndex(name)
	if i < 0 {
		return errors.Newf(errors.ErrPresetNotFound, "preset %q not found", name).
			WithDetail("preset", name)
	}
	c.Presets = append(c.Presets[:i], c.Presets[i+1:]...)
	return nil
}

// ExportPresets writes the named presets (all when names is empty) to path as YAML.
func (c *Config) ExportPresets(path string, names ...string) error {
	out := presetFile{}
	if len(names) == 0 {
		out.Presets = append(out.Presets, c.Presets...)
	} else {
		for _, name := range names {
			p, err := c.Preset(name)
			if err != nil {
				return err
			}
			out.Presets = append(out.Presets, p)
		}
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode presets")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write presets").
			WithDetail("path", path)
	}
	return nil
}

// ImportPresets reads presets from a YAML file and stores them, replacing
// presets with the same name. It returns the imported names in file order.
func (c *Config) ImportPresets(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read presets").
			WithDetail("path", path)
	}

	var in presetFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid preset file").
			WithDetail("path", path)
	}

	names := make([]string, 0, len(in.Presets))
	for _, p := range in.Presets {
		if err := c.SavePreset(p.Name, p.Mods); err != nil {
			return names, errors.Wrap(err, errors.ErrInvalidInput, "invalid preset entry").
				WithDetail("path", path)
		}
		names = append(names, p.Name)
	}
	return names, nil
}

func (c *Config) presetIndex(name string) int {
	for i, p := range c.Presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}
