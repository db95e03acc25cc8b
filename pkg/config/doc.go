// Package config handles configuration management for modlauncher.
// It loads embedded defaults, the user's launcher.toml and MODLAUNCHER_*
// environment variables with koanf, and writes the file back with go-toml
// when the selection or presets change.
package config
