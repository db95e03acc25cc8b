package genconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		result, err := GenConfig(GenConfigOptions{})
		require.NoError(t, err)
		assert.Empty(t, result.FileWritten)

		// Verify that configuration values are commented out
		for _, line := range strings.Split(result.ConfigContent, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			assert.Fail(t, "Found uncommented configuration line", "Line: %s", line)
		}
		assert.Contains(t, result.ConfigContent, "# update_time = 1.0")
	})

	t.Run("write new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "modlauncher", "launcher.toml")

		result, err := GenConfig(GenConfigOptions{Path: path, Write: true})
		require.NoError(t, err)
		assert.Equal(t, path, result.FileWritten)

		// a fully commented file loads as the defaults
		cfg, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "v2game.exe", cfg.Executable)
	})

	t.Run("existing file is kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "launcher.toml")
		require.NoError(t, os.WriteFile(path, []byte(`game_root = "/mine"`), 0644))

		result, err := GenConfig(GenConfigOptions{Path: path, Write: true})
		require.NoError(t, err)
		assert.Empty(t, result.FileWritten)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `game_root = "/mine"`, string(data))
	})
}
