package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/modlauncher/pkg/config"
	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Path is where Write puts the file
	Path  string
	Write bool
}

// GenConfigResult holds the generated config and where it was written.
type GenConfigResult struct {
	ConfigContent string
	FileWritten   string
}

// GenConfig outputs or writes a commented default configuration. An
// existing file is never overwritten.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &GenConfigResult{ConfigContent: config.GenerateConfigContent()}
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if _, err := os.Stat(opts.Path); err == nil {
		logger.Warn().Str("path", opts.Path).Msg("Config file already exists, skipping")
		return result, nil
	}

	dir := filepath.Dir(opts.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrap(err, errors.ErrDirCreate, "failed to create config directory").
			WithDetail("path", dir)
	}
	if err := os.WriteFile(opts.Path, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrap(err, errors.ErrFileWrite, "failed to write config").
			WithDetail("path", opts.Path)
	}

	logger.Info().Str("path", opts.Path).Msg("Written config file")
	result.FileWritten = opts.Path
	return result, nil
}
