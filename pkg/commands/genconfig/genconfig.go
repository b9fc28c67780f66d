// Package genconfig implements the genconfig command.
package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/cs01/pkg/config"
	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/arthur-debert/cs01/pkg/logging"
	"github.com/arthur-debert/cs01/pkg/paths"
	"github.com/arthur-debert/cs01/pkg/treewriter"
	"github.com/arthur-debert/cs01/pkg/types"
)

// Output formats
const (
	FormatTOML     = "toml"
	FormatYAML     = "yaml"
	FormatTemplate = "template"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Config is the effective configuration to render. Defaults are used
	// when nil.
	Config *config.Config
	// Format is toml (default), yaml or template. The template is the
	// commented defaults file.
	Format string
	// Write saves the content into the cs01 config dir instead of only
	// returning it. An existing file is never replaced.
	Write bool
	// FS is required when Write is set.
	FS types.FS
	// Dir overrides the config dir used by Write.
	Dir string
}

// GenConfig renders the configuration and optionally writes it
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	format := opts.Format
	if format == "" {
		format = FormatTOML
	}

	var (
		content string
		err     error
		ext     = ".toml"
	)
	switch format {
	case FormatTOML:
		content, err = config.ToTOML(cfg)
	case FormatYAML:
		content, err = config.ToYAML(cfg)
		ext = ".yaml"
	case FormatTemplate:
		content = config.GenerateConfigContent()
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
	if err != nil {
		return nil, err
	}

	result := &types.GenConfigResult{Format: format, Content: content}
	if !opts.Write {
		logger.Debug().Str("format", format).Msg("Outputting config to stdout")
		return result, nil
	}

	if opts.FS == nil {
		return nil, errors.New(errors.ErrInternal, "no filesystem given")
	}
	dir := opts.Dir
	if dir == "" {
		dir = paths.ConfigDir()
	}

	name := "config" + ext
	tree := types.NewDirectory().Add(name, types.File{Content: content})
	report, err := treewriter.Write(opts.FS, tree, dir, types.DefaultWriteOptions())
	if err != nil {
		return nil, err
	}

	result.Written = filepath.Join(dir, name)
	result.Skipped = report.Count(types.ActionSkipExisting) > 0
	if result.Skipped {
		logger.Warn().Str("path", result.Written).Msg("Config file already exists, skipping")
	} else {
		logger.Info().Str("path", result.Written).Msg("Written config file")
	}
	return result, nil
}
