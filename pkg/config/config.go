package config

import (
	"io/fs"
	"strconv"
	"strings"

	"github.com/arthur-debert/cs01/pkg/errors"
)

// Output formats accepted in output.format.
var validFormats = []string{"auto", "term", "text", "json"}

// Config is the application configuration.
type Config struct {
	Init   InitConfig   `koanf:"init" toml:"init" yaml:"init" json:"init"`
	Output OutputConfig `koanf:"output" toml:"output" yaml:"output" json:"output"`
}

// InitConfig holds defaults for cs01 init.
type InitConfig struct {
	DefaultBranch   string `koanf:"default_branch" toml:"default_branch" yaml:"default_branch" json:"default_branch"`
	DirPermissions  string `koanf:"dir_permissions" toml:"dir_permissions" yaml:"dir_permissions" json:"dir_permissions"`
	FilePermissions string `koanf:"file_permissions" toml:"file_permissions" yaml:"file_permissions" json:"file_permissions"`

	dirMode  fs.FileMode
	fileMode fs.FileMode
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format" yaml:"format" json:"format"`
}

// DirMode returns the parsed directory permissions.
func (c *InitConfig) DirMode() fs.FileMode { return c.dirMode }

// FileMode returns the parsed file permissions.
func (c *InitConfig) FileMode() fs.FileMode { return c.fileMode }

// postProcessConfig validates values koanf cannot type check and caches
// parsed permissions.
func postProcessConfig(cfg *Config) error {
	cfg.Init.DefaultBranch = strings.TrimSpace(cfg.Init.DefaultBranch)
	if cfg.Init.DefaultBranch == "" {
		return errors.New(errors.ErrConfigValid, "init.default_branch must not be empty")
	}

	mode, err := parsePermissions("init.dir_permissions", cfg.Init.DirPermissions)
	if err != nil {
		return err
	}
	cfg.Init.dirMode = mode

	mode, err = parsePermissions("init.file_permissions", cfg.Init.FilePermissions)
	if err != nil {
		return err
	}
	cfg.Init.fileMode = mode

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	for _, f := range validFormats {
		if cfg.Output.Format == f {
			return nil
		}
	}
	return errors.Newf(errors.ErrConfigValid, "output.format must be one of %s, got %q",
		strings.Join(validFormats, ", "), cfg.Output.Format).
		WithDetail("key", "output.format")
}

func parsePermissions(key, value string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(value), 8, 32)
	if err != nil || v == 0 || v > 0o777 {
		return 0, errors.Newf(errors.ErrConfigValid, "%s must be an octal mode between 0001 and 0777, got %q", key, value).
			WithDetail("key", key)
	}
	return fs.FileMode(v), nil
}
