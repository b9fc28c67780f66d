package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/cs01/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for cs01
	EnvConfigDir = "CS01_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for cs01
	EnvStateDir = "CS01_STATE_DIR"

	// EnvLogFile overrides the log file location
	EnvLogFile = "CS01_LOG_FILE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under the XDG base dirs
	AppDirName = "cs01"

	// LogFileName is the name of the log file
	LogFileName = "cs01.log"
)

// ConfigFileNames are the config file names looked up in ConfigDir, in order.
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory for state such as logs.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if home := os.Getenv("XDG_STATE_HOME"); home != "" {
		return filepath.Join(home, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file.
func LogFilePath() string {
	if p := os.Getenv(EnvLogFile); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(StateDir(), LogFileName)
}

// FindConfigFile returns the first existing config file in ConfigDir, or ""
// when there is none.
func FindConfigFile() string {
	dir := ConfigDir()
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// ResolveTarget turns the path given to a command into an absolute, clean
// path. Relative paths are taken against workingDir, or the process working
// directory when workingDir is empty.
func ResolveTarget(workingDir, path string) (string, error) {
	if path == "" {
		path = "."
	}
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to determine working directory")
		}
		workingDir = wd
	}
	workingDir = ExpandHome(workingDir)
	if !filepath.IsAbs(workingDir) {
		abs, err := filepath.Abs(workingDir)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve %s", workingDir)
		}
		workingDir = abs
	}
	return filepath.Join(workingDir, path), nil
}

// ExpandHome expands ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not supported
	return path
}

// Display shortens path for messages by replacing the home directory with ~.
func Display(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
