package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cs01/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name       string
		workingDir string
		path       string
		want       string
	}{
		{"absolute path", "/work", "/abs/repo", "/abs/repo"},
		{"relative path", "/work", "repo", "/work/repo"},
		{"dot", "/work", ".", "/work"},
		{"empty means dot", "/work", "", "/work"},
		{"parent segments are cleaned", "/work/a", "../b", "/work/b"},
		{"tilde", "/work", "~/repo", filepath.Join(home, "repo")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTarget(tt.workingDir, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTargetUsesProcessDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveTarget("", "repo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "repo"), got)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandHome("~/x"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
	assert.Equal(t, "", ExpandHome(""))
}

func TestDirectoryOverrides(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	t.Setenv(EnvStateDir, "/custom/state")
	t.Setenv(EnvLogFile, "")

	assert.Equal(t, "/custom/config", ConfigDir())
	assert.Equal(t, "/custom/state", StateDir())
	assert.Equal(t, filepath.Join("/custom/state", LogFileName), LogFilePath())

	t.Setenv(EnvLogFile, "/var/log/cs01.log")
	assert.Equal(t, "/var/log/cs01.log", LogFilePath())
}

func TestXDGEnvironment(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, "/xdg/config/cs01", ConfigDir())
	assert.Equal(t, "/xdg/state/cs01", StateDir())
}

func TestFindConfigFile(t *testing.T) {
	dir := testutil.TempDir(t, "config")
	t.Setenv(EnvConfigDir, dir)

	assert.Empty(t, FindConfigFile())

	yamlPath := testutil.CreateFile(t, dir, "config.yaml", "init: {}\n")
	assert.Equal(t, yamlPath, FindConfigFile())

	tomlPath := testutil.CreateFile(t, dir, "config.toml", "")
	assert.Equal(t, tomlPath, FindConfigFile(), "toml takes precedence")
}

func TestDisplay(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	if home == "/" {
		t.Skip("home is root")
	}

	assert.Equal(t, "~", Display(home))
	assert.Equal(t, "~/repo", Display(filepath.Join(home, "repo")))
	assert.Equal(t, "/elsewhere", Display("/elsewhere"))
}
