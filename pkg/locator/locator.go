// Package locator finds the repository enclosing a directory.
package locator

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cs01/pkg/logging"
	"github.com/arthur-debert/cs01/pkg/types"
)

// Locate walks from startDir up to the filesystem root and returns the first
// directory that holds repository metadata. At each level a bare marker (a
// config file starting with [core]) wins over a metadata folder.
//
// Nothing is cached: every call reads the filesystem again. Relative start
// directories are only walked up to their first component, so callers that
// need the full ancestry pass an absolute path.
func Locate(fsys types.FS, startDir string) (*types.RepoRoot, bool) {
	logger := logging.GetLogger("locator")

	current := filepath.Clean(startDir)
	for {
		if isBareRoot(fsys, current) {
			logger.Trace().Str("root", current).Msg("Found bare repository")
			return &types.RepoRoot{Path: current, Bare: true}, true
		}
		if isStandardRoot(fsys, current) {
			logger.Trace().Str("root", current).Msg("Found standard repository")
			return &types.RepoRoot{Path: current, Bare: false}, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	logger.Trace().Str("start", startDir).Msg("No repository found")
	return nil, false
}

// isBareRoot treats any failure to read the config file as "no match".
func isBareRoot(fsys types.FS, dir string) bool {
	path := filepath.Join(dir, types.ConfigFileName)
	info, err := fsys.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(string(data)), types.CoreMarker)
}

func isStandardRoot(fsys types.FS, dir string) bool {
	info, err := fsys.Stat(filepath.Join(dir, types.MetadataDirName))
	return err == nil && info.IsDir()
}
