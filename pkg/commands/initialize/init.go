// Package initialize implements the init command: it creates a new
// repository or repairs an existing one in place.
package initialize

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/arthur-debert/cs01/pkg/layout"
	"github.com/arthur-debert/cs01/pkg/locator"
	"github.com/arthur-debert/cs01/pkg/logging"
	"github.com/arthur-debert/cs01/pkg/paths"
	"github.com/arthur-debert/cs01/pkg/repoconfig"
	"github.com/arthur-debert/cs01/pkg/treewriter"
	"github.com/arthur-debert/cs01/pkg/types"
)

// InitRepoOptions defines the options for the InitRepo command.
type InitRepoOptions struct {
	// FS is the filesystem to operate on.
	FS types.FS
	// Path is the target directory. Relative paths are resolved against
	// WorkingDir; "~" is expanded.
	Path string
	// WorkingDir defaults to the process working directory.
	WorkingDir string
	// Bare puts the metadata directly in Path instead of Path/.cs01-root.
	Bare bool
	// InitialBranch is the branch HEAD points to. Defaults to "main".
	InitialBranch string
	// DryRun reports the actions without touching the filesystem.
	DryRun bool
	// Force rewrites existing metadata files instead of keeping them.
	Force bool
	// DirPerms and FilePerms default to 0755 and 0644.
	DirPerms  fs.FileMode
	FilePerms fs.FileMode
}

// InitRepo creates the repository layout at the target, or fills in what is
// missing when the target already is a repository. It refuses to create a
// repository inside another one.
func InitRepo(opts InitRepoOptions) (*types.InitResult, error) {
	log := logging.GetLogger("commands.init")
	log.Debug().Str("command", "InitRepo").Str("path", opts.Path).Bool("bare", opts.Bare).Msg("Executing command")

	if opts.FS == nil {
		return nil, errors.New(errors.ErrInternal, "no filesystem given")
	}

	// 1. Validate branch
	branch := opts.InitialBranch
	if branch == "" {
		branch = types.DefaultBranch
	}
	if err := layout.ValidateBranchName(branch); err != nil {
		return nil, err
	}

	// 2. Resolve target
	target, err := paths.ResolveTarget(opts.WorkingDir, opts.Path)
	if err != nil {
		return nil, err
	}

	// 3. Nested repository protection
	if outer, found := owningRepository(opts.FS, target); found {
		return nil, nestedError(target, outer)
	}
	reinit := false
	if root, found := locator.Locate(opts.FS, target); found {
		if root.Path != target {
			return nil, nestedError(target, root)
		}
		reinit = true
		checkKind(opts.FS, root, opts.Bare)
	}

	// 4. Build and write
	tree, err := layout.Build(opts.Bare, branch)
	if err != nil {
		return nil, err
	}

	writeOpts := types.WriteOptions{
		DirPerms:  opts.DirPerms,
		FilePerms: opts.FilePerms,
		Overwrite: opts.Force,
		DryRun:    opts.DryRun,
	}
	report, err := treewriter.Write(opts.FS, tree, target, writeOpts)
	if err != nil {
		return nil, err
	}

	metaDir := target
	if !opts.Bare {
		metaDir = filepath.Join(target, types.MetadataDirName)
	}

	log.Info().
		Str("path", target).
		Str("kind", types.KindName(opts.Bare)).
		Str("branch", branch).
		Bool("reinitialized", reinit).
		Bool("dry_run", opts.DryRun).
		Msg("Repository initialized")

	return &types.InitResult{
		Path:          target,
		MetadataDir:   metaDir,
		Bare:          opts.Bare,
		InitialBranch: branch,
		Reinitialized: reinit,
		DryRun:        opts.DryRun,
		Report:        report,
	}, nil
}

func nestedError(target string, root *types.RepoRoot) error {
	return errors.Newf(errors.ErrNestedRepository,
		"Refusing to create nested repository: %s is inside existing %s repository at %s",
		target, root.Kind(), root.Path).
		WithDetail("target", target).
		WithDetail("root", root.Path)
}

// owningRepository reports the standard repository whose metadata folder is
// target. That folder looks like a bare root to Locate, but initializing it
// would plant a repository inside another one.
func owningRepository(fsys types.FS, target string) (*types.RepoRoot, bool) {
	if filepath.Base(target) != types.MetadataDirName {
		return nil, false
	}
	parent := filepath.Dir(target)
	root, found := locator.Locate(fsys, parent)
	if !found || root.Bare || root.Path != parent {
		return nil, false
	}
	return root, true
}

// checkKind warns when an existing repository is re-initialized as the other
// kind. The kind comes from the layout found on disk; a config whose bare
// flag disagrees with it is reported too. The existing metadata is left
// alone either way.
func checkKind(fsys types.FS, root *types.RepoRoot, bare bool) {
	log := logging.GetLogger("commands.init")

	if root.Bare != bare {
		log.Warn().
			Str("path", root.Path).
			Str("existing", root.Kind()).
			Str("requested", types.KindName(bare)).
			Msg("Reinitializing repository as a different kind")
	}

	configPath := filepath.Join(root.Path, types.ConfigFileName)
	if !root.Bare {
		configPath = filepath.Join(root.Path, types.MetadataDirName, types.ConfigFileName)
	}
	core, err := repoconfig.ReadCore(fsys, configPath)
	if err != nil {
		log.Debug().Err(err).Str("path", configPath).Msg("Existing config unreadable, it will be repaired")
		return
	}
	if core.Bare != root.Bare {
		log.Warn().
			Str("path", configPath).
			Bool("config_bare", core.Bare).
			Str("layout", root.Kind()).
			Msg("Repository config disagrees with its layout")
	}
}
