// Package treewriter materializes an in-memory tree onto a filesystem.
//
// Directories are created before their children and children are visited in
// name order, so the returned report is deterministic. Without Overwrite any
// existing path is left untouched, which is what makes re-running init a
// repair: only missing entries are created. Files are written to a sibling
// temporary file and renamed into place so a reader never sees partial
// content.
package treewriter

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/arthur-debert/cs01/pkg/logging"
	"github.com/arthur-debert/cs01/pkg/types"
	"github.com/rs/zerolog"
)

// tempSuffix marks in-flight files next to their destination.
const tempSuffix = ".cs01-tmp"

type writer struct {
	fsys   types.FS
	opts   types.WriteOptions
	report *types.WriteReport
	logger zerolog.Logger
}

// Write materializes tree at basePath. On error the report covers the
// actions taken before the failure; already written nodes stay on disk.
func Write(fsys types.FS, tree types.Node, basePath string, opts types.WriteOptions) (*types.WriteReport, error) {
	logger := logging.GetLogger("treewriter")
	done := logging.LogOperationStart(logger, "write tree")
	defer done()

	if opts.DirPerms == 0 {
		opts.DirPerms = types.DefaultWriteOptions().DirPerms
	}
	if opts.FilePerms == 0 {
		opts.FilePerms = types.DefaultWriteOptions().FilePerms
	}

	w := &writer{
		fsys:   fsys,
		opts:   opts,
		report: &types.WriteReport{DryRun: opts.DryRun},
		logger: logger,
	}

	err := w.write(tree, filepath.Clean(basePath))
	if err != nil {
		return w.report, err
	}

	logger.Debug().
		Str("base", basePath).
		Int("created_dirs", w.report.Count(types.ActionCreateDir)).
		Int("written_files", w.report.Count(types.ActionWriteFile)).
		Int("skipped", w.report.Count(types.ActionSkipExisting)).
		Bool("dry_run", opts.DryRun).
		Msg("Tree written")
	return w.report, nil
}

func (w *writer) write(node types.Node, path string) error {
	switch n := node.(type) {
	case types.Directory:
		return w.writeDir(n, path)
	case types.File:
		return w.writeFile(n, path)
	default:
		return errors.Newf(errors.ErrInternal, "unknown tree node %T at %s", node, path).
			WithDetail("path", path)
	}
}

func (w *writer) writeDir(dir types.Directory, path string) error {
	exists, err := w.exists(path)
	if err != nil {
		return err
	}

	if !exists {
		w.report.Add(types.ActionCreateDir, path)
		if !w.opts.DryRun {
			if err := w.fsys.MkdirAll(path, w.opts.DirPerms); err != nil {
				return errors.IOError(err, "create directory", path)
			}
		}
		w.logger.Trace().Str("path", path).Msg("Created directory")
	}

	for _, name := range dir.Names() {
		if err := w.write(dir.Children[name], filepath.Join(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeFile(file types.File, path string) error {
	if !w.opts.Overwrite {
		exists, err := w.exists(path)
		if err != nil {
			return err
		}
		if exists {
			w.report.Add(types.ActionSkipExisting, path)
			w.logger.Trace().Str("path", path).Msg("Keeping existing path")
			return nil
		}
	}

	w.report.Add(types.ActionWriteFile, path)
	if w.opts.DryRun {
		return nil
	}

	parent := filepath.Dir(path)
	parentExists, err := w.exists(parent)
	if err != nil {
		return err
	}
	if !parentExists {
		if err := w.fsys.MkdirAll(parent, w.opts.DirPerms); err != nil {
			return errors.IOError(err, "create directory", parent)
		}
	}

	tmp := filepath.Join(parent, "."+filepath.Base(path)+tempSuffix)
	if err := w.fsys.WriteFile(tmp, []byte(file.Content), w.opts.FilePerms); err != nil {
		return errors.IOError(err, "write", path)
	}
	if err := w.fsys.Rename(tmp, path); err != nil {
		_ = w.fsys.Remove(tmp)
		return errors.IOError(err, "write", path)
	}

	w.logger.Trace().Str("path", path).Int("bytes", len(file.Content)).Msg("Wrote file")
	return nil
}

func (w *writer) exists(path string) (bool, error) {
	_, err := w.fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.IOError(err, "stat", path)
}
