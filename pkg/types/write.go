package types

import "io/fs"

// WriteOptions controls how a tree is materialized on disk.
type WriteOptions struct {
	// DirPerms is the mode used for directories the writer creates.
	DirPerms fs.FileMode
	// FilePerms is the mode used for files the writer creates.
	FilePerms fs.FileMode
	// Overwrite replaces existing files. When false, an existing path is left
	// untouched whatever its content (repair mode).
	Overwrite bool
	// DryRun records what would happen without touching the filesystem.
	DryRun bool
}

// DefaultWriteOptions returns the options used by a plain init.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		DirPerms:  0755,
		FilePerms: 0644,
	}
}

// WriteActionKind identifies what the writer did, or would do, at a path.
type WriteActionKind string

const (
	ActionCreateDir    WriteActionKind = "create_dir"
	ActionWriteFile    WriteActionKind = "write_file"
	ActionSkipExisting WriteActionKind = "skip_existing"
)

// WriteAction is one step of a write.
type WriteAction struct {
	Kind WriteActionKind `json:"kind"`
	Path string          `json:"path"`
}

// WriteReport lists the actions of a write in traversal order.
type WriteReport struct {
	DryRun  bool          `json:"dryRun"`
	Actions []WriteAction `json:"actions"`
}

// Add appends an action to the report.
func (r *WriteReport) Add(kind WriteActionKind, path string) {
	r.Actions = append(r.Actions, WriteAction{Kind: kind, Path: path})
}

// Count returns the number of actions of the given kind.
func (r *WriteReport) Count(kind WriteActionKind) int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Paths returns the paths of the actions of the given kind.
func (r *WriteReport) Paths(kind WriteActionKind) []string {
	var paths []string
	for _, a := range r.Actions {
		if a.Kind == kind {
			paths = append(paths, a.Path)
		}
	}
	return paths
}
