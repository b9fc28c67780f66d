// Package paths provides centralized path handling for cs01.
//
// It resolves the target directory of a command, expands "~", and locates
// the per-user configuration and state directories following the XDG Base
// Directory layout (through github.com/adrg/xdg). Each directory can be
// overridden with a CS01_* environment variable.
package paths
