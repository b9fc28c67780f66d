// Package testutil provides utilities for testing cs01 components.
//
// Key components:
//   - Filesystem helpers: temp dirs, file and directory creation, existence checks
//   - Snapshots: modification-time and path listings used by repair tests
//   - Assertions: small helpers for string and file checks not covered by testify
//
// Usage guidelines:
//   - Prefer filesystem.NewMemory() for tests of pure tree logic
//   - Use real temp directories when modification times or OS errors matter
//   - All test data should be defined inline, not in external files
package testutil
