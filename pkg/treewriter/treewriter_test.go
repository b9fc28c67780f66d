package treewriter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/arthur-debert/cs01/pkg/filesystem"
	"github.com/arthur-debert/cs01/pkg/testutil"
	"github.com/arthur-debert/cs01/pkg/treewriter"
	"github.com/arthur-debert/cs01/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() types.Directory {
	return types.NewDirectory().
		Add("a.txt", types.File{Content: "alpha"}).
		Add("sub", types.NewDirectory().
			Add("b.txt", types.File{Content: "beta"}).
			Add("empty", types.NewDirectory()))
}

type unknownNode struct{ types.Node }

func TestWriteCreatesTree(t *testing.T) {
	fsys := filesystem.NewMemory()

	report, err := treewriter.Write(fsys, sampleTree(), "/repo", types.DefaultWriteOptions())
	require.NoError(t, err)

	content, err := fsys.ReadFile("/repo/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(content))

	content, err = fsys.ReadFile("/repo/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "beta", string(content))

	info, err := fsys.Stat("/repo/sub/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, []types.WriteAction{
		{Kind: types.ActionCreateDir, Path: "/repo"},
		{Kind: types.ActionWriteFile, Path: "/repo/a.txt"},
		{Kind: types.ActionCreateDir, Path: "/repo/sub"},
		{Kind: types.ActionWriteFile, Path: "/repo/sub/b.txt"},
		{Kind: types.ActionCreateDir, Path: "/repo/sub/empty"},
	}, report.Actions)
	assert.False(t, report.DryRun)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := testutil.TempDir(t, "write")

	_, err := treewriter.Write(filesystem.NewOS(), sampleTree(), dir, types.DefaultWriteOptions())
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"a.txt", "sub/", "sub/b.txt", "sub/empty/"},
		testutil.ListTree(t, dir))
}

func TestWriteRepairKeepsExistingFiles(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/repo/sub", 0755))
	require.NoError(t, fsys.WriteFile("/repo/a.txt", []byte("edited"), 0644))

	report, err := treewriter.Write(fsys, sampleTree(), "/repo", types.DefaultWriteOptions())
	require.NoError(t, err)

	content, err := fsys.ReadFile("/repo/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "edited", string(content), "existing content must not be replaced")

	assert.Equal(t, []string{"/repo/a.txt"}, report.Paths(types.ActionSkipExisting))
	assert.Equal(t, []string{"/repo/sub/b.txt"}, report.Paths(types.ActionWriteFile))
	assert.Equal(t, []string{"/repo/sub/empty"}, report.Paths(types.ActionCreateDir))
}

func TestWriteRepairSkipsDirectoryWhereFileExpected(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/repo/a.txt", 0755))

	report, err := treewriter.Write(fsys, sampleTree(), "/repo", types.DefaultWriteOptions())
	require.NoError(t, err)

	assert.Contains(t, report.Paths(types.ActionSkipExisting), "/repo/a.txt")
	info, err := fsys.Stat("/repo/a.txt")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteRepairKeepsModTimes(t *testing.T) {
	dir := testutil.TempDir(t, "repair")
	fsys := filesystem.NewOS()

	_, err := treewriter.Write(fsys, sampleTree(), dir, types.DefaultWriteOptions())
	require.NoError(t, err)

	old := time.Now().Add(-time.Hour)
	for _, rel := range []string{"a.txt", "sub/b.txt"} {
		require.NoError(t, os.Chtimes(filepath.Join(dir, rel), old, old))
	}
	before := testutil.ModTimes(t, dir)

	require.NoError(t, os.Remove(filepath.Join(dir, "sub", "b.txt")))

	report, err := treewriter.Write(fsys, sampleTree(), dir, types.DefaultWriteOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "sub", "b.txt")}, report.Paths(types.ActionWriteFile))

	after := testutil.ModTimes(t, dir)
	assert.Equal(t, before["a.txt"], after["a.txt"])
	assert.Equal(t, "beta", testutil.ReadFile(t, filepath.Join(dir, "sub", "b.txt")))
}

func TestWriteOverwrite(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	require.NoError(t, fsys.WriteFile("/repo/a.txt", []byte("edited"), 0644))

	opts := types.DefaultWriteOptions()
	opts.Overwrite = true
	report, err := treewriter.Write(fsys, sampleTree(), "/repo", opts)
	require.NoError(t, err)

	content, err := fsys.ReadFile("/repo/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(content))
	assert.Zero(t, report.Count(types.ActionSkipExisting))
}

func TestWriteDryRun(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	require.NoError(t, fsys.WriteFile("/repo/a.txt", []byte("edited"), 0644))

	opts := types.DefaultWriteOptions()
	opts.DryRun = true
	report, err := treewriter.Write(fsys, sampleTree(), "/repo", opts)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, []types.WriteAction{
		{Kind: types.ActionSkipExisting, Path: "/repo/a.txt"},
		{Kind: types.ActionCreateDir, Path: "/repo/sub"},
		{Kind: types.ActionWriteFile, Path: "/repo/sub/b.txt"},
		{Kind: types.ActionCreateDir, Path: "/repo/sub/empty"},
	}, report.Actions)

	entries, err := fsys.ReadDir("/repo")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "dry run must not create anything")
}

func TestWriteIOErrorCarriesPath(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/repo", 0755))
	fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(base))

	report, err := treewriter.Write(fsys, sampleTree(), "/repo", types.DefaultWriteOptions())
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Equal(t, "/repo/a.txt", errors.GetErrorDetails(err)["path"])
	assert.Equal(t, []string{"/repo/a.txt"}, report.Paths(types.ActionWriteFile))
}

func TestWriteUnknownNode(t *testing.T) {
	fsys := filesystem.NewMemory()
	tree := types.NewDirectory().Add("odd", unknownNode{})

	_, err := treewriter.Write(fsys, tree, "/repo", types.DefaultWriteOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}
