package testutil_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cs01/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestListTree(t *testing.T) {
	root := testutil.TempDir(t, "list")
	testutil.CreateFile(t, root, "a/b.txt", "b")
	testutil.CreateDir(t, root, "c")

	assert.Equal(t, []string{"a/", "a/b.txt", "c/"}, testutil.ListTree(t, root))
}

func TestModTimes(t *testing.T) {
	root := testutil.TempDir(t, "mtimes")
	testutil.CreateFile(t, root, "x/y", "content")

	times := testutil.ModTimes(t, root)
	assert.Len(t, times, 1)
	assert.Contains(t, times, "x/y")
}

func TestExistenceChecks(t *testing.T) {
	root := testutil.TempDir(t, "exists")
	file := testutil.CreateFile(t, root, "f", "data")

	assert.True(t, testutil.FileExists(t, file))
	assert.False(t, testutil.DirExists(t, file))
	assert.True(t, testutil.DirExists(t, root))
	assert.False(t, testutil.FileExists(t, filepath.Join(root, "missing")))
	assert.Equal(t, "data", testutil.ReadFile(t, file))

	testutil.AssertFileExists(t, file)
	testutil.AssertDirExists(t, root)
	testutil.AssertNotExists(t, filepath.Join(root, "missing"))
}
