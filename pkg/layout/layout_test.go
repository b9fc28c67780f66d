package layout_test

import (
	"testing"

	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/arthur-debert/cs01/pkg/layout"
	"github.com/arthur-debert/cs01/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileAt(t *testing.T, root types.Node, segments ...string) types.File {
	t.Helper()
	node, ok := types.Lookup(root, segments...)
	require.True(t, ok, "missing %v", segments)
	file, ok := node.(types.File)
	require.True(t, ok, "%v is not a file", segments)
	return file
}

func dirAt(t *testing.T, root types.Node, segments ...string) types.Directory {
	t.Helper()
	node, ok := types.Lookup(root, segments...)
	require.True(t, ok, "missing %v", segments)
	dir, ok := node.(types.Directory)
	require.True(t, ok, "%v is not a directory", segments)
	return dir
}

func TestBuildStandard(t *testing.T) {
	tree, err := layout.Build(false, "main")
	require.NoError(t, err)

	root := dirAt(t, tree)
	assert.Equal(t, []string{types.MetadataDirName}, root.Names())

	meta := dirAt(t, tree, types.MetadataDirName)
	assert.Equal(t,
		[]string{"HEAD", "config", "description", "hooks", "info", "objects", "refs"},
		meta.Names())

	assert.Equal(t, "ref: refs/heads/main\n", fileAt(t, meta, "HEAD").Content)
	assert.Equal(t, "ref: refs/heads/main", fileAt(t, meta, "refs", "heads", "main").Content)
	assert.Equal(t, layout.Description, fileAt(t, meta, "description").Content)
	assert.Contains(t, fileAt(t, meta, "info", "exclude").Content, "# Lines that start with '#' are comments.")

	config := fileAt(t, meta, "config").Content
	assert.Contains(t, config, "[core]\n")
	assert.Contains(t, config, "  bare = false\n")

	assert.Empty(t, dirAt(t, meta, "objects", "info").Children)
	assert.Empty(t, dirAt(t, meta, "objects", "pack").Children)
	assert.Empty(t, dirAt(t, meta, "refs", "tags").Children)
}

func TestBuildBare(t *testing.T) {
	tree, err := layout.Build(true, "main")
	require.NoError(t, err)

	_, wrapped := types.Lookup(tree, types.MetadataDirName)
	assert.False(t, wrapped)

	assert.Equal(t, "ref: refs/heads/main\n", fileAt(t, tree, "HEAD").Content)
	assert.Contains(t, fileAt(t, tree, "config").Content, "  bare = true\n")
}

func TestBuildHooks(t *testing.T) {
	tree, err := layout.Build(true, "main")
	require.NoError(t, err)

	hooks := dirAt(t, tree, "hooks")
	assert.Len(t, hooks.Children, 14)
	for _, name := range layout.SampleHooks {
		assert.Empty(t, fileAt(t, hooks, name+".sample").Content)
	}
}

func TestBuildBranchNames(t *testing.T) {
	tests := []struct {
		branch string
		path   []string
	}{
		{"main", []string{"refs", "heads", "main"}},
		{"develop", []string{"refs", "heads", "develop"}},
		{"feature/login", []string{"refs", "heads", "feature", "login"}},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			tree, err := layout.Build(true, tt.branch)
			require.NoError(t, err)

			assert.Equal(t, "ref: refs/heads/"+tt.branch+"\n", fileAt(t, tree, "HEAD").Content)
			assert.Equal(t, "ref: refs/heads/"+tt.branch, fileAt(t, tree, tt.path...).Content)
		})
	}
}

func TestBuildIsFresh(t *testing.T) {
	first, err := layout.Build(false, "main")
	require.NoError(t, err)
	second, err := layout.Build(false, "main")
	require.NoError(t, err)

	dirAt(t, first, types.MetadataDirName).Add("extra", types.File{})
	_, found := types.Lookup(second, types.MetadataDirName, "extra")
	assert.False(t, found)
}

func TestValidateBranchName(t *testing.T) {
	valid := []string{"main", "develop", "feature/login", "release-1.0", "a_b"}
	for _, name := range valid {
		assert.NoError(t, layout.ValidateBranchName(name), name)
	}

	invalid := []string{
		"", "@", "/main", "main/", "a..b", "a//b", ".hidden", "x/.y",
		"topic.lock", "ends.", "with space", "a~b", "a^b", "a:b", "a?b",
		"a*b", "a[b", "a\\b", "a@{b", "tab\tname",
	}
	for _, name := range invalid {
		err := layout.ValidateBranchName(name)
		require.Error(t, err, name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), name)
	}
}
