// Package layout builds the in-memory tree of a freshly initialized
// repository. Nothing here touches the filesystem.
package layout

import (
	"strings"

	"github.com/arthur-debert/cs01/pkg/repoconfig"
	"github.com/arthur-debert/cs01/pkg/types"
)

// Description is the placeholder written to the description file.
const Description = "Unnamed repository; edit this file 'description' to name the repository.\n"

// Exclude is the boilerplate written to info/exclude.
const Exclude = "# cs01 ls-files --others --exclude-from=" + types.MetadataDirName + "/info/exclude\n" +
	"# Lines that start with '#' are comments.\n" +
	"# For a project mostly in C, the following would be a good set of\n" +
	"# exclude patterns (uncomment them if you want to use them):\n" +
	"# *.[oa]\n" +
	"# *~\n"

// SampleHooks lists the hook names created as empty "<name>.sample" files.
var SampleHooks = []string{
	"applypatch-msg",
	"commit-msg",
	"fsmonitor-watchman",
	"post-update",
	"pre-applypatch",
	"pre-commit",
	"pre-merge-commit",
	"prepare-commit-msg",
	"pre-push",
	"pre-rebase",
	"pre-receive",
	"push-to-checkout",
	"sendemail-validate",
	"update",
}

// HeadContent returns the HEAD file content for a branch.
func HeadContent(branch string) string {
	return BranchRef(branch) + "\n"
}

// BranchRef returns the symbolic reference to a branch, without newline.
func BranchRef(branch string) string {
	return "ref: refs/heads/" + branch
}

// Build returns the repository tree. For a bare repository the metadata
// entries sit at the root; otherwise they are wrapped in the metadata folder.
// The only failure is a config serialization error.
func Build(bare bool, branch string) (types.Node, error) {
	config, err := repoconfig.Serialize(repoconfig.CoreConfig(bare))
	if err != nil {
		return nil, err
	}

	hooks := types.NewDirectory()
	for _, name := range SampleHooks {
		hooks.Add(name+".sample", types.File{})
	}

	objects := types.NewDirectory().
		Add("info", types.NewDirectory()).
		Add("pack", types.NewDirectory())

	refs := types.NewDirectory().
		Add("heads", branchTree(branch)).
		Add("tags", types.NewDirectory())

	meta := types.NewDirectory().
		Add("HEAD", types.File{Content: HeadContent(branch)}).
		Add(types.ConfigFileName, types.File{Content: config}).
		Add("description", types.File{Content: Description}).
		Add("hooks", hooks).
		Add("info", types.NewDirectory().Add("exclude", types.File{Content: Exclude})).
		Add("objects", objects).
		Add("refs", refs)

	if bare {
		return meta, nil
	}
	return types.NewDirectory().Add(types.MetadataDirName, meta), nil
}

// branchTree nests "feature/x" as heads/feature/x.
func branchTree(branch string) types.Directory {
	parts := strings.Split(branch, "/")
	var node types.Node = types.File{Content: BranchRef(branch)}
	for i := len(parts) - 1; i > 0; i-- {
		node = types.NewDirectory().Add(parts[i], node)
	}
	return types.NewDirectory().Add(parts[0], node)
}
