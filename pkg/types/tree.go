package types

import "sort"

// Node is a node of an in-memory file tree. It is a closed sum type: the only
// implementations are File and Directory, and consumers handle both with a
// type switch.
type Node interface {
	isNode()
}

// File is a leaf node holding the full content of a file.
type File struct {
	Content string
}

// Directory is an inner node. Keys of Children are single path segments.
type Directory struct {
	Children map[string]Node
}

func (File) isNode()      {}
func (Directory) isNode() {}

// NewDirectory returns an empty directory node.
func NewDirectory() Directory {
	return Directory{Children: make(map[string]Node)}
}

// Add sets the child called name and returns the directory for chaining.
func (d Directory) Add(name string, node Node) Directory {
	d.Children[name] = node
	return d
}

// Names returns the child names in lexical order.
func (d Directory) Names() []string {
	names := make([]string, 0, len(d.Children))
	for name := range d.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup walks the tree along segments and returns the node found there.
func Lookup(root Node, segments ...string) (Node, bool) {
	current := root
	for _, segment := range segments {
		dir, ok := current.(Directory)
		if !ok {
			return nil, false
		}
		child, ok := dir.Children[segment]
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}
