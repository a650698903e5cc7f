package xref

import "slices"

// Tree is the one-level sub-issue hierarchy of the open issues.
type Tree struct {
	Parent   map[int]int   // child → parent
	Children map[int][]int // parent → children, ascending
}

// NewTree inverts a child → parent mapping. Self-references are dropped.
func NewTree(parents map[int]int) Tree {
	t := Tree{
		Parent:   make(map[int]int, len(parents)),
		Children: make(map[int][]int),
	}
	for child, parent := range parents {
		if child == parent {
			continue
		}
		t.Parent[child] = parent
		t.Children[parent] = append(t.Children[parent], child)
	}
	for _, kids := range t.Children {
		slices.Sort(kids)
	}
	return t
}

// HasChildren reports whether n is the parent of any issue.
func (t Tree) HasChildren(n int) bool {
	return len(t.Children[n]) > 0
}
