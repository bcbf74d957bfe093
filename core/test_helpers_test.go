// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"github.com/katalvlaran/bintree/core"
)

// Common payloads used across core tests (avoid magic numbers in test bodies).
const (
	Value3 = 3
	Value5 = 5
	Value8 = 8
	Value9 = 9
)

// smallTree builds the three-node fixture
//
//	  5
//	 / \
//	3   8
func smallTree() (root, left, right *core.Node[int]) {
	root = core.NewNode(Value5)
	left = core.NewNode(Value3)
	right = core.NewNode(Value8)
	root.AttachLeft(left)
	root.AttachRight(right)
	return root, left, right
}

// populated grows a complete tree from values 0..n-1 through a Populator.
func populated(n int) *core.Node[int] {
	p := core.NewPopulator[int]()
	for i := 0; i < n; i++ {
		p.Place(i)
	}
	return p.Root()
}

// collect returns the values visited by Walk in order.
func collect(n *core.Node[int], includeSelf bool) []int {
	var out []int
	n.Walk(func(v *core.Node[int]) bool {
		out = append(out, v.Value())
		return false
	}, includeSelf)
	return out
}
