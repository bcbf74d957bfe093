// Package bintree is a small toolkit for generic binary trees: a node type
// that is also the tree handle, breadth-first and depth-first traversal,
// weight-ratio analytics and a line-oriented text format.
//
// 🌳 What is in the box?
//
//	core/      Node[T], Slot[T] and Populator[T]: attach, walk, destroy, size
//	bfs/       hook-rich breadth-first search with level and stale-depth reports
//	dfs/       pre-, in- and post-order traversal plus cycle/shared-node checks
//	weight/    Σ depth·value ratios, min/max ratio subtree search
//	codec/     Serialize/Deserialize in the one-value-per-line text format
//	builder/   deterministic tree generators (level order, complete, sparse, chain)
//	cmd/btree  command-line driver: run, generate, print, ratio, levels, order, show
//
// ✨ Walk order
//
// Node.Walk is breadth-first with a twist: every dequeued node queues its
// RIGHT child before its LEFT child, while a walk that excludes the start
// node seeds the queue with the LEFT child first. Serialize, ByteSize and
// the ratio search all follow this order, and the Populator fills slots in
// the same order, so a tree grown by a Populator walks back in insertion
// order.
//
// Quick ASCII example (values placed 0..6 by a Populator):
//
//	      0
//	    /   \
//	   2     1
//	  / \   / \
//	 6   5 4   3
//
//	walk: 0 1 2 3 4 5 6
//
// The text format keeps values only. Deserialize rebuilds a complete tree
// from the line sequence, so sparse trees do not round-trip.
//
//	go install github.com/katalvlaran/bintree/cmd/btree@latest
package bintree
