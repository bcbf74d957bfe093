// Package core defines the generic binary tree Node and the primitives every
// other package in bintree is layered on: child attachment, breadth-first
// walking and slot population.
//
// A Node doubles as a tree handle: the root is simply a node whose
// Direction is Root. There is no separate Tree type.
//
// What
//
//   - Node[T]: value, depth (uint16), direction (Root/Left/Right) and up to
//     two exclusively owned children.
//   - AttachLeft / AttachRight: replace a child slot and stamp the child's
//     depth (parent depth + 1) and direction.
//   - Walk: iterative breadth-first traversal with a global early-stop signal.
//   - Destroy, ByteSize, Count: whole-subtree operations built on Walk.
//   - Slot and Populator: pending child positions used to grow a tree level
//     by level (generation and deserialization).
//
// Depth bookkeeping
//
//	Depth is written only at attach time. Attaching a subtree that was
//	already deep (or shallow) re-stamps the attached node alone; its
//	descendants keep the depths they had before. Only trees grown top-down
//	through direct attaches (or through a Populator) carry exact depths.
//
// Walk order
//
//	Walk(fn, true) seeds the queue with the receiver.
//	Walk(fn, false) seeds the queue with the receiver's children, LEFT first.
//	Every dequeued node enqueues its children RIGHT first, then LEFT, and is
//	then handed to fn. The two orders differ; both are part of the contract,
//	since the text format (package codec) and the Populator rely on the
//	right-first expansion matching on both the write and read paths.
//
//	Returning true from fn ends the whole walk. There is no way to skip a
//	single subtree; see package bfs for filtered traversal.
//
// Concurrency
//
//	None. Nodes carry no locks; a mutation racing with any walk is undefined.
//
// Complexity (N = nodes reachable from the receiver)
//
//   - Attach*, accessors: O(1)
//   - Walk, Destroy, ByteSize, Count: O(N) time, O(N) queue memory
//
// Usage
//
//	root := core.NewNode(5)
//	root.AttachLeft(core.NewNode(3))
//	root.AttachRight(core.NewNode(8))
//
//	root.Walk(func(n *core.Node[int]) bool {
//		fmt.Println(n.Depth(), n.Value())
//		return false // keep going
//	}, true)
package core
