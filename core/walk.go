package core

import "unsafe"

// WalkFunc is invoked for every visited node. Returning true stops the walk
// immediately; the remaining queue is discarded.
type WalkFunc[T any] func(n *Node[T]) (stop bool)

// Walk visits nodes breadth-first using an explicit FIFO queue.
//
// With includeSelf the queue is seeded with n; otherwise it is seeded with
// n's children, left before right. Each dequeued node enqueues its own
// children right before left and is then passed to fn.
// Complexity: O(N) time, O(N) memory for the queue.
func (n *Node[T]) Walk(fn WalkFunc[T], includeSelf bool) {
	queue := make([]*Node[T], 0, 2)
	if includeSelf {
		queue = append(queue, n)
	} else {
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if cur.right != nil {
			queue = append(queue, cur.right)
		}
		if cur.left != nil {
			queue = append(queue, cur.left)
		}

		if fn(cur) {
			return
		}
	}
}

// WalkAll is Walk with includeSelf set.
func (n *Node[T]) WalkAll(fn WalkFunc[T]) { n.Walk(fn, true) }

// Destroy tears down every descendant of n in walk order, cutting each
// visited node loose from its children, and finally empties n's own slots.
// n itself keeps its value, depth and direction.
// Complexity: O(N).
func (n *Node[T]) Destroy() {
	n.Walk(func(d *Node[T]) bool {
		// children are already queued at this point
		d.left, d.right = nil, nil
		return false
	}, false)
	n.left, n.right = nil, nil
}

// ByteSize returns the fixed in-memory footprint of n and all of its
// descendants: one Node[T] header per node. Memory referenced by the payload
// (strings, slices, pointers) is not followed.
// Complexity: O(N).
func (n *Node[T]) ByteSize() uintptr {
	var size uintptr
	n.Walk(func(d *Node[T]) bool {
		size += unsafe.Sizeof(*d)
		return false
	}, true)
	return size
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n *Node[T]) Count() int {
	count := 0
	n.Walk(func(*Node[T]) bool {
		count++
		return false
	}, true)
	return count
}
