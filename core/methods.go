// Package core: structural operations on Node.
//
// Attach* are the only operations that write depth and direction. They do
// not validate the child (nil clears the slot, ancestors are not detected)
// and they never touch the child's own descendants.

package core

// AttachLeft places child in the left slot, stamping child's depth to
// n.Depth()+1 and its direction to Left. A previous left child is dropped
// from the slot but left intact. A nil child empties the slot.
// Complexity: O(1).
func (n *Node[T]) AttachLeft(child *Node[T]) {
	n.left = child
	if child == nil {
		return
	}
	child.depth = n.depth + 1
	child.direction = Left
}

// AttachRight places child in the right slot, stamping child's depth to
// n.Depth()+1 and its direction to Right. A previous right child is dropped
// from the slot but left intact. A nil child empties the slot.
// Complexity: O(1).
func (n *Node[T]) AttachRight(child *Node[T]) {
	n.right = child
	if child == nil {
		return
	}
	child.depth = n.depth + 1
	child.direction = Right
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// LeftSlot returns the (possibly empty) left child position of n.
func (n *Node[T]) LeftSlot() Slot[T] {
	return Slot[T]{parent: n, direction: Left}
}

// RightSlot returns the (possibly empty) right child position of n.
func (n *Node[T]) RightSlot() Slot[T] {
	return Slot[T]{parent: n, direction: Right}
}

// Value returns the payload.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the payload.
func (n *Node[T]) SetValue(value T) { n.value = value }

// Depth returns the depth stamped at attach time (0 for a root).
func (n *Node[T]) Depth() uint16 { return n.depth }

// Direction returns the side of its parent n was attached to.
func (n *Node[T]) Direction() Direction { return n.direction }

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool { return n.left == nil && n.right == nil }
