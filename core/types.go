// Package core declares Node, Direction and Slot.
package core

import (
	"errors"
	"fmt"
)

// ErrSlotFilled is returned by Slot.Fill when an output slot already holds a root.
var ErrSlotFilled = errors.New("core: output slot already filled")

// Direction records which side of its parent a node occupies.
// It is stored in a single byte.
type Direction uint8

const (
	// Root marks a node that has no parent (top of a tree or free-standing).
	Root Direction = iota

	// Left marks a node attached as its parent's left child.
	Left

	// Right marks a node attached as its parent's right child.
	Right
)

// String returns "ROOT", "LEFT", "RIGHT" or "Direction(n)".
func (d Direction) String() string {
	switch d {
	case Root:
		return "ROOT"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Node is a binary tree element and, at the top, the tree itself.
//
// The zero Node is a valid free-standing root holding the zero value of T.
// A Node exclusively owns its children; handing a child to a second parent
// does not clear the first parent's slot, which is the caller's concern.
type Node[T any] struct {
	value     T
	depth     uint16
	direction Direction

	right *Node[T]
	left  *Node[T]
}

// NewNode returns a free-standing root node holding value.
// Complexity: O(1).
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value, direction: Root}
}

// Slot names a child position that may be filled by a node created later.
//
// A Slot with a parent refers to that parent's Left or Right position.
// A Slot without a parent is an output slot: filling it records the node
// as the root of whatever is being grown and attaches nothing.
type Slot[T any] struct {
	parent    *Node[T]
	direction Direction

	// out receives the node placed into a parentless slot.
	out **Node[T]
}

// OutputSlot returns a parentless slot that stores the node it is filled
// with into *out.
func OutputSlot[T any](out **Node[T]) Slot[T] {
	return Slot[T]{direction: Root, out: out}
}

// Parent returns the node owning this slot, or nil for an output slot.
func (s Slot[T]) Parent() *Node[T] { return s.parent }

// Direction returns Left or Right for a child slot, Root for an output slot.
func (s Slot[T]) Direction() Direction { return s.direction }

// Fill places child into the slot. For a child slot this is exactly
// AttachLeft/AttachRight on the parent, so depth and direction are stamped.
// For an output slot the child is stored as-is; ErrSlotFilled is returned
// if the output already holds a node.
func (s Slot[T]) Fill(child *Node[T]) error {
	switch {
	case s.parent == nil:
		if s.out == nil {
			return nil
		}
		if *s.out != nil {
			return ErrSlotFilled
		}
		*s.out = child
	case s.direction == Left:
		s.parent.AttachLeft(child)
	case s.direction == Right:
		s.parent.AttachRight(child)
	}
	return nil
}
