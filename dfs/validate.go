// Package dfs checks tree structure with three-colour marking.
//
// A Gray node met again closes a cycle; a Black node met again is reachable
// from two parents. Either makes Node.Walk misbehave: it loops forever on a
// cycle and visits a shared subtree once per parent.
//
// Complexity:
//
//   - Time:   O(N)
//   - Memory: O(N) state map plus O(H) explicit stack
package dfs

import (
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// Violation describes the first structural fault found by Check.
type Violation[T any] struct {
	Parent *core.Node[T] // node whose child slot points back
	Node   *core.Node[T] // node reached a second time
	Err    error         // ErrCycleDetected or ErrSharedNode
}

// Error implements error.
func (v *Violation[T]) Error() string {
	return fmt.Sprintf("%v: %v -> %v (%s)", v.Err, v.Parent.Value(), v.Node.Value(), v.Node.Direction())
}

// Unwrap exposes the sentinel.
func (v *Violation[T]) Unwrap() error { return v.Err }

// Validate returns nil if every node under root is reachable along exactly
// one path, ErrNilRoot for a nil root, or a *Violation wrapping
// ErrCycleDetected or ErrSharedNode.
func Validate[T any](root *core.Node[T]) error {
	if root == nil {
		return ErrNilRoot
	}
	if v := Check(root); v != nil {
		return v
	}
	return nil
}

// frame is one entry of the explicit traversal stack.
type frame[T any] struct {
	n    *core.Node[T]
	next int // 0: left pending, 1: right pending, 2: done
}

// Check returns the first Violation in depth-first (left before right)
// order, or nil. Check uses an explicit stack so that very deep chains and
// cyclic inputs cannot exhaust the goroutine stack.
func Check[T any](root *core.Node[T]) *Violation[T] {
	if root == nil {
		return nil
	}
	state := map[*core.Node[T]]int{root: Gray}
	stack := []frame[T]{{n: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == 2 {
			state[top.n] = Black
			stack = stack[:len(stack)-1]
			continue
		}

		child := top.n.Left()
		if top.next == 1 {
			child = top.n.Right()
		}
		top.next++
		if child == nil {
			continue
		}

		switch state[child] {
		case Gray:
			return &Violation[T]{Parent: top.n, Node: child, Err: ErrCycleDetected}
		case Black:
			return &Violation[T]{Parent: top.n, Node: child, Err: ErrSharedNode}
		}
		state[child] = Gray
		stack = append(stack, frame[T]{n: child})
	}
	return nil
}
