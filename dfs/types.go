// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, depth limiting and child
// filtering.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// Visitation states used by Validate.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current path.
	Black        // Black: the node and all its descendants are done.
)

var (
	// ErrNilRoot is returned when a nil root is passed to DFS or Validate.
	ErrNilRoot = errors.New("dfs: root is nil")

	// ErrOptionViolation is returned for an invalid MaxDepth or Order.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrCycleDetected indicates that a node is its own descendant.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrSharedNode indicates that a node hangs under more than one parent.
	ErrSharedNode = errors.New("dfs: node shared by two parents")
)

// Order selects when a node is recorded relative to its children.
type Order uint8

const (
	// PreOrder records a node before its children.
	PreOrder Order = iota
	// InOrder records a node between its left and right subtrees.
	InOrder
	// PostOrder records a node after its children.
	PostOrder
)

// String returns "pre", "in" or "post".
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{PreOrder, InOrder, PostOrder} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: order %q", ErrOptionViolation, s)
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(root, opts...).
type Option[T any] func(*Options[T])

// Options holds configurable parameters for DFS traversal.
type Options[T any] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Order selects the recording order; defaults to PreOrder.
	Order Order

	// OnVisit, if non-nil, is invoked when a node is first reached.
	// Returning an error aborts traversal with that error.
	OnVisit func(n *core.Node[T], depth int) error

	// OnExit, if non-nil, is invoked after both subtrees of a node are done.
	// Returning an error aborts traversal with that error.
	OnExit func(n *core.Node[T], depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth below
	// root. A depth of 0 visits only root. Default is -1 (no limit).
	MaxDepth int

	// FilterChild, if non-nil, is called before descending into a child.
	// Return false to skip the child and its subtree.
	FilterChild func(parent, child *core.Node[T]) bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - PreOrder
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No child filtering
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Ctx:      context.Background(),
		Order:    PreOrder,
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects pre-, in- or post-order recording.
func WithOrder[T any](order Order) Option[T] {
	return func(o *Options[T]) {
		o.Order = order
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[T any](fn func(n *core.Node[T], depth int) error) Option[T] {
	return func(o *Options[T]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[T any](fn func(n *core.Node[T], depth int) error) Option[T] {
	return func(o *Options[T]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit. A limit of 0 visits only root.
func WithMaxDepth[T any](limit int) Option[T] {
	return func(o *Options[T]) {
		o.MaxDepth = limit
	}
}

// WithFilterChild skips every child for which fn returns false; skipped
// children are counted in Result.SkippedChildren.
func WithFilterChild[T any](fn func(parent, child *core.Node[T]) bool) Option[T] {
	return func(o *Options[T]) {
		o.FilterChild = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[T any] struct {
	// Order records nodes in the selected order.
	Order []*core.Node[T]

	// Depth maps each visited node to its distance (#edges) from root.
	Depth map[*core.Node[T]]int

	// SkippedChildren reports how many children FilterChild rejected.
	SkippedChildren int
}

// Values returns the payloads of Order.
func (r *Result[T]) Values() []T {
	out := make([]T, len(r.Order))
	for i, n := range r.Order {
		out[i] = n.Value()
	}
	return out
}
