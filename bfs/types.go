// Package bfs provides options, errors and the result type for tree search.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/bintree/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilRoot is returned if a nil start node is passed.
	ErrNilRoot = errors.New("bfs: root is nil")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Options holds parameters and callbacks to customize BFS execution.
type Options[T any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// ExcludeRoot seeds the queue with the start node's children instead of
	// the start node itself.
	ExcludeRoot bool

	// MaxDepth, if > 0, stops exploring beyond this many levels below the
	// start node. 0 disables the limit.
	MaxDepth int

	// FilterChild can skip a child (and its whole subtree) by returning false.
	FilterChild func(parent, child *core.Node[T]) bool

	// OnEnqueue is called when a node is queued, with its level.
	OnEnqueue func(n *core.Node[T], level int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n *core.Node[T], level int)

	// OnVisit is called when visiting a node. A non-nil error aborts the
	// search and is returned wrapped.
	OnVisit func(n *core.Node[T], level int) error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - start node included, no depth limit
//   - no filtering, no-op hooks
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Ctx:         context.Background(),
		ExcludeRoot: false,
		MaxDepth:    0,
		FilterChild: func(_, _ *core.Node[T]) bool { return true },
		OnEnqueue:   func(*core.Node[T], int) {},
		OnDequeue:   func(*core.Node[T], int) {},
		OnVisit:     func(*core.Node[T], int) error { return nil },
	}
}

// normalize fills unset fields with defaults.
func (o *Options[T]) normalize() {
	d := DefaultOptions[T]()
	if o.Ctx == nil {
		o.Ctx = d.Ctx
	}
	if o.FilterChild == nil {
		o.FilterChild = d.FilterChild
	}
	if o.OnEnqueue == nil {
		o.OnEnqueue = d.OnEnqueue
	}
	if o.OnDequeue == nil {
		o.OnDequeue = d.OnDequeue
	}
	if o.OnVisit == nil {
		o.OnVisit = d.OnVisit
	}
}

// Result holds the outcome of a search:
//   - Order: nodes visited, in visit sequence.
//   - Level: distance in edges from the start node.
//   - Start: the node the search began at.
type Result[T any] struct {
	Order []*core.Node[T]
	Level map[*core.Node[T]]int
	Start *core.Node[T]
}

// Values returns the payloads of Order.
func (r *Result[T]) Values() []T {
	out := make([]T, len(r.Order))
	for i, n := range r.Order {
		out[i] = n.Value()
	}
	return out
}

// Stale returns, in visit order, the nodes whose stored depth differs from
// Start.Depth() plus their level.
func (r *Result[T]) Stale() []*core.Node[T] {
	var stale []*core.Node[T]
	base := int(r.Start.Depth())
	for _, n := range r.Order {
		if int(n.Depth()) != base+r.Level[n] {
			stale = append(stale, n)
		}
	}
	return stale
}

// Levels groups Order by level; index i holds the nodes at level i.
func (r *Result[T]) Levels() [][]*core.Node[T] {
	var levels [][]*core.Node[T]
	for _, n := range r.Order {
		l := r.Level[n]
		for len(levels) <= l {
			levels = append(levels, nil)
		}
		levels[l] = append(levels[l], n)
	}
	return levels
}
