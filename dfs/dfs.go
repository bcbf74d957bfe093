package dfs

import (
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// walker encapsulates state during DFS.
type walker[T any] struct {
	opts Options[T] // traversal options
	res  *Result[T] // result collector
}

// DFS performs depth-first traversal of the tree rooted at root.
// Returns Result or an error if aborted by context or hook; on abort the
// partial Result is returned alongside the error.
//
// DFS does not guard against cycles; run Validate first on trees that were
// assembled by hand.
func DFS[T any](root *core.Node[T], opts ...Option[T]) (*Result[T], error) {
	// 1. Validate input
	if root == nil {
		return nil, ErrNilRoot
	}

	// 2. Apply options
	o := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxDepth < -1 {
		return nil, fmt.Errorf("%w: MaxDepth=%d", ErrOptionViolation, o.MaxDepth)
	}
	if o.Order > PostOrder {
		return nil, fmt.Errorf("%w: %s", ErrOptionViolation, o.Order)
	}

	// 3. Traverse
	w := &walker[T]{
		opts: o,
		res:  &Result[T]{Depth: make(map[*core.Node[T]]int)},
	}
	if err := w.traverse(root, 0); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// traverse visits n at depth, then its left and right subtrees.
func (w *walker[T]) traverse(n *core.Node[T], depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark and pre-order hook
	w.res.Depth[n] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", n.Value(), err)
		}
	}
	if w.opts.Order == PreOrder {
		w.record(n)
	}

	// 3. Left subtree
	if err := w.descend(n, n.Left(), depth); err != nil {
		return err
	}
	if w.opts.Order == InOrder {
		w.record(n)
	}

	// 4. Right subtree
	if err := w.descend(n, n.Right(), depth); err != nil {
		return err
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n, depth); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", n.Value(), err)
		}
	}
	if w.opts.Order == PostOrder {
		w.record(n)
	}
	return nil
}

// descend recurses into child unless it is absent, filtered or too deep.
func (w *walker[T]) descend(parent, child *core.Node[T], depth int) error {
	if child == nil {
		return nil
	}
	if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
		return nil
	}
	if w.opts.FilterChild != nil && !w.opts.FilterChild(parent, child) {
		w.res.SkippedChildren++
		return nil
	}
	return w.traverse(child, depth+1)
}

func (w *walker[T]) record(n *core.Node[T]) {
	w.res.Order = append(w.res.Order, n)
}
