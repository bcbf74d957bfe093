// Package bfs provides breadth-first search over a core.Node tree,
// returning visit order and true levels.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// queueItem pairs a node with its level below the start node.
type queueItem[T any] struct {
	node  *core.Node[T]
	level int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	opts  Options[T]
	ctx   context.Context
	queue []queueItem[T]
	res   *Result[T]
}

// BFS runs breadth-first search from root. A nil opts means DefaultOptions.
// Returns ErrNilRoot for a nil root, ErrOptionViolation for bad options,
// the context error on cancellation, or a wrapped OnVisit error.
func BFS[T any](root *core.Node[T], opts *Options[T]) (*Result[T], error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	o := DefaultOptions[T]()
	if opts != nil {
		o = *opts
		o.normalize()
	}
	if o.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, o.MaxDepth)
	}

	w := &walker[T]{
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[T], 0, 2),
		res: &Result[T]{
			Order: make([]*core.Node[T], 0),
			Level: make(map[*core.Node[T]]int),
			Start: root,
		},
	}

	// Seed: the root itself, or its children left before right
	if !o.ExcludeRoot {
		w.enqueue(root, 0)
	} else {
		w.offer(root, root.Left(), 1)
		w.offer(root, root.Right(), 1)
	}

	return w.res, w.loop()
}

// enqueue records the node's level, calls OnEnqueue and queues it.
func (w *walker[T]) enqueue(n *core.Node[T], level int) {
	w.res.Level[n] = level
	w.opts.OnEnqueue(n, level)
	w.queue = append(w.queue, queueItem[T]{node: n, level: level})
}

// offer enqueues child unless it is absent, filtered out or past MaxDepth.
func (w *walker[T]) offer(parent, child *core.Node[T], level int) {
	if child == nil {
		return
	}
	if w.opts.MaxDepth > 0 && level > w.opts.MaxDepth {
		return
	}
	if !w.opts.FilterChild(parent, child) {
		return
	}
	w.enqueue(child, level)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		// right before left, as in core.Node.Walk
		w.offer(item.node, item.node.Right(), item.level+1)
		w.offer(item.node, item.node.Left(), item.level+1)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue[0] = queueItem[T]{}
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.level)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.level); err != nil {
		return fmt.Errorf("bfs: OnVisit error at level %d: %w", item.level, err)
	}
	return nil
}
