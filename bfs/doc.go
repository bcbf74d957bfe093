// Package bfs provides a configurable breadth-first search over a core.Node
// tree, returning the visit order and the true level of every visited node.
//
// What
//
//   - Same queue discipline as core.Node.Walk: seed with the start node (or
//     its children, left first, with ExcludeRoot), expand right before left.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Level: map from node → distance (edges) from the start node
//   - Supports hooks at three stages:
//   - OnEnqueue (when a node is queued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - FilterChild skips a single child subtree while the rest of the walk
//     continues; core.Node.Walk has no such mechanism.
//   - MaxDepth limits the walk to a number of levels below the start.
//
// Why
//
//	Node.Walk has exactly one control signal, a global stop. Search that needs
//	to prune individual subtrees, report errors or honour a context lives here
//	instead of overloading that signal.
//
// Stale depths
//
//	Node depths are stamped at attach time only. Result.Stale lists the nodes
//	whose stored depth disagrees with the level at which they were reached,
//	which happens after a subtree has been moved to a different parent.
//
// Complexity (N = nodes reached)
//
//   - Time:   O(N)
//   - Memory: O(N) for queue, Order and Level
//
// Usage
//
//	res, err := bfs.BFS(root, nil) // defaults
//
//	opts := bfs.DefaultOptions[int]()
//	opts.MaxDepth = 3
//	opts.FilterChild = func(parent, child *core.Node[int]) bool { return child.Value() >= 0 }
//	res, err = bfs.BFS(root, &opts)
//
// Errors
//
//   - ErrNilRoot          if the start node is nil.
//   - ErrOptionViolation  if MaxDepth is negative.
//   - ctx.Err()           if the context is cancelled mid-walk.
//   - Wrapped user-supplied OnVisit errors.
package bfs
