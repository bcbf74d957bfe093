// Package dfs implements depth-first traversal and structural checks on
// core.Node trees.
//
// What:
//
//   - DFS(root, opts...): recursive depth-first traversal recording nodes in
//     pre-order, in-order or post-order. Supports:
//   - Pre- and post-order hooks (OnVisit, OnExit)
//   - Cancellation via context.Context
//   - Depth limiting relative to root
//   - Child filtering
//   - Validate(root): checks that every node is reachable along exactly one
//     path. Attaching never validates, so a node attached below itself
//     yields a cycle and a node attached under two parents is shared.
//     Walk never terminates on a cycle and visits a shared subtree twice.
//
// Why:
//   - Sorted output for search trees (in-order)
//   - Bottom-up aggregation (post-order)
//   - Guarding walks over trees assembled by hand
//
// Key Types & Constants:
//
//   - Order: PreOrder, InOrder, PostOrder
//   - White, Gray, Black: visitation markers used by Validate
//   - Option[T]: functional options for DFS behaviour
//   - Options[T]: holds Context, Order, hooks, MaxDepth, FilterChild
//   - Result[T]: Order, Depth and SkippedChildren
//
// Complexity:
//
//   - DFS:      Time O(N), Memory O(H) recursion plus O(N) result maps
//   - Validate: Time O(N), Memory O(N)
//
// Errors:
//
//   - ErrNilRoot          root is nil
//   - ErrOptionViolation  MaxDepth < -1 or unknown Order
//   - ErrCycleDetected    a node is reachable from itself
//   - ErrSharedNode       a node is reachable from two parents
//   - context.Canceled    DFS canceled via context
//   - hook errors         propagated from OnVisit or OnExit
//
// Left children are explored before right children.
package dfs
