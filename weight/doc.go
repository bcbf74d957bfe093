// Package weight computes depth-weighted ratios over a core.Node tree.
//
// What
//
//   - Sum(n): Σ depth(x)·value(x) over n and every descendant x.
//   - SumChildrenRatio(n): Sum(n) divided by the number of descendants of n
//     (n itself excluded from the count), clamped to at least 1. A leaf's
//     ratio is therefore depth·value.
//   - MinMaxSumChildrenRatio(tree, ext): the nodes with the smallest and the
//     largest ratio, root included.
//
// Depths are the values stamped at attach time (see core); stale depths
// are used as-is.
//
// Bounds contract
//
//	MinMaxSumChildrenRatio only ever lowers ext.MinVal and raises ext.MaxVal,
//	using strict comparisons. It never initialises them. Seed them with
//	NewExtremes (±Inf) or with caller-chosen bounds; with a bound that no
//	ratio beats, the matching node stays nil.
//
// Complexity (N = nodes)
//
//   - Sum, SumChildrenRatio: O(N)
//   - MinMaxSumChildrenRatio: O(N²), one sub-walk per node
package weight
