package weight

import (
	"github.com/katalvlaran/bintree/core"
)

// weightOf is depth·value of a single node.
func weightOf[T Number](n *core.Node[T]) float64 {
	return float64(n.Depth()) * float64(n.Value())
}

// Sum returns Σ depth·value over n and all of its descendants.
func Sum[T Number](n *core.Node[T]) float64 {
	sum := 0.0
	n.WalkAll(func(x *core.Node[T]) bool {
		sum += weightOf(x)
		return false
	})
	return sum
}

// SumChildrenRatio returns Sum(n) divided by max(1, descendants of n).
// The numerator includes n, the denominator does not.
func SumChildrenRatio[T Number](n *core.Node[T]) float64 {
	children := 0
	sum := weightOf(n)
	n.Walk(func(x *core.Node[T]) bool {
		children++
		sum += weightOf(x)
		return false
	}, false)

	if children < 1 {
		children = 1
	}
	return sum / float64(children)
}

// MinMaxSumChildrenRatio walks every node of tree, root included, and
// records in ext the nodes whose SumChildrenRatio is strictly below
// ext.MinVal or strictly above ext.MaxVal. ext must be primed by the caller.
func MinMaxSumChildrenRatio[T Number](tree *core.Node[T], ext *Extremes[T]) {
	tree.WalkAll(func(n *core.Node[T]) bool {
		ratio := SumChildrenRatio(n)
		if ratio < ext.MinVal {
			ext.MinVal = ratio
			ext.MinNode = n
		}
		if ratio > ext.MaxVal {
			ext.MaxVal = ratio
			ext.MaxNode = n
		}
		return false
	})
}
