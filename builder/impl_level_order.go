// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_level_order.go: LevelOrder and Complete constructors.
//
// Both fill a core.Populator: each node occupies the front pending slot and
// queues its right slot before its left slot, so values land in walk order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// LevelOrder returns a Constructor that places n nodes, value i going to
// the i-th slot in level order (right child before left child).
//
// Contract:
//   - n ≥ MinNodes, n ≤ MaxNodes.
//
// Complexity: O(n) time and memory.
func LevelOrder(n int) Constructor {
	return func(cfg builderConfig) (*core.Node[int], error) {
		if n < MinNodes {
			return nil, fmt.Errorf("%s: n=%d < %d: %w", MethodLevelOrder, n, MinNodes, ErrTooFewNodes)
		}
		if n > MaxNodes {
			return nil, fmt.Errorf("%s: n=%d > %d: %w", MethodLevelOrder, n, MaxNodes, ErrTooManyNodes)
		}
		return fill(cfg, n), nil
	}
}

// Complete returns a Constructor for the perfect tree of the given depth:
// 2^(depth+1)-1 nodes, every leaf at depth.
//
// Contract:
//   - 0 ≤ depth ≤ MaxCompleteDepth.
func Complete(depth int) Constructor {
	return func(cfg builderConfig) (*core.Node[int], error) {
		if depth < 0 {
			return nil, fmt.Errorf("%s: depth=%d < 0: %w", MethodComplete, depth, ErrTooFewNodes)
		}
		if depth > MaxCompleteDepth {
			return nil, fmt.Errorf("%s: depth=%d > %d: %w", MethodComplete, depth, MaxCompleteDepth, ErrTooManyNodes)
		}
		return fill(cfg, 1<<(depth+1)-1), nil
	}
}

// fill places n values through a fresh Populator.
func fill(cfg builderConfig, n int) *core.Node[int] {
	p := core.NewPopulator[int]()
	for i := 0; i < n; i++ {
		p.Place(cfg.value(i))
	}
	return p.Root()
}
