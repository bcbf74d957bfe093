// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_chain.go: Chain constructor (degenerate, list-shaped trees).

package builder

import (
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// Chain returns a Constructor for a spine of n nodes where each node hangs
// off its parent's dir slot. The deepest node sits at depth n-1.
//
// Contract:
//   - MinNodes ≤ n ≤ MaxChainNodes.
//   - dir is core.Left or core.Right.
//
// Complexity: O(n).
func Chain(n int, dir core.Direction) Constructor {
	return func(cfg builderConfig) (*core.Node[int], error) {
		if n < MinNodes {
			return nil, fmt.Errorf("%s: n=%d < %d: %w", MethodChain, n, MinNodes, ErrTooFewNodes)
		}
		if n > MaxChainNodes {
			return nil, fmt.Errorf("%s: n=%d > %d: %w", MethodChain, n, MaxChainNodes, ErrTooManyNodes)
		}
		if dir != core.Left && dir != core.Right {
			return nil, fmt.Errorf("%s: dir=%s: %w", MethodChain, dir, ErrInvalidDirection)
		}

		root := core.NewNode(cfg.value(0))
		tail := root
		for i := 1; i < n; i++ {
			next := core.NewNode(cfg.value(i))
			if dir == core.Left {
				tail.AttachLeft(next)
			} else {
				tail.AttachRight(next)
			}
			tail = next
		}
		return root, nil
	}
}
