// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_random_sparse.go: RandomSparse constructor.
//
// The root is always placed. Every further pending slot is filled with
// probability p and skipped otherwise, until n nodes exist or no slot is
// left. Skipped slots leave holes, which the text codec cannot round-trip.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// RandomSparse returns a Constructor for a sparse tree of at most n nodes.
//
// Contract:
//   - MinNodes ≤ n ≤ MaxNodes.
//   - 0 ≤ p ≤ 1. p == 0 yields a lone root; p == 1 equals LevelOrder(n).
//   - 0 < p < 1 requires WithSeed or WithRand (ErrNeedRandSource).
//
// Complexity: O(n) time and memory.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*core.Node[int], error) {
		if n < MinNodes {
			return nil, fmt.Errorf("%s: n=%d < %d: %w", MethodRandomSparse, n, MinNodes, ErrTooFewNodes)
		}
		if n > MaxNodes {
			return nil, fmt.Errorf("%s: n=%d > %d: %w", MethodRandomSparse, n, MaxNodes, ErrTooManyNodes)
		}
		if p < MinProbability || p > MaxProbability {
			return nil, fmt.Errorf("%s: p=%.4f: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if p > MinProbability && p < MaxProbability && cfg.rng == nil {
			return nil, fmt.Errorf("%s: 0<p<1: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		pop := core.NewPopulator[int]()
		pop.Place(cfg.value(0))
		for pop.Placed() < n && pop.Pending() > 0 {
			if keep(cfg, p) {
				pop.Place(cfg.value(pop.Placed()))
			} else {
				pop.Skip()
			}
		}
		return pop.Root(), nil
	}
}

// keep draws the fill decision for one slot.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}
	return cfg.rng.Float64() < p
}
