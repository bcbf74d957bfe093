// Package builder provides value distributions for tree constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueFn produces the payload for the node placed at index (0-based,
// placement order) given an optional *rand.Rand source. It must be
// deterministic for a given RNG seed.
type ValueFn func(rng *rand.Rand, index int) int

// DefaultValueFn draws from [0, DefaultValueRange) when rng is set and
// falls back to the index otherwise.
// Complexity: O(1). Never panics.
func DefaultValueFn(rng *rand.Rand, index int) int {
	if rng == nil {
		return index
	}
	return rng.Intn(DefaultValueRange)
}

// IndexValueFn returns the placement index, ignoring rng.
func IndexValueFn(_ *rand.Rand, index int) int {
	return index
}

// ConstantValueFn returns a ValueFn that always yields value.
func ConstantValueFn(value int) ValueFn {
	return func(*rand.Rand, int) int {
		return value
	}
}

// UniformValueFn returns a ValueFn sampling uniformly in [low, high].
// Panics if high < low. With a nil rng it yields low. The full int range
// is supported.
// Complexity: O(1).
func UniformValueFn(low, high int) ValueFn {
	if high < low {
		panic(fmt.Sprintf("UniformValueFn: require low ≤ high, got low=%d, high=%d", low, high))
	}
	span := uint64(high) - uint64(low)
	return func(rng *rand.Rand, _ int) int {
		if rng == nil || span == 0 {
			return low
		}
		if span < math.MaxInt {
			return low + rng.Intn(int(span+1))
		}
		// Width does not fit in int: reject draws above span.
		for {
			if off := rng.Uint64(); span == math.MaxUint64 || off <= span {
				return int(uint64(low) + off)
			}
		}
	}
}
