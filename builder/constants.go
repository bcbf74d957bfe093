// Package builder defines shared constants used by tree constructors.
package builder

import "math"

const (
	// MethodLevelOrder is the canonical name for the LevelOrder constructor.
	MethodLevelOrder = "LevelOrder"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
)

// DefaultValueRange is the exclusive upper bound of seeded default values.
const DefaultValueRange = 255

// MinNodes is the smallest tree any constructor builds.
const MinNodes = 1

// MaxNodes bounds a single constructor call.
const MaxNodes = 1 << 24

// MaxCompleteDepth is the deepest perfect tree Complete builds
// (2^24 - 1 nodes, within MaxNodes).
const MaxCompleteDepth = 23

// MaxChainNodes is the longest spine whose depths fit in a uint16.
const MaxChainNodes = math.MaxUint16 + 1

// MinProbability and MaxProbability bound RandomSparse's p, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
