// Package builder grows core.Node[int] trees for tests, benchmarks and the
// btree command, using "functional-options"-style configuration.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG and value function.
//   - Value distributions (ValueFn implementations):
//     – DefaultValueFn:  rng.Intn(DefaultValueRange) when seeded, the node
//     index otherwise.
//     – IndexValueFn:    the node index (placement order).
//     – ConstantValueFn: a fixed value.
//     – UniformValueFn:  uniform integers in [min, max].
//   - Constructors:
//     – LevelOrder(n):     n nodes filled level by level, right slot first.
//     – Complete(depth):   perfect tree with 2^(depth+1)-1 nodes.
//     – RandomSparse(n,p): each pending slot filled with probability p.
//     – Chain(n, dir):     single-direction spine of n nodes.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor ⇒ identical trees.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors for invalid build parameters, wrapped with the
//     constructor name.
//   - Every constructor grows its tree top-down, so stored depths are exact.
package builder
