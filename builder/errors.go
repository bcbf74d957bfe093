// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, depth) is smaller than
// the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrTooManyNodes indicates that a size parameter would exceed what a
// uint16 depth can describe, or MaxNodes.
var ErrTooManyNodes = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDirection indicates a Chain direction other than Left or Right.
var ErrInvalidDirection = errors.New("builder: direction must be LEFT or RIGHT")

// ErrConstructFailed indicates that construction could not complete, e.g.
// a nil constructor was passed to BuildTree.
var ErrConstructFailed = errors.New("builder: construction failed")
