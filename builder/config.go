// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil             (pure/deterministic unless seeded)
//   • valueFn = DefaultValueFn  (index when unseeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Payload generator.
	valueFn ValueFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		valueFn: DefaultValueFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// value draws the payload for the node at index.
func (c builderConfig) value(index int) int {
	return c.valueFn(c.rng, index)
}
