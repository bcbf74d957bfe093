// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// api.go: public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildTree(opts, con). Resolves cfg, runs con.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed ⇒ identical trees.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// Constructor grows a tree from the resolved builderConfig. Constructors
// validate parameters early, return sentinel errors, and never panic.
type Constructor func(cfg builderConfig) (*core.Node[int], error)

// BuildTree resolves the builder configuration from opts and runs con.
// Constructor errors are wrapped with "BuildTree: %w".
func BuildTree(opts []BuilderOption, con Constructor) (*core.Node[int], error) {
	if con == nil {
		return nil, fmt.Errorf("BuildTree: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	root, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildTree: %w", err)
	}
	return root, nil
}
