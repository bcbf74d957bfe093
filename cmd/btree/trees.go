package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/codec"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/internal/logger"
	"github.com/katalvlaran/bintree/internal/store"
)

// errEmptyTree is returned when a tree file holds no nodes.
var errEmptyTree = errors.New("tree file is empty")

// loadTree reads the configured tree file.
func (a *app) loadTree() (*core.Node[int], error) {
	ok, err := a.store.Exists(a.cfg.File)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Errorf("%s: no such tree file", a.cfg.File)
	}
	tree, err := store.Load(a.store, a.cfg.File, codec.ParseInt)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, errors.WithMessage(errEmptyTree, a.cfg.File)
	}
	logger.Info("tree loaded", "file", a.cfg.File, "nodes", tree.Count())
	return tree, nil
}

// builderOptions seeds value generation from the configuration.
func (a *app) builderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithSeed(a.cfg.Seed)}
}

// printTree writes tree in pretty form honouring the configured depth ceiling.
func (a *app) printTree(w io.Writer, tree *core.Node[int]) error {
	return codec.Serialize(w, tree, codec.WithPretty(), codec.WithSkipDeep(a.cfg.SkipDeep))
}

// formatRatio prints a ratio the way the console report expects.
func formatRatio(r float64) string {
	return fmt.Sprintf("%g", r)
}
