package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/internal/logger"
	"github.com/katalvlaran/bintree/internal/store"
)

// Shapes accepted by `btree generate --shape`.
const (
	shapeLevel    = "level"
	shapeComplete = "complete"
	shapeSparse   = "sparse"
	shapeChain    = "chain"
)

type generateFlags struct {
	shape  string
	leaves int
	depth  int
	p      float64
	left   bool
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tree and save it to the tree file",
		Example: `btree generate --leaves 100
btree generate --shape complete --depth 4
btree generate --shape sparse --leaves 50 --p 0.7 --seed 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("leaves") && a.cfg.MaxLeaves > 0 {
				f.leaves = a.cfg.MaxLeaves
			}
			ctor, err := f.constructor()
			if err != nil {
				return err
			}
			tree, err := builder.BuildTree(a.builderOptions(), ctor)
			if err != nil {
				return err
			}
			if err = store.Save(a.store, a.cfg.File, tree); err != nil {
				return err
			}
			size, err := a.store.Size(a.cfg.File)
			if err != nil {
				return err
			}
			logger.Info("tree generated", "shape", f.shape, "nodes", tree.Count(), "file", a.cfg.File, "bytes", size)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d nodes (%d bytes) to %s\n", tree.Count(), size, a.cfg.File)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.shape, "shape", shapeLevel, "tree shape: level, complete, sparse or chain")
	fl.IntVarP(&f.leaves, "leaves", "n", 15, "node count for level, sparse and chain shapes")
	fl.IntVar(&f.depth, "depth", 3, "depth of a complete tree")
	fl.Float64Var(&f.p, "p", 0.5, "fill probability of a sparse tree")
	fl.BoolVar(&f.left, "left", false, "grow a chain to the left instead of the right")
	return cmd
}

func (f *generateFlags) constructor() (builder.Constructor, error) {
	switch f.shape {
	case shapeLevel:
		return builder.LevelOrder(f.leaves), nil
	case shapeComplete:
		return builder.Complete(f.depth), nil
	case shapeSparse:
		return builder.RandomSparse(f.leaves, f.p), nil
	case shapeChain:
		dir := core.Right
		if f.left {
			dir = core.Left
		}
		return builder.Chain(f.leaves, dir), nil
	}
	return nil, errors.Errorf("unknown shape %q", f.shape)
}
