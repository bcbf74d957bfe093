package main

import (
	"fmt"

	"github.com/shivamMg/ppds/tree"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/core"
)

// ppdsNode adapts a core.Node for ppds rendering. Empty slots are omitted.
type ppdsNode struct {
	n        *core.Node[int]
	maxDepth int
}

// Data returns the node label.
func (p ppdsNode) Data() interface{} {
	switch p.n.Direction() {
	case core.Left:
		return fmt.Sprintf("L:%d", p.n.Value())
	case core.Right:
		return fmt.Sprintf("R:%d", p.n.Value())
	}
	return fmt.Sprint(p.n.Value())
}

// Children returns the left then right child, or none past maxDepth.
func (p ppdsNode) Children() (children []tree.Node) {
	if p.maxDepth == 0 {
		return nil
	}
	for _, c := range []*core.Node[int]{p.n.Left(), p.n.Right()} {
		if c != nil {
			children = append(children, ppdsNode{n: c, maxDepth: p.maxDepth - 1})
		}
	}
	return children
}

func newShowCmd(a *app) *cobra.Command {
	var horizontal bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw the tree as ASCII art",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := a.loadTree()
			if err != nil {
				return err
			}
			node := ppdsNode{n: root, maxDepth: a.cfg.SkipDeep}
			if horizontal {
				fmt.Fprint(cmd.OutOrStdout(), tree.SprintHr(node))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tree.Sprint(node))
			return nil
		},
	}
	cmd.Flags().BoolVar(&horizontal, "hr", false, "draw horizontally")
	return cmd
}
