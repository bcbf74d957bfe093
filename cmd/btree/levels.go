package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/bfs"
	"github.com/katalvlaran/bintree/core"
)

func newLevelsCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the tree one level per line in walk order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := a.loadTree()
			if err != nil {
				return err
			}
			opts := bfs.DefaultOptions[int]()
			opts.Ctx = cmd.Context()
			opts.MaxDepth = maxDepth
			res, err := bfs.BFS(tree, &opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, level := range res.Levels() {
				vals := lo.Map(level, func(n *core.Node[int], _ int) string {
					return fmt.Sprint(n.Value())
				})
				fmt.Fprintf(out, "%d: %s\n", i, strings.Join(vals, " "))
			}
			if stale := res.Stale(); len(stale) > 0 {
				fmt.Fprintf(out, "%d nodes carry a stale depth\n", len(stale))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop below this many levels, 0 for all")
	return cmd
}
