package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/dfs"
)

func newOrderCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the tree values in depth-first order (pre, in or post)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := dfs.ParseOrder(kind)
			if err != nil {
				return err
			}
			tree, err := a.loadTree()
			if err != nil {
				return err
			}
			if err = dfs.Validate(tree); err != nil {
				return err
			}
			res, err := dfs.DFS(tree, dfs.WithContext[int](cmd.Context()), dfs.WithOrder[int](order))
			if err != nil {
				return err
			}
			vals := lo.Map(res.Order, func(n *core.Node[int], _ int) string {
				return fmt.Sprint(n.Value())
			})
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(vals, " "))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", dfs.InOrder.String(), "pre, in or post")
	return cmd
}
