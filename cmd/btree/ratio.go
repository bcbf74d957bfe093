package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/weight"
)

func newRatioCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "ratio",
		Short: "Show the weight ratio of the root and the min and max ratio subtrees",
		Long: `The weight ratio of a subtree is the sum of depth*value over the subtree
divided by the number of its descendants (at least 1).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := a.loadTree()
			if err != nil {
				return err
			}

			ext := weight.NewExtremes[int]()
			weight.MinMaxSumChildrenRatio(tree, ext)

			data := pterm.TableData{{"Subtree", "Value", "Depth", "Direction", "Ratio"}}
			row := func(label string, n *core.Node[int], ratio float64) {
				data = append(data, []string{
					label,
					fmt.Sprint(n.Value()),
					fmt.Sprint(n.Depth()),
					n.Direction().String(),
					formatRatio(ratio),
				})
			}
			row("root", tree, weight.SumChildrenRatio(tree))
			row("min", ext.MinNode, ext.MinVal)
			row("max", ext.MaxNode, ext.MaxVal)

			if all {
				i := 0
				tree.WalkAll(func(n *core.Node[int]) bool {
					row(fmt.Sprintf("#%d", i), n, weight.SumChildrenRatio(n))
					i++
					return false
				})
			}

			out, err := pterm.DefaultTable.WithHasHeader(true).WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "add a row for every node in walk order")
	return cmd
}
