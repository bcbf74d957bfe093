package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/codec"
)

func newPrintCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the tree file in the text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := a.loadTree()
			if err != nil {
				return err
			}
			if plain {
				return codec.Serialize(cmd.OutOrStdout(), tree, codec.WithSkipDeep(a.cfg.SkipDeep))
			}
			return a.printTree(cmd.OutOrStdout(), tree)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "omit indentation and depth prefixes")
	return cmd
}
