package builder_test

import (
	"fmt"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
)

// ExampleLevelOrder grows six nodes and prints them in walk order.
func ExampleLevelOrder() {
	root, err := builder.BuildTree(nil, builder.LevelOrder(6))
	if err != nil {
		fmt.Println(err)
		return
	}
	root.WalkAll(func(n *core.Node[int]) bool {
		fmt.Printf("%d:%s@%d ", n.Value(), n.Direction(), n.Depth())
		return false
	})
	fmt.Println()
	// Output:
	// 0:ROOT@0 1:RIGHT@1 2:LEFT@1 3:RIGHT@2 4:LEFT@2 5:RIGHT@2
}

// ExampleChain shows a left spine.
func ExampleChain() {
	root, _ := builder.BuildTree(
		[]builder.BuilderOption{builder.WithValueFn(builder.ConstantValueFn(7))},
		builder.Chain(3, core.Left),
	)
	for n := root; n != nil; n = n.Left() {
		fmt.Println(n.Depth(), n.Value())
	}
	// Output:
	// 0 7
	// 1 7
	// 2 7
}
