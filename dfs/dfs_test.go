package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/dfs"
)

// sample grows the level-order tree 0..n-1:
//
//	     0
//	   /   \
//	  2     1
//	 / \   / \
//	6   5 4   3
func sample(n int) *core.Node[int] {
	p := core.NewPopulator[int]()
	for i := 0; i < n; i++ {
		p.Place(i)
	}
	return p.Root()
}

func TestDFS_Orders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		order dfs.Order
		want  []int
	}{
		{dfs.PreOrder, []int{0, 2, 6, 5, 1, 4, 3}},
		{dfs.InOrder, []int{6, 2, 5, 0, 4, 1, 3}},
		{dfs.PostOrder, []int{6, 5, 2, 4, 3, 1, 0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.order.String(), func(t *testing.T) {
			t.Parallel()
			res, err := dfs.DFS(sample(7), dfs.WithOrder[int](tc.order))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Values())
			assert.Len(t, res.Depth, 7)
		})
	}
}

func TestDFS_DepthAndFilter(t *testing.T) {
	t.Parallel()
	root := sample(7)

	res, err := dfs.DFS(root, dfs.WithMaxDepth[int](1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, res.Values())
	assert.Equal(t, 1, res.Depth[root.Right()])

	res, err = dfs.DFS(root, dfs.WithFilterChild(func(_, c *core.Node[int]) bool {
		return c.Value() != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 3}, res.Values())
	assert.Equal(t, 1, res.SkippedChildren)

	res, err = dfs.DFS(root, dfs.WithMaxDepth[int](0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Values())
}

func TestDFS_Hooks(t *testing.T) {
	t.Parallel()

	var enter, exit []int
	_, err := dfs.DFS(sample(3),
		dfs.WithOnVisit(func(n *core.Node[int], _ int) error {
			enter = append(enter, n.Value())
			return nil
		}),
		dfs.WithOnExit(func(n *core.Node[int], _ int) error {
			exit = append(exit, n.Value())
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, enter)
	assert.Equal(t, []int{2, 1, 0}, exit)

	boom := errors.New("boom")
	res, err := dfs.DFS(sample(7), dfs.WithOnVisit(func(n *core.Node[int], _ int) error {
		if n.Value() == 5 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0, 2, 6}, res.Values(), "partial result is returned")

	_, err = dfs.DFS(sample(3), dfs.WithOnExit(func(*core.Node[int], int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := dfs.DFS[int](nil)
	assert.ErrorIs(t, err, dfs.ErrNilRoot)

	_, err = dfs.DFS(sample(1), dfs.WithMaxDepth[int](-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.DFS(sample(1), dfs.WithOrder[int](dfs.Order(9)))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(sample(3), dfs.WithContext[int](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	for _, o := range []dfs.Order{dfs.PreOrder, dfs.InOrder, dfs.PostOrder} {
		got, err := dfs.ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := dfs.ParseOrder("level")
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
	assert.Equal(t, "Order(7)", dfs.Order(7).String())
}
