// Package builder_test contains functional tests for every Constructor,
// verifying shape, node counts, depth stamping and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
)

// levels maps each node to its true distance from root.
func levels(root *core.Node[int]) map[*core.Node[int]]uint16 {
	out := map[*core.Node[int]]uint16{root: 0}
	stack := []*core.Node[int]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range []*core.Node[int]{n.Left(), n.Right()} {
			if c != nil {
				out[c] = out[n] + 1
				stack = append(stack, c)
			}
		}
	}
	return out
}

// values lists payloads in walk order.
func values(root *core.Node[int]) []int {
	var out []int
	root.WalkAll(func(n *core.Node[int]) bool {
		out = append(out, n.Value())
		return false
	})
	return out
}

// TestBuilders_Functional runs each constructor and checks the resulting shape.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	idx := []builder.BuilderOption{builder.WithValueFn(builder.IndexValueFn)}
	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantN     int
		wantDepth uint16
	}{
		{"LevelOrder(1)", builder.LevelOrder(1), 1, 0},
		{"LevelOrder(7)", builder.LevelOrder(7), 7, 2},
		{"LevelOrder(10)", builder.LevelOrder(10), 10, 3},
		{"Complete(0)", builder.Complete(0), 1, 0},
		{"Complete(4)", builder.Complete(4), 31, 4},
		{"RandomSparse(p=1)", builder.RandomSparse(12, 1), 12, 3},
		{"RandomSparse(p=0)", builder.RandomSparse(12, 0), 1, 0},
		{"Chain(5,LEFT)", builder.Chain(5, core.Left), 5, 4},
		{"Chain(3,RIGHT)", builder.Chain(3, core.Right), 3, 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root, err := builder.BuildTree(idx, tc.ctor)
			require.NoError(t, err)
			require.NotNil(t, root)
			assert.Equal(t, tc.wantN, root.Count())

			var deepest uint16
			for n, lvl := range levels(root) {
				assert.Equal(t, lvl, n.Depth(), "stored depth of %d", n.Value())
				if lvl > deepest {
					deepest = lvl
				}
			}
			assert.Equal(t, tc.wantDepth, deepest)
		})
	}
}

// TestLevelOrder_WalkOrderMatchesValues shows values are placed in walk order.
func TestLevelOrder_WalkOrderMatchesValues(t *testing.T) {
	t.Parallel()

	root, err := builder.BuildTree(nil, builder.LevelOrder(9))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, values(root))
	assert.Equal(t, 1, root.Right().Value(), "right child is filled first")
	assert.Equal(t, 2, root.Left().Value())
}

// TestChain_Direction checks every link uses the requested side.
func TestChain_Direction(t *testing.T) {
	t.Parallel()

	root, err := builder.BuildTree(nil, builder.Chain(4, core.Left))
	require.NoError(t, err)
	for n := root; n != nil; n = n.Left() {
		assert.Nil(t, n.Right())
		if n != root {
			assert.Equal(t, core.Left, n.Direction())
		}
	}
}

// TestRandomSparse_Deterministic locks shape and values to the seed.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Node[int] {
		root, err := builder.BuildTree(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(64, 0.6),
		)
		require.NoError(t, err)
		return root
	}
	a, b := build(11), build(11)
	assert.Equal(t, values(a), values(b))
	assert.Equal(t, a.Count(), b.Count())
	assert.LessOrEqual(t, a.Count(), 64)
	assert.GreaterOrEqual(t, a.Count(), 1)

	for n, lvl := range levels(a) {
		assert.Equal(t, lvl, n.Depth())
	}
}

// TestBuilders_Errors covers every sentinel.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"LevelOrder(0)", nil, builder.LevelOrder(0), builder.ErrTooFewNodes},
		{"LevelOrder(huge)", nil, builder.LevelOrder(builder.MaxNodes + 1), builder.ErrTooManyNodes},
		{"Complete(-1)", nil, builder.Complete(-1), builder.ErrTooFewNodes},
		{"Complete(deep)", nil, builder.Complete(builder.MaxCompleteDepth + 1), builder.ErrTooManyNodes},
		{"RandomSparse(n=0)", nil, builder.RandomSparse(0, 0.5), builder.ErrTooFewNodes},
		{"RandomSparse(p<0)", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Chain(0)", nil, builder.Chain(0, core.Left), builder.ErrTooFewNodes},
		{"Chain(long)", nil, builder.Chain(builder.MaxChainNodes+1, core.Left), builder.ErrTooManyNodes},
		{"Chain(ROOT)", nil, builder.Chain(3, core.Root), builder.ErrInvalidDirection},
		{"nil ctor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root, err := builder.BuildTree(tc.opts, tc.ctor)
			assert.Nil(t, root)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
