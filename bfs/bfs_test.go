package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/bfs"
	"github.com/katalvlaran/bintree/core"
)

// complete grows a perfect tree with n nodes valued 0..n-1.
func complete(n int) *core.Node[int] {
	p := core.NewPopulator[int]()
	for i := 0; i < n; i++ {
		p.Place(i)
	}
	return p.Root()
}

// walkValues returns core.Node.Walk's order for comparison.
func walkValues(n *core.Node[int], includeSelf bool) []int {
	var out []int
	n.Walk(func(x *core.Node[int]) bool {
		out = append(out, x.Value())
		return false
	}, includeSelf)
	return out
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[int](nil, nil); !errors.Is(err, bfs.ErrNilRoot) {
		t.Errorf("nil root: want ErrNilRoot, got %v", err)
	}
	opts := bfs.DefaultOptions[int]()
	opts.MaxDepth = -1
	if _, err := bfs.BFS(core.NewNode(1), &opts); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleNode covers the trivial tree.
func TestBFS_SingleNode(t *testing.T) {
	root := core.NewNode(7)
	res, err := bfs.BFS(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{7}; !reflect.DeepEqual(res.Values(), want) {
		t.Errorf("Order = %v; want %v", res.Values(), want)
	}
	if l := res.Level[root]; l != 0 {
		t.Errorf("Level[root] = %d; want 0", l)
	}
}

// TestBFS_MatchesWalk checks both seed modes against core.Node.Walk on a sparse tree.
func TestBFS_MatchesWalk(t *testing.T) {
	tree := complete(31)
	tree.Left().AttachRight(nil)
	tree.Right().Left().AttachLeft(nil)

	res, err := bfs.BFS(tree, nil)
	require.NoError(t, err)
	assert.Equal(t, walkValues(tree, true), res.Values())

	opts := bfs.DefaultOptions[int]()
	opts.ExcludeRoot = true
	res, err = bfs.BFS(tree, &opts)
	require.NoError(t, err)
	assert.Equal(t, walkValues(tree, false), res.Values())
	assert.Equal(t, 1, res.Level[tree.Left()])
}

// TestBFS_MaxDepth limits levels below the start node.
func TestBFS_MaxDepth(t *testing.T) {
	tree := complete(15)
	for depth, want := range map[int][]int{
		1:  {0, 1, 2},
		2:  {0, 1, 2, 3, 4, 5, 6},
		0:  walkValues(tree, true),
		10: walkValues(tree, true),
	} {
		opts := bfs.DefaultOptions[int]()
		opts.MaxDepth = depth
		res, err := bfs.BFS(tree, &opts)
		require.NoError(t, err)
		assert.Equal(t, want, res.Values(), "MaxDepth=%d", depth)
	}
}

// TestBFS_FilterChild prunes a single subtree while continuing elsewhere.
func TestBFS_FilterChild(t *testing.T) {
	tree := complete(15) // node 1 is root.Right(), children 3,4
	opts := bfs.DefaultOptions[int]()
	opts.FilterChild = func(_, child *core.Node[int]) bool { return child.Value() != 1 }

	res, err := bfs.BFS(tree, &opts)
	require.NoError(t, err)
	got := res.Values()
	assert.NotContains(t, got, 1)
	assert.NotContains(t, got, 3)
	assert.NotContains(t, got, 4)
	assert.Contains(t, got, 5)
	assert.Len(t, got, 15-7)
}

// TestBFS_Hooks verifies hook order and counts.
func TestBFS_Hooks(t *testing.T) {
	tree := complete(7)
	var enq, deq, vis []int
	opts := bfs.Options[int]{
		OnEnqueue: func(n *core.Node[int], _ int) { enq = append(enq, n.Value()) },
		OnDequeue: func(n *core.Node[int], _ int) { deq = append(deq, n.Value()) },
		OnVisit: func(n *core.Node[int], _ int) error {
			vis = append(vis, n.Value())
			return nil
		},
	}
	_, err := bfs.BFS(tree, &opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, enq)
	assert.Equal(t, enq, deq)
	assert.Equal(t, enq, vis)
}

// TestBFS_OnVisitError aborts and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	sentinel := errors.New("stop here")
	opts := bfs.DefaultOptions[int]()
	opts.OnVisit = func(n *core.Node[int], _ int) error {
		if n.Value() == 2 {
			return sentinel
		}
		return nil
	}
	res, err := bfs.BFS(complete(7), &opts)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, []int{0, 1, 2}, res.Values())
}

// TestBFS_ContextCancel returns the context error before visiting anything.
func TestBFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := bfs.DefaultOptions[int]()
	opts.Ctx = ctx
	res, err := bfs.BFS(complete(7), &opts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}

// TestResult_Stale reports nodes whose stored depth lags their true level.
func TestResult_Stale(t *testing.T) {
	c := core.NewNode(3)
	b := core.NewNode(2)
	b.AttachLeft(c)
	a := core.NewNode(1)
	top := core.NewNode(0)
	top.AttachRight(a)
	a.AttachLeft(b) // b at depth 2, c still at depth 1

	res, err := bfs.BFS(top, nil)
	require.NoError(t, err)
	stale := res.Stale()
	require.Len(t, stale, 1)
	assert.Same(t, c, stale[0])
	assert.Equal(t, 3, res.Level[c])

	// searching from a subtree compares against the subtree's own depth
	sub, err := bfs.BFS(a, nil)
	require.NoError(t, err)
	assert.Equal(t, []*core.Node[int]{c}, sub.Stale())

	clean, err := bfs.BFS(complete(31), nil)
	require.NoError(t, err)
	assert.Empty(t, clean.Stale())
}

// TestResult_Levels groups visits per level.
func TestResult_Levels(t *testing.T) {
	res, err := bfs.BFS(complete(7), nil)
	require.NoError(t, err)
	levels := res.Levels()
	require.Len(t, levels, 3)
	assert.Len(t, levels[0], 1)
	assert.Len(t, levels[1], 2)
	assert.Len(t, levels[2], 4)
}
