package bfs_test

import (
	"testing"

	"github.com/katalvlaran/bintree/bfs"
)

// BenchmarkBFS_Complete runs BFS on a complete tree of 2^14-1 nodes.
func BenchmarkBFS_Complete(b *testing.B) {
	tree := complete((1 << 14) - 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(tree, nil)
	}
}
