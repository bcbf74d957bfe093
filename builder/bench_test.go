package builder_test

import (
	"testing"

	"github.com/katalvlaran/bintree/builder"
)

func BenchmarkLevelOrder(b *testing.B) {
	ctor := builder.LevelOrder(1 << 12)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.BuildTree(nil, ctor); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRandomSparse(b *testing.B) {
	ctor := builder.RandomSparse(1<<12, 0.7)
	opts := []builder.BuilderOption{builder.WithSeed(1)}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.BuildTree(opts, ctor); err != nil {
			b.Fatal(err)
		}
	}
}
