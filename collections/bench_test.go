package collections_test

import (
	"testing"

	"github.com/justinricheson/collectionsynchronizer/collections"
)

// makeObservable creates an Observable[int] of size n for benchmarks.
func makeObservable(n int) *collections.Observable[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.ObservableFrom(items)
}

func BenchmarkAppend(b *testing.B) {
	c := makeObservable(0)
	c.OnChange(func(collections.Event[int]) error { return nil })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Append(i)
	}
}

func BenchmarkMoveRange(b *testing.B) {
	c := makeObservable(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.MoveRange(0, 100, 9_000, 100)
	}
}

func BenchmarkReplaceRange(b *testing.B) {
	c := makeObservable(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.ReplaceRange(5_000, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	}
}
