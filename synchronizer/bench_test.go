package synchronizer_test

import (
	"testing"

	"github.com/justinricheson/collectionsynchronizer/collections"
	"github.com/justinricheson/collectionsynchronizer/synchronizer"
)

func benchPair(b *testing.B, n int) (*collections.Observable[int], *collections.Observable[int]) {
	b.Helper()
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	src := collections.ObservableFrom(items)
	dst := collections.ObservableFrom(image(items))
	s, err := synchronizer.New[int, int](src, dst, div10, times10)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(s.Dispose)
	return src, dst
}

func BenchmarkRelayAppendRemove(b *testing.B) {
	src, _ := benchPair(b, 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = src.Append(i)
		_ = src.RemoveRange(0, 1)
	}
}

func BenchmarkRelayReset(b *testing.B) {
	src, _ := benchPair(b, 1_000)
	items := src.All()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = src.ResetTo(items...)
	}
}
