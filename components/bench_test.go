package components_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsu/components"
)

// BenchmarkFromPairs measures the full pipeline — merge batch plus block
// harvest — on 100k elements and 50k random pairs.
func BenchmarkFromPairs(b *testing.B) {
	const n = 100000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n/2)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.FromPairs(n, pairs)
	}
}

// BenchmarkCount measures the merge batch with counting only.
func BenchmarkCount(b *testing.B) {
	const n = 100000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n/2)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.Count(n, pairs)
	}
}
