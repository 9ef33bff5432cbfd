package ranked_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsu/ranked"
	"github.com/katalvlaran/dsu/ufind"
)

// BenchmarkUnite_RandomPairs measures a full merge batch on the ranked
// engine: n elements, n random Unite calls, fresh structure per iteration.
func BenchmarkUnite_RandomPairs(b *testing.B) {
	const n = 100000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, _ := ranked.New(n)
		for _, p := range pairs {
			u.Unite(p[0], p[1])
		}
	}
}

// BenchmarkUnite_RandomPairs_Ufind runs the identical workload on the
// plain partition-table engine, for side-by-side comparison of the two
// union rules.
func BenchmarkUnite_RandomPairs_Ufind(b *testing.B) {
	const n = 100000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, _ := ufind.New(n)
		for _, p := range pairs {
			u.Unite(p[0], p[1])
		}
	}
}

// BenchmarkFind measures halved-path lookups after a heavy merge batch.
func BenchmarkFind(b *testing.B) {
	const n = 100000
	u, _ := ranked.New(n)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		u.Unite(rng.Intn(n), rng.Intn(n))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.Find(i % n)
	}
}

// BenchmarkNormalize measures canonical relabeling of a merged structure.
func BenchmarkNormalize(b *testing.B) {
	const n = 100000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n/2)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u, _ := ranked.New(n)
		for _, p := range pairs {
			u.Unite(p[0], p[1])
		}
		b.StartTimer()
		u.Normalize()
	}
}
