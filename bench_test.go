package interp1d

import (
	"fmt"
	"math/rand"
	"testing"
)

func randomTable(b *testing.B, n int) *Table[float64, float64] {
	rng := rand.New(rand.NewSource(int64(n)))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64()
		ys[i] = rng.Float64()
	}
	t, err := NewUnsorted(xs, ys)
	if err != nil {
		b.Fatal(err)
	}
	return t
}

func BenchmarkInterpolate(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000, 1_000_000} {
		t := randomTable(b, n)
		rng := rand.New(rand.NewSource(1))
		points := make([]float64, 4096)
		for i := range points {
			points[i] = rng.Float64()
		}

		b.Run(fmt.Sprintf("checked_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = t.InterpolateChecked(points[i%len(points)])
			}
		})
		b.Run(fmt.Sprintf("clamped_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = t.Interpolate(points[i%len(points)])
			}
		})
	}
}

func BenchmarkNewUnsorted(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	xs := make([]float64, 100_000)
	ys := make([]float64, len(xs))
	for i := range xs {
		xs[i] = rng.Float64()
		ys[i] = rng.Float64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewUnsorted(xs, ys); err != nil {
			b.Fatal(err)
		}
	}
}
