package bulk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxime2/interp1d"
)

func ramp(t *testing.T, n int) *interp1d.Table[float64, float64] {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 3 * float64(i)
	}
	tab, err := interp1d.NewSorted(xs, ys)
	require.NoError(t, err)
	return tab
}

func points(n int, step float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	return xs
}

func TestMap(t *testing.T) {
	tab, err := interp1d.NewSortedInt([]int{1, 3, 5}, []float64{5, 3, 4})
	require.NoError(t, err)

	got, err := Map(context.Background(), []int{2, 4}, Checked(tab))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3.5}, got)
}

func TestMap_FirstError(t *testing.T) {
	tab := ramp(t, 10)
	got, err := Map(context.Background(), []float64{1, 2, 20, -1}, Checked(tab))
	assert.Nil(t, got)
	require.ErrorIs(t, err, interp1d.ErrOutOfRangeRight)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 2, ie.Index)
}

func TestParallelMap_MatchesSequential(t *testing.T) {
	tab := ramp(t, 1000)
	xs := points(50_000, 0.0199)

	seq, err := Map(context.Background(), xs, Checked(tab))
	require.NoError(t, err)

	for _, opts := range [][]Option{
		nil,
		{WithWorkers(1)},
		{WithWorkers(4), WithChunkSize(7)},
		{WithWorkers(0), WithChunkSize(-1)},
	} {
		par, err := ParallelMap(context.Background(), xs, Checked(tab), opts...)
		require.NoError(t, err)
		assert.Equal(t, seq, par)
	}
}

func TestParallelMap_Error(t *testing.T) {
	tab := ramp(t, 10)
	xs := points(10_000, 0.0005)
	xs[7777] = 42

	got, err := ParallelMap(context.Background(), xs, Checked(tab), WithWorkers(3), WithChunkSize(100))
	assert.Nil(t, got)
	require.ErrorIs(t, err, interp1d.ErrOutOfRangeRight)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 7777, ie.Index)
}

func TestParallelMap_Clamped(t *testing.T) {
	tab := ramp(t, 10)
	xs := []float64{-5, 0.5, 100}
	got, err := ParallelMap(context.Background(), xs, ForBoundary(tab, interp1d.BoundaryClamp), WithChunkSize(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1.5, 27}, got)
}

func TestParallelMap_Cancelled(t *testing.T) {
	tab := ramp(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParallelMap(ctx, points(5000, 0.001), Clamped(tab), WithChunkSize(10))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = Map(ctx, []float64{1}, Clamped(tab))
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkParallelMap(b *testing.B) {
	xs := make([]float64, 100_000)
	ys := make([]float64, len(xs))
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i % 17)
	}
	tab, err := interp1d.NewSorted(xs, ys)
	if err != nil {
		b.Fatal(err)
	}
	qs := make([]float64, 100_000)
	for i := range qs {
		qs[i] = float64(i) + 0.5
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParallelMap(context.Background(), qs, Clamped(tab)); err != nil {
			b.Fatal(err)
		}
	}
}
