// Package bulk evaluates a query over many coordinates, one after another or
// spread over a bounded set of goroutines.
//
// Both Map and ParallelMap return either every result, in input order, or
// the first failure wrapped in an *IndexError.
package bulk

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Maxime2/interp1d"
)

// Func is a single-point query.
type Func[C interp1d.Coordinate, V interp1d.Value] func(C) (V, error)

// Checked adapts t.InterpolateChecked.
func Checked[C interp1d.Coordinate, V interp1d.Value](t *interp1d.Table[C, V]) Func[C, V] {
	return t.InterpolateChecked
}

// Clamped adapts t.Interpolate. The returned Func never fails.
func Clamped[C interp1d.Coordinate, V interp1d.Value](t *interp1d.Table[C, V]) Func[C, V] {
	return func(x C) (V, error) {
		return t.Interpolate(x), nil
	}
}

// ForBoundary picks Checked or Clamped.
func ForBoundary[C interp1d.Coordinate, V interp1d.Value](t *interp1d.Table[C, V], b interp1d.Boundary) Func[C, V] {
	if b == interp1d.BoundaryClamp {
		return Clamped(t)
	}
	return Checked(t)
}

// IndexError records which input failed.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bulk: point %d: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }

// Map applies f to xs in order and stops at the first error.
func Map[C interp1d.Coordinate, V interp1d.Value](ctx context.Context, xs []C, f Func[C, V]) ([]V, error) {
	out := make([]V, len(xs))
	if err := run(ctx, xs, out, 0, f); err != nil {
		return nil, err
	}
	return out, nil
}

// ParallelMap applies f to xs on up to Workers goroutines, each taking
// ChunkSize points at a time. On the first error the remaining chunks are
// abandoned and that error is returned. f must be safe for concurrent use;
// the Table queries are.
func ParallelMap[C interp1d.Coordinate, V interp1d.Value](ctx context.Context, xs []C, f Func[C, V], opts ...Option) ([]V, error) {
	o := newOptions(opts)
	out := make([]V, len(xs))
	if len(xs) <= o.chunkSize || o.workers == 1 {
		if err := run(ctx, xs, out, 0, f); err != nil {
			return nil, err
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for lo := 0; lo < len(xs); lo += o.chunkSize {
		hi := min(lo+o.chunkSize, len(xs))
		lo := lo
		g.Go(func() error {
			return run(gctx, xs[lo:hi], out[lo:hi], lo, f)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// run fills out[i] = f(xs[i]); base is the offset of xs in the caller's input.
func run[C interp1d.Coordinate, V interp1d.Value](ctx context.Context, xs []C, out []V, base int, f Func[C, V]) error {
	for i, x := range xs {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		v, err := f(x)
		if err != nil {
			return &IndexError{Index: base + i, Err: err}
		}
		out[i] = v
	}
	return nil
}

type options struct {
	workers   int
	chunkSize int
}

// Option configures ParallelMap.
type Option func(*options)

// WithWorkers bounds the number of goroutines. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithChunkSize sets how many points a goroutine handles per task.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: 1024,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
