package interp1d

import (
	"cmp"
	"fmt"
	"slices"
)

// Boundary selects what a query does outside [Min, Max].
type Boundary int

const (
	// BoundaryError fails with an *OutOfRangeError.
	BoundaryError Boundary = 0
	// BoundaryClamp returns the value of the nearest edge sample.
	BoundaryClamp Boundary = 1
)

func (b Boundary) String() string {
	switch b {
	case BoundaryError:
		return "error"
	case BoundaryClamp:
		return "clamp"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// Region is where a query falls relative to the sampled domain.
type Region int

const (
	RegionInterior Region = iota
	RegionLeft
	RegionRight
)

func (r Region) String() string {
	switch r {
	case RegionInterior:
		return "interior"
	case RegionLeft:
		return "left"
	case RegionRight:
		return "right"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// Table is an immutable piecewise-linear function built from samples sorted
// by coordinate. It is safe for concurrent use by any number of goroutines.
type Table[C Coordinate, V Value] struct {
	samples  []Pair[C, V]
	count    int
	min, max C
}

// NewUnsorted builds a table from floating-point coordinates in any order.
// Every coordinate must be finite.
func NewUnsorted[C Float, V Value](xs []C, ys []V) (*Table[C, V], error) {
	p, err := floatPairs(xs, ys)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(p, ComparePairs[C, V])
	return newTable(p), nil
}

// NewSorted builds a table from finite floating-point coordinates that the
// caller guarantees are already in ascending order. The order is not checked;
// unsorted input makes every later query result undefined.
func NewSorted[C Float, V Value](xs []C, ys []V) (*Table[C, V], error) {
	p, err := floatPairs(xs, ys)
	if err != nil {
		return nil, err
	}
	return newTable(p), nil
}

// NewUnsortedInt builds a table from integer coordinates in any order.
func NewUnsortedInt[C Integer, V Value](xs []C, ys []V) (*Table[C, V], error) {
	p, err := intPairs(xs, ys)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(p, ComparePairs[C, V])
	return newTable(p), nil
}

// NewSortedInt is NewSorted for integer coordinates.
func NewSortedInt[C Integer, V Value](xs []C, ys []V) (*Table[C, V], error) {
	p, err := intPairs(xs, ys)
	if err != nil {
		return nil, err
	}
	return newTable(p), nil
}

func checkLengths(nx, ny int) error {
	if nx == 0 || ny == 0 {
		return ErrEmptyData
	}
	if nx != ny {
		return &LengthMismatchError{X: nx, Y: ny}
	}
	return nil
}

func floatPairs[C Float, V Value](xs []C, ys []V) ([]Pair[C, V], error) {
	if err := checkLengths(len(xs), len(ys)); err != nil {
		return nil, err
	}
	p := make([]Pair[C, V], len(xs))
	for i := range xs {
		pair, err := NewFloatPair(xs[i], ys[i])
		if err != nil {
			return nil, &DataError{Index: i, Err: err}
		}
		p[i] = pair
	}
	return p, nil
}

func intPairs[C Integer, V Value](xs []C, ys []V) ([]Pair[C, V], error) {
	if err := checkLengths(len(xs), len(ys)); err != nil {
		return nil, err
	}
	p := make([]Pair[C, V], len(xs))
	for i := range xs {
		p[i] = NewIntPair(xs[i], ys[i])
	}
	return p, nil
}

// newTable caches the bounds of a non-empty, sorted sample slice.
func newTable[C Coordinate, V Value](p []Pair[C, V]) *Table[C, V] {
	return &Table[C, V]{
		samples: p,
		count:   len(p),
		min:     p[0].X,
		max:     p[len(p)-1].X,
	}
}

// InterpolateChecked returns the interpolated value at x, or an
// *OutOfRangeError when x lies outside [Min, Max].
func (t *Table[C, V]) InterpolateChecked(x C) (V, error) {
	return t.Evaluate(x, BoundaryError)
}

// Interpolate returns the interpolated value at x. Outside the domain it
// returns the first or last sample value. It never fails.
func (t *Table[C, V]) Interpolate(x C) V {
	v, err := t.Evaluate(x, BoundaryClamp)
	if err == nil {
		return v
	}
	// Only a failed conversion gets here; fall back to the nearer bracket.
	k, _ := t.search(x)
	lo, hi := t.samples[k-1], t.samples[k]
	if float64(x)-float64(lo.X) <= float64(hi.X)-float64(x) {
		return lo.Y
	}
	return hi.Y
}

// Evaluate is the query shared by Interpolate and InterpolateChecked.
func (t *Table[C, V]) Evaluate(x C, b Boundary) (V, error) {
	var zero V
	if isNaN(x) && b == BoundaryError {
		return zero, ErrInvalidData
	}

	k, found := t.search(x)
	if found {
		return t.samples[k].Y, nil
	}

	switch t.region(k) {
	case RegionLeft:
		if b == BoundaryClamp {
			return t.samples[0].Y, nil
		}
		return zero, &OutOfRangeError{Side: RegionLeft, Point: fmt.Sprint(x), Bound: fmt.Sprint(t.min)}
	case RegionRight:
		if b == BoundaryClamp {
			return t.samples[t.count-1].Y, nil
		}
		return zero, &OutOfRangeError{Side: RegionRight, Point: fmt.Sprint(x), Bound: fmt.Sprint(t.max)}
	}
	return t.interpolate(x, k-1, k)
}

// Region classifies x against the sampled domain. Points equal to a sample
// coordinate, including Min and Max, are RegionInterior.
func (t *Table[C, V]) Region(x C) Region {
	k, found := t.search(x)
	if found {
		return RegionInterior
	}
	return t.region(k)
}

// search returns the lowest index whose coordinate is >= x.
func (t *Table[C, V]) search(x C) (int, bool) {
	return slices.BinarySearchFunc(t.samples, x, func(p Pair[C, V], x C) int {
		return cmp.Compare(p.X, x)
	})
}

func (t *Table[C, V]) region(k int) Region {
	switch {
	case k == 0:
		return RegionLeft
	case k >= t.count:
		return RegionRight
	}
	return RegionInterior
}

// interpolate blends samples left and right, which must bracket x strictly.
func (t *Table[C, V]) interpolate(x C, left, right int) (V, error) {
	var zero V
	lo, hi := t.samples[left], t.samples[right]

	dx, ok := span(lo.X, hi.X)
	if !ok {
		return zero, t.conversionError()
	}
	off, ok := span(lo.X, x)
	if !ok {
		return zero, t.conversionError()
	}
	vdx, ok := fromFloat[V](dx)
	if !ok {
		return zero, t.conversionError()
	}
	voff, ok := fromFloat[V](off)
	if !ok {
		return zero, t.conversionError()
	}

	// lo.Y + (hi.Y-lo.Y)/(hi.X-lo.X)*(x-lo.X)
	return lo.Y + (hi.Y-lo.Y)/vdx*voff, nil
}

func (t *Table[C, V]) conversionError() error {
	return &ConversionError{From: typeName[C](), To: typeName[V]()}
}

// Len returns the number of samples.
func (t *Table[C, V]) Len() int {
	return t.count
}

// Min returns the smallest sample coordinate.
func (t *Table[C, V]) Min() C {
	return t.min
}

// Max returns the largest sample coordinate.
func (t *Table[C, V]) Max() C {
	return t.max
}

// Domain returns [Min, Max].
func (t *Table[C, V]) Domain() (C, C) {
	return t.min, t.max
}

// Sample returns the i-th sample in coordinate order.
func (t *Table[C, V]) Sample(i int) Pair[C, V] {
	return t.samples[i]
}

// Samples returns a copy of the samples in coordinate order.
func (t *Table[C, V]) Samples() []Pair[C, V] {
	return slices.Clone(t.samples)
}

// IsSorted reports whether the samples are in ascending coordinate order.
// Tables from NewUnsorted and NewUnsortedInt always are; for NewSorted and
// NewSortedInt this verifies the caller's promise.
func (t *Table[C, V]) IsSorted() bool {
	return slices.IsSortedFunc(t.samples, ComparePairs[C, V])
}

func (t *Table[C, V]) String() string {
	return fmt.Sprintf("interp1d.Table{n: %d; min: %v; max: %v; samples: %v}", t.count, t.min, t.max, t.samples)
}
