package interp1d

import (
	"cmp"
	"fmt"
)

// Pair is one (coordinate, value) sample. Ordering and equality look at X only.
type Pair[C Coordinate, V Value] struct {
	X C
	Y V
}

// NewFloatPair returns ErrInvalidData when x is NaN or infinite.
func NewFloatPair[C Float, V Value](x C, y V) (Pair[C, V], error) {
	if !isFinite(x) {
		return Pair[C, V]{}, ErrInvalidData
	}
	return Pair[C, V]{X: x, Y: y}, nil
}

// NewIntPair cannot fail: integers have no NaN or Inf.
func NewIntPair[C Integer, V Value](x C, y V) Pair[C, V] {
	return Pair[C, V]{X: x, Y: y}
}

// Compare orders p and q by coordinate.
func (p Pair[C, V]) Compare(q Pair[C, V]) int {
	return cmp.Compare(p.X, q.X)
}

// Equal reports whether p and q share a coordinate, whatever their values.
func (p Pair[C, V]) Equal(q Pair[C, V]) bool {
	return p.X == q.X
}

func (p Pair[C, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// ComparePairs is Pair.Compare in a form usable by slices.SortFunc.
func ComparePairs[C Coordinate, V Value](a, b Pair[C, V]) int {
	return a.Compare(b)
}
