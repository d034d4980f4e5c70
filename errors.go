package interp1d

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidData indicates a NaN or infinite coordinate.
	ErrInvalidData = errors.New("interp1d: data contains a NaN or Inf")
	// ErrEmptyData indicates construction from zero samples. It matches ErrInvalidData.
	ErrEmptyData = fmt.Errorf("%w: no samples", ErrInvalidData)
	// ErrLengthMismatch indicates coordinate and value slices of different lengths.
	ErrLengthMismatch = errors.New("interp1d: coordinate and value counts differ")
	// ErrOutOfRangeLeft indicates a checked query below the domain minimum.
	ErrOutOfRangeLeft = errors.New("interp1d: point is to the left of all data")
	// ErrOutOfRangeRight indicates a checked query above the domain maximum.
	ErrOutOfRangeRight = errors.New("interp1d: point is to the right of all data")
	// ErrConversion indicates a coordinate difference not representable in the value type.
	ErrConversion = errors.New("interp1d: coordinate to value conversion failed")
)

// DataError reports which input sample made construction fail.
type DataError struct {
	Index int
	Err   error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%v (sample %d)", e.Err, e.Index)
}

func (e *DataError) Unwrap() error { return e.Err }

// LengthMismatchError carries the two input lengths.
type LengthMismatchError struct {
	X, Y int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: %d coordinates, %d values", ErrLengthMismatch, e.X, e.Y)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// OutOfRangeError is returned by checked queries outside [min, max].
// Point and Bound are preformatted so the error does not depend on the
// table's type parameters.
type OutOfRangeError struct {
	Side  Region
	Point string
	Bound string
}

func (e *OutOfRangeError) Error() string {
	if e.Side == RegionLeft {
		return fmt.Sprintf("%v: point: %s; min: %s", ErrOutOfRangeLeft, e.Point, e.Bound)
	}
	return fmt.Sprintf("%v: point: %s; max: %s", ErrOutOfRangeRight, e.Point, e.Bound)
}

func (e *OutOfRangeError) Is(target error) bool {
	switch target {
	case ErrOutOfRangeLeft:
		return e.Side == RegionLeft
	case ErrOutOfRangeRight:
		return e.Side == RegionRight
	}
	return false
}

// ConversionError names the types involved in a failed conversion.
type ConversionError struct {
	From, To string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrConversion, e.From, e.To)
}

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }
