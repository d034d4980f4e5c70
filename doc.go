// Package interp1d performs piecewise-linear interpolation over a table of
// one-dimensional samples.
//
// A Table is built once from equal-length coordinate and value slices and is
// read-only afterwards, so any number of goroutines may query it at the same
// time. Coordinates are integers or floats; values are floats or complex
// numbers.
//
// Construction:
//
//   - NewUnsorted, NewSorted: float coordinates, rejected if NaN or Inf.
//   - NewUnsortedInt, NewSortedInt: integer coordinates.
//
// The Sorted variants trust the caller's ordering. Passing unsorted data to
// them is not detected and leaves query results undefined; IsSorted exists
// for callers who want to assert the ordering themselves.
//
// Queries:
//
//   - InterpolateChecked fails with *OutOfRangeError outside [Min, Max].
//   - Interpolate clamps to the first or last sample value and never fails.
//
// A query equal to a sample coordinate returns that sample's value exactly.
// With duplicate coordinates the first sample in table order wins.
//
// Errors:
//
//   - ErrInvalidData: NaN or Inf coordinate (also ErrEmptyData).
//   - ErrLengthMismatch: coordinate and value slices differ in length.
//   - ErrOutOfRangeLeft, ErrOutOfRangeRight: checked query outside the domain.
//   - ErrConversion: a coordinate difference does not fit the value type.
package interp1d
