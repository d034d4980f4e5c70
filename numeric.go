package interp1d

import (
	"math"
	"reflect"
)

// Float is the set of floating-point coordinate types.
type Float interface {
	~float32 | ~float64
}

// Integer is the set of integer coordinate types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Coordinate is any totally ordered numeric type usable as a sample position.
type Coordinate interface {
	Integer | Float
}

// Value is any numeric type closed under + - * / that samples may carry.
type Value interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

func isFinite[C Float](x C) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isNaN[C Coordinate](x C) bool {
	return x != x
}

// span returns hi-lo as a float64. ok is false when the subtraction overflows
// the coordinate type or does not produce a finite positive number; callers
// only pass lo < hi.
func span[C Coordinate](lo, hi C) (float64, bool) {
	d := hi - lo
	if d <= 0 {
		// wrapped around for signed integers, or underflowed to zero
		return 0, false
	}
	f := float64(d)
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// fromFloat converts f into the value domain V.
func fromFloat[V Value](f float64) (V, bool) {
	var v V
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return v, false
	}
	switch p := any(&v).(type) {
	case *float64:
		*p = f
		return v, true
	case *complex128:
		*p = complex(f, 0)
		return v, true
	case *float32:
		if math.Abs(f) > math.MaxFloat32 {
			return v, false
		}
		*p = float32(f)
		return v, true
	case *complex64:
		if math.Abs(f) > math.MaxFloat32 {
			return v, false
		}
		*p = complex(float32(f), 0)
		return v, true
	}

	// named types such as `type Volts float64`
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Complex64:
		if math.Abs(f) > math.MaxFloat32 {
			return v, false
		}
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		rv.SetComplex(complex(f, 0))
	default:
		return v, false
	}
	return v, true
}

func typeName[T any]() string {
	var t T
	return reflect.TypeOf(t).String()
}
