// SPDX-License-Identifier: MIT

// Package vector - Vector[T]: length fixed at construction, inline storage.
//
// Purpose:
//   - Dimension-generic vector with value semantics (no shared backing array).
//   - Safe public surface: At/Set and binary ops return sentinel errors.
//   - Deterministic: fixed index order in every loop.
//
// Complexity quicksheet:
//   - constructors, Add/Sub/Neg/Scale/Dot/Magnitude: O(n); At/Set: O(1).

package vector

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/katalvlaran/dmath/scalar"
	"golang.org/x/exp/constraints"
)

// MaxLen is the largest supported vector length.
const MaxLen = 16

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxAdd         = "Add"
	ctxSub         = "Sub"
	ctxDot         = "Dot"
	ctxAddAssign   = "AddAssign"
	ctxSubAssign   = "SubAssign"
	ctxSingleValue = "SingleValue"
)

// Vector is an ordered, fixed-length sequence of T.
//   - n is the logical length (1..MaxLen for constructed vectors; 0 for the zero value).
//   - data holds the elements inline; positions >= n are always zero.
type Vector[T scalar.Number] struct {
	n    int
	data [MaxLen]T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector[float32]{}

// New returns a vector holding a copy of values.
//
// Errors:
//   - ErrBadLength when len(values) is 0 or exceeds MaxLen.
//
// Complexity: O(n).
func New[T scalar.Number](values ...T) (Vector[T], error) {
	if len(values) == 0 || len(values) > MaxLen {
		return Vector[T]{}, fmt.Errorf("Vector.%s(len=%d): %w", ctxNew, len(values), ErrBadLength)
	}
	var v Vector[T]
	v.n = copy(v.data[:], values)

	return v, nil
}

// SingleValue returns a length-n vector with every element set to value.
func SingleValue[T scalar.Number](n int, value T) (Vector[T], error) {
	if n <= 0 || n > MaxLen {
		return Vector[T]{}, fmt.Errorf("Vector.%s(len=%d): %w", ctxSingleValue, n, ErrBadLength)
	}
	v := Vector[T]{n: n}
	for i := 0; i < n; i++ {
		v.data[i] = value
	}

	return v, nil
}

// Zero returns the length-n additive identity.
func Zero[T scalar.Number](n int) (Vector[T], error) { return SingleValue(n, T(0)) }

// One returns a length-n vector of ones.
func One[T scalar.Number](n int) (Vector[T], error) { return SingleValue(n, T(1)) }

// Len returns the vector length.
func (v Vector[T]) Len() int { return v.n }

// At returns element i or ErrOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		return 0, fmt.Errorf("Vector.%s(%d): %w", ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores value at element i or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("Vector.%s(%d): %w", ctxSet, i, ErrOutOfRange)
	}
	v.data[i] = value

	return nil
}

// Values returns a fresh slice with the elements in index order.
func (v Vector[T]) Values() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])

	return out
}

// elem exposes element i for iterators; callers guarantee 0 <= i < n.
func (v *Vector[T]) elem(i int) *T { return &v.data[i] }

// sameLen validates that both operands share a length.
func (v Vector[T]) sameLen(method string, o Vector[T]) error {
	if v.n != o.n {
		return fmt.Errorf("Vector.%s(%d vs %d): %w", method, v.n, o.n, ErrLengthMismatch)
	}

	return nil
}

// Add returns v + o component-wise.
// Errors: ErrLengthMismatch.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	if err := v.sameLen(ctxAdd, o); err != nil {
		return Vector[T]{}, err
	}
	for i := 0; i < v.n; i++ {
		v.data[i] += o.data[i] // v is a copy; the caller's value is untouched
	}

	return v, nil
}

// Sub returns v - o component-wise.
// Errors: ErrLengthMismatch.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	if err := v.sameLen(ctxSub, o); err != nil {
		return Vector[T]{}, err
	}
	for i := 0; i < v.n; i++ {
		v.data[i] -= o.data[i]
	}

	return v, nil
}

// Neg returns -v. Unsigned element types wrap modulo 2^bits.
func (v Vector[T]) Neg() Vector[T] {
	for i := 0; i < v.n; i++ {
		v.data[i] = -v.data[i]
	}

	return v
}

// Scale returns v * s.
func (v Vector[T]) Scale(s T) Vector[T] {
	for i := 0; i < v.n; i++ {
		v.data[i] *= s
	}

	return v
}

// AddAssign adds o to v in place and returns v for chaining.
// On ErrLengthMismatch v is left unchanged.
func (v *Vector[T]) AddAssign(o Vector[T]) (*Vector[T], error) {
	if err := v.sameLen(ctxAddAssign, o); err != nil {
		return v, err
	}
	for i := 0; i < v.n; i++ {
		v.data[i] += o.data[i]
	}

	return v, nil
}

// SubAssign subtracts o from v in place and returns v for chaining.
func (v *Vector[T]) SubAssign(o Vector[T]) (*Vector[T], error) {
	if err := v.sameLen(ctxSubAssign, o); err != nil {
		return v, err
	}
	for i := 0; i < v.n; i++ {
		v.data[i] -= o.data[i]
	}

	return v, nil
}

// ScaleAssign multiplies v by s in place and returns v for chaining.
func (v *Vector[T]) ScaleAssign(s T) *Vector[T] {
	for i := 0; i < v.n; i++ {
		v.data[i] *= s
	}

	return v
}

// Equal reports exact component-wise equality. Vectors of different
// lengths are never equal. No tolerance is applied.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if v.n != o.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Dot returns the inner product Σ v[i]*o[i].
// Errors: ErrLengthMismatch.
func (v Vector[T]) Dot(o Vector[T]) (T, error) {
	if err := v.sameLen(ctxDot, o); err != nil {
		return 0, err
	}
	var sum T
	for i := 0; i < v.n; i++ {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}

// MagnitudeSqrd returns Σ v[i]² in the element type (no promotion).
func (v Vector[T]) MagnitudeSqrd() T {
	var sum T
	for i := 0; i < v.n; i++ {
		sum += v.data[i] * v.data[i]
	}

	return sum
}

// Magnitude returns the Euclidean norm promoted to float64, without
// intermediate overflow or underflow.
//
// Implementation:
//   - Find m = max |v[i]|; an infinite element gives +Inf, NaN gives NaN.
//   - Sum (v[i]/m)² and return m·sqrt(sum), as scalar.Hypot3 does for Vec3.
//
// Complexity: O(n), two passes.
func (v Vector[T]) Magnitude() float64 {
	// Largest absolute element, the scale factor
	var m float64
	for i := 0; i < v.n; i++ {
		f := math.Abs(float64(v.data[i]))
		if math.IsInf(f, 0) {
			return math.Inf(1)
		}
		if math.IsNaN(f) {
			return math.NaN()
		}
		m = math.Max(m, f)
	}
	if m == 0 {
		return 0
	}

	// Sum of squares of the scaled elements, each in [0, 1]
	var sum float64
	for i := 0; i < v.n; i++ {
		f := float64(v.data[i]) / m
		sum += f * f
	}

	return m * math.Sqrt(sum)
}

// String renders "(a, b, c)"; floats use scalar.FormatPrecision decimals.
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < v.n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(scalar.Format(v.data[i]))
	}
	b.WriteByte(')')

	return b.String()
}

// All yields (index, value) pairs in index order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Backward yields (index, value) pairs in reverse index order.
func (v Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Begin returns a cursor on the first element (see Iterator).
func (v *Vector[T]) Begin() Iterator[T] { return newIterator[T](v, 0) }

// ReverseBegin returns a cursor on the last element.
func (v *Vector[T]) ReverseBegin() Iterator[T] { return newIterator[T](v, v.n-1) }

// End returns the past-the-end cursor (index == Len).
func (v *Vector[T]) End() Iterator[T] { return newIterator[T](v, v.n) }

// Normalized returns v / |v| with elements of float type F.
// Integral inputs are promoted, since their unit vector is generally not
// representable in T. A zero vector yields NaN components (0/0), unhandled.
//
//	u := vector.Normalized[float64](iv) // iv is Vector[int]
func Normalized[F constraints.Float, T scalar.Number](v Vector[T]) Vector[F] {
	mag := v.Magnitude()
	out := Vector[F]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.data[i] = F(float64(v.data[i]) / mag)
	}

	return out
}

// Normalize scales v to unit length in place. Restricted to float element
// types at compile time.
func Normalize[T constraints.Float](v *Vector[T]) {
	mag := T(v.Magnitude())
	for i := 0; i < v.n; i++ {
		v.data[i] /= mag
	}
}

// Convert returns v with every element converted to U (Go conversion rules:
// float to integer truncates toward zero).
func Convert[U, T scalar.Number](v Vector[T]) Vector[U] {
	out := Vector[U]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.data[i] = U(v.data[i])
	}

	return out
}
