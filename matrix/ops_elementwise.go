// SPDX-License-Identifier: MIT

// Package matrix - element-wise kernels.
//
// Purpose:
//   - Add/Sub/Neg/Scale and their in-place variants, exact Equal and the
//     tolerance-based AllClose.
//
// Determinism:
//   - Flat 0..w*h-1 walk over the column-major buffer.
//
// Complexity:
//   - Time O(w*h), no allocation (results are values).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dmath/scalar"
	"golang.org/x/exp/constraints"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddAssign = "AddAssign"
	opSubAssign = "SubAssign"
)

// sameShape wraps validateSameShape with the operand shapes.
func (m Matrix[T]) sameShape(op string, o Matrix[T]) error {
	if err := validateSameShape(m.w, m.h, o.w, o.h); err != nil {
		return matrixErrorf(op, fmt.Sprintf("%dx%d vs %dx%d", m.w, m.h, o.w, o.h), err)
	}

	return nil
}

// addSub adds (or, with sub, subtracts) o into m over the used prefix.
// Callers have validated the shapes.
func (m *Matrix[T]) addSub(o Matrix[T], sub bool) {
	n := m.w * m.h
	if sub {
		for i := 0; i < n; i++ {
			m.data[i] -= o.data[i]
		}

		return
	}
	for i := 0; i < n; i++ {
		m.data[i] += o.data[i]
	}
}

// Add returns m + o element-wise.
//
// Errors:
//   - ErrDimensionMismatch (shape mismatch).
//
// Complexity: O(w*h).
func (m Matrix[T]) Add(o Matrix[T]) (Matrix[T], error) {
	if err := m.sameShape(opAdd, o); err != nil {
		return Matrix[T]{}, err
	}
	m.addSub(o, false)

	return m, nil
}

// Sub returns m - o element-wise.
// Errors: ErrDimensionMismatch.
func (m Matrix[T]) Sub(o Matrix[T]) (Matrix[T], error) {
	if err := m.sameShape(opSub, o); err != nil {
		return Matrix[T]{}, err
	}
	m.addSub(o, true)

	return m, nil
}

// Neg returns -m. Unsigned element types wrap modulo 2^bits.
func (m Matrix[T]) Neg() Matrix[T] {
	for i := 0; i < m.w*m.h; i++ {
		m.data[i] = -m.data[i]
	}

	return m
}

// Scale returns m * s.
func (m Matrix[T]) Scale(s T) Matrix[T] {
	m.ScaleAssign(s)

	return m
}

// AddAssign adds o to m in place and returns m for chaining.
// On ErrDimensionMismatch m is left unchanged.
func (m *Matrix[T]) AddAssign(o Matrix[T]) (*Matrix[T], error) {
	if err := m.sameShape(opAddAssign, o); err != nil {
		return m, err
	}
	m.addSub(o, false)

	return m, nil
}

// SubAssign subtracts o from m in place and returns m for chaining.
func (m *Matrix[T]) SubAssign(o Matrix[T]) (*Matrix[T], error) {
	if err := m.sameShape(opSubAssign, o); err != nil {
		return m, err
	}
	m.addSub(o, true)

	return m, nil
}

// ScaleAssign multiplies every element by s in place.
func (m *Matrix[T]) ScaleAssign(s T) *Matrix[T] {
	for i := 0; i < m.w*m.h; i++ {
		m.data[i] *= s
	}

	return m
}

// Equal reports exact equality of shape and elements. No tolerance.
func (m Matrix[T]) Equal(o Matrix[T]) bool { return m == o }

// AllClose reports whether a and b share a shape and every pair of elements
// satisfies |a-b| <= tol. NaN never compares close.
//
// Complexity: O(w*h).
func AllClose[T constraints.Float](a, b Matrix[T], tol float64) bool {
	if a.w != b.w || a.h != b.h {
		return false
	}
	for i := 0; i < a.w*a.h; i++ {
		d := math.Abs(float64(a.data[i]) - float64(b.data[i]))
		if !(d <= tol) {
			return false
		}
	}

	return true
}

// ApproxEqual is AllClose with scalar.DefaultTolerance.
func ApproxEqual[T constraints.Float](a, b Matrix[T]) bool {
	return AllClose(a, b, scalar.DefaultTolerance)
}
