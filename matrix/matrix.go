// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] storage (column-major) & safe accessors.
//
// Purpose:
//   - Inline column-major buffer with the explicit index formula x*h + y.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - constructors: O(w*h); At/Set: O(1); Column/Row: O(h)/O(w); Data: O(w*h).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dmath/scalar"
	"github.com/katalvlaran/dmath/vector"
)

// MaxDim is the largest supported width or height.
const MaxDim = 8

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxAtIndex     = "AtIndex"
	ctxSetIndex    = "SetIndex"
	ctxColumn      = "Column"
	ctxSetColumn   = "SetColumn"
	ctxRow         = "Row"
	ctxFront       = "Front"
	ctxBack        = "Back"
	ctxFromColumns = "FromColumns"
	ctxFromRows    = "FromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowSep = "\n"
	_fmtSep    = ", "
)

// matrixErrorf wraps err with the method tag and call-site arguments.
func matrixErrorf(method, args string, err error) error {
	return fmt.Errorf("Matrix.%s(%s): %w", method, args, err)
}

// Matrix is a W×H grid of T stored column-major.
//   - w, h hold the dimensions (columns, rows), each in [0, MaxDim].
//   - data holds the elements inline; element (x,y) lives at x*h + y and
//     positions >= w*h are always zero, so == on two Matrix values is exact equality.
type Matrix[T scalar.Number] struct {
	w, h int
	data [MaxDim * MaxDim]T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix[float32]{}

// New builds a w×h matrix from values listed column by column.
// With no values the matrix is zero-filled.
//
// Errors:
//   - ErrInvalidDimensions when w or h is outside [0, MaxDim].
//   - ErrDimensionMismatch when values are given and len(values) != w*h.
//
// Complexity: O(w*h).
func New[T scalar.Number](w, h int, values ...T) (Matrix[T], error) {
	if err := validateDims(w, h); err != nil {
		return Matrix[T]{}, matrixErrorf(ctxNew, fmt.Sprintf("%d,%d", w, h), err)
	}
	if len(values) != 0 && len(values) != w*h {
		return Matrix[T]{}, matrixErrorf(ctxNew, fmt.Sprintf("%d,%d,len=%d", w, h, len(values)), ErrDimensionMismatch)
	}
	m := Matrix[T]{w: w, h: h}
	copy(m.data[:w*h], values)

	return m, nil
}

// Zero returns the w×h additive identity.
func Zero[T scalar.Number](w, h int) (Matrix[T], error) { return New[T](w, h) }

// SingleValue returns a w×h matrix with every element set to value.
func SingleValue[T scalar.Number](w, h int, value T) (Matrix[T], error) {
	m, err := New[T](w, h)
	if err != nil {
		return m, err
	}
	for i := 0; i < w*h; i++ {
		m.data[i] = value
	}

	return m, nil
}

// One returns a w×h matrix of ones.
func One[T scalar.Number](w, h int) (Matrix[T], error) { return SingleValue(w, h, T(1)) }

// FromColumns builds a matrix whose x-th column is cols[x].
//
// Errors:
//   - ErrInvalidDimensions when len(cols) or the column length exceeds MaxDim.
//   - ErrDimensionMismatch when the columns differ in length.
func FromColumns[T scalar.Number](cols ...vector.Vector[T]) (Matrix[T], error) {
	h := 0
	if len(cols) > 0 {
		h = cols[0].Len()
	}
	m, err := New[T](len(cols), h)
	if err != nil {
		return m, matrixErrorf(ctxFromColumns, fmt.Sprintf("n=%d", len(cols)), err)
	}
	for x, c := range cols {
		if err = m.SetColumn(x, c); err != nil {
			return Matrix[T]{}, matrixErrorf(ctxFromColumns, fmt.Sprintf("n=%d", len(cols)), err)
		}
	}

	return m, nil
}

// FromRows builds a matrix whose y-th row is rows[y].
// Errors: as FromColumns.
func FromRows[T scalar.Number](rows ...vector.Vector[T]) (Matrix[T], error) {
	w := 0
	if len(rows) > 0 {
		w = rows[0].Len()
	}
	m, err := New[T](w, len(rows))
	if err != nil {
		return m, matrixErrorf(ctxFromRows, fmt.Sprintf("n=%d", len(rows)), err)
	}
	for y, r := range rows {
		if r.Len() != w {
			return Matrix[T]{}, matrixErrorf(ctxFromRows, fmt.Sprintf("row %d len=%d", y, r.Len()), ErrDimensionMismatch)
		}
		for x, v := range r.All() {
			m.data[x*m.h+y] = v
		}
	}

	return m, nil
}

// Reduced builds a 4×3 reduced affine matrix (4 columns, 3 rows; the
// homogeneous row (0,0,0,1) is implicit) from twelve column-major values.
func Reduced[T scalar.Number](cols [12]T) Matrix[T] {
	m := Matrix[T]{w: 4, h: 3}
	copy(m.data[:], cols[:])

	return m
}

// Width returns the number of columns.
func (m Matrix[T]) Width() int { return m.w }

// Height returns the number of rows.
func (m Matrix[T]) Height() int { return m.h }

// Len returns Width*Height.
func (m Matrix[T]) Len() int { return m.w * m.h }

// IsSquare reports whether Width == Height.
func (m Matrix[T]) IsSquare() bool { return m.w == m.h }

// At returns the element in column x, row y.
// Errors: ErrOutOfRange.
func (m Matrix[T]) At(x, y int) (T, error) {
	if err := validateCell(m.w, m.h, x, y); err != nil {
		return 0, matrixErrorf(ctxAt, fmt.Sprintf("%d,%d", x, y), err)
	}

	return m.data[x*m.h+y], nil
}

// Set stores value in column x, row y.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Set(x, y int, value T) error {
	if err := validateCell(m.w, m.h, x, y); err != nil {
		return matrixErrorf(ctxSet, fmt.Sprintf("%d,%d", x, y), err)
	}
	m.data[x*m.h+y] = value

	return nil
}

// AtIndex returns the element at flat column-major index i.
// Errors: ErrOutOfRange.
func (m Matrix[T]) AtIndex(i int) (T, error) {
	if err := validateIndex(m.w*m.h, i); err != nil {
		return 0, matrixErrorf(ctxAtIndex, fmt.Sprint(i), err)
	}

	return m.data[i], nil
}

// SetIndex stores value at flat column-major index i.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) SetIndex(i int, value T) error {
	if err := validateIndex(m.w*m.h, i); err != nil {
		return matrixErrorf(ctxSetIndex, fmt.Sprint(i), err)
	}
	m.data[i] = value

	return nil
}

// Column returns a copy of column x as a length-H vector.
// Errors: ErrOutOfRange; a height-0 matrix has no representable column
// and yields vector.ErrBadLength.
func (m Matrix[T]) Column(x int) (vector.Vector[T], error) {
	if err := validateIndex(m.w, x); err != nil {
		return vector.Vector[T]{}, matrixErrorf(ctxColumn, fmt.Sprint(x), err)
	}
	v, err := vector.New(m.data[x*m.h : (x+1)*m.h]...)
	if err != nil {
		return v, matrixErrorf(ctxColumn, fmt.Sprint(x), err)
	}

	return v, nil
}

// SetColumn overwrites column x with v.
// Errors: ErrOutOfRange, ErrDimensionMismatch when v.Len() != Height.
func (m *Matrix[T]) SetColumn(x int, v vector.Vector[T]) error {
	if err := validateIndex(m.w, x); err != nil {
		return matrixErrorf(ctxSetColumn, fmt.Sprint(x), err)
	}
	if v.Len() != m.h {
		return matrixErrorf(ctxSetColumn, fmt.Sprintf("%d,len=%d", x, v.Len()), ErrDimensionMismatch)
	}
	for y, e := range v.All() {
		m.data[x*m.h+y] = e
	}

	return nil
}

// Row returns a copy of row y as a length-W vector.
// Errors: ErrOutOfRange (and vector.ErrBadLength for width 0).
func (m Matrix[T]) Row(y int) (vector.Vector[T], error) {
	if err := validateIndex(m.h, y); err != nil {
		return vector.Vector[T]{}, matrixErrorf(ctxRow, fmt.Sprint(y), err)
	}
	vals := make([]T, m.w)
	for x := range vals {
		vals[x] = m.data[x*m.h+y]
	}
	v, err := vector.New(vals...)
	if err != nil {
		return v, matrixErrorf(ctxRow, fmt.Sprint(y), err)
	}

	return v, nil
}

// Front returns the first stored element, (0,0).
// Errors: ErrOutOfRange on an empty matrix.
func (m Matrix[T]) Front() (T, error) {
	if m.w*m.h == 0 {
		return 0, matrixErrorf(ctxFront, "", ErrOutOfRange)
	}

	return m.data[0], nil
}

// Back returns the last stored element, (W-1,H-1).
// Errors: ErrOutOfRange on an empty matrix.
func (m Matrix[T]) Back() (T, error) {
	n := m.w * m.h
	if n == 0 {
		return 0, matrixErrorf(ctxBack, "", ErrOutOfRange)
	}

	return m.data[n-1], nil
}

// Data returns a fresh slice of the elements in column-major order.
func (m Matrix[T]) Data() []T {
	out := make([]T, m.w*m.h)
	copy(out, m.data[:m.w*m.h])

	return out
}

// String renders one line per row, values joined by ", ", with no trailing
// newline. Floats use scalar.FormatPrecision decimals. Display only.
func (m Matrix[T]) String() string {
	var b strings.Builder
	for y := 0; y < m.h; y++ {
		if y > 0 {
			b.WriteString(_fmtRowSep)
		}
		for x := 0; x < m.w; x++ {
			if x > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(scalar.Format(m.data[x*m.h+y]))
		}
	}

	return b.String()
}
