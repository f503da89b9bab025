// SPDX-License-Identifier: MIT
// Package matrix - products and shape operations on any Matrix[T].
//
// Purpose:
//   - Matrix product (W,H)*(WB,W) -> (WB,H) and Matrix * vector.Vector.
//   - Transposed copy, row/column swaps, minor extraction.
//
// Notes:
//   - Loops run in fixed column→row→k order; results are bit-for-bit
//     reproducible for a given input.
//
// AI-Hints:
//   - Storage is column-major: element (x,y) lives at data[x*h+y], so the
//     innermost loops walk y (or k down a column) for contiguous access.
//   - Every method here works on any shape; the square-only set lives on
//     Square (square.go).
//   - Values are copied in and out; none of these calls alias the receiver.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dmath/vector"
)

const (
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opSwapRows    = "SwapRows"
	opSwapColumns = "SwapColumns"
	opMinor       = "Minor"
)

// Mul returns the product m * b where m is W×H and b is WB×W; the result is WB×H.
//
// Implementation:
//   - result(x,y) = Σ_k m(k,y) * b(x,k), accumulated in T.
//
// Errors:
//   - ErrDimensionMismatch when b.Height() != m.Width().
//
// Complexity:
//   - Time O(WB*H*W), Space O(1) beyond the returned value.
//
// AI-Hints:
//   - Chain transforms right to left: T*R*S applies S first.
//   - Integral T accumulates in T; overflow wraps silently.
func (m Matrix[T]) Mul(b Matrix[T]) (Matrix[T], error) {
	// Inner dimensions must agree
	if b.h != m.w {
		return Matrix[T]{}, matrixErrorf(opMul, fmt.Sprintf("%dx%d * %dx%d", m.w, m.h, b.w, b.h), ErrDimensionMismatch)
	}
	out := Matrix[T]{w: b.w, h: m.h}
	var sum T
	// Column x of the result depends only on column x of b
	for x := 0; x < b.w; x++ {
		for y := 0; y < m.h; y++ {
			// Dot row y of m with column x of b
			sum = 0
			for k := 0; k < m.w; k++ {
				sum += m.data[k*m.h+y] * b.data[x*b.h+k]
			}
			// Store result(x,y)
			out.data[x*out.h+y] = sum
		}
	}

	return out, nil
}

// MulVec returns m * v for a length-W vector; the result has length H.
//
// Errors:
//   - ErrDimensionMismatch when v.Len() != Width.
//   - vector.ErrBadLength when Height is 0 (no empty vectors exist).
//
// Implementation:
//   - Linear combination of columns: result = Σ_x v[x] · column(x).
//
// Complexity: O(W*H).
func (m Matrix[T]) MulVec(v vector.Vector[T]) (vector.Vector[T], error) {
	// Vector length must equal the column count
	if v.Len() != m.w {
		return vector.Vector[T]{}, matrixErrorf(opMulVec, fmt.Sprintf("%dx%d * len=%d", m.w, m.h, v.Len()), ErrDimensionMismatch)
	}
	vals := make([]T, m.h)
	// Accumulate v[x] times column x
	for x, e := range v.All() {
		col := m.data[x*m.h : (x+1)*m.h]
		for y := range vals {
			vals[y] += col[y] * e
		}
	}
	// vector.New rejects a zero-height result
	out, err := vector.New(vals...)
	if err != nil {
		return out, matrixErrorf(opMulVec, fmt.Sprintf("%dx%d", m.w, m.h), err)
	}

	return out, nil
}

// Transposed returns the H×W matrix with rows and columns exchanged.
// The receiver is not modified.
//
// Complexity: O(W*H).
//
// AI-Hints:
//   - For a Square, Transpose works in place without the copy.
func (m Matrix[T]) Transposed() Matrix[T] {
	// Swapped shape
	out := Matrix[T]{w: m.h, h: m.w}
	for x := 0; x < m.w; x++ {
		for y := 0; y < m.h; y++ {
			// (x,y) in m becomes (y,x) in out
			out.data[y*out.h+x] = m.data[x*m.h+y]
		}
	}

	return out
}

// SwapRows exchanges rows a and b in place.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) SwapRows(a, b int) error {
	// Both rows must exist
	if validateIndex(m.h, a) != nil || validateIndex(m.h, b) != nil {
		return matrixErrorf(opSwapRows, fmt.Sprintf("%d,%d", a, b), ErrOutOfRange)
	}
	// One swap per column; a == b is a no-op
	for x := 0; x < m.w; x++ {
		m.data[x*m.h+a], m.data[x*m.h+b] = m.data[x*m.h+b], m.data[x*m.h+a]
	}

	return nil
}

// SwapColumns exchanges columns a and b in place.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) SwapColumns(a, b int) error {
	// Both columns must exist
	if validateIndex(m.w, a) != nil || validateIndex(m.w, b) != nil {
		return matrixErrorf(opSwapColumns, fmt.Sprintf("%d,%d", a, b), ErrOutOfRange)
	}
	// Columns are contiguous runs of h elements; swap them cell by cell
	for y := 0; y < m.h; y++ {
		m.data[a*m.h+y], m.data[b*m.h+y] = m.data[b*m.h+y], m.data[a*m.h+y]
	}

	return nil
}

// Minor returns the (W-1)×(H-1) matrix left after deleting column col and row row.
// Errors: ErrOutOfRange.
//
// AI-Hints:
//   - A 1×1 input yields the 0×0 matrix, whose determinant is 1.
func (m Matrix[T]) Minor(col, row int) (Matrix[T], error) {
	if err := validateCell(m.w, m.h, col, row); err != nil {
		return Matrix[T]{}, matrixErrorf(opMinor, fmt.Sprintf("%d,%d", col, row), err)
	}

	return m.minor(col, row), nil
}

// minor is Minor without bounds checks; callers guarantee the cell exists.
func (m Matrix[T]) minor(col, row int) Matrix[T] {
	out := Matrix[T]{w: m.w - 1, h: m.h - 1}
	// i walks out.data linearly; column-major order is preserved
	i := 0
	for x := 0; x < m.w; x++ {
		if x == col {
			continue
		}
		for y := 0; y < m.h; y++ {
			if y == row {
				continue
			}
			out.data[i] = m.data[x*m.h+y]
			i++
		}
	}

	return out
}
