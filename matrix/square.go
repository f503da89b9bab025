// SPDX-License-Identifier: MIT

// Package matrix - Square[T]: the square-only capability set.
//
// Purpose:
//   - Determinant (Laplace expansion), adjugate, adjugate-based inverse,
//     identity and in-place transpose, available only on values whose
//     squareness was checked at construction.
//
// Determinism:
//   - Expansion always runs along row 0, columns in ascending order.
//
// Complexity quicksheet:
//   - Determinant: O(n!) for n >= 3 (n <= MaxDim keeps this bounded).
//   - Adjugate/Inverse: n² determinants of (n-1)×(n-1) minors.
//   - Transpose: O(n²) in place.
//
// AI-Hints:
//   - Obtain a Square through NewSquare, Identity, Square3/Square4 or
//     AsSquare; a Matrix that is square by accident has no Determinant.
//   - Inverse uses an exact zero test. For float inputs that may be nearly
//     singular, check IsSingular on a rounded copy or compare the determinant
//     against a tolerance before inverting.
//   - Prefer Square3/Square4 in hot paths: the array literal fixes the shape
//     and skips every runtime check.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dmath/scalar"
)

const (
	ctxIdentity  = "Identity"
	ctxNewSquare = "NewSquare"
	ctxAsSquare  = "AsSquare"
	opInverse    = "Inverse"
	opMulSquare  = "MulSquare"
)

// Square is an n×n Matrix. The embedded Matrix exposes every general
// operation; the methods below exist only for square shapes.
type Square[T scalar.Number] struct {
	Matrix[T]
}

// Identity returns the n×n matrix with ones on the main diagonal.
// Errors: ErrInvalidDimensions.
func Identity[T scalar.Number](n int) (Square[T], error) {
	// Zero-filled n×n base; NewSquare validates n
	s, err := NewSquare[T](n)
	if err != nil {
		return s, matrixErrorf(ctxIdentity, fmt.Sprint(n), err)
	}
	// Diagonal cell (i,i) sits at column i, row i: index i*n+i
	for i := 0; i < n; i++ {
		s.data[i*n+i] = 1
	}

	return s, nil
}

// NewSquare builds an n×n matrix from column-major values (zero-filled when
// none are given).
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
func NewSquare[T scalar.Number](n int, values ...T) (Square[T], error) {
	m, err := New(n, n, values...)
	if err != nil {
		return Square[T]{}, matrixErrorf(ctxNewSquare, fmt.Sprint(n), err)
	}

	return Square[T]{m}, nil
}

// Square3 builds a 3×3 matrix from exactly nine column-major values.
// The array length fixes the shape, so no error is possible.
func Square3[T scalar.Number](cols [9]T) Square[T] {
	s := Square[T]{Matrix[T]{w: 3, h: 3}}
	copy(s.data[:], cols[:])

	return s
}

// Square4 builds a 4×4 matrix from exactly sixteen column-major values.
func Square4[T scalar.Number](cols [16]T) Square[T] {
	s := Square[T]{Matrix[T]{w: 4, h: 4}}
	copy(s.data[:], cols[:])

	return s
}

// AsSquare wraps m after checking Width == Height.
// Errors: ErrNonSquare.
func AsSquare[T scalar.Number](m Matrix[T]) (Square[T], error) {
	if !m.IsSquare() {
		return Square[T]{}, matrixErrorf(ctxAsSquare, fmt.Sprintf("%dx%d", m.w, m.h), ErrNonSquare)
	}

	return Square[T]{m}, nil
}

// Size returns n.
func (s Square[T]) Size() int { return s.w }

// Determinant returns det(s).
//
// Inputs:
//   - s: any Square, including the 0×0 one.
//
// Implementation:
//   - n == 0: 1 (empty product); n == 1: the single element;
//     n == 2: a·d − c·b in column-major terms.
//   - n >= 3: Laplace expansion along row 0, sign + at column 0 and
//     alternating; zero entries are skipped without computing their minor.
//
// Complexity: O(n!).
//
// AI-Hints:
//   - Integral T accumulates in T and may overflow for large entries; convert
//     to float64 first if the magnitudes are unknown.
//   - Sparse first rows are cheap: each zero in row 0 prunes a whole subtree.
func (s Square[T]) Determinant() T { return determinant(s.Matrix) }

// determinant assumes m is square.
func determinant[T scalar.Number](m Matrix[T]) T {
	d := m.data[:]
	// Closed forms for the base cases
	switch m.w {
	case 0:
		return 1
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[2]*d[1]
	}
	// Expand along row 0: element (x,0) sits at index x*h
	var det T
	sign := T(1)
	for x := 0; x < m.w; x++ {
		// Zero cofactor terms contribute nothing; skip their minors
		if e := d[x*m.h]; e != 0 {
			det += sign * e * determinant(m.minor(x, 0))
		}
		// Checkerboard sign along the row
		sign = -sign
	}

	return det
}

// IsSingular reports whether the determinant is exactly zero.
func (s Square[T]) IsSingular() bool { return s.Determinant() == 0 }

// Adjugate returns the transpose of the cofactor matrix:
// adj(y,x) = (-1)^(x+y) · det(minor(x,y)).
//
// Implementation:
//   - Cofactor C(x,y) = (-1)^(x+y) · det(minor(x,y)).
//   - The transpose is folded into the write: C(x,y) lands at cell (y,x).
//
// Complexity: n² determinants of size n-1.
//
// AI-Hints:
//   - For 0×0 and 1×1 inputs the minors are empty and the result is the
//     identity of that size (det of an empty minor is 1).
func (s Square[T]) Adjugate() Square[T] {
	n := s.w
	out := Square[T]{Matrix[T]{w: n, h: n}}
	for x := 0; x < n; x++ {
		// Sign at (x,0) is (-1)^x
		factor := T(1)
		if x%2 == 1 {
			factor = -factor
		}
		for y := 0; y < n; y++ {
			// Write C(x,y) transposed, at column y, row x
			out.data[y*n+x] = factor * determinant(s.minor(x, y))
			// Next row flips the sign
			factor = -factor
		}
	}

	return out
}

// Inverse returns adj(s) / det(s).
//
// Behavior highlights:
//   - Exact zero test on the determinant; a nearly singular float matrix
//     inverts to huge values rather than failing.
//   - Integral element types divide with truncation, so the result is only
//     exact for unimodular integer matrices.
//
// Errors:
//   - ErrSingular when det(s) == 0.
//
// Complexity: one determinant plus one adjugate, O(n² · (n-1)!).
//
// AI-Hints:
//   - Use TryInverse when singularity is an expected outcome, not an error.
//   - For rigid transforms (rotation + translation) transpose the rotation
//     block instead; it is exact and O(n²).
func (s Square[T]) Inverse() (Square[T], error) {
	// Exact singularity test
	det := s.Determinant()
	if det == 0 {
		return Square[T]{}, matrixErrorf(opInverse, fmt.Sprintf("%dx%d", s.w, s.h), ErrSingular)
	}
	// adj(s) / det(s), element-wise over the used prefix of data
	inv := s.Adjugate()
	for i := 0; i < s.w*s.h; i++ {
		inv.data[i] /= det
	}

	return inv, nil
}

// TryInverse is Inverse in comma-ok form: (inverse, true) or (zero, false).
func (s Square[T]) TryInverse() (Square[T], bool) {
	inv, err := s.Inverse()

	return inv, err == nil
}

// Transpose mirrors s across its main diagonal in place and returns s,
// so calls chain: s.Transpose().Determinant().
//
// Complexity: O(n²), no allocation.
func (s *Square[T]) Transpose() *Square[T] {
	n := s.w
	// Visit the strict lower triangle once; the diagonal stays put
	for x := 1; x < n; x++ {
		for y := 0; y < x; y++ {
			s.data[x*n+y], s.data[y*n+x] = s.data[y*n+x], s.data[x*n+y]
		}
	}

	return s
}

// MulSquare returns s * b as a Square.
// Errors: ErrDimensionMismatch when the sizes differ.
func (s Square[T]) MulSquare(b Square[T]) (Square[T], error) {
	// General product; equal sizes keep the result square
	p, err := s.Mul(b.Matrix)
	if err != nil {
		return Square[T]{}, matrixErrorf(opMulSquare, fmt.Sprintf("%d * %d", s.w, b.w), err)
	}

	return Square[T]{p}, nil
}
