// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every exported operation returns one of these, wrapped with
// "Matrix.<Method>(args): %w" at the detection site; callers match with
// errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a width or height outside [0, MaxDim].
	ErrInvalidDimensions = errors.New("matrix: dimensions must be within [0, MaxDim]")

	// ErrOutOfRange indicates that an index (column, row or flat) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, Mul where b.Height() != a.Width(), or a value list
	// whose length differs from W*H.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")
)
