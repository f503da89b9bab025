// SPDX-License-Identifier: MIT

// Package transform - translation builders and reduced-affine composition.
//
// Purpose:
//   - Translate in full 4×4 and reduced 4×3 form.
//   - Overwrite the translation column of an existing transform.
//   - Compose reduced transforms without expanding to 4×4.
//
// Complexity:
//   - Every builder is O(1); Multiply is 36 multiply-adds.

package transform

import (
	"fmt"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/vector"
	"golang.org/x/exp/constraints"
)

const (
	opAddTranslation        = "AddTranslation"
	opAddTranslationReduced = "AddTranslationReduced"
	opMultiply              = "Multiply"
	opAsMat4                = "AsMat4"
)

// transformErrorf wraps err with the builder name and the offending shape.
func transformErrorf(op string, w, h int, err error) error {
	return fmt.Errorf("%s(%dx%d): %w", op, w, h, err)
}

// isReduced reports whether m has the 4×3 reduced-affine shape.
func isReduced[T constraints.Float](m matrix.Matrix[T]) bool {
	return m.Width() == 4 && m.Height() == 3
}

// Translate returns the 4×4 translation by (x, y, z).
func Translate[T constraints.Float](x, y, z T) matrix.Square[T] {
	return matrix.Square4([16]T{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	})
}

// TranslateVec is Translate(v.X, v.Y, v.Z).
func TranslateVec[T constraints.Float](v vector.Vec3[T]) matrix.Square[T] {
	return Translate(v.X, v.Y, v.Z)
}

// TranslateReduced returns the 4×3 translation by (x, y, z).
func TranslateReduced[T constraints.Float](x, y, z T) matrix.Matrix[T] {
	return matrix.Reduced([12]T{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		x, y, z,
	})
}

// TranslateReducedVec is TranslateReduced(v.X, v.Y, v.Z).
func TranslateReducedVec[T constraints.Float](v vector.Vec3[T]) matrix.Matrix[T] {
	return TranslateReduced(v.X, v.Y, v.Z)
}

// AddTranslation overwrites rows 0..2 of column 3 of a 4×4 transform with
// (x, y, z). The rest of m is untouched.
//
// Errors:
//   - matrix.ErrDimensionMismatch when m is not 4×4.
func AddTranslation[T constraints.Float](m *matrix.Square[T], x, y, z T) error {
	if m.Size() != 4 {
		return transformErrorf(opAddTranslation, m.Width(), m.Height(), matrix.ErrDimensionMismatch)
	}

	return setTranslation(&m.Matrix, x, y, z)
}

// AddTranslationVec is AddTranslation(m, v.X, v.Y, v.Z).
func AddTranslationVec[T constraints.Float](m *matrix.Square[T], v vector.Vec3[T]) error {
	return AddTranslation(m, v.X, v.Y, v.Z)
}

// AddTranslationReduced overwrites column 3 of a 4×3 transform with (x, y, z).
//
// Errors:
//   - matrix.ErrDimensionMismatch when m is not 4×3.
func AddTranslationReduced[T constraints.Float](m *matrix.Matrix[T], x, y, z T) error {
	if !isReduced(*m) {
		return transformErrorf(opAddTranslationReduced, m.Width(), m.Height(), matrix.ErrDimensionMismatch)
	}

	return setTranslation(m, x, y, z)
}

// AddTranslationReducedVec is AddTranslationReduced(m, v.X, v.Y, v.Z).
func AddTranslationReducedVec[T constraints.Float](m *matrix.Matrix[T], v vector.Vec3[T]) error {
	return AddTranslationReduced(m, v.X, v.Y, v.Z)
}

// setTranslation writes (x, y, z) into column 3; the shape was checked.
func setTranslation[T constraints.Float](m *matrix.Matrix[T], x, y, z T) error {
	for row, v := range [3]T{x, y, z} {
		if err := m.Set(3, row, v); err != nil {
			return err
		}
	}

	return nil
}

// Multiply composes two reduced affine transforms: the result applies b
// first, then a, exactly as AsMat4(a) * AsMat4(b) would.
//
// Implementation:
//   - 3×3 block: standard product of the linear parts.
//   - column 3: a's linear part applied to b's translation, plus a's translation.
//
// Errors:
//   - matrix.ErrDimensionMismatch when either operand is not 4×3.
func Multiply[T constraints.Float](a, b matrix.Matrix[T]) (matrix.Matrix[T], error) {
	if !isReduced(a) {
		return matrix.Matrix[T]{}, transformErrorf(opMultiply, a.Width(), a.Height(), matrix.ErrDimensionMismatch)
	}
	if !isReduced(b) {
		return matrix.Matrix[T]{}, transformErrorf(opMultiply, b.Width(), b.Height(), matrix.ErrDimensionMismatch)
	}
	ad, bd := a.Data(), b.Data()
	var out [12]T
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			var dot T
			for i := 0; i < 3; i++ {
				dot += ad[i*3+y] * bd[x*3+i]
			}
			if x == 3 {
				dot += ad[9+y]
			}
			out[x*3+y] = dot
		}
	}

	return matrix.Reduced(out), nil
}

// AsMat4 expands a reduced 4×3 transform to 4×4 by appending the row (0, 0, 0, 1).
//
// Errors:
//   - matrix.ErrDimensionMismatch when m is not 4×3.
func AsMat4[T constraints.Float](m matrix.Matrix[T]) (matrix.Square[T], error) {
	if !isReduced(m) {
		return matrix.Square[T]{}, transformErrorf(opAsMat4, m.Width(), m.Height(), matrix.ErrDimensionMismatch)
	}
	d := m.Data()

	return matrix.Square4([16]T{
		d[0], d[1], d[2], 0,
		d[3], d[4], d[5], 0,
		d[6], d[7], d[8], 0,
		d[9], d[10], d[11], 1,
	}), nil
}
