// SPDX-License-Identifier: MIT

// Package convert - array interop with golang.org/x/image/math.
//
// Mapping table:
//   - vector.Vec3[T]        <-> f32.Vec3 / f64.Vec3
//   - 3×3 matrix.Square[T]  <-> f32.Mat3 / f64.Mat3
//   - 4×4 matrix.Square[T]  <-> f32.Mat4 / f64.Mat4
//   - 4×3 reduced affine    <-> f64.Aff4 (3 rows of 4)
//   - 3×3 2D homogeneous    ->  f64.Aff3 (top 2 rows, used by x/image/draw)

package convert

import (
	"fmt"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/scalar"
	"github.com/katalvlaran/dmath/vector"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Vec3ToF32 converts v element-wise to float32.
func Vec3ToF32[T scalar.Number](v vector.Vec3[T]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3ToF64 converts v element-wise to float64.
func Vec3ToF64[T scalar.Number](v vector.Vec3[T]) f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vec3FromF32 is the inverse of Vec3ToF32.
func Vec3FromF32(v f32.Vec3) vector.Vec3[float32] { return vector.V3(v[0], v[1], v[2]) }

// Vec3FromF64 is the inverse of Vec3ToF64.
func Vec3FromF64(v f64.Vec3) vector.Vec3[float64] { return vector.V3(v[0], v[1], v[2]) }

// Mat3ToF32 returns the 3×3 matrix m in row-major float32 order.
// Errors: ErrShape when m is not 3×3.
func Mat3ToF32[T scalar.Number](m matrix.Square[T]) (f32.Mat3, error) {
	var out f32.Mat3
	err := rowMajor(m.Matrix, 3, 3, out[:])

	return out, wrap("Mat3ToF32", m.Matrix, err)
}

// Mat3ToF64 returns the 3×3 matrix m in row-major float64 order.
// Errors: ErrShape when m is not 3×3.
func Mat3ToF64[T scalar.Number](m matrix.Square[T]) (f64.Mat3, error) {
	var out f64.Mat3
	err := rowMajor(m.Matrix, 3, 3, out[:])

	return out, wrap("Mat3ToF64", m.Matrix, err)
}

// Mat4ToF32 returns the 4×4 matrix m in row-major float32 order.
// Errors: ErrShape when m is not 4×4.
func Mat4ToF32[T scalar.Number](m matrix.Square[T]) (f32.Mat4, error) {
	var out f32.Mat4
	err := rowMajor(m.Matrix, 4, 4, out[:])

	return out, wrap("Mat4ToF32", m.Matrix, err)
}

// Mat4ToF64 returns the 4×4 matrix m in row-major float64 order.
// Errors: ErrShape when m is not 4×4.
func Mat4ToF64[T scalar.Number](m matrix.Square[T]) (f64.Mat4, error) {
	var out f64.Mat4
	err := rowMajor(m.Matrix, 4, 4, out[:])

	return out, wrap("Mat4ToF64", m.Matrix, err)
}

// Mat3FromF64 builds a 3×3 matrix from row-major values.
func Mat3FromF64(a f64.Mat3) matrix.Square[float64] {
	var cols [9]float64
	columnMajor(a[:], 3, 3, cols[:])

	return matrix.Square3(cols)
}

// Mat4FromF32 builds a 4×4 matrix from row-major values.
func Mat4FromF32(a f32.Mat4) matrix.Square[float32] {
	var cols [16]float32
	columnMajor(a[:], 4, 4, cols[:])

	return matrix.Square4(cols)
}

// Mat4FromF64 builds a 4×4 matrix from row-major values.
func Mat4FromF64(a f64.Mat4) matrix.Square[float64] {
	var cols [16]float64
	columnMajor(a[:], 4, 4, cols[:])

	return matrix.Square4(cols)
}

// ReducedToAff4 returns the 4×3 reduced affine m as an f64.Aff4, whose three
// rows of four hold the linear part and the translation column.
// Errors: ErrShape when m is not 4 wide and 3 high.
func ReducedToAff4[T scalar.Number](m matrix.Matrix[T]) (f64.Aff4, error) {
	var out f64.Aff4
	err := rowMajor(m, 4, 3, out[:])

	return out, wrap("ReducedToAff4", m, err)
}

// Aff4ToReduced is the inverse of ReducedToAff4.
func Aff4ToReduced(a f64.Aff4) matrix.Matrix[float64] {
	var cols [12]float64
	columnMajor(a[:], 4, 3, cols[:])

	return matrix.Reduced(cols)
}

// Aff3FromSquare3 returns the top two rows of a 3×3 homogeneous 2D transform
// as the f64.Aff3 consumed by golang.org/x/image/draw. The bottom row is
// assumed to be (0, 0, 1) and is dropped.
// Errors: ErrShape when m is not 3×3.
func Aff3FromSquare3[T scalar.Number](m matrix.Square[T]) (f64.Aff3, error) {
	var full f64.Mat3
	if err := rowMajor(m.Matrix, 3, 3, full[:]); err != nil {
		return f64.Aff3{}, wrap("Aff3FromSquare3", m.Matrix, err)
	}

	return f64.Aff3{full[0], full[1], full[2], full[3], full[4], full[5]}, nil
}

// rowMajor copies m into dst with dst[y*w+x] = m(x, y).
func rowMajor[T scalar.Number, F float32 | float64](m matrix.Matrix[T], w, h int, dst []F) error {
	if m.Width() != w || m.Height() != h {
		return ErrShape
	}
	for x := 0; x < w; x++ {
		col, err := m.Column(x)
		if err != nil {
			return err
		}
		for y, v := range col.All() {
			dst[y*w+x] = F(v)
		}
	}

	return nil
}

// columnMajor is the inverse of rowMajor over plain slices.
func columnMajor[T float32 | float64](src []T, w, h int, dst []T) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst[x*h+y] = src[y*w+x]
		}
	}
}

func wrap[T scalar.Number](op string, m matrix.Matrix[T], err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s(%dx%d): %w", op, m.Width(), m.Height(), err)
}
