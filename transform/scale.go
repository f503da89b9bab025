// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/vector"
	"golang.org/x/exp/constraints"
)

// Scale returns the 3×3 diagonal scale diag(x, y, z).
func Scale[T constraints.Float](x, y, z T) matrix.Square[T] {
	return matrix.Square3([9]T{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	})
}

// ScaleVec is Scale(v.X, v.Y, v.Z).
func ScaleVec[T constraints.Float](v vector.Vec3[T]) matrix.Square[T] { return Scale(v.X, v.Y, v.Z) }

// ScaleHomo returns the 4×4 scale diag(x, y, z, 1).
func ScaleHomo[T constraints.Float](x, y, z T) matrix.Square[T] {
	return matrix.Square4([16]T{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

// ScaleHomoVec is ScaleHomo(v.X, v.Y, v.Z).
func ScaleHomoVec[T constraints.Float](v vector.Vec3[T]) matrix.Square[T] {
	return ScaleHomo(v.X, v.Y, v.Z)
}

// ScaleReduced returns the 4×3 reduced scale with zero translation.
func ScaleReduced[T constraints.Float](x, y, z T) matrix.Matrix[T] {
	return matrix.Reduced([12]T{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
		0, 0, 0,
	})
}

// ScaleReducedVec is ScaleReduced(v.X, v.Y, v.Z).
func ScaleReducedVec[T constraints.Float](v vector.Vec3[T]) matrix.Matrix[T] {
	return ScaleReduced(v.X, v.Y, v.Z)
}
