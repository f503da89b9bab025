// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/vector"
	"golang.org/x/exp/constraints"
)

// LookAtLH returns a left-handed view matrix for a camera at eye looking at
// the point target (+Z points from eye towards target).
// Degenerate input (eye == target, or up parallel to the view direction)
// yields NaN entries.
func LookAtLH[T constraints.Float](eye, target, up vector.Vec3[T]) matrix.Square[T] {
	return lookAt(eye, vector.Normalized3[T](target.Sub(eye)), up)
}

// LookAtRH returns a right-handed view matrix for a camera at eye looking at
// the point target (the camera looks down -Z, +Z points back towards eye).
func LookAtRH[T constraints.Float](eye, target, up vector.Vec3[T]) matrix.Square[T] {
	return lookAt(eye, vector.Normalized3[T](eye.Sub(target)), up)
}

// lookAt builds the view matrix from the camera z axis:
// x = normalize(up × z), y = z × x, translation = -(axis · eye).
func lookAt[T constraints.Float](eye, z, up vector.Vec3[T]) matrix.Square[T] {
	x := vector.Normalized3[T](up.Cross(z))
	y := z.Cross(x)

	return matrix.Square4([16]T{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	})
}
