// SPDX-License-Identifier: MIT

// Package transform - rotation builders.
//
// All rotations are right-handed: a positive angle turns the next axis
// towards the one after it (X: Y→Z, Y: Z→X, Z: X→Y) for column vectors.

package transform

import (
	"fmt"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/quat"
	"github.com/katalvlaran/dmath/trig"
	"github.com/katalvlaran/dmath/vector"
	"golang.org/x/exp/constraints"
)

const (
	opRotateAxis = "RotateAxis"
	opRotateHomo = "RotateHomo"
)

// elementary returns the 3×3 column-major block for a rotation about axis;
// the caller has validated axis.
func elementary[T constraints.Float](axis vector.Axis, sin, cos T) [9]T {
	switch axis {
	case vector.AxisX:
		return [9]T{
			1, 0, 0,
			0, cos, sin,
			0, -sin, cos,
		}
	case vector.AxisY:
		return [9]T{
			cos, 0, -sin,
			0, 1, 0,
			sin, 0, cos,
		}
	default:
		return [9]T{
			cos, sin, 0,
			-sin, cos, 0,
			0, 0, 1,
		}
	}
}

// homogeneous embeds a 3×3 column-major block in a 4×4 transform.
func homogeneous[T constraints.Float](r [9]T) matrix.Square[T] {
	return matrix.Square4([16]T{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	})
}

// RotateAxis returns the 3×3 rotation by amount about one elementary axis.
//
// Errors:
//   - vector.ErrInvalidAxis when axis is not AxisX, AxisY or AxisZ.
func RotateAxis[T constraints.Float](axis vector.Axis, amount T, opts ...Option) (matrix.Square[T], error) {
	if !axis.Valid() {
		return matrix.Square[T]{}, fmt.Errorf("%s(%s): %w", opRotateAxis, axis, vector.ErrInvalidAxis)
	}
	sin, cos := trig.SinCos(gatherOptions(opts...).unit, amount)

	return matrix.Square3(elementary(axis, sin, cos)), nil
}

// RotateHomo returns the 4×4 rotation by amount about one elementary axis.
//
// Errors:
//   - vector.ErrInvalidAxis when axis is not AxisX, AxisY or AxisZ.
func RotateHomo[T constraints.Float](axis vector.Axis, amount T, opts ...Option) (matrix.Square[T], error) {
	if !axis.Valid() {
		return matrix.Square[T]{}, fmt.Errorf("%s(%s): %w", opRotateHomo, axis, vector.ErrInvalidAxis)
	}
	sin, cos := trig.SinCos(gatherOptions(opts...).unit, amount)

	return homogeneous(elementary(axis, sin, cos)), nil
}

// Rotate returns the 3×3 Euler rotation Rz(z) · Ry(y) · Rx(x): applied to a
// vector, X turns first, then Y, then Z.
func Rotate[T constraints.Float](x, y, z T, opts ...Option) matrix.Square[T] {
	u := gatherOptions(opts...).unit
	sx, cx := trig.SinCos(u, x)
	sy, cy := trig.SinCos(u, y)
	sz, cz := trig.SinCos(u, z)
	rx := matrix.Square3(elementary(vector.AxisX, sx, cx))
	ry := matrix.Square3(elementary(vector.AxisY, sy, cy))
	rz := matrix.Square3(elementary(vector.AxisZ, sz, cz))

	// 3×3 by 3×3 products cannot fail.
	zy, _ := rz.MulSquare(ry)
	out, _ := zy.MulSquare(rx)

	return out
}

// RotateVec is Rotate(angles.X, angles.Y, angles.Z).
func RotateVec[T constraints.Float](angles vector.Vec3[T], opts ...Option) matrix.Square[T] {
	return Rotate(angles.X, angles.Y, angles.Z, opts...)
}

// RotateAround returns the 3×3 rotation by amount about an arbitrary axis
// (normalized internally), using the Rodrigues closed form
//
//	R = cos·I + (1−cos)·a·aᵀ + sin·[a]×
//
// A zero axis yields NaN entries.
func RotateAround[T constraints.Float](axis vector.Vec3[T], amount T, opts ...Option) matrix.Square[T] {
	a := vector.Normalized3[T](axis)
	sin, cos := trig.SinCos(gatherOptions(opts...).unit, amount)
	k := 1 - cos

	return matrix.Square3([9]T{
		cos + a.X*a.X*k, a.Y*a.X*k + a.Z*sin, a.Z*a.X*k - a.Y*sin,
		a.X*a.Y*k - a.Z*sin, cos + a.Y*a.Y*k, a.Z*a.Y*k + a.X*sin,
		a.X*a.Z*k + a.Y*sin, a.Y*a.Z*k - a.X*sin, cos + a.Z*a.Z*k,
	})
}

// RotateQuatHomo returns the 4×4 rotation of a unit quaternion.
func RotateQuatHomo[T constraints.Float](q quat.Quat[T]) matrix.Square[T] { return q.ToMatrix4() }

// RotateQuatReduced returns the 4×3 reduced rotation of a unit quaternion.
func RotateQuatReduced[T constraints.Float](q quat.Quat[T]) matrix.Matrix[T] { return q.ToReduced() }
