// SPDX-License-Identifier: MIT

// Package quat - Quat[T]: Hamilton quaternion with float components.
//
// Determinism:
//   - Every function is a pure computation over its arguments.
//
// Complexity:
//   - All operations are O(1).

package quat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/scalar"
	"github.com/katalvlaran/dmath/trig"
	"github.com/katalvlaran/dmath/vector"
	"golang.org/x/exp/constraints"
)

// slerpLinearThreshold is the cosine above which Slerp falls back to
// normalized linear interpolation (sin θ is too small to divide by).
const slerpLinearThreshold = 0.9995

// Quat is W + Xi + Yj + Zk.
type Quat[T constraints.Float] struct {
	W, X, Y, Z T
}

var _ fmt.Stringer = Quat[float64]{}

// Identity returns the no-rotation quaternion (1, 0, 0, 0).
func Identity[T constraints.Float]() Quat[T] { return Quat[T]{W: 1} }

// FromAxisAngle returns the rotation by amount (in unit u) about axis.
// The axis is normalized first; a zero axis yields NaN components.
// Panics if u is not a valid trig.Unit.
func FromAxisAngle[T constraints.Float](axis vector.Vec3[T], amount T, u trig.Unit) Quat[T] {
	a := vector.Normalized3[T](axis)
	sin, cos := trig.SinCos(trig.Radians, trig.ToRadians(u, amount)/2)

	return Quat[T]{W: cos, X: a.X * sin, Y: a.Y * sin, Z: a.Z * sin}
}

// Vec returns the vector part (X, Y, Z).
func (q Quat[T]) Vec() vector.Vec3[T] { return vector.V3(q.X, q.Y, q.Z) }

// Dot returns the 4D inner product.
func (q Quat[T]) Dot(o Quat[T]) T { return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z }

// Magnitude returns the 4D Euclidean norm.
func (q Quat[T]) Magnitude() float64 {
	return math.Sqrt(float64(q.Dot(q)))
}

// Normalized returns q / |q|.
func (q Quat[T]) Normalized() Quat[T] {
	m := T(q.Magnitude())

	return Quat[T]{q.W / m, q.X / m, q.Y / m, q.Z / m}
}

// Conjugate returns (W, -X, -Y, -Z), the inverse of a unit quaternion.
func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{q.W, -q.X, -q.Y, -q.Z} }

// Mul returns the Hamilton product q*o: applying o first, then q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Rotate applies q to v (q·v·q*), using the expanded form
// v' = v + 2w(u×v) + 2u×(u×v) with u the vector part.
func (q Quat[T]) Rotate(v vector.Vec3[T]) vector.Vec3[T] {
	u := q.Vec()
	t := u.Cross(v).Scale(2)

	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Slerp interpolates along the shorter great arc from a (t=0) to b (t=1).
func Slerp[T constraints.Float](a, b Quat[T], t T) Quat[T] {
	d := a.Dot(b)
	if d < 0 {
		b = Quat[T]{-b.W, -b.X, -b.Y, -b.Z}
		d = -d
	}
	if d > slerpLinearThreshold {
		return Quat[T]{
			scalar.Lerp(a.W, b.W, t),
			scalar.Lerp(a.X, b.X, t),
			scalar.Lerp(a.Y, b.Y, t),
			scalar.Lerp(a.Z, b.Z, t),
		}.Normalized()
	}
	theta := math.Acos(float64(d))
	sinTheta := math.Sin(theta)
	wa := T(math.Sin((1-float64(t))*theta) / sinTheta)
	wb := T(math.Sin(float64(t)*theta) / sinTheta)

	return Quat[T]{
		a.W*wa + b.W*wb,
		a.X*wa + b.X*wb,
		a.Y*wa + b.Y*wb,
		a.Z*wa + b.Z*wb,
	}
}

// rotation returns the 3×3 rotation block in column-major order.
func (q Quat[T]) rotation() [9]T {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return [9]T{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy),
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx),
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy),
	}
}

// ToMatrix3 returns the 3×3 rotation matrix of a unit quaternion.
func (q Quat[T]) ToMatrix3() matrix.Square[T] { return matrix.Square3(q.rotation()) }

// ToMatrix4 returns the homogeneous 4×4 rotation matrix.
func (q Quat[T]) ToMatrix4() matrix.Square[T] {
	r := q.rotation()

	return matrix.Square4([16]T{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	})
}

// ToReduced returns the 4×3 reduced affine rotation (zero translation).
func (q Quat[T]) ToReduced() matrix.Matrix[T] {
	r := q.rotation()

	return matrix.Reduced([12]T{
		r[0], r[1], r[2],
		r[3], r[4], r[5],
		r[6], r[7], r[8],
		0, 0, 0,
	})
}

// String renders "(w; x, y, z)".
func (q Quat[T]) String() string {
	return "(" + scalar.Format(q.W) + "; " + scalar.Format(q.X) + ", " +
		scalar.Format(q.Y) + ", " + scalar.Format(q.Z) + ")"
}
