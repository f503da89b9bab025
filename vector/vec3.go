// SPDX-License-Identifier: MIT

// Package vector - Vec3[T]: the 3-component vector with named fields.
//
// Vec3 mirrors the Vector capability set without shape errors (its length
// is part of the type) and adds Cross and elementary-axis rotation.

package vector

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/dmath/scalar"
	"github.com/katalvlaran/dmath/trig"
	"golang.org/x/exp/constraints"
)

// Vec3 is a 3D vector; X, Y, Z alias positions 0, 1, 2.
type Vec3[T scalar.Number] struct {
	X, Y, Z T
}

var _ fmt.Stringer = Vec3[float32]{}

// V3 builds a Vec3 with the element type inferred from the arguments.
func V3[T scalar.Number](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

// Splat3 returns (v, v, v).
func Splat3[T scalar.Number](v T) Vec3[T] { return Vec3[T]{v, v, v} }

// Zero3 returns (0, 0, 0).
func Zero3[T scalar.Number]() Vec3[T] { return Vec3[T]{} }

// One3 returns (1, 1, 1).
func One3[T scalar.Number]() Vec3[T] { return Splat3(T(1)) }

// Direction constants. Y is up and +Z is forward.

// Up returns the +Y unit vector (0, 1, 0).
func Up[T scalar.Number]() Vec3[T] { return Vec3[T]{0, 1, 0} }

// Down returns -Up, (0, -1, 0). Unsigned T wraps; use a signed or float T.
func Down[T scalar.Number]() Vec3[T] { return Vec3[T]{0, 1, 0}.Neg() }

// Right returns the +X unit vector (1, 0, 0).
func Right[T scalar.Number]() Vec3[T] { return Vec3[T]{1, 0, 0} }

// Left returns -Right, (-1, 0, 0).
func Left[T scalar.Number]() Vec3[T] { return Vec3[T]{1, 0, 0}.Neg() }

// Forward returns the +Z unit vector (0, 0, 1), the camera viewing direction.
func Forward[T scalar.Number]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Back returns -Forward, (0, 0, -1).
func Back[T scalar.Number]() Vec3[T] { return Vec3[T]{0, 0, 1}.Neg() }

// Len always returns 3.
func (v Vec3[T]) Len() int { return 3 }

// elem maps index 0..2 to the named fields; callers guarantee the range.
func (v *Vec3[T]) elem(i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	default:
		return &v.Z
	}
}

// At returns component i (0=X, 1=Y, 2=Z) or ErrOutOfRange.
func (v Vec3[T]) At(i int) (T, error) {
	if i < 0 || i >= 3 {
		return 0, fmt.Errorf("Vec3.At(%d): %w", i, ErrOutOfRange)
	}

	return *v.elem(i), nil
}

// Set stores value at component i or returns ErrOutOfRange.
func (v *Vec3[T]) Set(i int, value T) error {
	if i < 0 || i >= 3 {
		return fmt.Errorf("Vec3.Set(%d): %w", i, ErrOutOfRange)
	}
	*v.elem(i) = value

	return nil
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// AddAssign adds o to v in place and returns v for chaining.
func (v *Vec3[T]) AddAssign(o Vec3[T]) *Vec3[T] {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z

	return v
}

// SubAssign subtracts o from v in place and returns v for chaining.
func (v *Vec3[T]) SubAssign(o Vec3[T]) *Vec3[T] {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z

	return v
}

// ScaleAssign multiplies v by s in place and returns v for chaining.
func (v *Vec3[T]) ScaleAssign(s T) *Vec3[T] {
	v.X *= s
	v.Y *= s
	v.Z *= s

	return v
}

// Equal reports exact component-wise equality.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return v == o }

// Dot returns v·o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v×o (right-handed).
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Dot3 is the free-function form of Vec3.Dot.
func Dot3[T scalar.Number](a, b Vec3[T]) T { return a.Dot(b) }

// Cross3 is the free-function form of Vec3.Cross.
func Cross3[T scalar.Number](a, b Vec3[T]) Vec3[T] { return a.Cross(b) }

// MagnitudeSqrd returns X²+Y²+Z² in T.
func (v Vec3[T]) MagnitudeSqrd() T { return v.Dot(v) }

// Magnitude returns the Euclidean norm promoted to float64 (overflow-free).
func (v Vec3[T]) Magnitude() float64 {
	return scalar.Hypot3(float64(v.X), float64(v.Y), float64(v.Z))
}

// Rotated returns v rotated by degrees about one elementary axis, using the
// 2D rotation formula in the plane of the two remaining components:
//
//	X: (y, z) -> (y·cos − z·sin, y·sin + z·cos)
//	Y: (x, z) -> (x·cos − z·sin, x·sin + z·cos)
//	Z: (x, y) -> (x·cos − y·sin, x·sin + y·cos)
//
// The math runs in float64; integral element types truncate on the way back.
//
// Errors: ErrInvalidAxis.
func (v Vec3[T]) Rotated(axis Axis, degrees float64) (Vec3[T], error) {
	if !axis.Valid() {
		return Vec3[T]{}, fmt.Errorf("Vec3.Rotated(%s): %w", axis, ErrInvalidAxis)
	}
	sin, cos := trig.SinCos(trig.Degrees, degrees)
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	switch axis {
	case AxisX:
		y, z = y*cos-z*sin, y*sin+z*cos
	case AxisY:
		x, z = x*cos-z*sin, x*sin+z*cos
	default:
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	return Vec3[T]{T(x), T(y), T(z)}, nil
}

// AsVector returns v as a length-3 Vector.
func (v Vec3[T]) AsVector() Vector[T] {
	return Vector[T]{n: 3, data: [MaxLen]T{v.X, v.Y, v.Z}}
}

// AsVec2 returns (X, Y) as a length-2 Vector.
func (v Vec3[T]) AsVec2() Vector[T] {
	return Vector[T]{n: 2, data: [MaxLen]T{v.X, v.Y}}
}

// AsVec4 returns (X, Y, Z, w) as a length-4 Vector; w=1 makes a point,
// w=0 a direction in homogeneous coordinates.
func (v Vec3[T]) AsVec4(w T) Vector[T] {
	return Vector[T]{n: 4, data: [MaxLen]T{v.X, v.Y, v.Z, w}}
}

// FromVector3 converts a length-3 Vector into a Vec3.
// Errors: ErrLengthMismatch when v.Len() != 3.
func FromVector3[T scalar.Number](v Vector[T]) (Vec3[T], error) {
	if v.n != 3 {
		return Vec3[T]{}, fmt.Errorf("FromVector3(len=%d): %w", v.n, ErrLengthMismatch)
	}

	return Vec3[T]{v.data[0], v.data[1], v.data[2]}, nil
}

// FromHomogeneous drops w from a length-4 Vector after dividing by it
// (perspective divide). A w of zero yields ±Inf/NaN, unhandled.
// Errors: ErrLengthMismatch when v.Len() != 4.
func FromHomogeneous[T constraints.Float](v Vector[T]) (Vec3[T], error) {
	if v.n != 4 {
		return Vec3[T]{}, fmt.Errorf("FromHomogeneous(len=%d): %w", v.n, ErrLengthMismatch)
	}
	w := v.data[3]

	return Vec3[T]{v.data[0] / w, v.data[1] / w, v.data[2] / w}, nil
}

// String renders "(x, y, z)".
func (v Vec3[T]) String() string {
	return "(" + scalar.Format(v.X) + ", " + scalar.Format(v.Y) + ", " + scalar.Format(v.Z) + ")"
}

// All yields (index, component) in X, Y, Z order.
func (v Vec3[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		_ = yield(0, v.X) && yield(1, v.Y) && yield(2, v.Z)
	}
}

// Backward yields (index, component) in Z, Y, X order.
func (v Vec3[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		_ = yield(2, v.Z) && yield(1, v.Y) && yield(0, v.X)
	}
}

// Begin returns a cursor on X.
func (v *Vec3[T]) Begin() Iterator[T] { return newIterator[T](v, 0) }

// ReverseBegin returns a cursor on Z.
func (v *Vec3[T]) ReverseBegin() Iterator[T] { return newIterator[T](v, 2) }

// End returns the past-the-end cursor (index 3).
func (v *Vec3[T]) End() Iterator[T] { return newIterator[T](v, 3) }

// Normalized3 returns v / |v| with float components of type F.
func Normalized3[F constraints.Float, T scalar.Number](v Vec3[T]) Vec3[F] {
	mag := v.Magnitude()

	return Vec3[F]{F(float64(v.X) / mag), F(float64(v.Y) / mag), F(float64(v.Z) / mag)}
}

// Normalize3 scales v to unit length in place (float element types only).
func Normalize3[T constraints.Float](v *Vec3[T]) {
	mag := T(v.Magnitude())
	v.X /= mag
	v.Y /= mag
	v.Z /= mag
}

// Convert3 converts every component to U.
func Convert3[U, T scalar.Number](v Vec3[T]) Vec3[U] { return Vec3[U]{U(v.X), U(v.Y), U(v.Z)} }

// IsFinite reports whether no component is NaN or ±Inf.
func IsFinite[T constraints.Float](v Vec3[T]) bool {
	for _, c := range [3]float64{float64(v.X), float64(v.Y), float64(v.Z)} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}
