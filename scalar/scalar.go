// SPDX-License-Identifier: MIT

// Package scalar - element-wise numeric helpers.
//
// Purpose:
//   - One generic implementation per helper, bounded by the narrowest
//     constraint that keeps the operation meaningful.
//   - No allocations, no panics, no hidden state.
//
// Determinism:
//   - Every helper is a pure function of its inputs.

package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IsFloat reports whether T is a floating-point type.
// A non-constant 0.5 survives the conversion only for float types.
func IsFloat[T Number]() bool {
	half := 0.5

	return T(half) != 0
}

// Abs returns |x|. Unsigned inputs are returned unchanged.
// Complexity: O(1).
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Ceil returns the least integral value >= x, kept in the input type.
// Integer inputs are already integral and are returned unchanged.
func Ceil[T Number](x T) T {
	if !IsFloat[T]() {
		return x
	}

	return T(math.Ceil(float64(x)))
}

// Floor returns the greatest integral value <= x, kept in the input type.
func Floor[T Number](x T) T {
	if !IsFloat[T]() {
		return x
	}

	return T(math.Floor(float64(x)))
}

// Round returns the nearest integral value, rounding half away from zero.
func Round[T Number](x T) T {
	if !IsFloat[T]() {
		return x
	}

	return T(math.Round(float64(x)))
}

// Truncate returns the integral part of x (rounding toward zero).
func Truncate[T Number](x T) T {
	if !IsFloat[T]() {
		return x
	}

	return T(math.Trunc(float64(x)))
}

// Sqrt returns the square root of x promoted to float64.
// Negative inputs yield NaN (math.Sqrt semantics).
func Sqrt[T Number](x T) float64 {
	return math.Sqrt(float64(x))
}

// Pow returns base**exp promoted to float64.
func Pow[B, E Number](base B, exp E) float64 {
	return math.Pow(float64(base), float64(exp))
}

// Sqrd returns x*x in the input type.
func Sqrd[T Number](x T) T {
	return x * x
}

// Hypot returns sqrt(x*x + y*y) without intermediate overflow or underflow.
func Hypot[T constraints.Float](x, y T) T {
	return T(math.Hypot(float64(x), float64(y)))
}

// Hypot3 returns sqrt(x*x + y*y + z*z) without intermediate overflow.
//
// Implementation:
//   - Stage 1: any ±Inf component wins (+Inf), even over NaN, as math.Hypot does.
//   - Stage 2: scale every component by the largest magnitude m, so the sum of
//     squares stays in [1, 3], then multiply the root back by m.
//
// Complexity: O(1).
func Hypot3[T constraints.Float](x, y, z T) T {
	fx, fy, fz := math.Abs(float64(x)), math.Abs(float64(y)), math.Abs(float64(z))
	if math.IsInf(fx, 0) || math.IsInf(fy, 0) || math.IsInf(fz, 0) {
		return T(math.Inf(1))
	}
	m := math.Max(fx, math.Max(fy, fz)) // NaN propagates through math.Max
	if math.IsNaN(m) {
		return T(math.NaN())
	}
	if m == 0 {
		return 0
	}
	fx, fy, fz = fx/m, fy/m, fz/m

	return T(m * math.Sqrt(fx*fx+fy*fy+fz*fz))
}

// Clamp clips value into [lo, hi]. The caller guarantees lo <= hi.
func Clamp[T constraints.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}

	return value
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}

	return a
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a < b {
		return b
	}

	return a
}

// Lerp returns a + (b-a)*t in the float type of t, so integer endpoints
// interpolate without rounding: Lerp(0, 3, 0.5) == 1.5.
//
// Behavior highlights:
//   - The arithmetic runs in float64; b < a never wraps for unsigned T.
//   - t == 0 and t == 1 return a and b converted to D, with no arithmetic.
//   - t outside [0, 1] extrapolates; it is not clamped.
//
// Complexity: O(1).
func Lerp[T Number, D constraints.Float](a, b T, t D) D {
	switch t {
	case 0:
		return D(a)
	case 1:
		return D(b)
	}
	fa := float64(a)

	return D(fa + (float64(b)-fa)*float64(t))
}

// LerpTo is Lerp with the result kept in the endpoint type T.
//
// Implementation:
//   - Only the offset |b-a|*t goes through float64; it is added to (or, for
//     b < a, subtracted from) a in T, so a 64-bit endpoint is never rounded.
//   - t == 0 returns a and t == 1 returns b exactly.
//   - Integer offsets truncate toward zero: LerpTo(0, 7, 0.5) == 3.
//
// AI-Hints:
//   - Use Lerp when the fractional result matters; LerpTo when the caller
//     needs a value of the endpoint type (pixel coordinates, indices).
func LerpTo[T Number, D constraints.Float](a, b T, t D) T {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	// the difference is taken larger-minus-smaller so unsigned T cannot wrap
	if b >= a {
		return a + T(float64(b-a)*float64(t))
	}

	return a - T(float64(a-b)*float64(t))
}

// CeilToNearestMultiple rounds value up to the next multiple of multiple.
//
// Behavior highlights:
//   - An exact multiple is still bumped to the following one:
//     CeilToNearestMultiple(8, 4) == 12, CeilToNearestMultiple(7, 4) == 8.
//   - Values larger than multiple round up too, never down to a lower
//     multiple: CeilToNearestMultiple(13, 5) == 15.
//   - Overflow past the maximum of T wraps like any unsigned addition.
//
// Errors:
//   - ErrZeroMultiple when multiple == 0.
func CeilToNearestMultiple[T constraints.Unsigned](value, multiple T) (T, error) {
	if multiple == 0 {
		return 0, ErrZeroMultiple
	}

	return value + multiple - value%multiple, nil
}

// ApproxEqual reports whether |a-b| <= tol. Equal infinities compare equal.
func ApproxEqual[T constraints.Float](a, b, tol T) bool {
	if a == b {
		return true
	}

	return math.Abs(float64(a-b)) <= float64(tol)
}
