// SPDX-License-Identifier: MIT

// Package transform - right-handed projection builders.
//
// Purpose:
//   - Perspective and orthographic projections for both NDC depth conventions,
//     plus API-dispatching wrappers.
//
// Depth mapping (view space looks down -Z):
//   - ZO: z = -near -> 0, z = -far -> 1.
//   - NO: z = -near -> -1, z = -far -> 1.
//
// Notes:
//   - No argument validation: near == far, aspect == 0 or fovY == 0 produce
//     ±Inf/NaN entries.

package transform

import (
	"fmt"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/trig"
	"golang.org/x/exp/constraints"
)

const (
	opPerspective  = "Perspective"
	opOrthographic = "Orthographic"
)

// PerspectiveRHZO returns a right-handed perspective projection with depth
// mapped to [0, 1]. fovY is the full vertical field of view in the
// configured unit (degrees by default).
func PerspectiveRHZO[T constraints.Float](fovY, aspect, near, far T, opts ...Option) matrix.Square[T] {
	tanHalf := trig.Tan(gatherOptions(opts...).unit, fovY/2)

	return matrix.Square4([16]T{
		1 / (aspect * tanHalf), 0, 0, 0,
		0, 1 / tanHalf, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, -(far * near) / (far - near), 0,
	})
}

// PerspectiveRHNO returns a right-handed perspective projection with depth
// mapped to [-1, 1].
func PerspectiveRHNO[T constraints.Float](fovY, aspect, near, far T, opts ...Option) matrix.Square[T] {
	tanHalf := trig.Tan(gatherOptions(opts...).unit, fovY/2)

	return matrix.Square4([16]T{
		1 / (aspect * tanHalf), 0, 0, 0,
		0, 1 / tanHalf, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -(2 * far * near) / (far - near), 0,
	})
}

// Perspective dispatches on api: OpenGL -> PerspectiveRHNO, Vulkan -> PerspectiveRHZO.
//
// Errors:
//   - ErrUnknownAPI for any other api value.
func Perspective[T constraints.Float](api API, fovY, aspect, near, far T, opts ...Option) (matrix.Square[T], error) {
	switch api {
	case OpenGL:
		return PerspectiveRHNO(fovY, aspect, near, far, opts...), nil
	case Vulkan:
		return PerspectiveRHZO(fovY, aspect, near, far, opts...), nil
	default:
		return matrix.Square[T]{}, fmt.Errorf("%s(%s): %w", opPerspective, api, ErrUnknownAPI)
	}
}

// OrthographicRHZO returns a right-handed orthographic projection of the box
// [left, right] × [bottom, top] × [-near, -far] with depth mapped to [0, 1].
func OrthographicRHZO[T constraints.Float](left, right, bottom, top, near, far T) matrix.Square[T] {
	return orthographic(left, right, bottom, top, -1/(far-near), -near/(far-near))
}

// OrthographicRHNO is OrthographicRHZO with depth mapped to [-1, 1].
func OrthographicRHNO[T constraints.Float](left, right, bottom, top, near, far T) matrix.Square[T] {
	return orthographic(left, right, bottom, top, -2/(far-near), -(far+near)/(far-near))
}

// orthographic fills the shared x/y terms; zScale and zOffset select the
// depth convention.
func orthographic[T constraints.Float](left, right, bottom, top, zScale, zOffset T) matrix.Square[T] {
	return matrix.Square4([16]T{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, zScale, 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), zOffset, 1,
	})
}

// Orthographic dispatches on api: OpenGL -> OrthographicRHNO, Vulkan -> OrthographicRHZO.
//
// Errors:
//   - ErrUnknownAPI for any other api value.
func Orthographic[T constraints.Float](api API, left, right, bottom, top, near, far T) (matrix.Square[T], error) {
	switch api {
	case OpenGL:
		return OrthographicRHNO(left, right, bottom, top, near, far), nil
	case Vulkan:
		return OrthographicRHZO(left, right, bottom, top, near, far), nil
	default:
		return matrix.Square[T]{}, fmt.Errorf("%s(%s): %w", opOrthographic, api, ErrUnknownAPI)
	}
}
