// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type: the element types accepted
// by vectors and matrices.
type Number interface {
	constraints.Integer | constraints.Float
}

// DefaultTolerance is the absolute tolerance used by ApproxEqual callers that
// have no better estimate (tests, transform sanity checks).
const DefaultTolerance = 1e-6
