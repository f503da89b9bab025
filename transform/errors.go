// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Shape violations reuse matrix.ErrDimensionMismatch and axis violations
// reuse vector.ErrInvalidAxis, both wrapped with the builder name.

package transform

import "errors"

// ErrUnknownAPI indicates an API value other than OpenGL or Vulkan.
var ErrUnknownAPI = errors.New("transform: unknown graphics API")
