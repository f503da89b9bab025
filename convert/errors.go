// SPDX-License-Identifier: MIT

package convert

import "errors"

// ErrShape indicates a matrix whose width or height does not match the target array type.
var ErrShape = errors.New("convert: matrix shape does not match target type")
