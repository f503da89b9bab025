// SPDX-License-Identifier: MIT

package scalar

import "errors"

// ErrZeroMultiple is returned by CeilToNearestMultiple when multiple == 0.
var ErrZeroMultiple = errors.New("scalar: multiple must be non-zero")
