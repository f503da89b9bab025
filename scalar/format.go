// SPDX-License-Identifier: MIT

package scalar

import "strconv"

// FormatPrecision is the number of decimals used for floating-point elements
// by Format (and therefore by every vector/matrix String method).
const FormatPrecision = 4

// Format renders x for display: fixed FormatPrecision decimals for floats,
// plain decimal digits for integers. It is not a round-trippable encoding.
func Format[T Number](x T) string {
	if IsFloat[T]() {
		return strconv.FormatFloat(float64(x), 'f', FormatPrecision, 64)
	}
	if x < 0 {
		return strconv.FormatInt(int64(x), 10)
	}

	return strconv.FormatUint(uint64(x), 10)
}
