// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape and index checks.
//   - Return plain sentinels (no wrapping); call sites wrap with their own tag.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing.

package matrix

// validateDims ensures 0 <= w, h <= MaxDim.
func validateDims(w, h int) error {
	if w < 0 || h < 0 || w > MaxDim || h > MaxDim {
		return ErrInvalidDimensions
	}

	return nil
}

// validateSameShape ensures two shapes agree in width and height.
func validateSameShape(aw, ah, bw, bh int) error {
	if aw != bw || ah != bh {
		return ErrDimensionMismatch
	}

	return nil
}

// validateCell ensures (x, y) addresses an element of a w×h matrix.
func validateCell(w, h, x, y int) error {
	if x < 0 || y < 0 || x >= w || y >= h {
		return ErrOutOfRange
	}

	return nil
}

// validateIndex ensures 0 <= i < n.
func validateIndex(n, i int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}
