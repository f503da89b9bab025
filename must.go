// SPDX-License-Identifier: MIT

package dmath

// Must returns v when err is nil and panics with err otherwise.
//
// The dmath packages report every contract violation (bad index, shape
// mismatch, singular matrix, invalid axis) as a returned error. Must is the
// assertion mode on top of that: wrap a call to fail fast in code where a
// violation can only be a programming bug.
//
//	inv := dmath.Must(m.Inverse())
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}
