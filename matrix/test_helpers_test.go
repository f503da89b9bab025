// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/scalar"
	"github.com/katalvlaran/dmath/vector"
	"github.com/stretchr/testify/require"
)

// tol is the element tolerance used by the float round-trip checks.
const tol = 1e-9

// mustNew builds a w×h matrix from column-major values or fails the test.
func mustNew[T scalar.Number](tb testing.TB, w, h int, vals ...T) matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(w, h, vals...)
	require.NoError(tb, err)

	return m
}

// mustSquare builds an n×n Square from column-major values or fails the test.
func mustSquare[T scalar.Number](tb testing.TB, n int, vals ...T) matrix.Square[T] {
	tb.Helper()
	s, err := matrix.NewSquare(n, vals...)
	require.NoError(tb, err)

	return s
}

// mustIdentity returns the n×n identity or fails the test.
func mustIdentity[T scalar.Number](tb testing.TB, n int) matrix.Square[T] {
	tb.Helper()
	s, err := matrix.Identity[T](n)
	require.NoError(tb, err)

	return s
}

// mustVec builds a vector or fails the test.
func mustVec[T scalar.Number](tb testing.TB, vals ...T) vector.Vector[T] {
	tb.Helper()
	v, err := vector.New(vals...)
	require.NoError(tb, err)

	return v
}

// randSquare fills an n×n float64 matrix deterministically from seed,
// adding n to the diagonal so the result is strictly diagonally dominant
// (and therefore invertible).
func randSquare(tb testing.TB, n int, seed int64) matrix.Square[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	for i := 0; i < n; i++ {
		vals[i*n+i] += float64(n)
	}

	return mustSquare(tb, n, vals...)
}

// fixtureWide is the 3-wide, 2-high matrix with rows (1,2,3) and (4,5,6).
func fixtureWide(tb testing.TB) matrix.Matrix[int] {
	tb.Helper()

	return mustNew(tb, 3, 2, 1, 4, 2, 5, 3, 6)
}
