// Package transform_test - shared helpers for transform tests.
package transform_test

import (
	"testing"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/vector"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// applyPoint computes m * (p, 1) and performs the homogeneous divide.
func applyPoint(t *testing.T, m matrix.Square[float64], p vector.Vec3[float64]) vector.Vec3[float64] {
	t.Helper()
	h, err := m.MulVec(p.AsVec4(1))
	require.NoError(t, err)
	out, err := vector.FromHomogeneous(h)
	require.NoError(t, err)

	return out
}

// apply3 computes m * v for a 3×3 m.
func apply3(t *testing.T, m matrix.Square[float64], v vector.Vec3[float64]) vector.Vec3[float64] {
	t.Helper()
	r, err := m.MulVec(v.AsVector())
	require.NoError(t, err)
	out, err := vector.FromVector3(r)
	require.NoError(t, err)

	return out
}

func requireVec3(t *testing.T, want, got vector.Vec3[float64]) {
	t.Helper()
	require.InDelta(t, want.X, got.X, tol, "X: want %v got %v", want, got)
	require.InDelta(t, want.Y, got.Y, tol, "Y: want %v got %v", want, got)
	require.InDelta(t, want.Z, got.Z, tol, "Z: want %v got %v", want, got)
}

func requireClose(t *testing.T, want, got matrix.Matrix[float64]) {
	t.Helper()
	require.True(t, matrix.AllClose(want, got, tol), "want\n%v\ngot\n%v", want, got)
}

func mustMul(t *testing.T, a, b matrix.Square[float64]) matrix.Square[float64] {
	t.Helper()
	p, err := a.MulSquare(b)
	require.NoError(t, err)

	return p
}
