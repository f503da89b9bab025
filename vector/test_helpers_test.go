// Package vector_test - shared helpers for vector tests.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/dmath/scalar"
	"github.com/katalvlaran/dmath/vector"
	"github.com/stretchr/testify/require"
)

// mustVec builds a Vector or fails the test immediately.
func mustVec[T scalar.Number](t *testing.T, vals ...T) vector.Vector[T] {
	t.Helper()
	v, err := vector.New(vals...)
	require.NoError(t, err)

	return v
}

// requireVec3InDelta compares two Vec3 component-wise within delta.
func requireVec3InDelta[T scalar.Number](t *testing.T, want, got vector.Vec3[T], delta float64) {
	t.Helper()
	require.InDelta(t, float64(want.X), float64(got.X), delta, "X: want %v got %v", want, got)
	require.InDelta(t, float64(want.Y), float64(got.Y), delta, "Y: want %v got %v", want, got)
	require.InDelta(t, float64(want.Z), float64(got.Z), delta, "Z: want %v got %v", want, got)
}
