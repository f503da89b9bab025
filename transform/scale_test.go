// Package transform_test contains tests for scale builders.
package transform_test

import (
	"testing"

	"github.com/katalvlaran/dmath/transform"
	"github.com/katalvlaran/dmath/vector"
	"github.com/stretchr/testify/require"
)

// TestScaleOnes applies diag(2,3,4) to (1,1,1) in all three forms.
func TestScaleOnes(t *testing.T) {
	want := vector.V3(2.0, 3.0, 4.0)
	ones := vector.One3[float64]()

	requireVec3(t, want, apply3(t, transform.Scale(2.0, 3.0, 4.0), ones))
	requireVec3(t, want, apply3(t, transform.ScaleVec(want), ones))
	requireVec3(t, want, applyPoint(t, transform.ScaleHomo(2.0, 3.0, 4.0), ones))
	requireVec3(t, want, applyPoint(t, transform.ScaleHomoVec(want), ones))

	full, err := transform.AsMat4(transform.ScaleReducedVec(want))
	require.NoError(t, err)
	require.True(t, full.Equal(transform.ScaleHomo(2.0, 3.0, 4.0).Matrix))
	require.True(t, transform.ScaleReduced(2.0, 3.0, 4.0).Equal(transform.ScaleReducedVec(want)))
}

// TestScaleDeterminant is the product of the factors.
func TestScaleDeterminant(t *testing.T) {
	require.Equal(t, 24.0, transform.Scale(2.0, 3.0, 4.0).Determinant())
	require.Equal(t, float32(-8), transform.ScaleHomo[float32](2, -2, 2).Determinant())
}
