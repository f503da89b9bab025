// Package matrix_test contains tests for element-wise kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub checks values and that operands are never mutated.
func TestAddSub(t *testing.T) {
	a := mustNew(t, 2, 2, 1.0, 2.0, 3.0, 4.0)
	b := mustNew(t, 2, 2, 0.5, 0.5, 0.5, 0.5)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, sum.Data())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, diff.Data())

	require.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

// TestShapeMismatch covers every binary element-wise op.
func TestShapeMismatch(t *testing.T) {
	a := fixtureWide(t)
	b := a.Transposed()

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	before := a
	_, err = a.AddAssign(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.SubAssign(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.True(t, before.Equal(a))
}

// TestAdditiveIdentity checks m + Zero == m over every shape.
func TestAdditiveIdentity(t *testing.T) {
	for w := 0; w <= matrix.MaxDim; w++ {
		for h := 0; h <= matrix.MaxDim; h++ {
			vals := make([]int, w*h)
			for i := range vals {
				vals[i] = i*7 - 20
			}
			m := mustNew(t, w, h, vals...)
			z, err := matrix.Zero[int](w, h)
			require.NoError(t, err)
			got, err := m.Add(z)
			require.NoError(t, err)
			require.True(t, got.Equal(m), "%dx%d", w, h)
		}
	}
}

// TestNegScale covers the unary and scalar kernels plus chaining.
func TestNegScale(t *testing.T) {
	m := fixtureWide(t)
	require.Equal(t, []int{-1, -4, -2, -5, -3, -6}, m.Neg().Data())
	require.Equal(t, []int{2, 8, 4, 10, 6, 12}, m.Scale(2).Data())

	c := m
	p, err := c.AddAssign(m)
	require.NoError(t, err)
	p.ScaleAssign(3)
	_, err = c.SubAssign(m)
	require.NoError(t, err)
	require.True(t, c.Equal(m.Scale(5)))
}

// TestAllClose covers tolerance, shape and NaN handling.
func TestAllClose(t *testing.T) {
	a := mustNew(t, 2, 1, 1.0, 2.0)
	b := mustNew(t, 2, 1, 1.0+1e-10, 2.0-1e-10)
	require.False(t, a.Equal(b))
	require.True(t, matrix.AllClose(a, b, 1e-9))
	require.True(t, matrix.ApproxEqual(a, b))
	require.False(t, matrix.AllClose(a, b, 1e-12))
	require.False(t, matrix.AllClose(a, mustNew(t, 1, 2, 1.0, 2.0), 1))

	n := mustNew(t, 1, 1, math.NaN())
	require.False(t, matrix.AllClose(n, n, math.Inf(1)))
}
