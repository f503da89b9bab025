// Package matrix_test contains tests for products and shape operations.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/stretchr/testify/require"
)

// TestMulNonSquare checks (W,H)*(WB,W) -> (WB,H) on a 3×2 by 2×3 product.
func TestMulNonSquare(t *testing.T) {
	// rows (1,2,3), (4,5,6) times rows (7,8), (9,10), (11,12)
	a := fixtureWide(t)
	b := mustNew(t, 2, 3, 7, 9, 11, 8, 10, 12)

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Width())
	require.Equal(t, 2, p.Height())
	require.Equal(t, "58, 64\n139, 154", p.String())

	_, err = a.Mul(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMultiplicativeIdentity checks I*m == m*I == m for every size.
func TestMultiplicativeIdentity(t *testing.T) {
	for n := 0; n <= matrix.MaxDim; n++ {
		m := randSquare(t, n, int64(n))
		id := mustIdentity[float64](t, n)

		left, err := id.Mul(m.Matrix)
		require.NoError(t, err)
		right, err := m.Mul(id.Matrix)
		require.NoError(t, err)
		require.True(t, left.Equal(m.Matrix), "n=%d", n)
		require.True(t, right.Equal(m.Matrix), "n=%d", n)
	}
}

// TestMulVec covers the identity scenario and a rectangular product.
func TestMulVec(t *testing.T) {
	id := mustIdentity[float32](t, 4)
	v := mustVec(t, float32(1), 2, 3, 1)
	got, err := id.MulVec(v)
	require.NoError(t, err)
	require.True(t, got.Equal(v))

	w, err := fixtureWide(t).MulVec(mustVec(t, 1, 1, 1))
	require.NoError(t, err)
	require.Equal(t, []int{6, 15}, w.Values())

	_, err = fixtureWide(t).MulVec(mustVec(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTransposed checks shape, values and involution.
func TestTransposed(t *testing.T) {
	m := fixtureWide(t)
	tr := m.Transposed()
	require.Equal(t, 2, tr.Width())
	require.Equal(t, 3, tr.Height())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, tr.Data())
	require.True(t, tr.Transposed().Equal(m))
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, m.Data()) // receiver untouched

	for n := 1; n <= matrix.MaxDim; n++ {
		r := randSquare(t, n, 99)
		require.True(t, r.Transposed().Transposed().Equal(r.Matrix))
	}
}

// TestSwap covers row and column exchange and their bounds.
func TestSwap(t *testing.T) {
	m := fixtureWide(t)
	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, "4, 5, 6\n1, 2, 3", m.String())

	m = fixtureWide(t)
	require.NoError(t, m.SwapColumns(0, 2))
	require.Equal(t, "3, 2, 1\n6, 5, 4", m.String())

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapColumns(-1, 0), matrix.ErrOutOfRange)
}

// TestMinor deletes one column and one row.
func TestMinor(t *testing.T) {
	m := mustNew(t, 3, 3, 2, 1, 1, 0, 3, 1, 1, 2, 2)
	got, err := m.Minor(1, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 2, 2}, got.Data())

	one := mustNew(t, 1, 1, 5)
	empty, err := one.Minor(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())

	_, err = m.Minor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
