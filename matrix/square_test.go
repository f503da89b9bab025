// Package matrix_test contains tests for the square-only capability set.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/stretchr/testify/require"
)

// TestSquareConstructors covers Identity, NewSquare and AsSquare.
func TestSquareConstructors(t *testing.T) {
	id := mustIdentity[int](t, 3)
	require.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data())
	require.Equal(t, 3, id.Size())

	_, err := matrix.Identity[int](matrix.MaxDim + 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.AsSquare(fixtureWide(t))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	s, err := matrix.AsSquare(mustNew(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	require.Equal(t, -2, s.Determinant())
}

// TestDeterminant covers the closed forms and the Laplace expansion.
func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		n    int
		vals []int
		want int
	}{
		{"empty", 0, nil, 1},
		{"1x1", 1, []int{7}, 7},
		{"2x2 column-major", 2, []int{1, 2, 3, 4}, -2},
		{"3x3 with zero in row 0", 3, []int{2, 1, 1, 0, 3, 1, 1, 2, 2}, 6},
		{"3x3 repeated column", 3, []int{1, 2, 3, 1, 2, 3, 4, 5, 6}, 0},
		{"4x4 upper triangular", 4, []int{2, 0, 0, 0, 5, 3, 0, 0, 1, 7, -1, 0, 9, 9, 9, 4}, -24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustSquare(t, tc.n, tc.vals...)
			require.Equal(t, tc.want, s.Determinant())
			require.Equal(t, tc.want == 0, s.IsSingular())

			tr := s
			tr.Transpose()
			require.Equal(t, tc.want, tr.Determinant())
		})
	}

	for n := 0; n <= matrix.MaxDim; n++ {
		require.Equal(t, 1.0, mustIdentity[float64](t, n).Determinant(), "n=%d", n)
	}
}

// TestAdjugate pins the cofactor sign pattern on a 2×2.
func TestAdjugate(t *testing.T) {
	s := mustSquare(t, 2, 1, 2, 3, 4)
	require.Equal(t, []int{4, -2, -3, 1}, s.Adjugate().Data())

	// adj(s) * s == det(s) * I
	for _, n := range []int{1, 3, 4, 5} {
		r := randSquare(t, n, int64(10+n))
		p, err := r.Adjugate().MulSquare(r)
		require.NoError(t, err)
		want := mustIdentity[float64](t, n).Scale(r.Determinant())
		require.True(t, matrix.AllClose(p.Matrix, want, 1e-9), "n=%d\n%v", n, p)
	}
}

// TestAdjugateDegenerate pins the 0×0 and 1×1 cases: the minor of a 1×1 is
// the empty matrix, whose determinant is 1.
func TestAdjugateDegenerate(t *testing.T) {
	one := mustSquare(t, 1, 7)
	require.Equal(t, []int{1}, one.Adjugate().Data())

	m, err := one.Minor(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Width())
	require.Equal(t, 0, m.Height())

	empty := mustSquare[int](t, 0)
	require.Equal(t, 0, empty.Adjugate().Size())
	require.Equal(t, 1, empty.Determinant())
}

// TestInverse covers closed-form values and the round-trip property.
func TestInverse(t *testing.T) {
	s := mustSquare(t, 2, 4.0, 7.0, 2.0, 6.0)
	inv, err := s.Inverse()
	require.NoError(t, err)
	require.True(t, matrix.AllClose(inv.Matrix, mustNew(t, 2, 2, 0.6, -0.7, -0.2, 0.4), tol))

	for n := 1; n <= 6; n++ {
		r := randSquare(t, n, int64(n*31))
		inv, ok := r.TryInverse()
		require.True(t, ok)
		p, err := r.MulSquare(inv)
		require.NoError(t, err)
		require.True(t, matrix.AllClose(p.Matrix, mustIdentity[float64](t, n).Matrix, tol), "n=%d", n)
	}

	unimodular := mustSquare(t, 2, 2, 1, 1, 1)
	iinv, err := unimodular.Inverse()
	require.NoError(t, err)
	require.Equal(t, []int{1, -1, -1, 2}, iinv.Data())
}

// TestInverseSingular ensures exact-zero determinants have no inverse.
func TestInverseSingular(t *testing.T) {
	s := mustSquare(t, 2, 1.0, 2.0, 2.0, 4.0)
	_, err := s.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	inv, ok := s.TryInverse()
	require.False(t, ok)
	require.Equal(t, matrix.Square[float64]{}, inv)

	z := mustSquare[float64](t, 3)
	require.True(t, z.IsSingular())
}

// TestTransposeInPlace compares the in-place and copying forms.
func TestTransposeInPlace(t *testing.T) {
	s := randSquare(t, 5, 5)
	want := s.Transposed()
	s.Transpose().Transpose().Transpose()
	require.True(t, s.Equal(want))
}

// TestMulSquareMismatch rejects differing sizes.
func TestMulSquareMismatch(t *testing.T) {
	_, err := mustIdentity[int](t, 3).MulSquare(mustIdentity[int](t, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
