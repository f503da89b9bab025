// Package matrix_test contains unit tests for Matrix[T] construction,
// accessors and formatting.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/vector"
	"github.com/stretchr/testify/require"
)

// TestNewValidation covers the dimension and value-count contract.
func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		vals []float64
		want error
	}{
		{"negative width", -1, 2, nil, matrix.ErrInvalidDimensions},
		{"too tall", 2, matrix.MaxDim + 1, nil, matrix.ErrInvalidDimensions},
		{"short values", 2, 2, []float64{1, 2, 3}, matrix.ErrDimensionMismatch},
		{"long values", 1, 1, []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"empty ok", 0, 0, nil, nil},
		{"zero fill", 3, 2, nil, nil},
		{"exact", 2, 2, []float64{1, 2, 3, 4}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.w, tc.h, tc.vals...)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.w, m.Width())
			require.Equal(t, tc.h, m.Height())
			require.Equal(t, tc.w*tc.h, m.Len())
		})
	}
}

// TestColumnMajorLayout pins element (x,y) to flat index x*h + y.
func TestColumnMajorLayout(t *testing.T) {
	m := fixtureWide(t)
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			byCell, err := m.At(x, y)
			require.NoError(t, err)
			byIndex, err := m.AtIndex(x*2 + y)
			require.NoError(t, err)
			require.Equal(t, byCell, byIndex)
			require.Equal(t, 1+x+3*y, byCell) // rows are (1,2,3) and (4,5,6)
		}
	}
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, m.Data())
}

// TestAccessorsOutOfRange ensures every accessor rejects bad indices.
func TestAccessorsOutOfRange(t *testing.T) {
	m := fixtureWide(t)
	_, err := m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.AtIndex(6)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 9), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetIndex(-1, 9), matrix.ErrOutOfRange)
	_, err = m.Column(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var empty matrix.Matrix[int]
	_, err = empty.Front()
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = empty.Back()
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetAndSlices covers Set/SetIndex plus the column and row copies.
func TestSetAndSlices(t *testing.T) {
	m := fixtureWide(t)
	require.NoError(t, m.Set(2, 1, 60))
	require.NoError(t, m.SetIndex(0, 10))

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, col.Values())

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 60}, row.Values())

	front, err := m.Front()
	require.NoError(t, err)
	require.Equal(t, 10, front)
	back, err := m.Back()
	require.NoError(t, err)
	require.Equal(t, 60, back)

	require.NoError(t, m.SetColumn(0, mustVec(t, 7, 8)))
	require.Equal(t, []int{7, 8, 2, 5, 3, 60}, m.Data())
	require.ErrorIs(t, m.SetColumn(0, mustVec(t, 1, 2, 3)), matrix.ErrDimensionMismatch)
}

// TestFromColumnsRows checks that both builders agree with New.
func TestFromColumnsRows(t *testing.T) {
	want := fixtureWide(t)

	byCols, err := matrix.FromColumns(mustVec(t, 1, 4), mustVec(t, 2, 5), mustVec(t, 3, 6))
	require.NoError(t, err)
	require.True(t, want.Equal(byCols))

	byRows, err := matrix.FromRows(mustVec(t, 1, 2, 3), mustVec(t, 4, 5, 6))
	require.NoError(t, err)
	require.True(t, want.Equal(byRows))

	_, err = matrix.FromColumns(mustVec(t, 1, 2), mustVec(t, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromRows(mustVec(t, 1, 2), mustVec(t, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	tall := make([]int, matrix.MaxDim+1)
	_, err = matrix.FromColumns(mustVec(t, tall...))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFactories covers Zero, One and SingleValue.
func TestFactories(t *testing.T) {
	z, err := matrix.Zero[float64](2, 3)
	require.NoError(t, err)
	require.Equal(t, make([]float64, 6), z.Data())

	o, err := matrix.One[int](2, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 1}, o.Data())

	s, err := matrix.SingleValue(1, 3, uint8(4))
	require.NoError(t, err)
	require.Equal(t, []uint8{4, 4, 4}, s.Data())

	_, err = matrix.One[int](0, matrix.MaxDim+1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestValueSemantics ensures assignment copies storage.
func TestValueSemantics(t *testing.T) {
	a := fixtureWide(t)
	b := a
	require.NoError(t, b.Set(0, 0, 100))
	x, _ := a.At(0, 0)
	require.Equal(t, 1, x)
	require.False(t, a.Equal(b))
}

// TestString pins the row-per-line layout.
func TestString(t *testing.T) {
	f := mustNew(t, 2, 2, 1.0, 2.0, 3.0, 4.0)
	require.Equal(t, "1.0000, 3.0000\n2.0000, 4.0000", f.String())
	require.Equal(t, "1, 2, 3\n4, 5, 6", fixtureWide(t).String())
	require.Equal(t, "", matrix.Matrix[int]{}.String())
}

// TestEmptyColumnVector documents that height-0 matrices have no column vectors.
func TestEmptyColumnVector(t *testing.T) {
	m := mustNew[int](t, 2, 0)
	_, err := m.Column(0)
	require.ErrorIs(t, err, vector.ErrBadLength)
}
