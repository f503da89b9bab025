package dmath_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dmath"
	"github.com/stretchr/testify/require"
)

// TestMust passes values through and panics with the original error.
func TestMust(t *testing.T) {
	require.Equal(t, 7, dmath.Must(7, nil))

	boom := errors.New("boom")
	require.PanicsWithError(t, "boom", func() { dmath.Must(0, boom) })
}
