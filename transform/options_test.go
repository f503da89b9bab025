// Package transform_test contains tests for options and the API enumeration.
package transform_test

import (
	"testing"

	"github.com/katalvlaran/dmath/transform"
	"github.com/katalvlaran/dmath/trig"
	"github.com/stretchr/testify/require"
)

// TestOptionsDefaults verifies defaults and override order.
func TestOptionsDefaults(t *testing.T) {
	require.Equal(t, trig.Degrees, transform.NewOptions().Unit())
	require.Equal(t, trig.Radians, transform.NewOptions(transform.WithRadians()).Unit())
	require.Equal(t, trig.Degrees, transform.NewOptions(transform.WithRadians(), nil, transform.WithUnit(trig.Degrees)).Unit())
}

// TestWithUnitPanics rejects units outside the enumeration.
func TestWithUnitPanics(t *testing.T) {
	require.Panics(t, func() { transform.WithUnit(trig.Unit(42)) })
}

// TestParseAPI covers aliases, case and the error path.
func TestParseAPI(t *testing.T) {
	for in, want := range map[string]transform.API{
		"opengl": transform.OpenGL, "GL": transform.OpenGL,
		" Vulkan ": transform.Vulkan, "vk": transform.Vulkan,
	} {
		got, err := transform.ParseAPI(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
		require.True(t, got.Valid())
	}
	_, err := transform.ParseAPI("direct3d")
	require.ErrorIs(t, err, transform.ErrUnknownAPI)
	require.Equal(t, "API(7)", transform.API(7).String())
	require.False(t, transform.API(7).Valid())
}
