// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"
)

// Built-in mesh shapes.
const (
	ShapeCube        = "cube"
	ShapeTetrahedron = "tetrahedron"
	ShapeOctahedron  = "octahedron"
)

var shapes = []string{ShapeCube, ShapeTetrahedron, ShapeOctahedron}

// IsShape reports whether name is a built-in shape.
func IsShape(name string) bool { return slices.Contains(shapes, name) }

// ParseColor decodes "#rrggbb" or "#rgb" into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb or #rgb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
