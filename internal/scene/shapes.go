// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/katalvlaran/dmath/internal/config"
	"github.com/katalvlaran/dmath/vector"
)

// Geometry is a wireframe in model space.
type Geometry struct {
	Vertices []vector.Vec3[float64]
	Edges    [][2]int
}

// Shape returns the unit-sized geometry for a built-in shape name.
func Shape(name string) (Geometry, error) {
	switch name {
	case config.ShapeCube:
		return cube(), nil
	case config.ShapeTetrahedron:
		return tetrahedron(), nil
	case config.ShapeOctahedron:
		return octahedron(), nil
	default:
		return Geometry{}, fmt.Errorf("scene: unknown shape %q", name)
	}
}

// cube spans [-0.5, 0.5] on every axis; vertex i has bit 0 for X, 1 for Y, 2 for Z.
func cube() Geometry {
	g := Geometry{Vertices: make([]vector.Vec3[float64], 8)}
	for i := range g.Vertices {
		g.Vertices[i] = vector.V3(
			float64(i&1)-0.5,
			float64(i>>1&1)-0.5,
			float64(i>>2&1)-0.5,
		)
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				g.Edges = append(g.Edges, [2]int{i, i | bit})
			}
		}
	}

	return g
}

func tetrahedron() Geometry {
	return Geometry{
		Vertices: []vector.Vec3[float64]{
			vector.V3(0.5, 0.5, 0.5),
			vector.V3(0.5, -0.5, -0.5),
			vector.V3(-0.5, 0.5, -0.5),
			vector.V3(-0.5, -0.5, 0.5),
		},
		Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
	}
}

// octahedron puts one vertex on each half-axis: +X, -X, +Y, -Y, +Z, -Z.
func octahedron() Geometry {
	g := Geometry{}
	for _, d := range []vector.Vec3[float64]{
		vector.Right[float64](), vector.Left[float64](),
		vector.Up[float64](), vector.Down[float64](),
		vector.Forward[float64](), vector.Back[float64](),
	} {
		g.Vertices = append(g.Vertices, d.Scale(0.5))
	}
	for a := 0; a < 6; a++ {
		for b := a + 1; b < 6; b++ {
			if a/2 != b/2 {
				g.Edges = append(g.Edges, [2]int{a, b})
			}
		}
	}

	return g
}
