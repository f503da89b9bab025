// SPDX-License-Identifier: MIT

// Package scene turns a resolved config into per-frame model, view and
// projection matrices.
package scene

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/dmath/internal/config"
	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/quat"
	"github.com/katalvlaran/dmath/transform"
	"github.com/katalvlaran/dmath/trig"
	"github.com/katalvlaran/dmath/vector"
	"github.com/tanema/gween"
)

// Mesh is a placed wireframe.
type Mesh struct {
	Name  string
	Geometry
	Model matrix.Square[float64]
	Color color.NRGBA
}

// Frame holds everything the renderer needs for one image.
type Frame struct {
	Index    int
	Eye      vector.Vec3[float64]
	ViewProj matrix.Square[float64]
	Meshes   []Mesh
}

// Scene is immutable after New and safe for concurrent Frame calls.
type Scene struct {
	cam    config.Camera
	frames int
	api    transform.API
	proj   matrix.Square[float64]
	meshes []Mesh
}

// New builds the static parts of the scene: projection and model matrices.
func New(cfg config.Config) (*Scene, error) {
	api, err := transform.ParseAPI(cfg.Camera.API)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	cam := cfg.Camera
	proj, err := transform.Perspective(api, cam.FovY, 1.0, cam.Near, cam.Far)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s := &Scene{cam: cam, frames: cfg.Output.Frames, api: api, proj: proj}
	for _, m := range cfg.Meshes {
		g, err := Shape(m.Shape)
		if err != nil {
			return nil, err
		}
		c, err := config.ParseColor(m.Color)
		if err != nil {
			return nil, fmt.Errorf("scene: mesh %s: %w", m.Name, err)
		}
		model, err := Model(m)
		if err != nil {
			return nil, fmt.Errorf("scene: mesh %s: %w", m.Name, err)
		}
		s.meshes = append(s.meshes, Mesh{Name: m.Name, Geometry: g, Model: model, Color: c})
	}

	return s, nil
}

// Frames returns the number of frames in the animation.
func (s *Scene) Frames() int { return s.frames }

// API returns the graphics API whose depth convention the projection uses.
func (s *Scene) API() transform.API { return s.api }

// Model composes T · R · S for a mesh, where R applies the X, Y and Z Euler
// angles (degrees) in that order. The product is formed on reduced 4×3
// matrices and expanded to 4×4 at the end.
func Model(m config.Mesh) (matrix.Square[float64], error) {
	qx := quat.FromAxisAngle(vector.Right[float64](), m.Rotate[0], trig.Degrees)
	qy := quat.FromAxisAngle(vector.Up[float64](), m.Rotate[1], trig.Degrees)
	qz := quat.FromAxisAngle(vector.Forward[float64](), m.Rotate[2], trig.Degrees)
	r := transform.RotateQuatReduced(qz.Mul(qy).Mul(qx))

	rs, err := transform.Multiply(r, transform.ScaleReduced(m.Scale[0], m.Scale[1], m.Scale[2]))
	if err != nil {
		return matrix.Square[float64]{}, err
	}
	trs, err := transform.Multiply(transform.TranslateReduced(m.Translate[0], m.Translate[1], m.Translate[2]), rs)
	if err != nil {
		return matrix.Square[float64]{}, err
	}

	return transform.AsMat4(trs)
}

// OrbitAngle returns the eased orbit angle in degrees for frame i.
func (s *Scene) OrbitAngle(i int) float64 {
	if s.frames <= 1 || s.cam.Orbit == 0 {
		return 0
	}
	tw := gween.New(0, float32(s.cam.Orbit), float32(s.frames-1), s.cam.Easing())
	angle, _ := tw.Update(float32(i))

	return float64(angle)
}

// Eye returns the camera position for frame i: the configured eye rotated
// about the up axis through the target by OrbitAngle(i).
func (s *Scene) Eye(i int) vector.Vec3[float64] {
	target := vecOf(s.cam.Target)
	q := quat.FromAxisAngle(vecOf(s.cam.Up), s.OrbitAngle(i), trig.Degrees)

	return target.Add(q.Rotate(vecOf(s.cam.Eye).Sub(target)))
}

// Frame returns frame i with the combined projection · view matrix.
func (s *Scene) Frame(i int) (Frame, error) {
	if i < 0 || i >= s.frames {
		return Frame{}, fmt.Errorf("scene: frame %d outside [0, %d)", i, s.frames)
	}
	eye := s.Eye(i)
	view := transform.LookAtRH(eye, vecOf(s.cam.Target), vecOf(s.cam.Up))
	vp, err := s.proj.MulSquare(view)
	if err != nil {
		return Frame{}, fmt.Errorf("scene: frame %d: %w", i, err)
	}

	return Frame{Index: i, Eye: eye, ViewProj: vp, Meshes: s.meshes}, nil
}

func vecOf(a [3]float64) vector.Vec3[float64] { return vector.V3(a[0], a[1], a[2]) }
