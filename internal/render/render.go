// SPDX-License-Identifier: MIT

// Package render draws scene frames as supersampled wireframes and encodes
// them as WebP or PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/katalvlaran/dmath/convert"
	"github.com/katalvlaran/dmath/internal/scene"
	"github.com/katalvlaran/dmath/matrix"
	"github.com/katalvlaran/dmath/transform"
	"github.com/katalvlaran/dmath/vector"
	"golang.org/x/image/draw"
)

// ErrFormat is returned by Encode for an unsupported output format.
var ErrFormat = errors.New("render: unsupported format")

// Background is the clear color of every frame.
var Background = color.NRGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}

// Renderer rasterizes frames at Size*Supersample pixels and downsamples to Size.
type Renderer struct {
	size, supersample int
}

// New returns a Renderer for square images of size pixels.
func New(size, supersample int) (*Renderer, error) {
	if size <= 0 || supersample <= 0 {
		return nil, fmt.Errorf("render: size %d and supersample %d must be positive", size, supersample)
	}

	return &Renderer{size: size, supersample: supersample}, nil
}

// Render draws every mesh edge of f. Edges with an endpoint behind the
// camera (clip w <= 0) are skipped.
func (r *Renderer) Render(f scene.Frame) (*image.NRGBA, error) {
	n := r.size * r.supersample
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for _, m := range f.Meshes {
		mvp, err := f.ViewProj.MulSquare(m.Model)
		if err != nil {
			return nil, fmt.Errorf("render: mesh %s: %w", m.Name, err)
		}
		pts := make([]screenPoint, len(m.Vertices))
		for i, v := range m.Vertices {
			if pts[i], err = project(mvp, v, n); err != nil {
				return nil, fmt.Errorf("render: mesh %s vertex %d: %w", m.Name, i, err)
			}
		}
		for _, e := range m.Edges {
			a, b := pts[e[0]], pts[e[1]]
			if !a.visible || !b.visible {
				continue
			}
			drawLine(img, a.x, a.y, b.x, b.y, m.Color)
		}
	}

	return Downsample(img, r.supersample)
}

type screenPoint struct {
	x, y    int
	visible bool
}

// project maps a model-space point to pixel coordinates of an n×n image.
// NDC +Y points up, image rows grow downward.
func project(mvp matrix.Square[float64], p vector.Vec3[float64], n int) (screenPoint, error) {
	clip, err := mvp.MulVec(p.AsVec4(1))
	if err != nil {
		return screenPoint{}, err
	}
	w, err := clip.At(3)
	if err != nil {
		return screenPoint{}, err
	}
	if w <= 0 {
		return screenPoint{}, nil
	}
	ndc, err := vector.FromHomogeneous(clip)
	if err != nil {
		return screenPoint{}, err
	}
	if !vector.IsFinite(ndc) {
		return screenPoint{}, nil
	}
	half := float64(n) / 2

	return screenPoint{
		x:       int(math.Round((ndc.X + 1) * half)),
		y:       int(math.Round((1 - ndc.Y) * half)),
		visible: true,
	}, nil
}

// drawLine plots a Bresenham line; pixels outside the image are clipped.
func drawLine(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	b := img.Bounds()
	// bail out on segments far outside the frame
	limit := 4 * (b.Dx() + b.Dy())
	if dx > limit || -dy > limit {
		return
	}
	e := dx + dy
	for {
		if (image.Point{X: x0, Y: y0}).In(b) {
			img.SetNRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Downsample shrinks src by factor with Catmull-Rom filtering. The
// source-to-destination mapping is the 2D homogeneous scale diag(1/f, 1/f, 1)
// handed to x/image/draw as an f64.Aff3. A factor of 1 returns src.
func Downsample(src *image.NRGBA, factor int) (*image.NRGBA, error) {
	if factor == 1 {
		return src, nil
	}
	if factor <= 0 {
		return nil, fmt.Errorf("render: downsample factor %d must be positive", factor)
	}
	inv := 1 / float64(factor)
	s2d, err := convert.Aff3FromSquare3(transform.Scale(inv, inv, 1))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.CatmullRom.Transform(dst, s2d, src, b, draw.Src, nil)

	return dst, nil
}

// Encode writes img to w as "webp" (lossless) or "png".
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}
