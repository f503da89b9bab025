// SPDX-License-Identifier: MIT

// Package config loads the wirecube scene description from YAML and merges
// command-line overrides into it.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/katalvlaran/dmath/transform"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Documented defaults applied by Resolve.
const (
	DefaultFovY        = 60.0
	DefaultNear        = 0.1
	DefaultFar         = 100.0
	DefaultAPI         = "vulkan"
	DefaultEase        = "inOutQuad"
	DefaultShape       = "cube"
	DefaultSize        = 256
	DefaultSupersample = 2
	DefaultFrames      = 1
	DefaultFormat      = FormatWebP
	DefaultOutputDir   = "frames"
)

// Output image formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
)

// easings maps config names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
}

// Config is the whole scene: one camera, a list of meshes and output settings.
type Config struct {
	Camera Camera `yaml:"camera"`
	Meshes []Mesh `yaml:"meshes"`
	Output Output `yaml:"output"`
}

// Camera describes a right-handed perspective camera. Orbit is the angle in
// degrees the eye sweeps around Target (about Up) over the whole animation.
type Camera struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	Up     [3]float64 `yaml:"up"`
	FovY   float64    `yaml:"fov_y"`
	Near   float64    `yaml:"near"`
	Far    float64    `yaml:"far"`
	API    string     `yaml:"api"`
	Orbit  float64    `yaml:"orbit"`
	Ease   string     `yaml:"ease"`
}

// Mesh places one built-in shape. Rotate holds Euler angles in degrees; a
// zero Scale means unit scale.
type Mesh struct {
	Name      string     `yaml:"name"`
	Shape     string     `yaml:"shape"`
	Translate [3]float64 `yaml:"translate"`
	Rotate    [3]float64 `yaml:"rotate"`
	Scale     [3]float64 `yaml:"scale"`
	Color     string     `yaml:"color"`
}

// Output controls the rendered frames.
type Output struct {
	Dir         string `yaml:"dir"`
	Size        int    `yaml:"size"`
	Supersample int    `yaml:"supersample"`
	Frames      int    `yaml:"frames"`
	Format      string `yaml:"format"`
	Workers     int    `yaml:"workers"`
}

// Flags holds CLI values that override the file. Zero values mean "not set".
type Flags struct {
	OutputDir string
	Size      int
	Frames    int
	Workers   int
	Format    string
	API       string
}

// Load reads and decodes the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadYAML(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadYAML decodes a config from r. Unknown keys are rejected.
func LoadYAML(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	return c, nil
}

// Resolve applies flags over the file values, then fills every unset field
// with its default.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.Output.Dir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.Output.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Output.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Output.Workers = flags.Workers
	}
	if flags.Format != "" {
		c.Output.Format = flags.Format
	}
	if flags.API != "" {
		c.Camera.API = flags.API
	}

	cam := &c.Camera
	if cam.Eye == [3]float64{} {
		cam.Eye = [3]float64{3, 3, 3}
	}
	if cam.Up == [3]float64{} {
		cam.Up = [3]float64{0, 1, 0}
	}
	if cam.FovY <= 0 {
		cam.FovY = DefaultFovY
	}
	if cam.Near <= 0 {
		cam.Near = DefaultNear
	}
	if cam.Far <= 0 {
		cam.Far = DefaultFar
	}
	if cam.API == "" {
		cam.API = DefaultAPI
	}
	if cam.Ease == "" {
		cam.Ease = DefaultEase
	}

	if len(c.Meshes) == 0 {
		c.Meshes = []Mesh{{Name: DefaultShape}}
	}
	for i := range c.Meshes {
		m := &c.Meshes[i]
		if m.Shape == "" {
			m.Shape = DefaultShape
		}
		if m.Name == "" {
			m.Name = fmt.Sprintf("%s-%d", m.Shape, i)
		}
		if m.Scale == [3]float64{} {
			m.Scale = [3]float64{1, 1, 1}
		}
		if m.Color == "" {
			m.Color = "#ffffff"
		}
	}

	out := &c.Output
	if out.Dir == "" {
		out.Dir = DefaultOutputDir
	}
	if out.Size <= 0 {
		out.Size = DefaultSize
	}
	if out.Supersample <= 0 {
		out.Supersample = DefaultSupersample
	}
	if out.Frames <= 0 {
		out.Frames = DefaultFrames
	}
	if out.Format == "" {
		out.Format = DefaultFormat
	}
	if out.Workers <= 0 {
		out.Workers = runtime.NumCPU()
	}
}

// Validate checks a resolved config. All failures wrap ErrInvalid.
func (c Config) Validate() error {
	cam := c.Camera
	if cam.Eye == cam.Target {
		return invalid("camera.eye", "must differ from camera.target")
	}
	if cam.Near >= cam.Far {
		return invalid("camera.near", "must be less than camera.far")
	}
	if cam.FovY >= 180 {
		return invalid("camera.fov_y", "must be below 180 degrees")
	}
	if _, err := transform.ParseAPI(cam.API); err != nil {
		return invalid("camera.api", err.Error())
	}
	if _, ok := easings[cam.Ease]; !ok {
		return invalid("camera.ease", fmt.Sprintf("unknown easing %q", cam.Ease))
	}
	for i, m := range c.Meshes {
		if !IsShape(m.Shape) {
			return invalid(fmt.Sprintf("meshes[%d].shape", i), fmt.Sprintf("unknown shape %q", m.Shape))
		}
		if _, err := ParseColor(m.Color); err != nil {
			return invalid(fmt.Sprintf("meshes[%d].color", i), err.Error())
		}
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatWebP, FormatPNG:
	default:
		return invalid("output.format", fmt.Sprintf("unknown format %q", c.Output.Format))
	}
	if c.Output.Supersample > 8 {
		return invalid("output.supersample", "must be at most 8")
	}

	return nil
}

// Easing returns the gween easing function named by the camera.
// Unknown names fall back to ease.Linear; Validate rejects them earlier.
func (c Camera) Easing() ease.TweenFunc {
	if fn, ok := easings[c.Ease]; ok {
		return fn
	}

	return ease.Linear
}

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, reason)
}
