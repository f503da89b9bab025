package config_test

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/dmath/internal/config"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `
camera:
  eye: [4, 3, 5]
  target: [0, 0, 0]
  fov_y: 45
  api: opengl
  orbit: 90
  ease: linear
meshes:
  - name: box
    translate: [0, 0.5, 0]
    rotate: [0, 30, 0]
  - shape: octahedron
    scale: [0.5, 0.5, 0.5]
    color: "#f80"
output:
  size: 128
  frames: 12
  format: png
`

// TestLoadYAMLResolve decodes a scene and fills the gaps with defaults.
func TestLoadYAMLResolve(t *testing.T) {
	cfg, err := config.LoadYAML(strings.NewReader(sceneYAML))
	require.NoError(t, err)
	cfg.Resolve(config.Flags{})
	require.NoError(t, cfg.Validate())

	require.Equal(t, [3]float64{4, 3, 5}, cfg.Camera.Eye)
	require.Equal(t, [3]float64{0, 1, 0}, cfg.Camera.Up)
	require.Equal(t, config.DefaultNear, cfg.Camera.Near)
	require.Equal(t, "opengl", cfg.Camera.API)

	require.Len(t, cfg.Meshes, 2)
	require.Equal(t, config.ShapeCube, cfg.Meshes[0].Shape)
	require.Equal(t, [3]float64{1, 1, 1}, cfg.Meshes[0].Scale)
	require.Equal(t, "octahedron-1", cfg.Meshes[1].Name)

	require.Equal(t, 128, cfg.Output.Size)
	require.Equal(t, config.DefaultSupersample, cfg.Output.Supersample)
	require.Positive(t, cfg.Output.Workers)
}

// TestResolveFlagsOverride gives CLI flags priority over the file.
func TestResolveFlagsOverride(t *testing.T) {
	cfg, err := config.LoadYAML(strings.NewReader(sceneYAML))
	require.NoError(t, err)
	cfg.Resolve(config.Flags{OutputDir: "out", Frames: 3, Workers: 2, Format: "webp", API: "vk"})
	require.NoError(t, cfg.Validate())
	require.Equal(t, "out", cfg.Output.Dir)
	require.Equal(t, 3, cfg.Output.Frames)
	require.Equal(t, 2, cfg.Output.Workers)
	require.Equal(t, config.FormatWebP, cfg.Output.Format)
	require.Equal(t, "vk", cfg.Camera.API)
}

// TestEmptyConfig resolves to a valid one-cube scene.
func TestEmptyConfig(t *testing.T) {
	cfg, err := config.LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	cfg.Resolve(config.Flags{})
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Meshes, 1)
	require.NotNil(t, cfg.Camera.Easing())
}

// TestLoadYAMLUnknownField rejects misspelled keys.
func TestLoadYAMLUnknownField(t *testing.T) {
	_, err := config.LoadYAML(strings.NewReader("camera:\n  fovy: 45\n"))
	require.Error(t, err)
}

// TestLoadFile covers the path-based loader and its error wrapping.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Output.Frames)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "config: read")
}

// TestValidate lists the rejected configurations.
func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"eye equals target", func(c *config.Config) { c.Camera.Eye = c.Camera.Target }, "camera.eye"},
		{"near beyond far", func(c *config.Config) { c.Camera.Near = 200 }, "camera.near"},
		{"fov too wide", func(c *config.Config) { c.Camera.FovY = 180 }, "camera.fov_y"},
		{"bad api", func(c *config.Config) { c.Camera.API = "metal" }, "camera.api"},
		{"bad ease", func(c *config.Config) { c.Camera.Ease = "wobble" }, "camera.ease"},
		{"bad shape", func(c *config.Config) { c.Meshes[0].Shape = "torus" }, "meshes[0].shape"},
		{"bad color", func(c *config.Config) { c.Meshes[0].Color = "#12" }, "meshes[0].color"},
		{"bad format", func(c *config.Config) { c.Output.Format = "gif" }, "output.format"},
		{"supersample", func(c *config.Config) { c.Output.Supersample = 16 }, "output.supersample"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg config.Config
			cfg.Resolve(config.Flags{})
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
			require.ErrorContains(t, err, tc.field)
		})
	}
}

// TestParseColor accepts long and short hex forms.
func TestParseColor(t *testing.T) {
	c, err := config.ParseColor("#ff8000")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, c)

	c, err = config.ParseColor("0f8")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{G: 0xff, B: 0x88, A: 0xff}, c)

	_, err = config.ParseColor("#zzzzzz")
	require.Error(t, err)
}
