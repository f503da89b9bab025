// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/dmath/internal/config"
	"github.com/katalvlaran/dmath/internal/render"
	"github.com/katalvlaran/dmath/internal/scene"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// run renders every frame of cfg into cfg.Output.Dir, at most
// cfg.Output.Workers at a time. The first failure cancels pending frames.
func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	sc, err := scene.New(cfg)
	if err != nil {
		return err
	}
	r, err := render.New(cfg.Output.Size, cfg.Output.Supersample)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	log.Info("rendering",
		zap.Int("frames", sc.Frames()),
		zap.Int("meshes", len(cfg.Meshes)),
		zap.Stringer("api", sc.API()),
		zap.Int("workers", cfg.Output.Workers),
		zap.String("dir", cfg.Output.Dir),
	)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Output.Workers)
	for i := 0; i < sc.Frames(); i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("frame_%03d.%s", i, cfg.Output.Format))
			t0 := time.Now()
			if err := renderFrame(sc, r, i, path, cfg.Output.Format); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			log.Debug("frame written",
				zap.Int("frame", i),
				zap.Float64("orbit_deg", sc.OrbitAngle(i)),
				zap.String("path", path),
				zap.Duration("took", time.Since(t0)),
			)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("done", zap.Int("frames", sc.Frames()), zap.Duration("elapsed", time.Since(start)))

	return nil
}

func renderFrame(sc *scene.Scene, r *render.Renderer, i int, path, format string) (err error) {
	f, err := sc.Frame(i)
	if err != nil {
		return err
	}
	img, err := r.Render(f)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return render.Encode(out, img, format)
}
