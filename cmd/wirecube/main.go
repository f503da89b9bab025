// SPDX-License-Identifier: MIT

// Command wirecube renders an animated wireframe scene described in YAML.
//
//	wirecube -config scene.yaml -out frames -frames 36 -format webp
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/dmath/internal/config"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "Path to scene YAML (default: built-in cube)")
	outputDir := flag.String("out", "", "Output directory (default: frames)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Number of frames (default: 1)")
	workers := flag.Int("workers", 0, "Concurrent frame renders (default: NumCPU)")
	format := flag.String("format", "", "Output format: webp or png (default: webp)")
	api := flag.String("api", "", "Projection convention: opengl or vulkan (default: vulkan)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wirecube: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var cfg config.Config
	if *configFile != "" {
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatal("load config", zap.Error(err))
		}
	}
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		Format:    *format,
		API:       *api,
	})
	if err = cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Error("render failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

// newLogger builds a JSON production logger on stderr without caller info.
func newLogger(debug bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	return cfg.Build()
}
