// Package headless renders the aurora without a display and writes the last
// frame to a PNG.
package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/aurora-lab/internal/aurora"
	"github.com/iburimskiy/aurora-lab/internal/config"
	"github.com/iburimskiy/aurora-lab/internal/frame"
	"github.com/iburimskiy/aurora-lab/internal/raster"
)

// ErrNoFrames is returned when asked to render fewer than one frame.
var ErrNoFrames = errors.New("frame count must be at least 1")

type Options struct {
	Frames int
	// Scale is the device scale; <= 0 means 1.
	Scale float64
	// Unpaced flushes frames back to back instead of at cfg.FPS.
	Unpaced bool
}

// Result is the last painted frame and how it was produced.
type Result struct {
	Image   *image.RGBA
	Frames  uint64
	Elapsed time.Duration
}

// Render paints opts.Frames frames on a surface of cfg.Window size.
func Render(ctx context.Context, cfg config.Config, opts Options, logger zerolog.Logger) (Result, error) {
	if opts.Frames < 1 {
		return Result{}, ErrNoFrames
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	canvas := raster.New(0, 0)
	surface := raster.NewSurface(canvas, float64(cfg.Window.Width), float64(cfg.Window.Height), scale)
	ticker := frame.NewTicker(cfg.FPS, logger)

	start := time.Now()
	r := aurora.Start(surface, ticker, aurora.Options{
		Palettes: cfg.Palettes,
		Bodies:   cfg.Bodies,
		Logger:   logger,
	})
	defer r.Stop()

	target := uint64(opts.Frames)

	// Runs after each paint; the renderer asked first.
	var watch func()
	watch = func() {
		if r.Tick() >= target {
			r.Stop()
			ticker.Stop()
			return
		}
		ticker.RequestFrame(watch)
	}
	ticker.RequestFrame(watch)

	if opts.Unpaced {
		for r.Active() {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("render frames: %w", err)
			}
			ticker.Flush()
		}
	} else if err := ticker.Run(ctx); err != nil {
		return Result{}, fmt.Errorf("render frames: %w", err)
	}

	res := Result{
		Image:   canvas.Snapshot(),
		Frames:  r.Tick(),
		Elapsed: time.Since(start),
	}
	logger.Debug().
		Uint64("frames", res.Frames).
		Dur("elapsed", res.Elapsed).
		Int("width", res.Image.Rect.Dx()).
		Int("height", res.Image.Rect.Dy()).
		Msg("headless render done")
	return res, nil
}

// Save renders and writes the final frame to path.
func Save(ctx context.Context, cfg config.Config, opts Options, path string, logger zerolog.Logger) (Result, error) {
	res, err := Render(ctx, cfg, opts, logger)
	if err != nil {
		return Result{}, err
	}
	if err := raster.SavePNG(path, res.Image); err != nil {
		return Result{}, fmt.Errorf("save frame: %w", err)
	}
	logger.Info().Str("path", path).Uint64("frames", res.Frames).Msg("frame written")
	return res, nil
}
