// Package headless runs the sphere without a window, rendering into memory.
package headless

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/iburimskiy/neural-sphere/internal/config"
	"github.com/iburimskiy/neural-sphere/internal/logging"
	"github.com/iburimskiy/neural-sphere/internal/raster"
	"github.com/iburimskiy/neural-sphere/internal/sphere"
	"github.com/iburimskiy/neural-sphere/internal/theme"
)

// Config controls the no-window runner.
type Config struct {
	Hz       int
	Frames   uint64 // 0 runs until ctx is cancelled
	Width    int
	Height   int
	Seed     int64
	PNG      string // final frame, optional
	GIF      string // animation, optional
	GIFEvery int    // record every Nth frame
}

// recordingSurface forwards to the canvas and hands every Nth finished frame
// to the GIF recorder. A frame is finished when the next one clears the canvas
// or when the run ends.
type recordingSurface struct {
	*raster.Canvas
	rec     *raster.GIFRecorder
	every   int
	done    int
	pending bool
}

func (s *recordingSurface) Clear(bg color.Color) {
	s.flush()
	s.Canvas.Clear(bg)
	s.pending = true
}

func (s *recordingSurface) flush() {
	if !s.pending {
		return
	}
	s.pending = false
	s.done++
	if s.rec != nil && s.done%s.every == 0 {
		s.rec.Add(s.Canvas.Image())
	}
}

// Run renders frames at cfg.Hz until cfg.Frames have been produced or ctx is
// done, then writes the requested outputs.
func Run(ctx context.Context, cfg Config, themes *theme.Store, log *logging.Logger) error {
	if cfg.Hz <= 0 {
		cfg.Hz = config.TPS
	}
	if cfg.GIFEvery <= 0 {
		cfg.GIFEvery = 1
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size %dx%d", cfg.Width, cfg.Height)
	}

	clock, err := sphere.NewTickerClock(cfg.Hz)
	if err != nil {
		return err
	}
	defer clock.Stop()

	ctrl := sphere.NewSurfaceController(themes)
	ctrl.Resize(cfg.Width, cfg.Height)
	loop := sphere.NewLoop(ctrl, sphere.DefaultConfig(), rand.New(rand.NewSource(cfg.Seed)), log.With("SPHERE"))

	canvas := raster.NewCanvas(cfg.Width, cfg.Height)
	surface := &recordingSurface{Canvas: canvas, every: cfg.GIFEvery}
	if cfg.GIF != "" {
		surface.rec = raster.NewGIFRecorder(config.GIFDelay)
	}

	var fc sphere.FrameClock = clock
	if cfg.Frames > 0 {
		fc = &limitClock{FrameClock: clock, left: cfg.Frames}
	}

	log.Infof("rendering %dx%d at %d Hz (frames=%d)", cfg.Width, cfg.Height, cfg.Hz, cfg.Frames)
	runErr := loop.Run(ctx, fc, surface)
	loop.Stop()
	surface.flush()

	st := loop.Stats()
	log.Infof("rendered %d frames, %d edges in last frame", st.Frames, st.LastEdges)

	if cfg.PNG != "" && st.Frames > 0 {
		if err := raster.SavePNG(cfg.PNG, canvas.Image()); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		log.Infof("wrote %s", cfg.PNG)
	}
	if surface.rec != nil && surface.rec.Len() > 0 {
		if err := surface.rec.Save(cfg.GIF); err != nil {
			return fmt.Errorf("save gif: %w", err)
		}
		log.Infof("wrote %s (%d frames)", cfg.GIF, surface.rec.Len())
	}
	return runErr
}

// limitClock stops after a fixed number of frames.
type limitClock struct {
	sphere.FrameClock
	left uint64
}

func (c *limitClock) Wait(ctx context.Context) error {
	if c.left == 0 {
		return sphere.ErrClockDone
	}
	if err := c.FrameClock.Wait(ctx); err != nil {
		return err
	}
	c.left--
	return nil
}
