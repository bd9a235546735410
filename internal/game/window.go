package game

import (
	"errors"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/neural-sphere/internal/config"
	"github.com/iburimskiy/neural-sphere/internal/logging"
	"github.com/iburimskiy/neural-sphere/internal/sphere"
	"github.com/iburimskiy/neural-sphere/internal/theme"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	Seed   int64
}

// RunWindow opens a resizable window and animates the sphere in it. It blocks
// until the window closes or the user quits.
func RunWindow(cfg WindowConfig, themes *theme.Store, log *logging.Logger) error {
	if cfg.Width <= 0 {
		cfg.Width = config.WindowWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = config.WindowHeight
	}

	ctrl := sphere.NewSurfaceController(themes)
	loop := sphere.NewLoop(ctrl, sphere.DefaultConfig(), rand.New(rand.NewSource(cfg.Seed)), log.With("SPHERE"))
	g := newGame(loop, ctrl, themes, log)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	err := ebiten.RunGame(g)
	loop.Stop()
	st := loop.Stats()
	log.Infof("stopped after %d frames (%d skipped)", st.Frames, st.Skipped)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
