package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neural-sphere/internal/config"
	"github.com/iburimskiy/neural-sphere/internal/framerate"
	"github.com/iburimskiy/neural-sphere/internal/logging"
	"github.com/iburimskiy/neural-sphere/internal/raster"
	"github.com/iburimskiy/neural-sphere/internal/sphere"
	"github.com/iburimskiy/neural-sphere/internal/theme"
)

type game struct {
	loop   *sphere.Loop
	ctrl   *sphere.SurfaceController
	themes *theme.Store
	log    *logging.Logger

	// hud
	showHUD bool
	started time.Time
	tap     *framerate.Tap

	// snapshot
	snapshotRequested bool
	snapshot          *image.RGBA
	pixels            []byte

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func newGame(loop *sphere.Loop, ctrl *sphere.SurfaceController, themes *theme.Store, log *logging.Logger) *game {
	return &game{
		loop:    loop,
		ctrl:    ctrl,
		themes:  themes,
		log:     log,
		tap:     framerate.NewTap(config.FrameRingSize),
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.loop.Stop()
		return ebiten.Termination
	}

	// Pointer moves feed the rotation bias
	x, y := ebiten.CursorPosition()
	g.ctrl.TrackCursor(float64(x), float64(y))

	if justPressed(ebiten.KeyT) {
		m := g.themes.Toggle()
		g.log.Infof("theme -> %s", m)
	}
	if justPressed(ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyP) {
		g.snapshotRequested = true
	}

	// Captured during the previous Draw
	if g.snapshot != nil {
		shot := g.snapshot
		g.snapshot = nil
		if err := g.saveSnapshotDialog(shot); err != nil {
			g.lastErr = err
			g.log.Errorf("snapshot: %v", err)
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.tap.Mark(time.Now())
	g.loop.Frame(ebitenSurface{screen: screen})

	if g.snapshotRequested {
		g.snapshotRequested = false
		g.snapshot = g.capture(screen)
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.ctrl.Resize(outsideWidth, outsideHeight) {
		g.log.Debugf("resize %dx%d", outsideWidth, outsideHeight)
	}
	if g.loop.State() == sphere.Idle {
		g.started = time.Now()
		g.loop.Start()
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

func (g *game) drawHUD(screen *ebiten.Image) {
	st := g.loop.Stats()
	status := fmt.Sprintf("%.0f FPS | %s | frames %d | edges %d | theme %s",
		g.tap.Rate(), formatDuration(time.Since(g.started)), st.Frames, st.LastEdges, g.themes.Mode())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}

	width := len(status)*6 + 16
	vector.DrawFilledRect(screen, 6, 6, float32(width), 24, color.RGBA{R: 0, G: 0, B: 0, A: 180}, false)
	vector.StrokeRect(screen, 6, 6, float32(width), 24, 1, sphere.EdgeColor, false)
	ebitenutil.DebugPrintAt(screen, status, 12, 10)
}

// capture copies the current screen contents into an RGBA image.
func (g *game) capture(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	if b.Empty() {
		return nil
	}
	if n := 4 * b.Dx() * b.Dy(); len(g.pixels) != n {
		g.pixels = make([]byte, n)
	}
	screen.ReadPixels(g.pixels)
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	copy(img.Pix, g.pixels)
	return img
}

func (g *game) saveSnapshotDialog(img *image.RGBA) error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename(snapshotName(time.Now())),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := raster.SavePNG(filename, img); err != nil {
		return err
	}
	g.log.Infof("saved snapshot %s", filename)
	return nil
}
