package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenSurface draws the sphere onto the screen image for the current frame.
type ebitenSurface struct {
	screen *ebiten.Image
}

func (s ebitenSurface) Clear(bg color.Color) {
	s.screen.Fill(bg)
}

func (s ebitenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s ebitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.screen, float32(cx), float32(cy), float32(r), c, true)
}
