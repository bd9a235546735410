package sphere

import (
	"sync/atomic"

	"github.com/iburimskiy/neural-sphere/internal/config"
	"github.com/iburimskiy/neural-sphere/internal/theme"
)

// ThemeSource reports the current theme. It is polled once per frame.
type ThemeSource interface {
	Mode() theme.Mode
}

// ViewState is everything a frame needs to know about the outside world.
type ViewState struct {
	Width, Height  float64
	MouseX, MouseY float64 // rotation bias derived from the pointer
	Theme          theme.Mode
}

func (v ViewState) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// SurfaceController tracks the surface size and the pointer bias. Resize and
// PointerMoved are meant to be called between frames by the host's event
// handlers; View is read at the start of each frame.
type SurfaceController struct {
	themes ThemeSource

	width, height  float64
	mouseX, mouseY float64
	pointerScale   float64

	cursorX, cursorY float64
	cursorSeen       bool

	detached atomic.Bool
}

func NewSurfaceController(themes ThemeSource) *SurfaceController {
	return &SurfaceController{
		themes:       themes,
		pointerScale: config.PointerScale,
	}
}

// Resize adopts the container's current size. It reports whether the size
// changed.
func (c *SurfaceController) Resize(width, height int) bool {
	if c.detached.Load() {
		return false
	}
	w, h := float64(max(width, 0)), float64(max(height, 0))
	if w == c.width && h == c.height {
		return false
	}
	c.width, c.height = w, h
	return true
}

// PointerMoved records a pointer position relative to the surface's top-left
// corner. The bias keeps its last value until the next move.
func (c *SurfaceController) PointerMoved(x, y float64) {
	if c.detached.Load() {
		return
	}
	c.mouseX = (x - c.width/2) * c.pointerScale
	c.mouseY = (y - c.height/2) * c.pointerScale
}

// TrackCursor takes a polled cursor position and forwards it to PointerMoved
// only when it differs from the previous sample. The first sample is just a
// baseline: the bias stays at zero until the pointer actually moves.
func (c *SurfaceController) TrackCursor(x, y float64) {
	if !c.cursorSeen {
		c.cursorSeen = true
		c.cursorX, c.cursorY = x, y
		return
	}
	if x == c.cursorX && y == c.cursorY {
		return
	}
	c.cursorX, c.cursorY = x, y
	c.PointerMoved(x, y)
}

func (c *SurfaceController) Dimensions() (float64, float64) { return c.width, c.height }

func (c *SurfaceController) Pointer() (float64, float64) { return c.mouseX, c.mouseY }

// View snapshots the current state. The theme is read fresh on every call.
func (c *SurfaceController) View() ViewState {
	v := ViewState{
		Width:  c.width,
		Height: c.height,
		MouseX: c.mouseX,
		MouseY: c.mouseY,
	}
	if c.themes != nil {
		v.Theme = c.themes.Mode()
	}
	return v
}

// Detach stops the controller from accepting further events.
func (c *SurfaceController) Detach() { c.detached.Store(true) }

func (c *SurfaceController) Detached() bool { return c.detached.Load() }
