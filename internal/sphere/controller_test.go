package sphere

import (
	"math"
	"testing"

	"github.com/iburimskiy/neural-sphere/internal/theme"
)

func TestResizeRecentresProjection(t *testing.T) {
	c := NewSurfaceController(theme.NewStore(theme.Light))
	if !c.Resize(400, 400) {
		t.Fatal("first resize should report a change")
	}
	if c.Resize(400, 400) {
		t.Fatal("same size should not report a change")
	}

	p := NewPointAt(0, 0, 0)
	before := p.Vec()
	v := c.View()
	got := p.Project(v.Width, v.Height, 300)
	if got.X != 200 || got.Y != 200 {
		t.Fatalf("centre before resize = (%v,%v)", got.X, got.Y)
	}

	c.Resize(1000, 600)
	v = c.View()
	got = p.Project(v.Width, v.Height, 300)
	if got.X != 500 || got.Y != 300 {
		t.Fatalf("centre after resize = (%v,%v), want (500,300)", got.X, got.Y)
	}
	if p.Vec() != before {
		t.Fatal("resize must not touch 3D coordinates")
	}
}

func TestResizeClampsNegative(t *testing.T) {
	c := NewSurfaceController(nil)
	c.Resize(-5, 10)
	if w, h := c.Dimensions(); w != 0 || h != 10 {
		t.Fatalf("got %vx%v", w, h)
	}
	if !c.View().Empty() {
		t.Fatal("zero width view should be empty")
	}
}

func TestPointerBias(t *testing.T) {
	c := NewSurfaceController(nil)
	c.Resize(800, 600)
	c.PointerMoved(400, 300)
	if x, y := c.Pointer(); x != 0 || y != 0 {
		t.Fatalf("pointer at centre should give zero bias, got (%v,%v)", x, y)
	}
	c.PointerMoved(800, 0)
	x, y := c.Pointer()
	if math.Abs(x-0.04) > 1e-12 || math.Abs(y+0.03) > 1e-12 {
		t.Fatalf("unexpected bias (%v,%v)", x, y)
	}
	// no further moves: the bias holds
	v := c.View()
	if v.MouseX != x || v.MouseY != y {
		t.Fatalf("view bias (%v,%v) differs from pointer (%v,%v)", v.MouseX, v.MouseY, x, y)
	}
}

func TestViewPollsTheme(t *testing.T) {
	store := theme.NewStore(theme.Light)
	c := NewSurfaceController(store)
	if c.View().Theme != theme.Light {
		t.Fatal("expected light")
	}
	store.Set(theme.Dark)
	if c.View().Theme != theme.Dark {
		t.Fatal("theme change not visible on next view")
	}
}

func TestDetachIgnoresEvents(t *testing.T) {
	c := NewSurfaceController(nil)
	c.Resize(100, 100)
	c.Detach()
	if c.Resize(200, 200) {
		t.Fatal("detached controller accepted a resize")
	}
	c.PointerMoved(0, 0)
	if x, y := c.Pointer(); x != 0 || y != 0 {
		t.Fatalf("detached controller accepted a pointer move: (%v,%v)", x, y)
	}
	if !c.Detached() {
		t.Fatal("Detached() should be true")
	}
}

func TestTrackCursorIgnoresFirstSample(t *testing.T) {
	c := NewSurfaceController(nil)
	c.Resize(1024, 640)

	// the host reports (0,0) before any real pointer event
	c.TrackCursor(0, 0)
	if x, y := c.Pointer(); x != 0 || y != 0 {
		t.Fatalf("initial cursor sample set a bias (%v,%v)", x, y)
	}
	c.TrackCursor(0, 0)
	if x, y := c.Pointer(); x != 0 || y != 0 {
		t.Fatalf("unchanged cursor set a bias (%v,%v)", x, y)
	}

	c.TrackCursor(612, 320)
	x, y := c.Pointer()
	if math.Abs(x-0.01) > 1e-12 || y != 0 {
		t.Fatalf("bias after move = (%v,%v), want (0.01,0)", x, y)
	}

	// pointer at rest: the bias holds its last value
	c.TrackCursor(612, 320)
	if x2, y2 := c.Pointer(); x2 != x || y2 != y {
		t.Fatalf("bias changed without movement: (%v,%v)", x2, y2)
	}
}
