package sphere

import (
	"image/color"
	"math"

	"github.com/iburimskiy/neural-sphere/internal/config"
)

// Edge connects Projected[I] and Projected[J], I < J.
type Edge struct {
	I, J  int
	Alpha float64
}

// Linker connects projected points that are closer than Threshold on screen.
type Linker struct {
	Threshold   float64
	BaseOpacity float64
	Color       color.NRGBA
	Width       float64
}

// EdgeColor is the accent used for every edge.
var EdgeColor = color.NRGBA{R: 255, G: 97, B: 26, A: 255}

func NewLinker() Linker {
	return Linker{
		Threshold:   config.ConnectionDistance,
		BaseOpacity: config.EdgeBaseOpacity,
		Color:       EdgeColor,
		Width:       config.EdgeWidth,
	}
}

// EdgeAlpha fades linearly with distance and is weighted by the mean depth
// opacity of both ends.
func (l Linker) EdgeAlpha(dist, o1, o2 float64) float64 {
	return (1 - dist/l.Threshold) * l.BaseOpacity * ((o1 + o2) / 2)
}

// Link calls visit for every pair i < j strictly closer than the threshold.
func (l Linker) Link(pts []Projected, visit func(Edge)) {
	if l.Threshold <= 0 {
		return
	}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			dist := ScreenDistance(pts[i], pts[j])
			if dist >= l.Threshold {
				continue
			}
			visit(Edge{I: i, J: j, Alpha: l.EdgeAlpha(dist, pts[i].Opacity, pts[j].Opacity)})
		}
	}
}

// Edges collects the result of Link.
func (l Linker) Edges(pts []Projected) []Edge {
	var out []Edge
	l.Link(pts, func(e Edge) { out = append(out, e) })
	return out
}

// Draw strokes every edge onto s and returns how many were drawn.
func (l Linker) Draw(s Surface, pts []Projected) int {
	n := 0
	l.Link(pts, func(e Edge) {
		c := l.Color
		c.A = alphaByte(e.Alpha)
		a, b := pts[e.I], pts[e.J]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, l.Width, c)
		n++
	})
	return n
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}
