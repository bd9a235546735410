package sphere

import "math"

// Projector holds the viewport for one frame.
type Projector struct {
	Width, Height float64
	Focal         float64
}

func (pr Projector) Project(p *Point) Projected {
	return p.Project(pr.Width, pr.Height, pr.Focal)
}

// ProjectAll projects pts into dst, reusing its backing array when it is
// large enough.
func (pr Projector) ProjectAll(dst []Projected, pts []*Point) []Projected {
	dst = dst[:0]
	for _, p := range pts {
		dst = append(dst, pr.Project(p))
	}
	return dst
}

// ScreenDistance is the Euclidean distance between two projected points.
func ScreenDistance(a, b Projected) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
