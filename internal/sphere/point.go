package sphere

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/neural-sphere/internal/config"
)

// Point is one particle on the sphere shell.
type Point struct {
	pos    mgl64.Vec3
	radius float64
}

// Projected is a point mapped to screen space for the current frame.
type Projected struct {
	X, Y    float64
	Scale   float64 // perspective factor
	Opacity float64 // 0 at the far pole, 1 at the near pole
}

// NewPoint places a point uniformly on a sphere of the given radius. The polar
// angle goes through acos(2u-1) so points do not bunch up at the poles.
func NewPoint(rng *rand.Rand, radius float64) *Point {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(rng.Float64()*2 - 1)
	sinPhi := math.Sin(phi)
	return &Point{
		pos: mgl64.Vec3{
			radius * sinPhi * math.Cos(theta),
			radius * sinPhi * math.Sin(theta),
			radius * math.Cos(phi),
		},
		radius: radius,
	}
}

// NewPointAt places a point at an explicit position on the default shell.
func NewPointAt(x, y, z float64) *Point {
	return &Point{pos: mgl64.Vec3{x, y, z}, radius: config.SphereRadius}
}

func (p *Point) X() float64      { return p.pos.X() }
func (p *Point) Y() float64      { return p.pos.Y() }
func (p *Point) Z() float64      { return p.pos.Z() }
func (p *Point) Vec() mgl64.Vec3 { return p.pos }

// Radius is the shell radius the point was created on, not its current length.
func (p *Point) Radius() float64 { return p.radius }

// Rotate turns the point about the Y axis by angleY, then about the X axis by
// angleX:
//
//	x1 = x cosY - z sinY,  z1 = z cosY + x sinY
//	y2 = y cosX - z1 sinX, z2 = z1 cosX + y sinX
//
// The point is updated in place and successive calls compose, so the caller
// must rotate every point of a frame before reading any of them back.
func (p *Point) Rotate(angleX, angleY float64) {
	// Rotate3DY maps x to x cos + z sin, the opposite sense about Y.
	rot := mgl64.Rotate3DX(angleX).Mul3(mgl64.Rotate3DY(-angleY))
	p.pos = rot.Mul3x1(p.pos)
}

// Project maps the point to screen space around the centre of a width x height
// view. It does not modify p.
func (p *Point) Project(width, height, focal float64) Projected {
	x, y, z := p.pos.Elem()
	out := Projected{X: width / 2, Y: height / 2}

	depth := focal + z
	if depth <= 0 {
		// behind the viewer
		return out
	}
	scale := focal / depth
	out.X += x * scale
	out.Y += y * scale
	out.Scale = scale
	if p.radius > 0 {
		out.Opacity = clamp01((z + p.radius) / (2 * p.radius))
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
