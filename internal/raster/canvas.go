// Package raster draws onto an in-memory RGBA image. It backs the headless
// host and the PNG/GIF writers.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Canvas is a software Surface over an *image.RGBA.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
	src *image.Uniform
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{src: image.NewUniform(color.Transparent)}
	c.Resize(width, height)
	return c
}

// Resize reallocates the backing image when the size changes. The content is
// discarded.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if c.img != nil && c.img.Rect.Dx() == width && c.img.Rect.Dy() == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.z = vector.NewRasterizer(width, height)
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

func (c *Canvas) Clear(bg color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
}

// StrokeLine fills the thin quad around the segment.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if c.img.Rect.Empty() || width <= 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// offset to each side of the segment
	nx, ny := -dy/length*width/2, dx/length*width/2

	c.begin()
	c.z.MoveTo(float32(x0+nx), float32(y0+ny))
	c.z.LineTo(float32(x1+nx), float32(y1+ny))
	c.z.LineTo(float32(x1-nx), float32(y1-ny))
	c.z.LineTo(float32(x0-nx), float32(y0-ny))
	c.z.ClosePath()
	c.fill(clr)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if c.img.Rect.Empty() || r <= 0 {
		return
	}
	k := r * kappa
	c.begin()
	c.z.MoveTo(float32(cx+r), float32(cy))
	c.z.CubeTo(float32(cx+r), float32(cy+k), float32(cx+k), float32(cy+r), float32(cx), float32(cy+r))
	c.z.CubeTo(float32(cx-k), float32(cy+r), float32(cx-r), float32(cy+k), float32(cx-r), float32(cy))
	c.z.CubeTo(float32(cx-r), float32(cy-k), float32(cx-k), float32(cy-r), float32(cx), float32(cy-r))
	c.z.CubeTo(float32(cx+k), float32(cy-r), float32(cx+r), float32(cy-k), float32(cx+r), float32(cy))
	c.z.ClosePath()
	c.fill(clr)
}

func (c *Canvas) begin() {
	b := c.img.Rect
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) fill(clr color.Color) {
	c.src.C = clr
	c.z.Draw(c.img, c.img.Rect, c.src, image.Point{})
}
