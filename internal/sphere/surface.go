package sphere

import "image/color"

// Surface is a 2D raster target. Coordinates are in surface pixels.
type Surface interface {
	Clear(bg color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}
