package sphere

import "image/color"

type line struct {
	x0, y0, x1, y1, width float64
	c                     color.NRGBA
}

type circle struct {
	cx, cy, r float64
	c         color.NRGBA
}

// recorder is a Surface that remembers what was drawn since the last Clear.
type recorder struct {
	clears  int
	bg      color.NRGBA
	lines   []line
	circles []circle
}

func (r *recorder) Clear(bg color.Color) {
	r.clears++
	r.bg = color.NRGBAModel.Convert(bg).(color.NRGBA)
	r.lines = r.lines[:0]
	r.circles = r.circles[:0]
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, width, c.(color.NRGBA)})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.circles = append(r.circles, circle{cx, cy, rad, c.(color.NRGBA)})
}
