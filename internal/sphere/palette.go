package sphere

import (
	"image/color"

	"github.com/iburimskiy/neural-sphere/internal/config"
	"github.com/iburimskiy/neural-sphere/internal/theme"
)

// Palette is the fixed colour set for one theme.
type Palette struct {
	Node       color.NRGBA
	Background color.NRGBA
}

var (
	LightPalette = Palette{
		Node:       color.NRGBA{R: 26, G: 26, B: 26, A: 255},
		Background: color.NRGBA{R: 245, G: 245, B: 245, A: 255},
	}
	DarkPalette = Palette{
		Node:       color.NRGBA{R: 240, G: 240, B: 240, A: 255},
		Background: color.NRGBA{R: 13, G: 13, B: 13, A: 255},
	}
)

func PaletteFor(m theme.Mode) Palette {
	if m == theme.Dark {
		return DarkPalette
	}
	return LightPalette
}

// NodeStyle returns the radius and colour of a projected node.
func (p Palette) NodeStyle(pt Projected) (float64, color.NRGBA) {
	c := p.Node
	c.A = alphaByte(pt.Opacity * config.NodeOpacityFactor)
	return config.NodeRadius * pt.Scale, c
}

func drawNodes(s Surface, pal Palette, pts []Projected) {
	for _, pt := range pts {
		r, c := pal.NodeStyle(pt)
		if r <= 0 {
			continue
		}
		s.FillCircle(pt.X, pt.Y, r, c)
	}
}
