package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
)

var ErrNoFrames = errors.New("no frames recorded")

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// GIFRecorder collects frames for an animated GIF. delay is in 100ths of a
// second per frame.
type GIFRecorder struct {
	out   gif.GIF
	delay int
}

func NewGIFRecorder(delay int) *GIFRecorder {
	return &GIFRecorder{delay: max(delay, 1)}
}

// Add quantises img to the Plan9 palette with dithering and appends it.
func (r *GIFRecorder) Add(img image.Image) {
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, b, img, b.Min)
	r.out.Image = append(r.out.Image, pal)
	r.out.Delay = append(r.out.Delay, r.delay)
}

func (r *GIFRecorder) Len() int { return len(r.out.Image) }

func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.out.Image) == 0 {
		return ErrNoFrames
	}
	return gif.EncodeAll(w, &r.out)
}

func (r *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
