// Package preview rasterizes a generated city into a debug image: the
// density field in grayscale, sites in red and roads in blue.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/ChicagoDave/citysim/pkg/density"
	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
)

var (
	SiteColor = color.RGBA{R: 255, A: 255}
	RoadColor = color.RGBA{B: 255, A: 255}
)

// Canvas is a pixel buffer in field coordinates: pixel (x,y) is field cell
// (x,z).
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a transparent width x height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.img.Rect) {
		c.img.Set(x, y, col)
	}
}

// PaintDensity fills the canvas with the field, black at 0 and white at 1.
func (c *Canvas) PaintDensity(f *density.Field) {
	b := c.img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := uint8(f.At(x, y)*255 + 0.5)
			c.img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
}

// DrawPoint colours the pixel under p. Points outside the canvas are
// ignored.
func (c *Canvas) DrawPoint(p geo.Point2D, col color.Color) {
	c.set(int(p.X), int(p.Z), col)
}

// DrawLine draws a Bresenham line between the pixels under a and b, both
// ends included. Pixels outside the canvas are skipped.
func (c *Canvas) DrawLine(a, b geo.Point2D, col color.Color) {
	x0, y0 := int(a.X), int(a.Z)
	x1, y1 := int(b.X), int(b.Z)

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Render draws a city: density first, then sites, then roads on top.
func Render(city *layout.City) *Canvas {
	c := NewCanvas(city.Field.Width(), city.Field.Height())
	c.PaintDensity(city.Field)
	for _, s := range city.Sites {
		c.DrawPoint(s.Point, SiteColor)
	}
	for _, r := range city.Roads {
		c.DrawLine(r.Field.A, r.Field.B, RoadColor)
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
