// Package raster implements the pixel-accurate rasterization algorithms:
// Bresenham lines and circles, Wu antialiased lines, a midpoint ellipse, a
// scanline polygon fill, arcs, and the rounded-rectangle composition built
// from them. All primitives write through a single clipped pixel store and
// accumulate the dirty region of the call.
package raster

import (
	"pixeldraw/internal/basics"
	"pixeldraw/internal/pixfmt"
	"pixeldraw/internal/surface"
)

// Painter binds a surface, a packed color, the surface's pixel store
// primitive, and the dirty region of the current call. Painters are cheap,
// call-scoped values; they hold no state across calls.
type Painter struct {
	surf   *surface.Surface
	color  uint32
	write  pixfmt.WriteFunc
	region *basics.Region
}

// NewPainter creates a painter drawing the given packed color onto s. The
// per-depth write primitive is selected here, once per call.
func NewPainter(s *surface.Surface, color uint32, region *basics.Region) *Painter {
	return &Painter{
		surf:   s,
		color:  color,
		write:  s.Format().Writer(),
		region: region,
	}
}

// SetAt writes the painter's color at (x, y). Writes outside the clip
// rectangle are discarded and return false; on success exactly one pixel is
// touched and the dirty region grows to include it.
func (p *Painter) SetAt(x, y int) bool {
	return p.setPixel(x, y, p.color)
}

func (p *Painter) setPixel(x, y int, c uint32) bool {
	if !p.surf.InClip(x, y) {
		return false
	}
	p.write(p.surf.Pixels(), p.surf.PixelOffset(x, y), c)
	p.region.Add(x, y)
	return true
}

// horzLine writes the pixels from (x1, y) to (x2, y), both inclusive.
func (p *Painter) horzLine(x1, y, x2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		p.SetAt(x, y)
	}
}

// vertLine writes the pixels from (x, y1) to (x, y2), both inclusive.
func (p *Painter) vertLine(x, y1, y2 int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		p.SetAt(x, y)
	}
}
