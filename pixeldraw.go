// Package pixeldraw is a 2D software rasterization library. It draws
// geometric primitives - aliased and antialiased lines, polylines, arcs,
// ellipses, circles, filled polygons, and rounded rectangles - directly
// into in-memory pixel buffers of 1 to 4 bytes per pixel.
//
// Drawing happens on a Surface, which couples a pixel buffer with a packed
// pixel format and a clip rectangle. Every drawing operation returns the
// tight bounding rectangle of the pixels it changed:
//
//	surf, _ := pixeldraw.NewSurface(640, 480, pixeldraw.FormatRGBA8888)
//	white := pixeldraw.RGBA{R: 255, G: 255, B: 255, A: 255}
//	dirty, err := pixeldraw.Line(surf, white, pixeldraw.Point{X: 10, Y: 10},
//		pixeldraw.Point{X: 200, Y: 120}, 1)
//
// Surfaces can also wrap existing memory: an image.RGBA via
// SurfaceFromImage, or any raw buffer via SurfaceFromData. The
// internal/platform/sdl2 package connects surfaces to SDL2 windows.
package pixeldraw

import (
	"image"

	"pixeldraw/internal/pixfmt"
	"pixeldraw/internal/surface"
)

// Version of the library.
const Version = "0.1.0"

// Surface is the drawing target: a pixel buffer with pitch, format, clip
// rectangle and lock protocol.
type Surface = surface.Surface

// Format describes a packed pixel layout.
type Format = pixfmt.Format

// Predefined pixel formats.
var (
	FormatRGBA8888 = pixfmt.RGBA8888
	FormatARGB8888 = pixfmt.ARGB8888
	FormatRGB888   = pixfmt.RGB888
	FormatBGR888   = pixfmt.BGR888
	FormatRGB565   = pixfmt.RGB565
	FormatRGB332   = pixfmt.RGB332
)

// FormatByName returns the predefined format with the given name, or nil.
func FormatByName(name string) *Format {
	return pixfmt.ByName(name)
}

// NewSurface allocates a surface of the given size and format.
func NewSurface(w, h int, f *Format) (*Surface, error) {
	return surface.New(w, h, f)
}

// SurfaceFromImage wraps an image.RGBA as a surface without copying.
func SurfaceFromImage(img *image.RGBA) (*Surface, error) {
	return surface.FromImage(img)
}

// SurfaceFromData wraps an existing pixel buffer.
func SurfaceFromData(pixels []byte, w, h, pitch int, f *Format) (*Surface, error) {
	return surface.FromData(pixels, w, h, pitch, f)
}
