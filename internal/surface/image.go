package surface

import (
	"image"
	"image/color"

	"pixeldraw/internal/pixfmt"
)

// FromImage wraps an image.RGBA as a drawing target without copying. The
// image's stride becomes the surface pitch; RGBA8888 matches image.RGBA's
// R,G,B,A byte order, so pixels drawn on the surface appear in the image.
func FromImage(img *image.RGBA) (*Surface, error) {
	b := img.Bounds()
	return FromData(img.Pix, b.Dx(), b.Dy(), img.Stride, pixfmt.RGBA8888)
}

// Snapshot copies the surface contents into a new RGBA image, converting
// through the pixel format. Any depth is supported.
func (s *Surface) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	read := s.format.Reader()
	bpp := s.format.BytesPerPixel
	for y := 0; y < s.Height(); y++ {
		off := y * s.Pitch()
		for x := 0; x < s.Width(); x++ {
			r, g, b, a := s.format.GetRGBA(read(s.Pixels(), off))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
			off += bpp
		}
	}
	return img
}
