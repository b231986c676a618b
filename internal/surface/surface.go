// Package surface provides the drawing target for the rasterizer: a pixel
// buffer with a pitch, a packed pixel format, a clip rectangle, and a lock
// protocol. Surfaces can own their memory or wrap external buffers such as
// an SDL surface or an image.RGBA.
package surface

import (
	"errors"
	"fmt"

	"pixeldraw/internal/basics"
	"pixeldraw/internal/buffer"
	"pixeldraw/internal/pixfmt"
)

// ErrUnsupportedDepth is returned for formats outside 1..4 bytes per pixel.
var ErrUnsupportedDepth = errors.New("surface: unsupported bytes per pixel")

// Locker serializes access to an externally owned pixel buffer. Memory
// surfaces need no locking; SDL-backed surfaces delegate to SDL.
type Locker interface {
	Lock() error
	Unlock() error
}

// Surface is a rectangular pixel buffer with a clip rectangle. All drawing
// goes through the rasterizer, which never writes outside the clip.
type Surface struct {
	rbuf   *buffer.RenderingBuffer
	format *pixfmt.Format
	clip   basics.RectI
	locker Locker
	locks  int
}

// New allocates a surface of the given size. Rows are padded to 4-byte
// alignment, matching what SDL does for odd widths at narrow depths.
func New(w, h int, f *pixfmt.Format) (*Surface, error) {
	if f == nil || f.BytesPerPixel < 1 || f.BytesPerPixel > 4 {
		return nil, ErrUnsupportedDepth
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("surface: invalid size %dx%d", w, h)
	}
	pitch := (w*f.BytesPerPixel + 3) &^ 3
	return FromData(make([]byte, h*pitch), w, h, pitch, f)
}

// FromData wraps an existing pixel buffer. The buffer must hold at least
// h*pitch bytes.
func FromData(pixels []byte, w, h, pitch int, f *pixfmt.Format) (*Surface, error) {
	if f == nil || f.BytesPerPixel < 1 || f.BytesPerPixel > 4 {
		return nil, ErrUnsupportedDepth
	}
	if pitch < w*f.BytesPerPixel || len(pixels) < h*pitch {
		return nil, fmt.Errorf("surface: buffer too small for %dx%d pitch %d", w, h, pitch)
	}
	return &Surface{
		rbuf:   buffer.NewRenderingBufferWithData(pixels, w, h, pitch),
		format: f,
		clip:   basics.RectI{X1: 0, Y1: 0, X2: w - 1, Y2: h - 1},
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.rbuf.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.rbuf.Height() }

// Pitch returns the row stride in bytes.
func (s *Surface) Pitch() int { return s.rbuf.Stride() }

// BytesPerPixel returns the pixel depth in bytes.
func (s *Surface) BytesPerPixel() int { return s.format.BytesPerPixel }

// Format returns the packed pixel format descriptor.
func (s *Surface) Format() *pixfmt.Format { return s.format }

// Pixels returns the raw pixel buffer.
func (s *Surface) Pixels() []byte { return s.rbuf.Buf() }

// SetLocker attaches an external lock protocol, for buffers whose memory
// must be pinned while drawing.
func (s *Surface) SetLocker(l Locker) { s.locker = l }

// MustLock reports whether drawing requires the lock protocol.
func (s *Surface) MustLock() bool { return s.locker != nil }

// Lock acquires the surface for drawing. Locks nest; only the outermost
// acquisition reaches an attached Locker.
func (s *Surface) Lock() error {
	if s.locker != nil && s.locks == 0 {
		if err := s.locker.Lock(); err != nil {
			return fmt.Errorf("surface: lock: %w", err)
		}
	}
	s.locks++
	return nil
}

// Unlock releases the surface. Unlock of an unlocked surface is a no-op.
func (s *Surface) Unlock() error {
	if s.locks == 0 {
		return nil
	}
	s.locks--
	if s.locker != nil && s.locks == 0 {
		if err := s.locker.Unlock(); err != nil {
			return fmt.Errorf("surface: unlock: %w", err)
		}
	}
	return nil
}

// ClipRect returns the clip rectangle as (x, y, w, h).
func (s *Surface) ClipRect() (x, y, w, h int) {
	return s.clip.X1, s.clip.Y1, s.clip.X2 - s.clip.X1 + 1, s.clip.Y2 - s.clip.Y1 + 1
}

// Clip returns the clip rectangle in inclusive-corner form.
func (s *Surface) Clip() basics.RectI { return s.clip }

// SetClip intersects the requested rectangle (x, y, w, h) with the surface
// bounds and installs the result, returning the effective clip. A request
// with no overlap installs an empty clip; nothing will be drawn.
func (s *Surface) SetClip(x, y, w, h int) (cx, cy, cw, ch int) {
	req := basics.RectI{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
	bounds := basics.RectI{X1: 0, Y1: 0, X2: s.Width() - 1, Y2: s.Height() - 1}
	clipped, ok := basics.IntersectRectangles(req, bounds)
	if !ok {
		s.clip = basics.RectI{X1: 1, Y1: 1, X2: 0, Y2: 0}
		return 0, 0, 0, 0
	}
	s.clip = clipped
	return s.ClipRect()
}

// ResetClip restores the clip to the full surface.
func (s *Surface) ResetClip() {
	s.clip = basics.RectI{X1: 0, Y1: 0, X2: s.Width() - 1, Y2: s.Height() - 1}
}

// InClip reports whether (x, y) may be written.
func (s *Surface) InClip(x, y int) bool {
	return s.clip.Contains(x, y)
}

// PixelOffset returns the byte offset of the pixel at (x, y). The caller
// must have clipped already.
func (s *Surface) PixelOffset(x, y int) int {
	return s.rbuf.PixelOffset(x, y, s.format.BytesPerPixel)
}

// PixelAt reads the packed pixel at (x, y), independent of the clip.
// The second result is false outside the surface bounds.
func (s *Surface) PixelAt(x, y int) (uint32, bool) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return 0, false
	}
	return s.format.Reader()(s.rbuf.Buf(), s.PixelOffset(x, y)), true
}

// Fill sets every pixel of the surface to the given packed color, ignoring
// the clip rectangle. Intended for initialization.
func (s *Surface) Fill(p uint32) {
	write := s.format.Writer()
	bpp := s.format.BytesPerPixel
	for y := 0; y < s.Height(); y++ {
		off := y * s.Pitch()
		for x := 0; x < s.Width(); x++ {
			write(s.rbuf.Buf(), off, p)
			off += bpp
		}
	}
}

// MapRGBA packs a color for this surface's format.
func (s *Surface) MapRGBA(r, g, b, a uint8) uint32 {
	return s.format.MapRGBA(r, g, b, a)
}
