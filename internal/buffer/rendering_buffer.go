// Package buffer provides the raw pixel buffer abstraction used by surfaces.
// It handles the low-level row addressing over a byte slice with a
// configurable stride (pitch).
package buffer

// RenderingBuffer provides row access to a pixel buffer. The stride is the
// number of bytes per row and may exceed width*bytesPerPixel when rows are
// padded for alignment.
type RenderingBuffer struct {
	buf    []byte
	width  int
	height int
	stride int
}

// NewRenderingBuffer creates an unattached rendering buffer.
func NewRenderingBuffer() *RenderingBuffer {
	return &RenderingBuffer{}
}

// NewRenderingBufferWithData creates a rendering buffer over existing data.
func NewRenderingBufferWithData(buf []byte, width, height, stride int) *RenderingBuffer {
	rb := &RenderingBuffer{}
	rb.Attach(buf, width, height, stride)
	return rb
}

// Attach attaches a byte slice to the rendering buffer.
func (rb *RenderingBuffer) Attach(buf []byte, width, height, stride int) {
	rb.buf = buf
	rb.width = width
	rb.height = height
	rb.stride = stride
}

// Buf returns the raw buffer data.
func (rb *RenderingBuffer) Buf() []byte {
	return rb.buf
}

// Width returns the buffer width in pixels.
func (rb *RenderingBuffer) Width() int {
	return rb.width
}

// Height returns the buffer height in pixels.
func (rb *RenderingBuffer) Height() int {
	return rb.height
}

// Stride returns the buffer stride in bytes per row.
func (rb *RenderingBuffer) Stride() int {
	return rb.stride
}

// Row returns the byte slice for row y, or nil if y is out of range.
func (rb *RenderingBuffer) Row(y int) []byte {
	if y < 0 || y >= rb.height {
		return nil
	}
	start := y * rb.stride
	end := start + rb.stride
	if end > len(rb.buf) {
		end = len(rb.buf)
	}
	return rb.buf[start:end]
}

// PixelOffset returns the byte offset of the pixel at (x, y) for the given
// pixel width. No bounds checking is performed; callers must clip first.
func (rb *RenderingBuffer) PixelOffset(x, y, pixWidth int) int {
	return y*rb.stride + x*pixWidth
}

// Clear fills the whole buffer with the given byte value.
func (rb *RenderingBuffer) Clear(v byte) {
	for i := range rb.buf {
		rb.buf[i] = v
	}
}
