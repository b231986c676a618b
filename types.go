package pixeldraw

import "errors"

// Point is an integer position on a surface.
type Point struct {
	X, Y int
}

// FPoint is a floating-point position, used by the antialiased line for
// subpixel endpoints.
type FPoint struct {
	X, Y float64
}

// Rectangle is an axis-aligned pixel rectangle. Drawing operations return
// the tight rectangle around the pixels they changed; a degenerate call
// returns a zero-size rectangle at its anchor point.
type Rectangle struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rectangle) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Color is a packed pixel word already mapped to a surface's format.
// Drawing operations also accept RGBA values and standard library colors;
// see the color parameter of each operation.
type Color uint32

// RGBA is an unmapped 8-bit-per-channel color. It is mapped through the
// destination surface's format when drawing.
type RGBA struct {
	R, G, B, A uint8
}

// Quadrants selects the 90-degree sectors drawn by CircleQuadrants.
type Quadrants struct {
	TopRight, TopLeft, BottomLeft, BottomRight bool
}

// AllQuadrants selects every sector, producing a full circle.
var AllQuadrants = Quadrants{TopRight: true, TopLeft: true, BottomLeft: true, BottomRight: true}

func (q Quadrants) none() bool {
	return !q.TopRight && !q.TopLeft && !q.BottomLeft && !q.BottomRight
}

// CornerRadii carries the per-corner radii of RectRounded. A negative value
// falls back to the shared border radius.
type CornerRadii struct {
	TopLeft, TopRight, BottomLeft, BottomRight int
}

// InheritCorners defers every corner to the shared border radius.
var InheritCorners = CornerRadii{TopLeft: -1, TopRight: -1, BottomLeft: -1, BottomRight: -1}

// Errors reported by the drawing operations. Degenerate geometry (negative
// width, radius below one, empty rectangles) is not an error; those calls
// return an empty result rectangle instead.
var (
	// ErrInvalidColor marks a color argument of an unsupported kind.
	ErrInvalidColor = errors.New("pixeldraw: invalid color")
	// ErrTooFewPoints marks a point sequence below the operation's minimum.
	ErrTooFewPoints = errors.New("pixeldraw: point sequence too short")
	// ErrBadDepth marks a surface depth outside 1..4 bytes per pixel.
	ErrBadDepth = errors.New("pixeldraw: unsupported surface depth")
	// ErrLockFailed marks a failed surface lock acquisition.
	ErrLockFailed = errors.New("pixeldraw: surface lock failed")
)
