package pixeldraw

import (
	stdcolor "image/color"

	"pixeldraw/internal/basics"
	"pixeldraw/internal/raster"
)

// The public drawing operations. Each call is a self-contained critical
// section: validate the arguments, map the color, lock the surface, run the
// primitives, and return the accumulated dirty rectangle. Degenerate
// geometry returns a zero-size rectangle at the operation's anchor point
// with no error and no pixel writes.

// Line draws an aliased line between two points. Widths above one thicken
// perpendicular to the dominant axis; a width below one draws nothing.
func Line(s *Surface, c any, start, end Point, width int) (Rectangle, error) {
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	return draw(s, start.X, start.Y, func(p *raster.Painter) {
		p.LineWidth(start.X, start.Y, end.X, end.Y, width)
	}, packed)
}

// Lines draws an aliased polyline through the given points. With closed set
// and more than two points, a final segment connects the last point back to
// the first.
func Lines(s *Surface, c any, closed bool, points []Point, width int) (Rectangle, error) {
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	if len(points) < 2 {
		return Rectangle{}, ErrTooFewPoints
	}
	return draw(s, points[0].X, points[0].Y, func(p *raster.Painter) {
		for i := 1; i < len(points); i++ {
			p.LineWidth(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, width)
		}
		if closed && len(points) > 2 {
			last := points[len(points)-1]
			p.LineWidth(last.X, last.Y, points[0].X, points[0].Y, width)
		}
	}, packed)
}

// AALine draws an antialiased line between two subpixel endpoints. With
// blend set the line mixes with the pixels underneath; otherwise the
// fringe intensity scales the color directly.
func AALine(s *Surface, c any, start, end FPoint, blend bool) (Rectangle, error) {
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	return draw(s, int(start.X), int(start.Y), func(p *raster.Painter) {
		p.AALine(start.X, start.Y, end.X, end.Y, blend)
	}, packed)
}

// AALines draws an antialiased polyline through the given points, closing
// it like Lines when requested.
func AALines(s *Surface, c any, closed bool, points []FPoint, blend bool) (Rectangle, error) {
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	if len(points) < 2 {
		return Rectangle{}, ErrTooFewPoints
	}
	return draw(s, int(points[0].X), int(points[0].Y), func(p *raster.Painter) {
		for i := 1; i < len(points); i++ {
			p.AALine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, blend)
		}
		if closed && len(points) > 2 {
			last := points[len(points)-1]
			p.AALine(last.X, last.Y, points[0].X, points[0].Y, blend)
		}
	}, packed)
}

// Arc draws an elliptical arc inscribed in r from startAngle to stopAngle
// in radians, counterclockwise in the mathematical sense (screen y grows
// downward). Widths above one stack concentric arcs inward.
func Arc(s *Surface, c any, r Rectangle, startAngle, stopAngle float64, width int) (Rectangle, error) {
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	width = basics.Imin(width, basics.Imin(r.W, r.H)/2)
	if width < 1 {
		return anchored(r.X, r.Y), nil
	}
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	return draw(s, r.X, r.Y, func(p *raster.Painter) {
		for t := 0; t < width; t++ {
			p.Arc(cx, cy, float64(r.W/2-t), float64(r.H/2-t), startAngle, stopAngle)
		}
	}, packed)
}

// Ellipse draws the ellipse inscribed in r: filled when width is zero,
// otherwise as width stacked one-pixel outlines.
func Ellipse(s *Surface, c any, r Rectangle, width int) (Rectangle, error) {
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	if width < 0 || r.W < 1 || r.H < 1 {
		return anchored(r.X, r.Y), nil
	}
	width = basics.Imin(width, basics.Imin(r.W, r.H)/2)
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	return draw(s, r.X, r.Y, func(p *raster.Painter) {
		if width == 0 {
			p.Ellipse(cx, cy, r.W, r.H, true)
			return
		}
		for i := 0; i < width; i++ {
			p.Ellipse(cx, cy, r.W-2*i, r.H-2*i, false)
		}
	}, packed)
}

// Circle draws a circle around center: filled when width is zero (or when
// the width reaches the radius), otherwise as a ring of the given
// thickness. A radius below one draws nothing.
func Circle(s *Surface, c any, center Point, radius, width int) (Rectangle, error) {
	return CircleQuadrants(s, c, center, radius, width, Quadrants{})
}

// CircleQuadrants draws selected 90-degree sectors of a circle. With no
// sector selected the full circle is drawn.
func CircleQuadrants(s *Surface, c any, center Point, radius, width int, quads Quadrants) (Rectangle, error) {
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	if radius < 1 || width < 0 {
		return anchored(center.X, center.Y), nil
	}
	width = basics.Imin(width, radius)
	return draw(s, center.X, center.Y, func(p *raster.Painter) {
		if quads.none() {
			if width == 0 || width == radius {
				p.CircleFilled(center.X, center.Y, radius)
			} else {
				p.CircleBresenham(center.X, center.Y, radius, width)
			}
			return
		}
		p.CircleQuadrant(center.X, center.Y, radius, width,
			quads.TopRight, quads.TopLeft, quads.BottomLeft, quads.BottomRight)
	}, packed)
}

// Polygon draws a polygon through the given points: filled with the
// even-odd scanline rule when width is zero, otherwise as a closed
// polyline of that width.
func Polygon(s *Surface, c any, points []Point, width int) (Rectangle, error) {
	if len(points) < 3 {
		if _, err := resolveColor(s, c); err != nil {
			return Rectangle{}, err
		}
		return Rectangle{}, ErrTooFewPoints
	}
	if width > 0 {
		return Lines(s, c, true, points, width)
	}
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	if width < 0 {
		return anchored(points[0].X, points[0].Y), nil
	}
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, pt := range points {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	return draw(s, points[0].X, points[0].Y, func(p *raster.Painter) {
		p.FillPoly(xs, ys)
	}, packed)
}

// Rect draws a rectangle with a shared border radius on all corners. A
// radius of zero draws sharp corners; see RectRounded for per-corner
// control.
func Rect(s *Surface, c any, r Rectangle, width, borderRadius int) (Rectangle, error) {
	return RectRounded(s, c, r, width, borderRadius, InheritCorners)
}

// RectRounded draws a rectangle with independent corner radii; negative
// entries fall back to borderRadius. With every radius at or below zero
// the call is identical to a four-vertex Polygon.
func RectRounded(s *Surface, c any, r Rectangle, width, borderRadius int, corners CornerRadii) (Rectangle, error) {
	packed, err := resolveColor(s, c)
	if err != nil {
		return Rectangle{}, err
	}
	if width < 0 || r.W < 1 || r.H < 1 {
		return anchored(r.X, r.Y), nil
	}

	rounded := borderRadius > 0 ||
		corners.TopLeft > 0 || corners.TopRight > 0 ||
		corners.BottomLeft > 0 || corners.BottomRight > 0
	if !rounded {
		return Polygon(s, c, []Point{
			{r.X, r.Y},
			{r.X + r.W - 1, r.Y},
			{r.X + r.W - 1, r.Y + r.H - 1},
			{r.X, r.Y + r.H - 1},
		}, width)
	}

	if width > 0 {
		width = basics.Imin(width, basics.Imin(r.W, r.H)/2)
		if width < 1 {
			width = 1
		}
	}
	return draw(s, r.X, r.Y, func(p *raster.Painter) {
		p.RoundRect(r.X, r.Y, r.X+r.W-1, r.Y+r.H-1, borderRadius, width,
			corners.TopLeft, corners.TopRight, corners.BottomLeft, corners.BottomRight)
	}, packed)
}

// draw runs one locked drawing pass and folds the painter's dirty region
// into the result rectangle, anchored at (ax, ay) when nothing was drawn.
func draw(s *Surface, ax, ay int, fn func(*raster.Painter), packed uint32) (Rectangle, error) {
	if s.BytesPerPixel() < 1 || s.BytesPerPixel() > 4 {
		return Rectangle{}, ErrBadDepth
	}
	if err := s.Lock(); err != nil {
		return Rectangle{}, errLock(err)
	}
	defer s.Unlock()

	region := basics.NewRegion()
	fn(raster.NewPainter(s, packed, region))

	x, y, w, h := region.Bounds(ax, ay)
	return Rectangle{X: x, Y: y, W: w, H: h}, nil
}

func anchored(x, y int) Rectangle {
	return Rectangle{X: x, Y: y}
}

func errLock(err error) error {
	return &lockError{err: err}
}

// lockError wraps a locker failure so callers can test errors.Is(err,
// ErrLockFailed) while keeping the cause in the chain.
type lockError struct {
	err error
}

func (e *lockError) Error() string { return ErrLockFailed.Error() + ": " + e.err.Error() }

func (e *lockError) Is(target error) bool { return target == ErrLockFailed }

func (e *lockError) Unwrap() error { return e.err }

// resolveColor maps any supported color specifier to a packed word in the
// surface's format. Packed values pass through untouched.
func resolveColor(s *Surface, c any) (uint32, error) {
	switch v := c.(type) {
	case Color:
		return uint32(v), nil
	case uint32:
		return v, nil
	case int:
		if v < 0 {
			return 0, ErrInvalidColor
		}
		return uint32(v), nil
	case RGBA:
		return s.MapRGBA(v.R, v.G, v.B, v.A), nil
	case [4]uint8:
		return s.MapRGBA(v[0], v[1], v[2], v[3]), nil
	case [3]uint8:
		return s.MapRGBA(v[0], v[1], v[2], 255), nil
	case stdcolor.Color:
		r, g, b, a := v.RGBA()
		return s.MapRGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)), nil
	default:
		return 0, ErrInvalidColor
	}
}
