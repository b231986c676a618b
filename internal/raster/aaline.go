package raster

import "math"

// AALine draws an antialiased one-pixel line between two floating-point
// endpoints using Wu's algorithm. For every integer step along the major
// axis two fragments are produced on the rows (or columns, for steep lines)
// bracketing the ideal line, weighted by its fractional position. Each
// fragment is blended via blended and stored via the clipped pixel store.
func (p *Painter) AALine(fromX, fromY, toX, toY float64, blend bool) {
	steep := math.Abs(toY-fromY) > math.Abs(toX-fromX)
	if steep {
		fromX, fromY = fromY, fromX
		toX, toY = toY, toX
	}
	if fromX > toX {
		fromX, toX = toX, fromX
		fromY, toY = toY, fromY
	}

	dx := toX - fromX
	dy := toY - fromY
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	xStart := int(math.Floor(fromX))
	xEnd := int(math.Floor(toX))
	intersectY := fromY + gradient*(math.Floor(fromX)+0.5-fromX)

	for x := xStart; x <= xEnd; x++ {
		y := int(math.Floor(intersectY))
		frac := intersectY - math.Floor(intersectY)

		p.aaFragment(x, y, 1-frac, blend, steep)

		// The fringe pixel is dropped once the row passes the end
		// coordinate, except in the last column of a non-horizontal
		// line where it closes the endpoint.
		if float64(y) < toY || (x == xEnd && dy != 0) {
			p.aaFragment(x, y+1, frac, blend, steep)
		}

		intersectY += gradient
	}
}

// aaFragment blends and stores one fragment, undoing the axis swap of steep
// lines for both the background read and the write.
func (p *Painter) aaFragment(x, y int, brightness float64, blend, steep bool) {
	if steep {
		x, y = y, x
	}
	p.setPixel(x, y, p.blended(x, y, brightness, blend))
}
