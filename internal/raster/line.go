package raster

import "pixeldraw/internal/basics"

// Line draws a one-pixel aliased line from (x1, y1) to (x2, y2), both
// endpoints inclusive. Horizontal and vertical lines take span fast paths;
// the general case is integer Bresenham with an octant-symmetric error term.
func (p *Painter) Line(x1, y1, x2, y2 int) {
	if x1 == x2 && y1 == y2 {
		p.SetAt(x1, y1)
		return
	}

	dx := basics.Abs(x2 - x1)
	dy := basics.Abs(y2 - y1)
	if dy == 0 {
		p.horzLine(x1, y1, x2)
		return
	}
	if dx == 0 {
		p.vertLine(x1, y1, y2)
		return
	}

	sx := 1
	if x2 < x1 {
		sx = -1
	}
	sy := 1
	if y2 < y1 {
		sy = -1
	}

	// The error starts at half the major extent, signed so that stepping
	// the major axis decrements it.
	var err int
	if dx > dy {
		err = dx / 2
	} else {
		err = -dy / 2
	}

	for {
		p.SetAt(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1 += sy
		}
	}
}

// LineWidth draws a line of the given width. The thickening axis is
// perpendicular to the dominant axis; lines at exactly 45 degrees thicken
// in x. The center line is drawn first, then parallel copies are laid out
// alternating to the positive and negative side, so even widths grow one
// extra pixel on the positive side.
func (p *Painter) LineWidth(x1, y1, x2, y2, width int) {
	if width < 1 {
		return
	}

	xinc, yinc := 0, 0
	if basics.Abs(x1-x2) > basics.Abs(y1-y2) {
		yinc = 1
	} else {
		xinc = 1
	}

	p.Line(x1, y1, x2, y2)
	for loop := 1; loop < width; loop += 2 {
		off := loop/2 + 1
		p.Line(x1+xinc*off, y1+yinc*off, x2+xinc*off, y2+yinc*off)
		if loop+1 < width {
			p.Line(x1-xinc*off, y1-yinc*off, x2-xinc*off, y2-yinc*off)
		}
	}
}
