package raster

// The circle rasterizers share one midpoint state machine. The thick
// outline and the quadrant variant run a second, inner state in parallel
// and fill the columns between the two fronts, which avoids the moire holes
// that stacking concentric circles would produce. The octant writes are
// guarded by inequalities at the seams so no octant crosses into its
// neighbour; a pixel lying exactly on a diagonal seam can still be written
// by both adjacent octants.

// CircleBresenham draws a circle outline of the given thickness centered at
// (x0, y0). The circle spans columns [x0-r, x0+r-1] and rows [y0-r, y0+r-1];
// the half-open convention keeps the four octant pairs from overlapping.
func (p *Painter) CircleBresenham(x0, y0, radius, thickness int) {
	x := 0
	y := radius
	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius

	iy := radius - thickness
	iF := 1 - iy
	iDdFx := 0
	iDdFy := -2 * iy

	thick := thickness

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		if iF >= 0 {
			iy--
			iDdFy += 2
			iF += iDdFy
		}
		x++
		ddFx += 2
		f += ddFx + 1
		iDdFx += 2
		iF += iDdFx + 1

		if thickness > 1 {
			thick = y - iy
		}

		for i := 0; i < thick; i++ {
			y1 := y - i
			if y0+y1-1 >= y0+x-1 {
				p.SetAt(x0+x-1, y0+y1-1)
				p.SetAt(x0-x, y0+y1-1)
			}
			if y0-y1 <= y0-x {
				p.SetAt(x0+x-1, y0-y1)
				p.SetAt(x0-x, y0-y1)
			}
			if x0+y1-1 >= x0+x-1 {
				p.SetAt(x0+y1-1, y0+x-1)
				p.SetAt(x0+y1-1, y0-x)
			}
			if x0-y1 <= x0-x {
				p.SetAt(x0-y1, y0+x-1)
				p.SetAt(x0-y1, y0-x)
			}
		}
	}
}

// CircleFilled draws a filled circle centered at (x0, y0). On every column
// step it paints two pairs of vertical spans through the pixel store; the
// spans are half-open at the bottom, matching the outline convention.
func (p *Painter) CircleFilled(x0, y0, radius int) {
	x := 0
	y := radius
	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx + 1

		for yc := y0 - x; yc < y0+x; yc++ {
			p.SetAt(x0+y-1, yc)
			p.SetAt(x0-y, yc)
		}
		for yc := y0 - y; yc < y0+y; yc++ {
			p.SetAt(x0+x-1, yc)
			p.SetAt(x0-x, yc)
		}
	}
}

// CircleQuadrant draws up to four 90-degree sectors of a circle centered at
// (x0, y0), selected by the quadrant flags. A thickness of zero fills the
// sectors; otherwise the dual-state outline machine runs with per-quadrant
// seam guards. The guards differ between quadrants (strict against
// non-strict) so sectors sharing a seam never double-write it.
func (p *Painter) CircleQuadrant(x0, y0, radius, thickness int, topRight, topLeft, bottomLeft, bottomRight bool) {
	x := 0
	y := radius
	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius

	iy := radius - thickness
	iF := 1 - iy
	iDdFx := 0
	iDdFy := -2 * iy

	if radius == 1 {
		if topRight {
			p.SetAt(x0, y0-1)
		}
		if topLeft {
			p.SetAt(x0-1, y0-1)
		}
		if bottomLeft {
			p.SetAt(x0-1, y0)
		}
		if bottomRight {
			p.SetAt(x0, y0)
		}
		return
	}

	if thickness != 0 {
		thick := thickness
		for x < y {
			if f >= 0 {
				y--
				ddFy += 2
				f += ddFy
			}
			if iF >= 0 {
				iy--
				iDdFy += 2
				iF += iDdFy
			}
			x++
			ddFx += 2
			f += ddFx + 1
			iDdFx += 2
			iF += iDdFx + 1

			if thickness > 1 {
				thick = y - iy
			}

			for i := 0; i < thick; i++ {
				y1 := y - i
				if topRight {
					if y0-y1 < y0-x {
						p.SetAt(x0+x-1, y0-y1)
					}
					if x0+y1-1 >= x0+x-1 {
						p.SetAt(x0+y1-1, y0-x)
					}
				}
				if topLeft {
					if x0-y1 <= x0-x {
						p.SetAt(x0-y1, y0-x)
					}
					if y0-y1 <= y0-x {
						p.SetAt(x0-x, y0-y1)
					}
				}
				if bottomLeft {
					if y0+y1-1 > y0+x-1 {
						p.SetAt(x0-x, y0+y1-1)
					}
					if x0-y1 <= x0-x {
						p.SetAt(x0-y1, y0+x-1)
					}
				}
				if bottomRight {
					if x0+y1-1 >= x0+x-1 {
						p.SetAt(x0+y1-1, y0+x-1)
					}
					if y0+y1-1 >= y0+x-1 {
						p.SetAt(x0+x-1, y0+y1-1)
					}
				}
			}
		}
		return
	}

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx + 1

		// Top sectors run down to the center row inclusive, bottom sectors
		// start on it; the right columns sit at +n-1, the left at -n.
		if topRight {
			for y1 := y0 - x; y1 <= y0; y1++ {
				p.SetAt(x0+y-1, y1)
			}
			for y1 := y0 - y; y1 <= y0; y1++ {
				p.SetAt(x0+x-1, y1)
			}
		}
		if topLeft {
			for y1 := y0 - x; y1 <= y0; y1++ {
				p.SetAt(x0-y, y1)
			}
			for y1 := y0 - y; y1 <= y0; y1++ {
				p.SetAt(x0-x, y1)
			}
		}
		if bottomLeft {
			for y1 := y0; y1 < y0+x; y1++ {
				p.SetAt(x0-y, y1)
			}
			for y1 := y0; y1 < y0+y; y1++ {
				p.SetAt(x0-x, y1)
			}
		}
		if bottomRight {
			for y1 := y0; y1 < y0+x; y1++ {
				p.SetAt(x0+y-1, y1)
			}
			for y1 := y0; y1 < y0+y; y1++ {
				p.SetAt(x0+x-1, y1)
			}
		}
	}
}
