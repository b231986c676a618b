package raster

// Ellipse draws an ellipse inscribed in the width x height box centered at
// (x, y), filled when solid is set. It advances a 64-scaled rational
// stepper around one quadrant and emits rows on transitions of the derived
// y offsets: each transition yields either two horizontal spans (solid) or
// four symmetric pixels (outline). The memo values suppress a second
// emission on the same row. Even box dimensions shift the positive side in
// by one pixel via the parity offsets.
func (p *Painter) Ellipse(x, y, width, height int, solid bool) {
	xoff := (width & 1) ^ 1
	yoff := (height & 1) ^ 1
	rx := width >> 1
	ry := height >> 1

	// Degenerate boxes collapse to a pixel or a line.
	if rx == 0 && ry == 0 {
		p.SetAt(x, y)
		return
	}
	if rx == 0 {
		p.vertLine(x, y-ry, y+ry+(height&1))
		return
	}
	if ry == 0 {
		p.horzLine(x-rx, y, x+rx+(width&1))
		return
	}

	s := 0
	if solid {
		s = 1
	}
	ry += s - yoff

	oh, oi, oj, ok := 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF

	if rx >= ry {
		ix := 0
		iy := rx * 64

		for {
			h := (ix + 32) >> 6
			i := (iy + 32) >> 6
			j := (h * ry) / rx
			k := (i * ry) / rx

			// Steep part: rows +-k with half-width h.
			if ok != k && oj != k {
				xph := x + h - xoff
				xmh := x - h
				if k > 0 {
					p.ellipseRow(xmh, xph, y+k-yoff, solid)
					p.ellipseRow(xmh, xph, y-k, solid)
				} else {
					p.ellipseRow(xmh, xph, y, solid)
				}
				ok = k
			}
			// Flat part: rows +-j with half-width i.
			if oj != j && ok != j && k != j {
				xpi := x + i - xoff
				xmi := x - i
				if j > 0 {
					p.ellipseRow(xmi, xpi, y+j-yoff, solid)
					p.ellipseRow(xmi, xpi, y-j, solid)
				} else {
					p.ellipseRow(xmi, xpi, y, solid)
				}
				oj = j
			}

			ix += iy / rx
			iy -= ix / rx
			if i <= h {
				break
			}
		}
	} else {
		ix := 0
		iy := ry * 64

		for {
			h := (ix + 32) >> 6
			i := (iy + 32) >> 6
			j := (h * rx) / ry
			k := (i * rx) / ry

			// Steep part: rows +-i with half-width j.
			if oi != i && oh != i {
				xpj := x + j - xoff
				xmj := x - j
				if i > 0 {
					p.ellipseRow(xmj, xpj, y+i-yoff, solid)
					p.ellipseRow(xmj, xpj, y-i, solid)
				} else {
					p.ellipseRow(xmj, xpj, y, solid)
				}
				oi = i
			}
			// Flat part: rows +-h with half-width k.
			if oh != h && oi != h && i != h {
				xpk := x + k - xoff
				xmk := x - k
				if h > 0 {
					p.ellipseRow(xmk, xpk, y+h-yoff, solid)
					p.ellipseRow(xmk, xpk, y-h, solid)
				} else {
					p.ellipseRow(xmk, xpk, y, solid)
				}
				oh = h
			}

			ix += iy / ry
			iy -= ix / ry
			if i <= h {
				break
			}
		}
	}
}

// ellipseRow emits one ellipse row: the full span when filling, the two
// edge pixels otherwise.
func (p *Painter) ellipseRow(xLeft, xRight, y int, solid bool) {
	if solid {
		p.horzLine(xLeft, y, xRight)
		return
	}
	p.SetAt(xLeft, y)
	p.SetAt(xRight, y)
}
