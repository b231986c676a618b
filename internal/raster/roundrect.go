package raster

// RoundRect draws a rounded rectangle over the inclusive pixel box
// (x1, y1)-(x2, y2) with independent corner radii; a negative corner radius
// falls back to the shared radius. When two adjacent corners together
// exceed the edge between them, all four radii are rescaled by the smallest
// fitting ratio. A width of zero fills the shape as an octagon plus four
// filled corner quadrants; otherwise the four sides are stroked with thick
// lines and the corners with thick quadrant arcs.
func (p *Painter) RoundRect(x1, y1, x2, y2, radius, width, topLeft, topRight, bottomLeft, bottomRight int) {
	if topLeft < 0 {
		topLeft = radius
	}
	if topRight < 0 {
		topRight = radius
	}
	if bottomLeft < 0 {
		bottomLeft = radius
	}
	if bottomRight < 0 {
		bottomRight = radius
	}

	w := x2 - x1 + 1
	h := y2 - y1 + 1
	if topLeft+topRight > w || bottomLeft+bottomRight > w ||
		topLeft+bottomLeft > h || topRight+bottomRight > h {
		f := 1.0
		scale := func(dim, sum int) {
			if sum > 0 {
				if r := float64(dim) / float64(sum); r < f {
					f = r
				}
			}
		}
		scale(w, topLeft+topRight)
		scale(w, bottomLeft+bottomRight)
		scale(h, topLeft+bottomLeft)
		scale(h, topRight+bottomRight)
		topLeft = int(float64(topLeft) * f)
		topRight = int(float64(topRight) * f)
		bottomLeft = int(float64(bottomLeft) * f)
		bottomRight = int(float64(bottomRight) * f)
	}

	if width == 0 {
		// Octagon through the eight tangent points, then the corners.
		xs := []int{
			x1, x1 + topLeft, x2 - topRight, x2,
			x2, x2 - bottomRight, x1 + bottomLeft, x1,
		}
		ys := []int{
			y1 + topLeft, y1, y1, y1 + topRight,
			y2 - bottomRight, y2, y2, y2 - bottomLeft,
		}
		p.FillPoly(xs, ys)
		p.CircleQuadrant(x2-topRight+1, y1+topRight, topRight, 0, true, false, false, false)
		p.CircleQuadrant(x1+topLeft, y1+topLeft, topLeft, 0, false, true, false, false)
		p.CircleQuadrant(x1+bottomLeft, y2-bottomLeft+1, bottomLeft, 0, false, false, true, false)
		p.CircleQuadrant(x2-bottomRight+1, y2-bottomRight+1, bottomRight, 0, false, false, false, true)
		return
	}

	// The stroke centerlines sit width/2-1+width%2 inside the top and left
	// borders and mirrored on the bottom and right, matching the asymmetric
	// growth of the thick line. A side whose endpoints coincide after
	// radius reduction degenerates to a perpendicular run of width pixels.
	topOff := width/2 - 1 + width%2

	if x2-topRight == x1+topLeft {
		for i := 0; i < width; i++ {
			p.SetAt(x1+topLeft, y1+i)
		}
	} else {
		p.LineWidth(x1+topLeft, y1+topOff, x2-topRight, y1+topOff, width)
	}
	if y2-bottomLeft == y1+topLeft {
		for i := 0; i < width; i++ {
			p.SetAt(x1+i, y1+topLeft)
		}
	} else {
		p.LineWidth(x1+topOff, y1+topLeft, x1+topOff, y2-bottomLeft, width)
	}
	if x2-bottomRight == x1+bottomLeft {
		for i := 0; i < width; i++ {
			p.SetAt(x1+bottomLeft, y2-i)
		}
	} else {
		p.LineWidth(x1+bottomLeft, y2-topOff, x2-bottomRight, y2-topOff, width)
	}
	if y2-bottomRight == y1+topRight {
		for i := 0; i < width; i++ {
			p.SetAt(x2-i, y1+topRight)
		}
	} else {
		p.LineWidth(x2-topOff, y1+topRight, x2-topOff, y2-bottomRight, width)
	}

	p.CircleQuadrant(x2-topRight+1, y1+topRight, topRight, width, true, false, false, false)
	p.CircleQuadrant(x1+topLeft, y1+topLeft, topLeft, width, false, true, false, false)
	p.CircleQuadrant(x1+bottomLeft, y2-bottomLeft+1, bottomLeft, width, false, false, true, false)
	p.CircleQuadrant(x2-bottomRight+1, y2-bottomRight+1, bottomRight, width, false, false, false, true)
}
