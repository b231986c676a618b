package raster

import "pixeldraw/internal/array"

// fillPolyStackVertices is the vertex count up to which the intersection
// list lives on the stack.
const fillPolyStackVertices = 64

// FillPoly fills the polygon given by parallel x and y vertex slices using
// an even-odd scanline sweep. For each scanline the crossing edges
// contribute one intersection each, counting the upper endpoint but not the
// lower one so the rule closes cleanly at vertices; the bottom row counts
// edges ending on it instead. Sorted intersections are painted pairwise. A
// post-pass redraws interior horizontal edges, which the sweep leaves
// uncolored when they sit on a local extremum of the interior.
func (p *Painter) FillPoly(xs, ys []int) {
	n := len(xs)
	if n == 0 {
		return
	}

	miny, maxy := ys[0], ys[0]
	for i := 1; i < n; i++ {
		if ys[i] < miny {
			miny = ys[i]
		}
		if ys[i] > maxy {
			maxy = ys[i]
		}
	}

	if miny == maxy {
		// Flat polygon: a single horizontal line covers it.
		minx, maxx := xs[0], xs[0]
		for i := 1; i < n; i++ {
			if xs[i] < minx {
				minx = xs[i]
			}
			if xs[i] > maxx {
				maxx = xs[i]
			}
		}
		p.Line(minx, miny, maxx, miny)
		return
	}

	var stack [fillPolyStackVertices]int
	var intersect []int
	if n <= len(stack) {
		intersect = stack[:0]
	} else {
		intersect = make([]int, 0, n)
	}

	for y := miny; y <= maxy; y++ {
		intersect = intersect[:0]
		for i := 0; i < n; i++ {
			iPrev := (i + n - 1) % n

			y1, y2 := ys[iPrev], ys[i]
			var x1, x2 int
			switch {
			case y1 < y2:
				x1, x2 = xs[iPrev], xs[i]
			case y1 > y2:
				y1, y2 = y2, y1
				x1, x2 = xs[i], xs[iPrev]
			default:
				// Horizontal edges are handled in the post-pass.
				continue
			}

			if (y >= y1 && y < y2) || (y == maxy && y2 == maxy) {
				intersect = append(intersect, (y-y1)*(x2-x1)/(y2-y1)+x1)
			}
		}

		array.SortInts(intersect)
		for i := 0; i+1 < len(intersect); i += 2 {
			p.Line(intersect[i], y, intersect[i+1], y)
		}
	}

	for i := 0; i < n; i++ {
		iPrev := (i + n - 1) % n
		y := ys[i]
		if miny < y && ys[iPrev] == y && y < maxy {
			p.Line(xs[i], y, xs[iPrev], y)
		}
	}
}
