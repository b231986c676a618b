package raster

import "math"

// Arc draws an aliased elliptical arc centered at (x, y) with horizontal
// radius r1 and vertical radius r2, from angleStart to angleStop in
// radians. Screen y grows downward, so the sine term is negated. The arc is
// approximated by aliased line segments between successive angle samples.
func (p *Painter) Arc(x, y int, r1, r2 float64, angleStart, angleStop float64) {
	if angleStop < angleStart {
		angleStop += 2 * math.Pi
	}

	var aStep float64
	if r1 < 1e-4 || r2 < 1e-4 {
		aStep = 1.0
	} else {
		ratio := 2 / math.Max(r1, r2)
		if ratio > 1 {
			ratio = 1
		}
		aStep = math.Asin(ratio)
		if aStep < 0.05 {
			aStep = 0.05
		}
	}

	xLast := x + int(math.Cos(angleStart)*r1)
	yLast := y - int(math.Sin(angleStart)*r2)
	for a := angleStart + aStep; a <= angleStop; a += aStep {
		xNext := x + int(math.Cos(a)*r1)
		yNext := y - int(math.Sin(a)*r2)
		p.Line(xLast, yLast, xNext, yNext)
		xLast, yLast = xNext, yNext
	}
}
