package raster

import (
	"math"
	"testing"
)

func TestArcQuarter(t *testing.T) {
	// First-quadrant arc: starts at (60,50), sweeps up-left toward
	// (50,40). Screen y runs downward, so the samples stay above the
	// center row.
	s, region, p := newTestPainter(t)
	p.Arc(50, 50, 10, 10, 0, math.Pi/2)

	got := collectWhite(s)
	if len(got) == 0 {
		t.Fatal("no pixels written")
	}
	for px := range got {
		if px[0] < 50 || px[0] > 60 || px[1] < 39 || px[1] > 50 {
			t.Errorf("pixel %v outside the quarter-arc box", px)
		}
		dx := float64(px[0] - 50)
		dy := float64(px[1] - 50)
		d := math.Sqrt(dx*dx + dy*dy)
		if d < 8 || d > 11 {
			t.Errorf("pixel %v at distance %.2f from center", px, d)
		}
	}
	if pixel(t, s, 60, 50) != white {
		t.Error("start point (60,50) missing")
	}
	if !region.Empty() {
		_, _, w, h := region.Bounds(0, 0)
		if w > 12 || h > 12 {
			t.Errorf("dirty rect %dx%d too large for a quarter arc", w, h)
		}
	}
}

func TestArcWrapsReversedAngles(t *testing.T) {
	// angle_stop below angle_start gains a full turn: pi/2 .. 2pi.
	s, _, p := newTestPainter(t)
	p.Arc(50, 50, 10, 10, math.Pi/2, 0)

	got := collectWhite(s)
	// The sweep passes through the left and bottom extremes.
	left, bottom := false, false
	for px := range got {
		if px[0] <= 41 {
			left = true
		}
		if px[1] >= 59 {
			bottom = true
		}
	}
	if !left || !bottom {
		t.Errorf("wrapped arc missed left (%v) or bottom (%v) extreme", left, bottom)
	}
}

func TestArcEllipticalRadii(t *testing.T) {
	s, _, p := newTestPainter(t)
	p.Arc(50, 50, 20, 8, 0, 2*math.Pi)

	for px := range collectWhite(s) {
		if px[0] < 29 || px[0] > 70 || px[1] < 41 || px[1] > 59 {
			t.Errorf("pixel %v outside the ellipse box", px)
		}
	}
	if pixel(t, s, 70, 50) != white {
		t.Error("right extreme (70,50) missing")
	}
}

func TestArcTinyRadiusDrawsNothingWild(t *testing.T) {
	// Sub-epsilon radii fall back to a unit angle step; the arc stays at
	// the center.
	s, _, p := newTestPainter(t)
	p.Arc(50, 50, 0, 0, 0, 2*math.Pi)

	for px := range collectWhite(s) {
		if px[0] != 50 || px[1] != 50 {
			t.Errorf("pixel %v away from center", px)
		}
	}
}
