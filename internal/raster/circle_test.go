package raster

import "testing"

func TestCircleFilledScenario(t *testing.T) {
	// Scenario: a filled circle of radius 5 at (50,50) covers the
	// 10x10 box (45,45)-(54,54).
	s, region, p := newTestPainter(t)
	p.CircleFilled(50, 50, 5)

	checkBounds(t, region, 45, 45, 10, 10)
	if pixel(t, s, 50, 50) != white {
		t.Error("center pixel not filled")
	}
	if pixel(t, s, 56, 50) == white {
		t.Error("pixel (56,50) outside the disk was filled")
	}
	if pixel(t, s, 45, 50) != white {
		t.Error("left edge pixel (45,50) not filled")
	}
	if pixel(t, s, 54, 50) != white {
		t.Error("right edge pixel (54,50) not filled")
	}
}

func TestCircleFilledSymmetry(t *testing.T) {
	// The filled disk is symmetric under x -> 2*x0-1-x and
	// y -> 2*y0-1-y, per the half-open span convention.
	s, _, p := newTestPainter(t)
	p.CircleFilled(50, 50, 7)

	got := collectWhite(s)
	for px := range got {
		rx := 2*50 - 1 - px[0]
		ry := 2*50 - 1 - px[1]
		if !got[[2]int{rx, px[1]}] {
			t.Errorf("pixel %v has no x-mirror (%d,%d)", px, rx, px[1])
		}
		if !got[[2]int{px[0], ry}] {
			t.Errorf("pixel %v has no y-mirror (%d,%d)", px, px[0], ry)
		}
	}
}

func TestCircleBresenhamOutline(t *testing.T) {
	s, _, p := newTestPainter(t)
	p.CircleBresenham(50, 50, 5, 1)

	// Extreme points of the ring are present.
	for _, px := range [][2]int{{45, 50}, {54, 50}, {50, 45}, {50, 54}, {54, 49}, {49, 54}} {
		if pixel(t, s, px[0], px[1]) != white {
			t.Errorf("outline pixel %v missing", px)
		}
	}
	// The interior stays empty.
	for _, px := range [][2]int{{50, 50}, {49, 49}, {47, 47}} {
		if pixel(t, s, px[0], px[1]) == white {
			t.Errorf("interior pixel %v written", px)
		}
	}
}

func TestCircleBresenhamThickness(t *testing.T) {
	s, _, p := newTestPainter(t)
	p.CircleBresenham(50, 50, 8, 3)

	if pixel(t, s, 45, 50) == white {
		t.Error("pixel inside the inner radius written")
	}
	if pixel(t, s, 50, 50) == white {
		t.Error("center written for ring")
	}
	// The three outermost columns on the left side belong to the ring.
	for _, x := range []int{42, 43, 44} {
		if pixel(t, s, x, 50) != white {
			t.Errorf("ring pixel (%d,50) missing", x)
		}
	}
}

func TestCircleBresenhamStaysInBox(t *testing.T) {
	// The octant guards keep each octant from crossing its seam, so all
	// writes stay in the circle's bounding box.
	s, region, p := newTestPainter(t)
	p.CircleBresenham(50, 50, 6, 2)

	for px := range collectWhite(s) {
		if px[0] < 44 || px[0] > 55 || px[1] < 44 || px[1] > 55 {
			t.Errorf("pixel %v outside circle box", px)
		}
	}
	checkBounds(t, region, 44, 44, 12, 12)
}

func TestCircleQuadrantRadiusOne(t *testing.T) {
	tests := []struct {
		name                   string
		tr, tl, bl, br         bool
		expected               [][2]int
	}{
		{"top right", true, false, false, false, [][2]int{{50, 49}}},
		{"top left", false, true, false, false, [][2]int{{49, 49}}},
		{"bottom left", false, false, true, false, [][2]int{{49, 50}}},
		{"bottom right", false, false, false, true, [][2]int{{50, 50}}},
		{"all", true, true, true, true, [][2]int{{50, 49}, {49, 49}, {49, 50}, {50, 50}}},
	}

	for _, tt := range tests {
		s, _, p := newTestPainter(t)
		p.CircleQuadrant(50, 50, 1, 0, tt.tr, tt.tl, tt.bl, tt.br)

		got := collectWhite(s)
		if len(got) != len(tt.expected) {
			t.Errorf("%s: %d pixels, want %d", tt.name, len(got), len(tt.expected))
		}
		for _, px := range tt.expected {
			if !got[px] {
				t.Errorf("%s: pixel %v missing", tt.name, px)
			}
		}
	}
}

func TestCircleQuadrantFilledTopRight(t *testing.T) {
	s, _, p := newTestPainter(t)
	p.CircleQuadrant(50, 50, 5, 0, true, false, false, false)

	for _, px := range [][2]int{{50, 45}, {51, 45}, {54, 50}, {50, 50}, {54, 48}} {
		if pixel(t, s, px[0], px[1]) != white {
			t.Errorf("pixel %v missing from filled quadrant", px)
		}
	}
	// Nothing left of the center column or below the center row.
	for px := range collectWhite(s) {
		if px[0] < 50 || px[1] > 50 {
			t.Errorf("pixel %v outside the top-right sector", px)
		}
	}
	if pixel(t, s, 54, 45) == white {
		t.Error("pixel (54,45) beyond the arc was filled")
	}
}

func TestCircleQuadrantFilledCoversAllSectors(t *testing.T) {
	// All four filled sectors together cover the filled circle's box.
	s, region, p := newTestPainter(t)
	p.CircleQuadrant(50, 50, 5, 0, true, true, true, true)

	checkBounds(t, region, 45, 45, 10, 10)
	for _, px := range [][2]int{{50, 50}, {49, 49}, {45, 50}, {54, 50}, {49, 45}, {50, 54}} {
		if pixel(t, s, px[0], px[1]) != white {
			t.Errorf("pixel %v missing", px)
		}
	}
}

func TestCircleQuadrantOutline(t *testing.T) {
	s, _, p := newTestPainter(t)
	p.CircleQuadrant(50, 50, 5, 1, false, true, false, false)

	// Only the top-left arc: every pixel left of and above center.
	got := collectWhite(s)
	if len(got) == 0 {
		t.Fatal("no pixels written")
	}
	for px := range got {
		if px[0] > 49 || px[1] > 49 {
			t.Errorf("pixel %v outside the top-left sector", px)
		}
	}
	if pixel(t, s, 45, 49) != white {
		t.Error("left extreme (45,49) missing")
	}
}
