package basics

import "math"

// Region accumulates the dirty area touched by a drawing call. It starts out
// empty and grows by min/max updates on every successful pixel write. A
// primitive that touches no pixel leaves it untouched.
type Region struct {
	Xmin, Ymin int
	Xmax, Ymax int
}

// NewRegion returns an empty region.
func NewRegion() *Region {
	r := &Region{}
	r.Reset()
	return r
}

// Reset empties the region.
func (r *Region) Reset() {
	r.Xmin = math.MaxInt
	r.Ymin = math.MaxInt
	r.Xmax = math.MinInt
	r.Ymax = math.MinInt
}

// Add grows the region to include the pixel at (x, y).
func (r *Region) Add(x, y int) {
	if x < r.Xmin {
		r.Xmin = x
	}
	if x > r.Xmax {
		r.Xmax = x
	}
	if y < r.Ymin {
		r.Ymin = y
	}
	if y > r.Ymax {
		r.Ymax = y
	}
}

// Empty reports whether no pixel has been added.
func (r *Region) Empty() bool {
	return r.Xmin > r.Xmax || r.Ymin > r.Ymax
}

// Bounds returns the tight bounding rectangle of all added pixels as
// (x, y, w, h). If the region is empty, it returns a zero-size rectangle
// anchored at (anchorX, anchorY).
func (r *Region) Bounds(anchorX, anchorY int) (x, y, w, h int) {
	if r.Empty() {
		return anchorX, anchorY, 0, 0
	}
	return r.Xmin, r.Ymin, r.Xmax - r.Xmin + 1, r.Ymax - r.Ymin + 1
}
