package pixfmt

import "testing"

func TestMapGetRoundTrip32(t *testing.T) {
	colors := []struct {
		r, g, b, a uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{12, 34, 56, 78},
		{255, 0, 0, 255},
		{0, 255, 0, 128},
		{0, 0, 255, 1},
	}

	for _, f := range []*Format{RGBA8888, ARGB8888} {
		for _, c := range colors {
			p := f.MapRGBA(c.r, c.g, c.b, c.a)
			r, g, b, a := f.GetRGBA(p)
			if r != c.r || g != c.g || b != c.b || a != c.a {
				t.Errorf("%s: round trip of (%d,%d,%d,%d) = (%d,%d,%d,%d)",
					f.Name, c.r, c.g, c.b, c.a, r, g, b, a)
			}
		}
	}
}

func TestMapRGBAWhite(t *testing.T) {
	tests := []struct {
		f        *Format
		expected uint32
	}{
		{RGBA8888, 0xFFFFFFFF},
		{ARGB8888, 0xFFFFFFFF},
		{RGB888, 0x00FFFFFF},
		{RGB565, 0xFFFF},
		{RGB332, 0xFF},
	}

	for _, tt := range tests {
		if got := tt.f.MapRGBA(255, 255, 255, 255); got != tt.expected {
			t.Errorf("%s: MapRGBA(white) = %#x, want %#x", tt.f.Name, got, tt.expected)
		}
	}
}

func TestFullIntensityExpansion(t *testing.T) {
	// Reduced-depth formats must expand a saturated channel back to 255.
	for _, f := range []*Format{RGB565, RGB332, RGB888} {
		p := f.MapRGBA(255, 255, 255, 255)
		r, g, b, a := f.GetRGBA(p)
		if r != 255 || g != 255 || b != 255 {
			t.Errorf("%s: GetRGBA(white) = (%d,%d,%d)", f.Name, r, g, b)
		}
		if a != 255 {
			t.Errorf("%s: alpha of alpha-less format = %d, want 255", f.Name, a)
		}
	}
}

func TestRGB565Layout(t *testing.T) {
	p := RGB565.MapRGBA(255, 0, 0, 255)
	if p != 0xF800 {
		t.Errorf("MapRGBA(red) = %#x, want 0xf800", p)
	}
	p = RGB565.MapRGBA(0, 255, 0, 255)
	if p != 0x07E0 {
		t.Errorf("MapRGBA(green) = %#x, want 0x7e0", p)
	}
	p = RGB565.MapRGBA(0, 0, 255, 255)
	if p != 0x001F {
		t.Errorf("MapRGBA(blue) = %#x, want 0x1f", p)
	}
}

func TestByName(t *testing.T) {
	if f := ByName("RGBA8888"); f != RGBA8888 {
		t.Error("ByName(RGBA8888) did not return the RGBA8888 format")
	}
	if f := ByName("nope"); f != nil {
		t.Errorf("ByName(nope) = %v, want nil", f)
	}
}
