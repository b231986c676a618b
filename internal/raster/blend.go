package raster

// blended computes the packed pixel for an antialiased fragment at (x, y)
// with the given brightness in [0, 1].
//
// Without blending each source channel is scaled by the brightness. With
// blending the fragment is mixed with the background pixel already at
// (x, y): out = brightness*src + (1-brightness)*bg, truncating to integer.
// If (x, y) lies outside the clip the source color is returned unchanged;
// the following store discards it anyway.
func (p *Painter) blended(x, y int, brightness float64, blend bool) uint32 {
	f := p.surf.Format()
	r, g, b, a := f.GetRGBA(p.color)

	if !blend {
		return f.MapRGBA(
			uint8(float64(r)*brightness),
			uint8(float64(g)*brightness),
			uint8(float64(b)*brightness),
			uint8(float64(a)*brightness),
		)
	}

	if !p.surf.InClip(x, y) {
		return p.color
	}
	bg, _ := p.surf.PixelAt(x, y)
	br, bgc, bb, ba := f.GetRGBA(bg)
	inv := 1 - brightness
	return f.MapRGBA(
		uint8(brightness*float64(r)+inv*float64(br)),
		uint8(brightness*float64(g)+inv*float64(bgc)),
		uint8(brightness*float64(b)+inv*float64(bb)),
		uint8(brightness*float64(a)+inv*float64(ba)),
	)
}
