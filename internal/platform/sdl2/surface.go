package sdl2

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"pixeldraw/internal/pixfmt"
	"pixeldraw/internal/surface"
)

// FromSDL wraps an SDL surface as a drawing target without copying. The
// SDL pixel format's masks, shifts and losses carry over directly, and
// surfaces that require locking delegate to SDL's lock protocol.
func FromSDL(ss *sdl.Surface) (*surface.Surface, error) {
	pf := ss.Format
	if pf == nil {
		return nil, fmt.Errorf("sdl2: surface has no pixel format")
	}
	if pf.Palette != nil {
		return nil, fmt.Errorf("sdl2: palette surfaces are not supported")
	}
	if pf.BytesPerPixel < 1 || pf.BytesPerPixel > 4 {
		return nil, fmt.Errorf("sdl2: unsupported depth %d bytes per pixel", pf.BytesPerPixel)
	}

	f := &pixfmt.Format{
		Name:          sdl.GetPixelFormatName(uint(pf.Format)),
		BytesPerPixel: int(pf.BytesPerPixel),
		Rmask:         pf.Rmask, Gmask: pf.Gmask, Bmask: pf.Bmask, Amask: pf.Amask,
		Rshift: uint32(pf.Rshift), Gshift: uint32(pf.Gshift),
		Bshift: uint32(pf.Bshift), Ashift: uint32(pf.Ashift),
		Rloss: uint32(pf.Rloss), Gloss: uint32(pf.Gloss),
		Bloss: uint32(pf.Bloss), Aloss: uint32(pf.Aloss),
	}

	s, err := surface.FromData(ss.Pixels(), int(ss.W), int(ss.H), int(ss.Pitch), f)
	if err != nil {
		return nil, fmt.Errorf("sdl2: wrap surface: %w", err)
	}
	if ss.MustLock() {
		s.SetLocker(sdlLocker{ss})
	}
	return s, nil
}

// sdlLocker adapts sdl.Surface's lock protocol to the surface.Locker
// interface.
type sdlLocker struct {
	s *sdl.Surface
}

func (l sdlLocker) Lock() error {
	return l.s.Lock()
}

func (l sdlLocker) Unlock() error {
	l.s.Unlock()
	return nil
}
