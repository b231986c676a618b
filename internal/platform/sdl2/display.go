// Package sdl2 connects pixeldraw surfaces to SDL2: a window display for
// presenting surfaces, and an adapter that turns an SDL surface into a
// drawing target.
package sdl2

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"pixeldraw/internal/surface"
)

// Display is an SDL2 window with a streaming texture that mirrors a
// surface. Surfaces of any depth can be presented; they are converted to
// RGBA on upload.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int
}

// Open creates a window of the given size.
func Open(title string, width, height int) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl2: init: %w", err)
	}

	d := &Display{width: width, height: height}

	var err error
	d.window, err = sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("sdl2: create window: %w", err)
	}

	d.renderer, err = sdl.CreateRenderer(d.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		// Fall back to software rendering.
		d.renderer, err = sdl.CreateRenderer(d.window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("sdl2: create renderer: %w", err)
		}
	}

	// ABGR8888 packs to R,G,B,A memory order on little-endian machines,
	// matching the RGBA snapshot layout.
	d.texture, err = d.renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("sdl2: create texture: %w", err)
	}

	return d, nil
}

// Present uploads the surface contents and shows them in the window.
func (d *Display) Present(s *surface.Surface) error {
	img := s.Snapshot()
	if err := d.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return fmt.Errorf("sdl2: texture update: %w", err)
	}
	if err := d.renderer.Clear(); err != nil {
		return fmt.Errorf("sdl2: clear: %w", err)
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return fmt.Errorf("sdl2: copy: %w", err)
	}
	d.renderer.Present()
	return nil
}

// Wait pumps events until the window is closed or escape is pressed.
func (d *Display) Wait() {
	for {
		event := sdl.WaitEvent()
		if event == nil {
			return
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return
			}
		}
	}
}

// Close releases the window and its renderer resources.
func (d *Display) Close() {
	if d.texture != nil {
		d.texture.Destroy()
		d.texture = nil
	}
	if d.renderer != nil {
		d.renderer.Destroy()
		d.renderer = nil
	}
	if d.window != nil {
		d.window.Destroy()
		d.window = nil
	}
	sdl.Quit()
}
