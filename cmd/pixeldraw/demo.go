package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"

	"pixeldraw"
	"pixeldraw/internal/platform/sdl2"
)

var (
	demoOut    string
	demoSize   string
	demoFormat string
	demoColor  string
	demoShow   bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a scene exercising every drawing operation",
	Long: `Renders a fixed demo scene - lines, antialiased lines, circles,
ellipses, arcs, polygons and rounded rectangles - and writes it to a PNG
or BMP file, optionally presenting it in an SDL2 window.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoOut, "out", "scene.png", "Output image path (.png or .bmp)")
	demoCmd.Flags().StringVar(&demoSize, "size", "640x480", "Surface size as WxH")
	demoCmd.Flags().StringVar(&demoFormat, "format", "RGBA8888", "Pixel format (RGBA8888, ARGB8888, RGB888, BGR888, RGB565, RGB332)")
	demoCmd.Flags().StringVar(&demoColor, "color", "white", "Primary draw color (hex #rrggbb[aa] or SVG name)")
	demoCmd.Flags().BoolVar(&demoShow, "show", false, "Present the scene in an SDL2 window")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	w, h, err := parseSize(demoSize)
	if err != nil {
		return err
	}
	format := pixeldraw.FormatByName(demoFormat)
	if format == nil {
		return fmt.Errorf("unknown pixel format %q", demoFormat)
	}
	primary, err := parseColor(demoColor)
	if err != nil {
		return err
	}

	surf, err := pixeldraw.NewSurface(w, h, format)
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}
	surf.Fill(surf.MapRGBA(24, 24, 32, 255))

	if err := renderScene(surf, primary); err != nil {
		return err
	}
	slog.Info("Scene rendered", "size", demoSize, "format", format.Name)

	if err := writeImage(surf, demoOut); err != nil {
		return err
	}
	slog.Info("Scene written", "path", demoOut)

	if demoShow {
		display, err := sdl2.Open("pixeldraw demo", w, h)
		if err != nil {
			return err
		}
		defer display.Close()
		if err := display.Present(surf); err != nil {
			return err
		}
		display.Wait()
	}
	return nil
}

// renderScene draws one of everything, scaled to the surface size.
func renderScene(surf *pixeldraw.Surface, primary pixeldraw.RGBA) error {
	w := surf.Width()
	h := surf.Height()
	accent := pixeldraw.RGBA{R: 255 - primary.R, G: 255 - primary.G, B: 255 - primary.B, A: 255}

	draws := []func() (pixeldraw.Rectangle, error){
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.Rect(surf, primary, pixeldraw.Rectangle{X: w / 16, Y: h / 16, W: w / 3, H: h / 3}, 0, h/24)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.Rect(surf, accent, pixeldraw.Rectangle{X: w / 12, Y: h / 12, W: w / 4, H: h / 4}, 3, h/30)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.Circle(surf, primary, pixeldraw.Point{X: 3 * w / 4, Y: h / 4}, h/6, 0)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.Circle(surf, accent, pixeldraw.Point{X: 3 * w / 4, Y: h / 4}, h/5, 3)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.Ellipse(surf, primary, pixeldraw.Rectangle{X: w / 8, Y: h / 2, W: w / 4, H: h / 3}, 2)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.Arc(surf, primary, pixeldraw.Rectangle{X: w / 2, Y: h / 2, W: w / 3, H: h / 3}, 0, 1.5*math.Pi, 4)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.Polygon(surf, accent, []pixeldraw.Point{
				{X: w / 2, Y: 7 * h / 8},
				{X: 5 * w / 8, Y: 5 * h / 8},
				{X: 3 * w / 4, Y: 7 * h / 8},
			}, 0)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.Lines(surf, primary, true, []pixeldraw.Point{
				{X: w / 16, Y: 15 * h / 16},
				{X: w / 4, Y: 13 * h / 16},
				{X: 7 * w / 16, Y: 15 * h / 16},
			}, 2)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.AALine(surf, primary,
				pixeldraw.FPoint{X: float64(w) * 0.55, Y: float64(h) * 0.1},
				pixeldraw.FPoint{X: float64(w) * 0.95, Y: float64(h) * 0.45}, true)
		},
		func() (pixeldraw.Rectangle, error) {
			return pixeldraw.AALines(surf, accent, false, []pixeldraw.FPoint{
				{X: float64(w) * 0.6, Y: float64(h) * 0.9},
				{X: float64(w) * 0.75, Y: float64(h) * 0.7},
				{X: float64(w) * 0.9, Y: float64(h) * 0.9},
			}, true)
		},
	}

	for i, fn := range draws {
		if _, err := fn(); err != nil {
			return fmt.Errorf("draw %d: %w", i, err)
		}
	}
	return nil
}

func parseSize(size string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(size), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", size)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", size, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", size, err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size %q out of range", size)
	}
	return w, h, nil
}

// parseColor accepts #rrggbb, #rrggbbaa, or an SVG color name.
func parseColor(spec string) (pixeldraw.RGBA, error) {
	if strings.HasPrefix(spec, "#") {
		hex := spec[1:]
		if len(hex) != 6 && len(hex) != 8 {
			return pixeldraw.RGBA{}, fmt.Errorf("invalid hex color %q", spec)
		}
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return pixeldraw.RGBA{}, fmt.Errorf("invalid hex color %q: %w", spec, err)
		}
		if len(hex) == 6 {
			v = v<<8 | 0xFF
		}
		return pixeldraw.RGBA{
			R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v),
		}, nil
	}

	c, ok := colornames.Map[strings.ToLower(spec)]
	if !ok {
		return pixeldraw.RGBA{}, fmt.Errorf("unknown color name %q", spec)
	}
	return pixeldraw.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// writeImage saves a snapshot of the surface, choosing the encoder by file
// extension.
func writeImage(surf *pixeldraw.Surface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	img := surf.Snapshot()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
