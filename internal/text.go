package internal

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FontRasterizer renders strings through SDL_ttf into straight-alpha
// images the compositor can blend. Fonts are opened once per size and
// kept for the lifetime of the process.
type FontRasterizer struct {
	path string

	mu    sync.Mutex
	fonts map[int]*ttf.Font
}

// NewFontRasterizer prepares a rasterizer for the font at path. The
// font file is not touched until the first Render.
func NewFontRasterizer(path string) *FontRasterizer {
	return &FontRasterizer{
		path:  path,
		fonts: make(map[int]*ttf.Font),
	}
}

func (f *FontRasterizer) font(size int) (*ttf.Font, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if font, ok := f.fonts[size]; ok {
		return font, nil
	}
	font, err := ttf.OpenFont(f.path, size)
	if err != nil {
		return nil, fmt.Errorf("open font %s at %d: %w", f.path, size, err)
	}
	f.fonts[size] = font
	return font, nil
}

// Render rasterizes text at the given pixel size. The result is a
// straight-alpha image whose alpha channel is glyph coverage.
func (f *FontRasterizer) Render(text string, size int, c color.RGBA) (*image.NRGBA, error) {
	font, err := f.font(size)
	if err != nil {
		return nil, err
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	converted, err := surface.ConvertFormat(sdl.PIXELFORMAT_ABGR8888, 0)
	if err != nil {
		return nil, fmt.Errorf("convert glyph surface: %w", err)
	}
	defer converted.Free()

	w, h := int(converted.W), int(converted.H)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	pixels := converted.Pixels()
	pitch := int(converted.Pitch)
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], pixels[y*pitch:y*pitch+w*4])
	}
	return out, nil
}

// Close releases every opened font.
func (f *FontRasterizer) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, font := range f.fonts {
		font.Close()
	}
	f.fonts = make(map[int]*ttf.Font)
}
