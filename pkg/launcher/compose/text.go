package compose

import (
	"image"
	"image/color"
)

// TextRasterizer turns a string into a straight-alpha image whose alpha
// channel carries glyph coverage. The compositor never touches font
// handles directly, which keeps this package testable without a font
// stack.
type TextRasterizer interface {
	Render(text string, size int, c color.RGBA) (*image.NRGBA, error)
}
