package compose

import (
	"image"
	"image/color"
)

// fillOpaque floods rect with a fully opaque color. Used for regions
// that never need alpha repair, such as the tab bar background.
func fillOpaque(dst *image.RGBA, rect image.Rectangle, c color.RGBA) {
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := dst.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.Pix[i] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = 255
			i += 4
		}
	}
}

// fillRGB floods rect writing only the color channels and forcing alpha
// to zero, the way a plain 2-D fill behaves on an alpha-aware buffer.
// The repair pass decides the real alpha later.
func fillRGB(dst *image.RGBA, rect image.Rectangle, c color.RGBA) {
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := dst.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.Pix[i] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = 0
			i += 4
		}
	}
}

// frameRGB strokes a rectangular border of the given pen width just
// inside rect, writing RGB only with alpha zero. The selection border
// relies on the repair pass recognizing its color band.
func frameRGB(dst *image.RGBA, rect image.Rectangle, width int, c color.RGBA) {
	if width <= 0 {
		return
	}
	inner := rect.Inset(width)
	if inner.Empty() {
		fillRGB(dst, rect, c)
		return
	}
	fillRGB(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, inner.Min.Y), c)
	fillRGB(dst, image.Rect(rect.Min.X, inner.Max.Y, rect.Max.X, rect.Max.Y), c)
	fillRGB(dst, image.Rect(rect.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y), c)
	fillRGB(dst, image.Rect(inner.Max.X, inner.Min.Y, rect.Max.X, inner.Max.Y), c)
}

// blitPremultiplied composites src over dst at pos using the
// premultiplied source-over rule, clipped to clip. Both buffers must
// hold premultiplied color.
func blitPremultiplied(dst *image.RGBA, pos image.Point, src *image.RGBA, clip image.Rectangle) {
	sb := src.Bounds()
	target := image.Rectangle{Min: pos, Max: pos.Add(sb.Size())}
	visible := target.Intersect(clip).Intersect(dst.Bounds())
	if visible.Empty() {
		return
	}
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		sy := sb.Min.Y + (y - target.Min.Y)
		di := dst.PixOffset(visible.Min.X, y)
		si := src.PixOffset(sb.Min.X+(visible.Min.X-target.Min.X), sy)
		for x := visible.Min.X; x < visible.Max.X; x++ {
			sa := uint32(src.Pix[si+3])
			inv := 255 - sa
			dst.Pix[di] = uint8(uint32(src.Pix[si]) + uint32(dst.Pix[di])*inv/255)
			dst.Pix[di+1] = uint8(uint32(src.Pix[si+1]) + uint32(dst.Pix[di+1])*inv/255)
			dst.Pix[di+2] = uint8(uint32(src.Pix[si+2]) + uint32(dst.Pix[di+2])*inv/255)
			dst.Pix[di+3] = uint8(sa + uint32(dst.Pix[di+3])*inv/255)
			di += 4
			si += 4
		}
	}
}

// blitTextRGB blends a straight-alpha glyph image over dst by coverage,
// writing only the color channels and forcing alpha to zero, matching
// how antialiased text lands on a buffer a repair pass will fix up.
func blitTextRGB(dst *image.RGBA, pos image.Point, glyph *image.NRGBA, clip image.Rectangle) {
	gb := glyph.Bounds()
	target := image.Rectangle{Min: pos, Max: pos.Add(gb.Size())}
	visible := target.Intersect(clip).Intersect(dst.Bounds())
	if visible.Empty() {
		return
	}
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		gy := gb.Min.Y + (y - target.Min.Y)
		di := dst.PixOffset(visible.Min.X, y)
		gi := glyph.PixOffset(gb.Min.X+(visible.Min.X-target.Min.X), gy)
		for x := visible.Min.X; x < visible.Max.X; x++ {
			cov := uint32(glyph.Pix[gi+3])
			if cov > 0 {
				inv := 255 - cov
				dst.Pix[di] = uint8((uint32(glyph.Pix[gi])*cov + uint32(dst.Pix[di])*inv) / 255)
				dst.Pix[di+1] = uint8((uint32(glyph.Pix[gi+1])*cov + uint32(dst.Pix[di+1])*inv) / 255)
				dst.Pix[di+2] = uint8((uint32(glyph.Pix[gi+2])*cov + uint32(dst.Pix[di+2])*inv) / 255)
				dst.Pix[di+3] = 0
			}
			di += 4
			gi += 4
		}
	}
}

// copyRect copies src into dst at pos without blending. Used to place
// the cached tab bar strip.
func copyRect(dst *image.RGBA, pos image.Point, src *image.RGBA) {
	sb := src.Bounds()
	target := image.Rectangle{Min: pos, Max: pos.Add(sb.Size())}
	visible := target.Intersect(dst.Bounds())
	if visible.Empty() {
		return
	}
	width := visible.Dx() * 4
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		sy := sb.Min.Y + (y - target.Min.Y)
		di := dst.PixOffset(visible.Min.X, y)
		si := src.PixOffset(sb.Min.X+(visible.Min.X-target.Min.X), sy)
		copy(dst.Pix[di:di+width], src.Pix[si:si+width])
	}
}
