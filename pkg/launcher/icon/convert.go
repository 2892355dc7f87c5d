package icon

import (
	"image"
	"image/color"
	"image/draw"
)

// Resource is a decoded platform icon: a color plane and an optional
// 1-bit style mask of equal dimensions. The mask, when present, encodes
// transparency as "white = cut out".
type Resource struct {
	Color image.Image
	Mask  image.Image
}

// opacityScale multiplies the rendered alpha in the no-mask path. Kept at
// full opacity; lowering it dims every icon uniformly.
const opacityScale = 255

// maskCutoutThreshold splits mask luminance into the binary cutout: at or
// above is "white" (transparent).
const maskCutoutThreshold = 128

// Convert renders a resource into a premultiplied top-down Bitmap at the
// resource's native size.
//
// With a mask, transparency is a binary cutout: white mask pixels become
// alpha 0, everything else becomes opaque with RGB taken from the color
// plane. Without a mask, per-pixel alpha is the rendered alpha scaled by
// a constant and RGB is premultiplied by it, so later blends never
// double-apply alpha.
func Convert(res Resource, src Source) (*Bitmap, error) {
	if res.Color == nil {
		return &Bitmap{}, ErrUnavailable
	}

	bounds := res.Color.Bounds()
	if bounds.Empty() {
		return &Bitmap{}, ErrUnavailable
	}

	if res.Mask != nil && !res.Mask.Bounds().Size().Eq(bounds.Size()) {
		return &Bitmap{}, ErrUnavailable
	}

	w, h := bounds.Dx(), bounds.Dy()

	// Render the color plane into a blank top-down surface at native size.
	rendered := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rendered, rendered.Bounds(), res.Color, bounds.Min, draw.Src)

	out := image.NewRGBA(image.Rect(0, 0, w, h))

	if res.Mask != nil {
		maskMin := res.Mask.Bounds().Min
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := rendered.NRGBAAt(x, y)
				if maskIsWhite(res.Mask, maskMin.X+x, maskMin.Y+y) {
					out.SetRGBA(x, y, color.RGBA{})
					continue
				}
				out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
			}
		}
		return &Bitmap{Pix: out, Source: src}, nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := rendered.NRGBAAt(x, y)
			a := uint32(c.A) * opacityScale / 255

			out.SetRGBA(x, y, color.RGBA{
				R: uint8(uint32(c.R) * a / 255),
				G: uint8(uint32(c.G) * a / 255),
				B: uint8(uint32(c.B) * a / 255),
				A: uint8(a),
			})
		}
	}

	return &Bitmap{Pix: out, Source: src}, nil
}

func maskIsWhite(mask image.Image, x, y int) bool {
	r, g, b, _ := mask.At(x, y).RGBA()
	// 16-bit channels; average down to 8-bit luminance.
	lum := (r + g + b) / 3 >> 8
	return lum >= maskCutoutThreshold
}
