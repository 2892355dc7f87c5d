package compose

import "image"

// backgroundLuminance is the average channel value of the translucent
// body color behind grid items. The text and shadow ramps below measure
// contrast against it.
const backgroundLuminance = (28 + 28 + 30) / 3

// repairTabBar forces every untouched pixel in the tab strip opaque.
// The strip is always fully painted, so alpha zero there only means a
// 2-D draw discarded the channel.
func repairTabBar(buf *image.RGBA, region image.Rectangle) {
	region = region.Intersect(buf.Bounds())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		i := buf.PixOffset(region.Min.X, y)
		for x := region.Min.X; x < region.Max.X; x++ {
			if buf.Pix[i+3] == 0 {
				buf.Pix[i+3] = 255
			}
			i += 4
		}
	}
}

// repairItemRegion reconstructs alpha for one item's bounds, then
// premultiplies whatever it decides. Pixels that already carry alpha
// were blended by the icon pass and are left alone. Everything else is
// classified by color:
//
//   - the mid-grey selection band and near-white pixels become opaque,
//     keeping the selection border solid
//   - pure black stays transparent, it is untouched background
//   - bright pixels fade in on a luminance ramp, giving antialiased
//     label text soft edges
//   - very dark pixels fade in on the inverse ramp, recovering the
//     label drop shadow
func repairItemRegion(buf *image.RGBA, region image.Rectangle) {
	region = region.Intersect(buf.Bounds())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		i := buf.PixOffset(region.Min.X, y)
		for x := region.Min.X; x < region.Max.X; x++ {
			if buf.Pix[i+3] != 0 {
				i += 4
				continue
			}
			r := int(buf.Pix[i])
			g := int(buf.Pix[i+1])
			b := int(buf.Pix[i+2])
			var a int
			switch {
			case r > 50 && r < 80 && g > 50 && g < 80 && b > 50 && b < 80:
				a = 255
			case r > 250 && g > 250 && b > 250:
				a = 255
			case r == 0 && g == 0 && b == 0:
				// untouched background
			default:
				lum := (r + g + b) / 3
				if lum > backgroundLuminance+50 {
					a = (lum - backgroundLuminance) * 255 / (255 - backgroundLuminance)
				} else if lum < 30 {
					a = (backgroundLuminance - lum) * 255 / backgroundLuminance
				}
			}
			if a > 0 {
				if a > 255 {
					a = 255
				}
				buf.Pix[i] = uint8(r * a / 255)
				buf.Pix[i+1] = uint8(g * a / 255)
				buf.Pix[i+2] = uint8(b * a / 255)
				buf.Pix[i+3] = uint8(a)
			}
			i += 4
		}
	}
}
