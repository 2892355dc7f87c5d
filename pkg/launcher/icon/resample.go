package icon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resample scales a bitmap to targetW x targetH with a bilinear filter.
//
// The filter runs directly on the premultiplied channels (image.RGBA is
// premultiplied by definition), which avoids color fringing where alpha
// ramps to zero at icon edges. When the target equals the source size the
// identical bitmap is returned with no copy; a degenerate target falls
// back to the unscaled source rather than failing the pipeline.
func Resample(b *Bitmap, targetW, targetH int) *Bitmap {
	if !b.Valid() {
		return b
	}

	size := b.Size()
	if size.X == targetW && size.Y == targetH {
		return b
	}
	if targetW <= 0 || targetH <= 0 {
		return b
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), b.Pix, b.Pix.Bounds(), xdraw.Src, nil)

	return &Bitmap{Pix: dst, Source: b.Source}
}
