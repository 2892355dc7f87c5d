package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func premultiplied(w, h int, c color.RGBA) *Bitmap {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return &Bitmap{Pix: img, Source: SourceTarget}
}

func TestResampleSameSizeReturnsIdenticalBitmap(t *testing.T) {
	b := premultiplied(16, 16, color.RGBA{R: 100, A: 255})

	got := Resample(b, 16, 16)
	assert.Same(t, b, got)
}

func TestResampleScalesToTarget(t *testing.T) {
	b := premultiplied(16, 16, color.RGBA{R: 100, G: 50, B: 25, A: 255})

	got := Resample(b, 48, 48)
	require.True(t, got.Valid())
	assert.Equal(t, image.Point{X: 48, Y: 48}, got.Size())

	// A uniform source stays uniform through the filter.
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, got.Pix.RGBAAt(24, 24))
	assert.Equal(t, SourceTarget, got.Source)
}

func TestResamplePreservesPremultipliedInvariant(t *testing.T) {
	// Opaque red next to fully transparent black. Channels stay within
	// alpha after filtering only if the filter ran premultiplied.
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{})
	b := &Bitmap{Pix: img, Source: SourceTarget}

	got := Resample(b, 8, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			px := got.Pix.RGBAAt(x, y)
			assert.LessOrEqual(t, px.R, px.A, "pixel %d,%d", x, y)
			assert.LessOrEqual(t, px.G, px.A)
			assert.LessOrEqual(t, px.B, px.A)
		}
	}
}

func TestResampleDegenerateTargetFallsBack(t *testing.T) {
	b := premultiplied(8, 8, color.RGBA{A: 255})

	assert.Same(t, b, Resample(b, 0, 8))
	assert.Same(t, b, Resample(b, 8, -1))
}

func TestResampleInvalidBitmapPassesThrough(t *testing.T) {
	b := &Bitmap{}
	assert.Same(t, b, Resample(b, 32, 32))
}
