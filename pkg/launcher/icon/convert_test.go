package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestConvertNoMaskPremultipliesAlpha(t *testing.T) {
	// Straight-alpha red at half opacity.
	res := Resource{Color: solid(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 128})}

	b, err := Convert(res, SourceTarget)
	require.NoError(t, err)
	require.True(t, b.Valid())

	got := b.Pix.RGBAAt(1, 1)
	assert.Equal(t, uint8(128), got.A)
	assert.Equal(t, uint8(200*128/255), got.R)
	assert.Equal(t, uint8(100*128/255), got.G)
	assert.Equal(t, uint8(50*128/255), got.B)
}

func TestConvertOpaquePixelsPassThrough(t *testing.T) {
	res := Resource{Color: solid(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})}

	b, err := Convert(res, SourceTarget)
	require.NoError(t, err)

	got := b.Pix.RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, got)
}

func TestConvertMaskCutsOut(t *testing.T) {
	clr := solid(2, 1, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	mask := image.NewGray(image.Rect(0, 0, 2, 1))
	mask.SetGray(0, 0, color.Gray{Y: 255}) // white, cut out
	mask.SetGray(1, 0, color.Gray{Y: 0})   // black, keep

	b, err := Convert(Resource{Color: clr, Mask: mask}, SourceTarget)
	require.NoError(t, err)

	cut := b.Pix.RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{}, cut, "masked-out pixel is fully transparent")

	kept := b.Pix.RGBAAt(1, 0)
	assert.Equal(t, uint8(255), kept.A)
	assert.Equal(t, uint8(90), kept.R)
}

func TestConvertAllWhiteMaskYieldsAllTransparent(t *testing.T) {
	clr := solid(4, 4, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	mask := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	b, err := Convert(Resource{Color: clr, Mask: mask}, SourceTarget)
	require.NoError(t, err)

	for i := 3; i < len(b.Pix.Pix); i += 4 {
		require.Equal(t, uint8(0), b.Pix.Pix[i])
	}
}

func TestConvertRejectsMismatchedPlanes(t *testing.T) {
	res := Resource{
		Color: solid(4, 4, color.NRGBA{A: 255}),
		Mask:  image.NewGray(image.Rect(0, 0, 8, 8)),
	}

	_, err := Convert(res, SourceTarget)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestConvertRejectsMissingColorPlane(t *testing.T) {
	_, err := Convert(Resource{}, SourceTarget)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestConvertTagsSource(t *testing.T) {
	res := Resource{Color: solid(1, 1, color.NRGBA{A: 255})}

	b, err := Convert(res, SourceCustomFile)
	require.NoError(t, err)
	assert.Equal(t, SourceCustomFile, b.Source)
}
