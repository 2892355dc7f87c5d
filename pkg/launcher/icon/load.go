package icon

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
)

// LoadFile decodes an icon file into a premultiplied Bitmap at its native
// size. Raster formats (.ico, .png, .bmp, .jpg, ...) go through SDL_image;
// SVGs are rasterized into the nominal icon box. The caller resamples the
// result to grid size.
func LoadFile(path string, src Source) (*Bitmap, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return loadSVG(path, src)
	}
	return loadRaster(path, src)
}

func loadRaster(path string, src Source) (*Bitmap, error) {
	surface, err := img.Load(path)
	if err != nil {
		return &Bitmap{}, ErrUnavailable
	}
	defer surface.Free()

	plane, err := surfaceToImage(surface)
	if err != nil {
		return &Bitmap{}, err
	}

	return Convert(Resource{Color: plane}, src)
}

func loadSVG(path string, src Source) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Bitmap{}, ErrUnavailable
	}
	defer f.Close()

	svg, err := oksvg.ReadIconStream(f)
	if err != nil {
		return &Bitmap{}, ErrUnavailable
	}

	size := constants.NominalIconSize
	svg.SetTarget(0, 0, float64(size), float64(size))

	plane := image.NewNRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, plane, plane.Bounds())
	svg.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return Convert(Resource{Color: plane}, src)
}

// surfaceToImage copies an SDL surface into a straight-alpha image,
// normalizing through ABGR8888 so the byte order matches image.NRGBA.
func surfaceToImage(surface *sdl.Surface) (*image.NRGBA, error) {
	converted, err := surface.ConvertFormat(sdl.PIXELFORMAT_ABGR8888, 0)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer converted.Free()

	w, h := int(converted.W), int(converted.H)
	pitch := int(converted.Pitch)
	pixels := converted.Pixels()

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := pixels[y*pitch : y*pitch+w*4]
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], row)
	}

	return out, nil
}
