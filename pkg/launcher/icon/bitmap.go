// Package icon converts platform icon resources into premultiplied-alpha
// bitmaps, resamples them to grid size, and caches the results by source
// path and index.
package icon

import (
	"errors"
	"image"
)

// ErrUnavailable indicates an icon resource could not be rendered or its
// mask could not be read. Callers draw a placeholder instead of failing.
var ErrUnavailable = errors.New("icon: resource unavailable")

// Source records where a bitmap came from.
type Source int

const (
	SourceTarget     Source = iota // extracted from the shortcut's target
	SourceCustomFile               // loaded from an explicit icon file
)

// Bitmap is a top-down 32-bit icon image with premultiplied alpha.
// (*image.RGBA stores alpha-premultiplied color by definition, which is
// exactly what the compositor's source-over blend expects.)
//
// A Bitmap has exactly one owner at a time: the shortcut entry or cache
// entry holding it. Replacing it drops the old pixels wholesale; bitmaps
// are never shared between entries.
type Bitmap struct {
	Pix    *image.RGBA
	Source Source
}

// Valid reports whether the bitmap holds usable pixels.
func (b *Bitmap) Valid() bool {
	return b != nil && b.Pix != nil && !b.Pix.Bounds().Empty()
}

// Size returns the pixel dimensions, or the zero point when invalid.
func (b *Bitmap) Size() image.Point {
	if !b.Valid() {
		return image.Point{}
	}
	return b.Pix.Bounds().Size()
}
