// Package compose owns the off-screen surface the launcher paints into.
//
// Ordinary 2-D drawing (text, borders) produces no meaningful alpha
// channel, so after painting, the compositor runs a bounded per-region
// repair pass that reconstructs alpha from where a pixel sits and what
// color it ended up. Icons are exempt: they arrive as premultiplied
// bitmaps and blend with correct alpha on their own.
package compose

import (
	"errors"
	"image"
)

// ErrNoSurface indicates the off-screen surface could not be allocated.
// The caller skips the paint for that cycle and retries on the next one.
var ErrNoSurface = errors.New("compose: surface unavailable")

// IsSkippedFrame checks if an error means a frame was dropped rather
// than anything being wrong.
func IsSkippedFrame(err error) bool {
	return errors.Is(err, ErrNoSurface)
}

// sentinel fills every pixel before drawing: alpha 1, RGB 0. Visually
// transparent, but non-zero so the OS still hit-tests the window instead
// of letting clicks fall through.
var sentinel = [4]uint8{0, 0, 0, 1}

// Surface is a window-sized premultiplied pixel buffer. The Compositor
// owns it exclusively and replaces it as a unit when the window size
// changes; it is never resized in place.
type Surface struct {
	buf *image.RGBA
}

// NewSurface allocates a buffer of w x h pixels.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrNoSurface
	}
	return &Surface{buf: image.NewRGBA(image.Rect(0, 0, w, h))}, nil
}

// Size returns the buffer dimensions.
func (s *Surface) Size() image.Point {
	return s.buf.Bounds().Size()
}

// RGBA exposes the underlying buffer for presentation. The caller must
// not retain it across a surface recreation.
func (s *Surface) RGBA() *image.RGBA {
	return s.buf
}

// Clear fills every pixel with the near-transparent sentinel.
func (s *Surface) Clear() {
	pix := s.buf.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = sentinel[0]
		pix[i+1] = sentinel[1]
		pix[i+2] = sentinel[2]
		pix[i+3] = sentinel[3]
	}
}
