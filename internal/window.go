package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and the streaming texture frames are
// presented through. The texture carries premultiplied pixels and
// blends with a custom source-over mode so translucency reaches the
// screen intact.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer

	frame           *sdl.Texture
	frameW, frameH  int32
	hasVSync        bool
	lastPresentTime uint64
}

// premultipliedOver is source-over for buffers whose color channels are
// already multiplied by alpha: dst = src + dst*(1-srcA).
func premultipliedOver() sdl.BlendMode {
	return sdl.ComposeCustomBlendMode(
		sdl.BLENDFACTOR_ONE, sdl.BLENDFACTOR_ONE_MINUS_SRC_ALPHA, sdl.BLENDOPERATION_ADD,
		sdl.BLENDFACTOR_ONE, sdl.BLENDFACTOR_ONE_MINUS_SRC_ALPHA, sdl.BLENDOPERATION_ADD,
	)
}

// NewWindow creates the launcher window and its renderer.
func NewWindow(title string, x, y, width, height int32, opts WindowOptions) (*Window, error) {
	if x == -1 || y == -1 {
		x, y = sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED
	}

	GetLogger().Debug("creating window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		hasVSync: vsync,
	}, nil
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// ensureFrame recreates the streaming texture when the buffer size
// changed. ABGR8888 matches the byte order image.RGBA stores pixels in
// on little-endian machines, so rows upload without repacking.
func (w *Window) ensureFrame(width, height int32) error {
	if w.frame != nil && w.frameW == width && w.frameH == height {
		return nil
	}
	if w.frame != nil {
		w.frame.Destroy()
		w.frame = nil
	}

	t, err := w.Renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		return fmt.Errorf("create frame texture: %w", err)
	}
	if err := t.SetBlendMode(premultipliedOver()); err != nil {
		t.Destroy()
		return fmt.Errorf("set blend mode: %w", err)
	}

	w.frame = t
	w.frameW = width
	w.frameH = height
	return nil
}

// Present uploads the composited buffer and swaps it to the screen,
// holding roughly 60fps when vsync is unavailable.
func (w *Window) Present(buf *image.RGBA) error {
	size := buf.Bounds().Size()
	if err := w.ensureFrame(int32(size.X), int32(size.Y)); err != nil {
		return err
	}
	if err := w.frame.Update(nil, unsafe.Pointer(&buf.Pix[0]), buf.Stride); err != nil {
		return fmt.Errorf("upload frame: %w", err)
	}

	w.Renderer.SetDrawColor(0, 0, 0, 0)
	w.Renderer.Clear()
	w.Renderer.Copy(w.frame, nil, nil)
	w.Renderer.Present()

	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
	return nil
}

// Close releases the texture, renderer and window.
func (w *Window) Close() {
	if w.frame != nil {
		w.frame.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}
