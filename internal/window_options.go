package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects the SDL window flags the launcher starts with.
type WindowOptions struct {
	Borderless  bool // remove window decorations
	Resizable   bool // allow window resizing
	AlwaysOnTop bool // window stays above others
	Hidden      bool // start hidden, shown after the first frame
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}
