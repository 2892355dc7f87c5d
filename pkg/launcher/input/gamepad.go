package input

import (
	"log/slog"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
	"github.com/VisualLeap/GameLauncher/internal"
)

// Event is one normalized controller action, delivered on the gamepad
// channel and drained by the UI loop between frames.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	// ScrollDelta is a right-stick scroll step, in scroll units, with
	// Button unset.
	ScrollDelta int
}

// axis thresholds for the analog hat and the right stick. Sticks are
// noisy near center; only deliberate deflection should scroll.
const (
	hatThreshold   = 1
	stickDeadzone  = 12000
	scrollDebounce = 100 * time.Millisecond
)

// Gamepad fans events from every connected controller into a single
// channel. Each device gets its own reader goroutine; all of them stop
// when Close is called.
type Gamepad struct {
	events chan Event
	log    *slog.Logger

	mu      sync.Mutex
	devices []*evdev.InputDevice
	closed  bool
}

// OpenGamepads scans the input devices and starts a reader for every
// controller found. A machine with no controllers still returns a
// working, silent Gamepad.
func OpenGamepads() *Gamepad {
	g := &Gamepad{
		events: make(chan Event, 64),
		log:    internal.GetLogger(),
	}

	paths, err := evdev.ListDevicePaths()
	if err != nil {
		g.log.Warn("input device scan failed", "error", err)
		return g
	}

	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		if !isController(dev) {
			dev.Close()
			continue
		}
		g.log.Info("controller attached", "name", p.Name, "path", p.Path)
		g.mu.Lock()
		g.devices = append(g.devices, dev)
		g.mu.Unlock()
		go g.read(dev)
	}

	return g
}

// Events returns the channel controller actions arrive on.
func (g *Gamepad) Events() <-chan Event {
	return g.events
}

// Close stops every reader goroutine by closing its device.
func (g *Gamepad) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	for _, dev := range g.devices {
		dev.Close()
	}
	g.devices = nil
}

// isController accepts devices that expose a gamepad face button.
func isController(dev *evdev.InputDevice) bool {
	for _, t := range dev.CapableTypes() {
		if t != evdev.EV_KEY {
			continue
		}
		for _, code := range dev.CapableEvents(t) {
			if code == evdev.BTN_SOUTH {
				return true
			}
		}
	}
	return false
}

// read pumps one device until it disappears or the Gamepad closes.
func (g *Gamepad) read(dev *evdev.InputDevice) {
	var lastScroll time.Time
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			g.mu.Lock()
			closed := g.closed
			g.mu.Unlock()
			if !closed {
				g.log.Info("controller detached", "error", err)
			}
			return
		}

		switch ev.Type {
		case evdev.EV_KEY:
			if ev.Value > 1 {
				continue // key repeat, the frame loop owns repeats
			}
			if btn, ok := mapButton(ev.Code); ok {
				g.emit(Event{Button: btn, Pressed: ev.Value == 1})
			}
		case evdev.EV_ABS:
			g.handleAxis(ev, &lastScroll)
		}
	}
}

func (g *Gamepad) handleAxis(ev *evdev.InputEvent, lastScroll *time.Time) {
	switch ev.Code {
	case evdev.ABS_HAT0X:
		g.emit(Event{Button: constants.VirtualButtonLeft, Pressed: ev.Value <= -hatThreshold})
		g.emit(Event{Button: constants.VirtualButtonRight, Pressed: ev.Value >= hatThreshold})
	case evdev.ABS_HAT0Y:
		g.emit(Event{Button: constants.VirtualButtonUp, Pressed: ev.Value <= -hatThreshold})
		g.emit(Event{Button: constants.VirtualButtonDown, Pressed: ev.Value >= hatThreshold})
	case evdev.ABS_RY:
		if ev.Value > -stickDeadzone && ev.Value < stickDeadzone {
			return
		}
		if time.Since(*lastScroll) < scrollDebounce {
			return
		}
		*lastScroll = time.Now()
		step := 1
		if ev.Value < 0 {
			step = -1
		}
		g.emit(Event{ScrollDelta: step})
	}
}

// emit drops events instead of blocking; a stalled UI loop must not
// wedge the reader.
func (g *Gamepad) emit(e Event) {
	select {
	case g.events <- e:
	default:
	}
}

func mapButton(code evdev.EvCode) (constants.VirtualButton, bool) {
	switch code {
	case evdev.BTN_DPAD_UP:
		return constants.VirtualButtonUp, true
	case evdev.BTN_DPAD_DOWN:
		return constants.VirtualButtonDown, true
	case evdev.BTN_DPAD_LEFT:
		return constants.VirtualButtonLeft, true
	case evdev.BTN_DPAD_RIGHT:
		return constants.VirtualButtonRight, true
	case evdev.BTN_SOUTH:
		return constants.VirtualButtonAccept, true
	case evdev.BTN_EAST:
		return constants.VirtualButtonBack, true
	case evdev.BTN_TL:
		return constants.VirtualButtonTabPrev, true
	case evdev.BTN_TR:
		return constants.VirtualButtonTabNext, true
	}
	return constants.VirtualButtonUnassigned, false
}
