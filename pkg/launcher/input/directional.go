// Package input normalizes keyboard and controller events into the
// virtual buttons the launcher navigates with, and handles held-key
// repeat timing so a held arrow walks the grid at a steady rate.
package input

import (
	"time"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/nav"
)

// Directional tracks held directions and repeat timing. The first
// repeat fires after the initial delay, subsequent repeats at the
// shorter interval, matching how OS key repeat feels.
type Directional struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeat     time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectional returns a tracker with stock timing: 300ms before the
// first repeat, 50ms between repeats.
func NewDirectional() Directional {
	return NewDirectionalWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalWithTiming returns a tracker with custom timing.
func NewDirectionalWithTiming(delay, interval time.Duration) Directional {
	return Directional{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeat:     time.Now(),
	}
}

// SetHeld records a press or release of a directional button. It
// reports whether the button was directional at all, so callers can
// fall through to other handling when it was not.
func (d *Directional) SetHeld(button constants.VirtualButton, held bool) bool {
	var slot *bool
	switch button {
	case constants.VirtualButtonUp:
		slot = &d.held.up
	case constants.VirtualButtonDown:
		slot = &d.held.down
	case constants.VirtualButtonLeft:
		slot = &d.held.left
	case constants.VirtualButtonRight:
		slot = &d.held.right
	default:
		return false
	}
	*slot = held
	if !held {
		d.hasRepeated = false
	}
	return true
}

// IsHeld reports whether any direction is currently held.
func (d *Directional) IsHeld() bool {
	return d.held.up || d.held.down || d.held.left || d.held.right
}

// HeldDirection returns the active direction. When several are held,
// priority is up, down, left, right.
func (d *Directional) HeldDirection() (nav.Direction, bool) {
	switch {
	case d.held.up:
		return nav.DirUp, true
	case d.held.down:
		return nav.DirDown, true
	case d.held.left:
		return nav.DirLeft, true
	case d.held.right:
		return nav.DirRight, true
	}
	return 0, false
}

// Update is called once per frame and returns the direction that
// should step now, if the repeat timer elapsed.
func (d *Directional) Update() (nav.Direction, bool) {
	if !d.IsHeld() {
		d.lastRepeat = time.Now()
		d.hasRepeated = false
		return 0, false
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if time.Since(d.lastRepeat) >= threshold {
		d.lastRepeat = time.Now()
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return 0, false
}

// Reset clears all held state, for focus loss or tab switches.
func (d *Directional) Reset() {
	d.held.up = false
	d.held.down = false
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeat = time.Now()
}
