package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/nav"
)

func TestSetHeldRecognizesDirections(t *testing.T) {
	d := NewDirectional()

	assert.True(t, d.SetHeld(constants.VirtualButtonDown, true))
	assert.True(t, d.IsHeld())

	assert.False(t, d.SetHeld(constants.VirtualButtonAccept, true))
}

func TestHeldDirectionPriority(t *testing.T) {
	d := NewDirectional()
	d.SetHeld(constants.VirtualButtonDown, true)
	d.SetHeld(constants.VirtualButtonUp, true)

	dir, ok := d.HeldDirection()
	assert.True(t, ok)
	assert.Equal(t, nav.DirUp, dir)
}

func TestUpdateRespectsInitialDelay(t *testing.T) {
	d := NewDirectionalWithTiming(30*time.Millisecond, 5*time.Millisecond)
	d.SetHeld(constants.VirtualButtonRight, true)

	_, ok := d.Update()
	assert.False(t, ok, "no repeat before the initial delay")

	time.Sleep(35 * time.Millisecond)
	dir, ok := d.Update()
	assert.True(t, ok)
	assert.Equal(t, nav.DirRight, dir)

	// Subsequent repeats use the shorter interval.
	time.Sleep(8 * time.Millisecond)
	_, ok = d.Update()
	assert.True(t, ok)
}

func TestReleaseResetsRepeatState(t *testing.T) {
	d := NewDirectionalWithTiming(30*time.Millisecond, 5*time.Millisecond)
	d.SetHeld(constants.VirtualButtonLeft, true)
	time.Sleep(35 * time.Millisecond)
	_, ok := d.Update()
	assert.True(t, ok)

	d.SetHeld(constants.VirtualButtonLeft, false)
	_, ok = d.Update()
	assert.False(t, ok)

	// A fresh press waits the full delay again.
	d.SetHeld(constants.VirtualButtonLeft, true)
	time.Sleep(8 * time.Millisecond)
	_, ok = d.Update()
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	d := NewDirectional()
	d.SetHeld(constants.VirtualButtonUp, true)
	d.Reset()

	assert.False(t, d.IsHeld())
}
