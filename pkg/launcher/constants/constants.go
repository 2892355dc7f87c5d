// Package constants defines shared constants, types, and configuration values
// used throughout the launcher.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical
// hardware. Keyboard keys and gamepad buttons both resolve to these, so the
// navigation code never sees device specifics.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonAccept
	VirtualButtonBack
	VirtualButtonTabPrev
	VirtualButtonTabNext
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonAccept:
		return "Accept"
	case VirtualButtonBack:
		return "Back"
	case VirtualButtonTabPrev:
		return "TabPrev"
	case VirtualButtonTabNext:
		return "TabNext"
	default:
		return "Unknown"
	}
}

// Design constants for the fixed visual language: dark background, accent
// selection border, drop-shadowed labels.
const (
	// NominalIconSize is the icon edge length at scale 1.0, in pixels.
	NominalIconSize = 256

	// TabHeight is the default tab bar height in pixels.
	TabHeight = 40

	// LabelHeight is the icon label band height in pixels.
	LabelHeight = 70

	// LabelSpacing separates an icon from its label.
	LabelSpacing = 8

	// GridMargin pads the grid area on all sides below the tab bar.
	GridMargin = 24

	// SelectionBorderInflate is how far the selection frame extends past
	// the icon rect.
	SelectionBorderInflate = 3

	// SelectionBorderPenWidth is the selection frame stroke width.
	SelectionBorderPenWidth = 4

	// SelectionBorderExtension is the total reach of the selection frame
	// above/below the icon rect, used for clipping and invalidation.
	SelectionBorderExtension = SelectionBorderInflate + SelectionBorderPenWidth/2

	// SelectionBorderPadding keeps the first grid row clear of the frame.
	SelectionBorderPadding = 4
)

// FrameInterval is how long the event loop waits per cycle, roughly one
// 60fps frame.
const FrameInterval = 16 * time.Millisecond
