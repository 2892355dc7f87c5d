package internal

import (
	"image/color"
)

// Theme defines the fixed visual language of the launcher: dark charcoal
// background, accent-colored selection border, white labels with black
// drop shadow.
//
// The alpha-repair heuristic in the compositor is tuned to these exact
// colors. Changing them without revisiting the luminance thresholds will
// produce wrong alpha on labels and borders.
type Theme struct {
	BackgroundColor  color.RGBA // window background behind the grid
	AccentColor      color.RGBA // focus accents outside the grid
	SelectionColor   color.RGBA // selection border, must sit in the mid-grey repair band
	HoverColor       color.RGBA // hover border
	TextColor        color.RGBA // label text
	ShadowColor      color.RGBA // label drop shadow
	PlaceholderColor color.RGBA // solid block drawn when an icon is missing
	TabBarColor      color.RGBA // tab bar background
	TabBorderColor   color.RGBA // tab cell outline
	TabActiveColor   color.RGBA // active tab background fallback
	TabInactiveColor color.RGBA // inactive tab background
	FontPath         string     // path to the UI font
}

var currentTheme = DefaultTheme()

// DefaultTheme returns the launcher's stock palette.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:  color.RGBA{R: 28, G: 28, B: 30, A: 255},
		AccentColor:      color.RGBA{R: 0, G: 122, B: 255, A: 255},
		SelectionColor:   color.RGBA{R: 64, G: 64, B: 64, A: 255},
		HoverColor:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextColor:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ShadowColor:      color.RGBA{R: 0, G: 0, B: 0, A: 255},
		PlaceholderColor: color.RGBA{R: 64, G: 64, B: 64, A: 255},
		TabBarColor:      color.RGBA{R: 45, G: 45, B: 50, A: 255},
		TabBorderColor:   color.RGBA{R: 100, G: 100, B: 107, A: 255},
		TabActiveColor:   color.RGBA{R: 19, G: 147, B: 98, A: 255},
		TabInactiveColor: color.RGBA{R: 70, G: 70, B: 77, A: 255},
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
