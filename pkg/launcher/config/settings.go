// Package config loads and persists launcher settings.
//
// Settings live in a TOML file next to the executable. Every numeric value
// has a documented default and is clamped to a sane range on load, so a
// hand-edited file can never push the layout into a broken state. The
// loaded Settings value is passed explicitly into the components that need
// it; there is no global settings singleton.
package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
	"github.com/VisualLeap/GameLauncher/internal"
)

// DefaultFileName is the settings file name within the working directory.
const DefaultFileName = "launcher.toml"

// Settings is the full persisted configuration.
type Settings struct {
	Window    WindowSettings    `toml:"window"`
	Display   DisplaySettings   `toml:"display"`
	Scrolling ScrollingSettings `toml:"scrolling"`
	TabColors map[string]string `toml:"tab_colors"` // tab name -> "RRGGBB" hex
}

// WindowSettings is the saved window geometry and active tab.
type WindowSettings struct {
	X         int `toml:"x"`
	Y         int `toml:"y"`
	Width     int `toml:"width"`
	Height    int `toml:"height"`
	ActiveTab int `toml:"active_tab"`
}

// DisplaySettings controls grid sizing and fonts.
type DisplaySettings struct {
	IconScale             float64 `toml:"icon_scale"`
	IconLabelFontSize     int     `toml:"icon_label_font_size"`
	TabFontSize           int     `toml:"tab_font_size"`
	IconSpacingHorizontal int     `toml:"icon_spacing_horizontal"`
	IconSpacingVertical   int     `toml:"icon_spacing_vertical"`
	TabHeight             int     `toml:"tab_height"`
	IconVerticalPadding   int     `toml:"icon_vertical_padding"`
}

// ScrollingSettings controls wheel and stick scroll speeds, in pixels per
// notch / per tick.
type ScrollingSettings struct {
	MouseScrollSpeed    int `toml:"mouse_scroll_speed"`
	JoystickScrollSpeed int `toml:"joystick_scroll_speed"`
}

// PositionUnset marks a window coordinate that has never been saved.
const PositionUnset = -32768

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			X:         PositionUnset,
			Y:         PositionUnset,
			Width:     800,
			Height:    600,
			ActiveTab: 0,
		},
		Display: DisplaySettings{
			IconScale:             1.0,
			IconLabelFontSize:     36,
			TabFontSize:           16,
			IconSpacingHorizontal: 12,
			IconSpacingVertical:   12,
			TabHeight:             constants.TabHeight,
			IconVerticalPadding:   4,
		},
		Scrolling: ScrollingSettings{
			MouseScrollSpeed:    60,
			JoystickScrollSpeed: 120,
		},
		TabColors: map[string]string{},
	}
}

// Load reads the settings file at path, applying defaults for missing keys
// and clamping all values. A missing file is not an error: it yields the
// defaults.
func Load(path string) (Settings, error) {
	s := Default()

	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return Default(), err
	}

	s.clamp()
	return s, nil
}

// Save writes the settings to path. The file is written to a temp sibling
// and renamed into place so a crash mid-write cannot corrupt it.
func (s *Settings) Save(path string) error {
	s.clamp()

	tmp, err := os.CreateTemp(filepath.Dir(path), ".launcher-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (s *Settings) clamp() {
	s.Display.IconScale = clampFloat(s.Display.IconScale, 0.25, 2.0)
	s.Display.IconLabelFontSize = clampInt(s.Display.IconLabelFontSize, 8, 72)
	s.Display.TabFontSize = clampInt(s.Display.TabFontSize, 8, 50)
	s.Display.IconSpacingHorizontal = clampInt(s.Display.IconSpacingHorizontal, 0, 100)
	s.Display.IconSpacingVertical = clampInt(s.Display.IconSpacingVertical, 0, 100)
	s.Display.TabHeight = clampInt(s.Display.TabHeight, 20, 100)
	s.Display.IconVerticalPadding = clampInt(s.Display.IconVerticalPadding, 0, 50)

	if s.Window.Width < 200 {
		s.Window.Width = 800
	}
	if s.Window.Height < 150 {
		s.Window.Height = 600
	}
	if s.Window.ActiveTab < 0 {
		s.Window.ActiveTab = 0
	}
	if s.TabColors == nil {
		s.TabColors = map[string]string{}
	}
}

// TabColor returns the configured color for a tab name, or fallback when
// the name has no override or the override does not parse.
func (s *Settings) TabColor(name string, fallback color.RGBA) color.RGBA {
	hex, ok := s.TabColors[name]
	if !ok {
		return fallback
	}

	var v uint32
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | uint32(c-'A'+10)
		default:
			return fallback
		}
	}
	if len(hex) != 6 {
		return fallback
	}

	return internal.HexToColor(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
