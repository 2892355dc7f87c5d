package compose

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/VisualLeap/GameLauncher/internal"
)

// TabStyle is one entry in the strip along the top of the window.
type TabStyle struct {
	Name  string
	Color color.RGBA
}

// tabBarCache renders the strip once and reuses the pixels until the
// tab set, the active index, or the width changes. The strip repaints
// on every frame, so caching it is the cheapest real win in the paint
// path.
type tabBarCache struct {
	strip    *image.RGBA
	tabs     []TabStyle
	active   int
	fontSize int
	log      *slog.Logger
}

func newTabBarCache() *tabBarCache {
	return &tabBarCache{active: -1, log: internal.GetLogger()}
}

// invalidate drops the cached strip so the next frame re-renders it.
func (c *tabBarCache) invalidate() {
	c.strip = nil
}

func (c *tabBarCache) stale(tabs []TabStyle, active, w, h, fontSize int) bool {
	if c.strip == nil || c.active != active || c.fontSize != fontSize {
		return true
	}
	sz := c.strip.Bounds().Size()
	if sz.X != w || sz.Y != h {
		return true
	}
	if len(c.tabs) != len(tabs) {
		return true
	}
	for i := range tabs {
		if tabs[i] != c.tabs[i] {
			return true
		}
	}
	return false
}

// render paints the strip into an opaque off-screen buffer: the bar
// background, one colored segment per tab with a hairline border, the
// active tab in its highlight color, and a centered label on each.
// Label pixels land with alpha zero and are fixed by repairTabBar once
// the strip is placed into the frame.
func (c *tabBarCache) render(tabs []TabStyle, active, w, h, fontSize int, text TextRasterizer) *image.RGBA {
	if !c.stale(tabs, active, w, h, fontSize) {
		return c.strip
	}
	theme := internal.GetTheme()
	strip := image.NewRGBA(image.Rect(0, 0, w, h))
	fillOpaque(strip, strip.Bounds(), theme.TabBarColor)

	if len(tabs) > 0 {
		tabWidth := w / len(tabs)
		for i, tab := range tabs {
			seg := image.Rect(i*tabWidth, 0, (i+1)*tabWidth, h)
			if i == len(tabs)-1 {
				seg.Max.X = w
			}
			bg := tab.Color
			if i == active {
				bg = theme.TabActiveColor
			}
			fillOpaque(strip, seg, bg)
			frameRGB(strip, seg, 1, theme.TabBorderColor)
			c.renderLabel(strip, seg, tab.Name, fontSize, text)
		}
	}

	c.strip = strip
	c.tabs = append(c.tabs[:0], tabs...)
	c.active = active
	c.fontSize = fontSize
	return strip
}

func (c *tabBarCache) renderLabel(strip *image.RGBA, seg image.Rectangle, name string, fontSize int, text TextRasterizer) {
	if text == nil || name == "" {
		return
	}
	glyph, err := text.Render(name, fontSize, internal.GetTheme().TextColor)
	if err != nil {
		c.log.Warn("tab label render failed", "tab", name, "error", err)
		return
	}
	gs := glyph.Bounds().Size()
	pos := image.Point{
		X: seg.Min.X + (seg.Dx()-gs.X)/2,
		Y: seg.Min.Y + (seg.Dy()-gs.Y)/2,
	}
	blitTextRGB(strip, pos, glyph, seg)
}
