package compose

import (
	"image"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/grid"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/icon"
	"github.com/VisualLeap/GameLauncher/internal"
)

// Item is one grid cell to paint: a converted icon, its label, and
// whether it currently carries the selection border.
type Item struct {
	Bitmap   *icon.Bitmap
	Label    string
	Selected bool
}

// Frame is everything a single paint needs. The caller assembles it
// from current state; the compositor holds no references to it after
// Compose returns.
type Frame struct {
	Tabs         []TabStyle
	ActiveTab    int
	Items        []Item
	Layout       *grid.Layout
	ScrollOffset int
	TabHeight    int
	TabFontSize  int
	LabelSize    int
	EmptyMessage string
	// Notice is a transient status line (e.g. a failed launch) shown at
	// the bottom of the grid area. Empty means none.
	Notice string
}

// Compositor paints frames into an off-screen premultiplied buffer.
// All methods must be called from the UI goroutine; only the resize
// flag is touched from elsewhere.
type Compositor struct {
	surface  *Surface
	tabBar   *tabBarCache
	text     TextRasterizer
	resizing atomic.Bool
	log      *slog.Logger
}

// NewCompositor wires a compositor to its text rasterizer. The surface
// is allocated lazily on the first Compose.
func NewCompositor(text TextRasterizer) *Compositor {
	return &Compositor{
		tabBar: newTabBarCache(),
		text:   text,
		log:    internal.GetLogger(),
	}
}

// SetResizing toggles suppression of surface reallocation. While the
// user is dragging a window edge the size changes every few
// milliseconds; the compositor keeps painting into the old buffer and
// reallocates once on release.
func (c *Compositor) SetResizing(v bool) {
	c.resizing.Store(v)
}

// InvalidateTabBar forces the cached tab strip to re-render on the
// next frame. Call it after a theme change.
func (c *Compositor) InvalidateTabBar() {
	c.tabBar.invalidate()
}

// Surface returns the current buffer for presentation, or nil before
// the first successful Compose.
func (c *Compositor) Surface() *Surface {
	return c.surface
}

// ensureSurface replaces the buffer wholesale when the window size
// changed, unless a resize drag is in progress.
func (c *Compositor) ensureSurface(w, h int) error {
	if c.surface != nil {
		sz := c.surface.Size()
		if sz.X == w && sz.Y == h {
			return nil
		}
		if c.resizing.Load() {
			return nil
		}
	}
	s, err := NewSurface(w, h)
	if err != nil {
		return err
	}
	c.surface = s
	c.log.Debug("surface recreated", "width", w, "height", h)
	return nil
}

// Compose paints a complete frame: sentinel clear, cached tab bar,
// clipped grid pass, then the alpha repair passes. On allocation
// failure it returns ErrNoSurface and the frame is simply skipped.
func (c *Compositor) Compose(w, h int, f Frame) error {
	if err := c.ensureSurface(w, h); err != nil {
		c.log.Warn("frame skipped", "error", err)
		return err
	}
	buf := c.surface.RGBA()
	size := c.surface.Size()
	c.surface.Clear()

	tabRegion := image.Rect(0, 0, size.X, f.TabHeight)
	strip := c.tabBar.render(f.Tabs, f.ActiveTab, size.X, f.TabHeight, f.TabFontSize, c.text)
	copyRect(buf, image.Point{}, strip)

	// Grid content may bleed a few pixels above its own origin when the
	// selection border extends upward, but never into the tab strip.
	gridClip := image.Rect(0, f.TabHeight, size.X, size.Y)

	if len(f.Items) == 0 {
		c.paintEmptyMessage(buf, gridClip, f)
	} else {
		c.paintGrid(buf, gridClip, f)
	}

	c.paintNotice(buf, gridClip, f)

	repairTabBar(buf, tabRegion)
	c.repairItems(buf, gridClip, f)
	return nil
}

// paintNotice draws the transient status line near the bottom edge and
// repairs it immediately so it stays visible on the translucent window.
func (c *Compositor) paintNotice(buf *image.RGBA, clip image.Rectangle, f Frame) {
	if c.text == nil || f.Notice == "" {
		return
	}
	glyph, err := c.text.Render(f.Notice, f.LabelSize, internal.GetTheme().TextColor)
	if err != nil {
		c.log.Warn("notice render failed", "error", err)
		return
	}
	gs := glyph.Bounds().Size()
	pos := image.Point{
		X: clip.Min.X + (clip.Dx()-gs.X)/2,
		Y: clip.Max.Y - gs.Y - constants.GridMargin,
	}
	blitTextRGB(buf, pos, glyph, clip)
	repairItemRegion(buf, image.Rectangle{Min: pos, Max: pos.Add(gs)})
}

func (c *Compositor) paintGrid(buf *image.RGBA, clip image.Rectangle, f Frame) {
	theme := internal.GetTheme()
	for i, item := range f.Items {
		rect := f.Layout.ItemRect(i, f.ScrollOffset)
		visible := rect
		visible.Max.Y += f.Layout.LabelHeight() + constants.SelectionBorderPadding
		if !visible.Overlaps(clip) {
			continue
		}

		if item.Selected {
			border := rect.Inset(-constants.SelectionBorderInflate)
			frameRGB(buf, border, constants.SelectionBorderPenWidth, theme.SelectionColor)
		}

		if item.Bitmap.Valid() {
			blitPremultiplied(buf, rect.Min, item.Bitmap.Pix, clip)
		} else {
			fillRGB(buf, rect.Intersect(clip), theme.PlaceholderColor)
		}

		c.paintLabel(buf, clip, f, i, item.Label)
	}
}

// paintLabel draws the item caption twice, a black offset pass first
// so the repair shadow ramp has something to find, then the text color
// on top.
func (c *Compositor) paintLabel(buf *image.RGBA, clip image.Rectangle, f Frame, index int, label string) {
	if c.text == nil || label == "" {
		return
	}
	theme := internal.GetTheme()
	glyph, err := c.text.Render(label, f.LabelSize, theme.TextColor)
	if err != nil {
		c.log.Warn("label render failed", "label", label, "error", err)
		return
	}
	shadow, err := c.text.Render(label, f.LabelSize, theme.ShadowColor)
	if err != nil {
		shadow = nil
	}

	lr := f.Layout.LabelRect(index, f.ScrollOffset)
	gs := glyph.Bounds().Size()
	pos := image.Point{
		X: lr.Min.X + (lr.Dx()-gs.X)/2,
		Y: lr.Min.Y + constants.LabelSpacing,
	}
	labelClip := lr.Intersect(clip)
	if shadow != nil {
		blitTextRGB(buf, pos.Add(image.Point{X: 1, Y: 1}), shadow, labelClip)
	}
	blitTextRGB(buf, pos, glyph, labelClip)
}

// paintEmptyMessage centers the localized placeholder text in the grid
// area and repairs it like an item so it survives the alpha pass.
func (c *Compositor) paintEmptyMessage(buf *image.RGBA, clip image.Rectangle, f Frame) {
	if c.text == nil || f.EmptyMessage == "" {
		return
	}
	glyph, err := c.text.Render(f.EmptyMessage, f.LabelSize, internal.GetTheme().TextColor)
	if err != nil {
		c.log.Warn("empty message render failed", "error", err)
		return
	}
	gs := glyph.Bounds().Size()
	pos := image.Point{
		X: clip.Min.X + (clip.Dx()-gs.X)/2,
		Y: clip.Min.Y + (clip.Dy()-gs.Y)/2,
	}
	blitTextRGB(buf, pos, glyph, clip)
	repairItemRegion(buf, image.Rectangle{Min: pos, Max: pos.Add(gs)})
}

// repairItems runs the per-item alpha reconstruction over every item
// whose bounds touch the visible grid area. Off-screen rows are
// skipped entirely, which bounds the pass by the viewport instead of
// the shortcut count.
func (c *Compositor) repairItems(buf *image.RGBA, clip image.Rectangle, f Frame) {
	if f.Layout == nil {
		return
	}
	for i := range f.Items {
		bounds := f.Layout.IconBounds(i, f.ScrollOffset)
		if !bounds.Overlaps(clip) {
			continue
		}
		repairItemRegion(buf, bounds.Intersect(clip))
	}
}
