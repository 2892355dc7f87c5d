// Package grid computes icon grid geometry: column counts, item
// rectangles, hit-testing and invalidation bounds. It is pure geometry
// and does no drawing; the compositor and navigator both consult it so
// that painting, clicking and keyboard movement always agree on where
// an item is.
package grid

import (
	"image"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
)

// Config carries the per-item sizing parameters. All values are pixels
// and must be >= 0; IconSize is the already scale-adjusted edge length.
type Config struct {
	IconSize        int
	HSpacing        int
	VSpacing        int
	LabelHeight     int
	VerticalPadding int
}

// Layout is the computed geometry for one container rect and item count.
// It is cheap to recompute and is not cached across paints.
type Layout struct {
	Container image.Rectangle
	Count     int
	Columns   int
	Rows      int
	OriginX   int
	OriginY   int

	cfg Config
}

// Compute lays out count items inside container. Columns is always >= 1,
// even for containers narrower than a single item, and an empty grid
// collapses to a single column; rows is the ceiling of count/columns.
// The grid is horizontally centered.
func Compute(container image.Rectangle, count int, cfg Config) Layout {
	availableWidth := container.Dx()
	itemWidth := cfg.IconSize + cfg.HSpacing

	columns := 1
	if count > 0 && itemWidth > 0 && availableWidth/itemWidth > 1 {
		columns = availableWidth / itemWidth
	}

	rows := 0
	if count > 0 {
		rows = (count + columns - 1) / columns
	}

	totalGridWidth := columns*itemWidth - cfg.HSpacing

	return Layout{
		Container: container,
		Count:     count,
		Columns:   columns,
		Rows:      rows,
		OriginX:   container.Min.X + (availableWidth-totalGridWidth)/2,
		OriginY:   container.Min.Y + constants.SelectionBorderPadding,
		cfg:       cfg,
	}
}

// LabelHeight is the height of the label band below each icon.
func (l *Layout) LabelHeight() int {
	return l.cfg.LabelHeight
}

// ItemHeight is the vertical extent of one item: icon plus label plus
// vertical padding, excluding inter-row spacing.
func (l *Layout) ItemHeight() int {
	return l.cfg.IconSize + l.cfg.LabelHeight + l.cfg.VerticalPadding
}

// RowHeight is the vertical stride between consecutive rows.
func (l *Layout) RowHeight() int {
	return l.ItemHeight() + l.cfg.VSpacing
}

// ItemRect returns the icon rectangle for index, shifted up by
// scrollOffset. The rect covers only the icon; the label band sits below
// it. The zero rectangle is returned for out-of-range indices.
func (l *Layout) ItemRect(index, scrollOffset int) image.Rectangle {
	if index < 0 || index >= l.Count || l.Columns == 0 {
		return image.Rectangle{}
	}

	row := index / l.Columns
	col := index % l.Columns

	left := l.OriginX + col*(l.cfg.IconSize+l.cfg.HSpacing)
	top := l.OriginY + row*l.RowHeight() - scrollOffset

	return image.Rect(left, top, left+l.cfg.IconSize, top+l.cfg.IconSize)
}

// LabelRect returns the label band directly below the icon rect of index.
func (l *Layout) LabelRect(index, scrollOffset int) image.Rectangle {
	icon := l.ItemRect(index, scrollOffset)
	if icon.Empty() {
		return image.Rectangle{}
	}

	top := icon.Max.Y + constants.SelectionBorderPadding
	return image.Rect(icon.Min.X, top, icon.Max.X, top+l.cfg.LabelHeight)
}

// HitTest maps a point to an item index, or -1 when no item is under it.
// Each item's target area extends downward over its label so the label is
// clickable too.
func (l *Layout) HitTest(pt image.Point, scrollOffset int) int {
	if l.Count == 0 {
		return -1
	}

	for i := 0; i < l.Count; i++ {
		r := l.ItemRect(i, scrollOffset)
		r.Max.Y += l.cfg.LabelHeight + constants.SelectionBorderPadding
		if pt.In(r) {
			return i
		}
	}

	return -1
}

// IconBounds returns the full footprint of an item: icon, label, and a
// margin for the selection border. Used both for drawing and for
// minimal-region invalidation.
func (l *Layout) IconBounds(index, scrollOffset int) image.Rectangle {
	r := l.ItemRect(index, scrollOffset)
	if r.Empty() {
		return image.Rectangle{}
	}

	r.Max.Y += l.cfg.LabelHeight + constants.LabelSpacing + constants.SelectionBorderPadding
	r.Min.X -= constants.SelectionBorderPadding
	r.Max.X += constants.SelectionBorderPadding
	r.Min.Y -= constants.SelectionBorderPadding

	return r
}

// TotalContentHeight is the height of all rows including inter-row
// spacing, independent of the viewport.
func (l *Layout) TotalContentHeight() int {
	return l.Rows * l.RowHeight()
}

// MaxScroll is the largest valid scroll offset for a viewport of the
// given height. It is 0 when the content fits.
func (l *Layout) MaxScroll(viewportHeight int) int {
	max := l.TotalContentHeight() - viewportHeight
	if max < 0 {
		return 0
	}
	return max
}

// FirstFullyVisibleIndex returns the index of the first item of the first
// row that is not cut off at the top of the viewport for the given scroll
// offset, clamped to the valid item range. Returns -1 for an empty grid.
func (l *Layout) FirstFullyVisibleIndex(scrollOffset int) int {
	if l.Count == 0 || l.Columns == 0 {
		return -1
	}

	rowHeight := l.RowHeight()
	if rowHeight <= 0 {
		return 0
	}

	// A row partially cut off at the top is skipped in favor of the next.
	firstRow := (scrollOffset + rowHeight - 1) / rowHeight
	index := firstRow * l.Columns

	if index < 0 {
		index = 0
	}
	if index > l.Count-1 {
		index = l.Count - 1
	}

	return index
}

// OptimizedGridRect is the horizontal span actually covered by grid
// columns plus the selection border extension, clipped to the container.
// Scroll invalidation uses it instead of the whole container so repaints
// skip the dead margins beside a centered grid.
func (l *Layout) OptimizedGridRect() image.Rectangle {
	itemWidth := l.cfg.IconSize + l.cfg.HSpacing
	totalGridWidth := l.Columns*itemWidth - l.cfg.HSpacing

	r := l.Container
	r.Min.X = l.OriginX - constants.SelectionBorderExtension
	if right := l.OriginX + totalGridWidth + constants.SelectionBorderExtension; right < r.Max.X {
		r.Max.X = right
	}
	r.Min.Y -= constants.SelectionBorderExtension

	return r
}
