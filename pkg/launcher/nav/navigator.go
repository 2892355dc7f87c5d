// Package nav holds the selection state machine shared by pointer,
// keyboard and controller input. All input paths converge on the same
// few transitions, so hover, click and arrow keys can never disagree
// about which item is current.
package nav

import (
	"image"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/grid"
)

// Source tags which input family last moved the selection. Pointer
// selection is transient and clears when the pointer leaves the grid;
// key and controller selection is sticky.
type Source int

const (
	SourcePointer Source = iota
	SourceKey
)

// Direction is a four-way navigation step.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// State is the complete per-tab selection state.
type State struct {
	ActiveTab    int
	Selected     int // -1 when nothing is selected
	LastSelected int // resume point for key navigation, -1 when unset
	ScrollOffset int
	Source       Source
}

// Update is the result of a transition: the regions that must repaint.
// Nil means nothing changed on screen.
type Update struct {
	Invalid []image.Rectangle
	Whole   bool // entire window needs repainting
}

// Navigator applies input transitions to a State. It consults the grid
// layout for geometry but owns no pixels; callers repaint the regions
// an Update names.
type Navigator struct {
	state State
}

// New returns a navigator with nothing selected on the first tab.
func New() *Navigator {
	return &Navigator{state: State{Selected: -1, LastSelected: -1}}
}

// State returns a copy of the current selection state.
func (n *Navigator) State() State {
	return n.state
}

// Selected returns the current item index, -1 when none.
func (n *Navigator) Selected() int {
	return n.state.Selected
}

// ScrollOffset returns the current scroll position.
func (n *Navigator) ScrollOffset() int {
	return n.state.ScrollOffset
}

// ActiveTab returns the current tab index.
func (n *Navigator) ActiveTab() int {
	return n.state.ActiveTab
}

// SetSelection moves the selection to index, recording which input
// family asked for it. Out-of-range indices other than -1 are ignored.
// Re-selecting the current item from the same source is a no-op that
// invalidates nothing.
func (n *Navigator) SetSelection(index int, src Source, l *grid.Layout) Update {
	if index != -1 && (index < 0 || index >= l.Count) {
		return Update{}
	}
	if index == n.state.Selected && src == n.state.Source {
		return Update{}
	}

	var inv []image.Rectangle
	if old := n.state.Selected; old >= 0 {
		inv = append(inv, l.IconBounds(old, n.state.ScrollOffset))
	}
	if index >= 0 {
		inv = append(inv, l.IconBounds(index, n.state.ScrollOffset))
		n.state.LastSelected = index
	}
	n.state.Selected = index
	n.state.Source = src
	return Update{Invalid: inv}
}

// PointerMoved hit-tests the pointer position and moves the selection
// accordingly. Positions outside the grid container never select, even
// when a scrolled-up row extends under the tab strip, because only the
// grid area is interactive. A position over no item clears a
// pointer-made selection but leaves a key-made one alone, so mousing
// past the grid does not destroy keyboard focus.
func (n *Navigator) PointerMoved(pt image.Point, l *grid.Layout) Update {
	if pt.In(l.Container) {
		if hit := l.HitTest(pt, n.state.ScrollOffset); hit >= 0 {
			return n.SetSelection(hit, SourcePointer, l)
		}
	}
	if n.state.Selected >= 0 && n.state.Source == SourcePointer {
		return n.SetSelection(-1, SourcePointer, l)
	}
	return Update{}
}

// PointerLeft clears a pointer-made selection when the pointer exits
// the window entirely.
func (n *Navigator) PointerLeft(l *grid.Layout) Update {
	if n.state.Selected >= 0 && n.state.Source == SourcePointer {
		return n.SetSelection(-1, SourcePointer, l)
	}
	return Update{}
}

// Step moves the selection one cell in the given direction. With no
// current selection it resumes at the last selected item and applies
// the step from there in the same call; without history it lands on
// the first fully visible row and stops. Horizontal steps clamp at the
// ends; vertical steps move a whole column stride, with Down landing
// on the last item when the cell below is past the end of a ragged
// final row.
func (n *Navigator) Step(dir Direction, l *grid.Layout, viewportHeight int) Update {
	if l.Count == 0 {
		return Update{}
	}

	cur := n.state.Selected
	resumed := false
	if cur < 0 {
		cur = n.state.LastSelected
		if cur < 0 || cur >= l.Count {
			return n.resume(l, viewportHeight)
		}
		resumed = true
	}

	next := cur
	switch dir {
	case DirLeft:
		if cur > 0 {
			next = cur - 1
		}
	case DirRight:
		if cur < l.Count-1 {
			next = cur + 1
		}
	case DirUp:
		if cur >= l.Columns {
			next = cur - l.Columns
		}
	case DirDown:
		if cur+l.Columns < l.Count {
			next = cur + l.Columns
		} else if cur/l.Columns < l.Rows-1 {
			// A shorter final row still accepts downward movement onto
			// its last item.
			next = l.Count - 1
		}
	}

	if next == cur && !resumed {
		return Update{}
	}
	u := n.SetSelection(next, SourceKey, l)
	u = merge(u, n.ensureVisible(l, viewportHeight))
	return u
}

// resume restores key-navigation focus when there is no remembered
// item to continue from: the first item of the first fully visible row.
func (n *Navigator) resume(l *grid.Layout, viewportHeight int) Update {
	target := l.FirstFullyVisibleIndex(n.state.ScrollOffset)
	if target < 0 {
		return Update{}
	}
	u := n.SetSelection(target, SourceKey, l)
	u = merge(u, n.ensureVisible(l, viewportHeight))
	return u
}

// Scroll shifts the viewport by delta, clamped to the content, and
// snaps the selection to the first fully visible item so keyboard
// movement continues from what the user currently sees.
func (n *Navigator) Scroll(delta int, l *grid.Layout, viewportHeight int) Update {
	offset := n.state.ScrollOffset + delta
	if max := l.MaxScroll(viewportHeight); offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	if offset == n.state.ScrollOffset {
		return Update{}
	}
	n.state.ScrollOffset = offset

	u := Update{Invalid: []image.Rectangle{l.OptimizedGridRect()}}
	if snap := l.FirstFullyVisibleIndex(offset); snap >= 0 && snap != n.state.Selected {
		u = merge(u, n.SetSelection(snap, SourceKey, l))
	}
	return u
}

// ensureVisible adjusts the scroll so the selected item, including its
// border margin, is fully inside the viewport.
func (n *Navigator) ensureVisible(l *grid.Layout, viewportHeight int) Update {
	sel := n.state.Selected
	if sel < 0 {
		return Update{}
	}

	bounds := l.IconBounds(sel, n.state.ScrollOffset)
	top := l.Container.Min.Y
	bottom := top + viewportHeight

	offset := n.state.ScrollOffset
	if bounds.Min.Y < top+constants.SelectionBorderExtension {
		offset -= top + constants.SelectionBorderExtension - bounds.Min.Y
	} else if bounds.Max.Y > bottom-constants.SelectionBorderExtension {
		offset += bounds.Max.Y - (bottom - constants.SelectionBorderExtension)
	}
	if max := l.MaxScroll(viewportHeight); offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	if offset == n.state.ScrollOffset {
		return Update{}
	}
	n.state.ScrollOffset = offset
	return Update{Invalid: []image.Rectangle{l.OptimizedGridRect()}}
}

// SwitchTab moves delta tabs with wraparound and resets the selection
// and scroll for the incoming tab. The whole window repaints.
func (n *Navigator) SwitchTab(delta, tabCount int) Update {
	if tabCount <= 0 {
		return Update{}
	}
	next := ((n.state.ActiveTab+delta)%tabCount + tabCount) % tabCount
	return n.SetActiveTab(next, tabCount)
}

// SetActiveTab jumps directly to a tab, resetting selection state.
// Selecting the already-active tab is a no-op.
func (n *Navigator) SetActiveTab(index, tabCount int) Update {
	if index < 0 || index >= tabCount || index == n.state.ActiveTab {
		return Update{}
	}
	n.state = State{
		ActiveTab:    index,
		Selected:     -1,
		LastSelected: -1,
	}
	return Update{Whole: true}
}

// Reset clears all selection state, keeping the active tab. Used when
// the shortcut set is rebuilt underneath the grid.
func (n *Navigator) Reset() Update {
	n.state.Selected = -1
	n.state.LastSelected = -1
	n.state.ScrollOffset = 0
	return Update{Whole: true}
}

// Restore reinstates a saved state, clamping it to the current grid.
// Used after a refresh that preserved the shortcut the user was on.
func (n *Navigator) Restore(s State, l *grid.Layout, viewportHeight int) Update {
	if s.Selected >= l.Count {
		s.Selected = -1
	}
	if s.LastSelected >= l.Count {
		s.LastSelected = -1
	}
	if max := l.MaxScroll(viewportHeight); s.ScrollOffset > max {
		s.ScrollOffset = max
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	n.state = s
	return Update{Whole: true}
}

// Confirm reports the item a confirm action applies to, if any.
func (n *Navigator) Confirm() (int, bool) {
	if n.state.Selected < 0 {
		return -1, false
	}
	return n.state.Selected, true
}

func merge(a, b Update) Update {
	return Update{
		Invalid: append(a.Invalid, b.Invalid...),
		Whole:   a.Whole || b.Whole,
	}
}
