package nav

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/grid"
)

// fourColumns lays out count items in a grid wide enough for exactly
// four columns per row.
func fourColumns(count int) *grid.Layout {
	cfg := grid.Config{
		IconSize:        100,
		HSpacing:        10,
		VSpacing:        12,
		LabelHeight:     70,
		VerticalPadding: 4,
	}
	l := grid.Compute(image.Rect(0, 40, 450, 640), count, cfg)
	return &l
}

func TestStepDownWithinGrid(t *testing.T) {
	l := fourColumns(10)
	require.Equal(t, 4, l.Columns)

	n := New()
	n.SetSelection(3, SourceKey, l)

	u := n.Step(DirDown, l, 600)
	assert.Equal(t, 7, n.Selected())
	assert.NotEmpty(t, u.Invalid)
}

func TestStepDownRaggedLastRow(t *testing.T) {
	l := fourColumns(10)
	n := New()
	n.SetSelection(7, SourceKey, l)

	// Cell 11 does not exist but a final row does, so movement lands on
	// its last item.
	n.Step(DirDown, l, 600)
	assert.Equal(t, 9, n.Selected())

	// From the last row there is nowhere further down.
	u := n.Step(DirDown, l, 600)
	assert.Equal(t, 9, n.Selected())
	assert.Empty(t, u.Invalid)
}

func TestStepUpRequiresFullRowAbove(t *testing.T) {
	l := fourColumns(10)
	n := New()

	n.SetSelection(2, SourceKey, l)
	n.Step(DirUp, l, 600)
	assert.Equal(t, 2, n.Selected(), "top row ignores up")

	n.SetSelection(6, SourceKey, l)
	n.Step(DirUp, l, 600)
	assert.Equal(t, 2, n.Selected())
}

func TestHorizontalStepsClampAtEnds(t *testing.T) {
	l := fourColumns(10)
	n := New()

	n.SetSelection(0, SourceKey, l)
	n.Step(DirLeft, l, 600)
	assert.Equal(t, 0, n.Selected())

	n.SetSelection(9, SourceKey, l)
	n.Step(DirRight, l, 600)
	assert.Equal(t, 9, n.Selected())

	// Right crosses row boundaries freely.
	n.SetSelection(3, SourceKey, l)
	n.Step(DirRight, l, 600)
	assert.Equal(t, 4, n.Selected())
}

func TestResumeAppliesDirectionalStep(t *testing.T) {
	l := fourColumns(10)
	n := New()

	n.SetSelection(5, SourceKey, l)
	n.SetSelection(-1, SourcePointer, l)
	require.Equal(t, -1, n.Selected())

	n.Step(DirRight, l, 600)
	assert.Equal(t, 6, n.Selected(), "resume at the remembered item, then move")
}

func TestResumeWithBlockedStepKeepsRememberedItem(t *testing.T) {
	l := fourColumns(10)
	n := New()

	n.SetSelection(9, SourceKey, l)
	n.SetSelection(-1, SourcePointer, l)

	// Right is clamped at the last item, but focus still comes back.
	u := n.Step(DirRight, l, 600)
	assert.Equal(t, 9, n.Selected())
	assert.NotEmpty(t, u.Invalid)
}

func TestResumeAtFirstVisibleRowWithoutHistory(t *testing.T) {
	l := fourColumns(40)
	n := New()

	// Scroll two rows down; row height is 100+70+4+12.
	n.state.ScrollOffset = 2 * l.RowHeight()
	n.Step(DirDown, l, 600)
	assert.Equal(t, 8, n.Selected())
}

func TestSetSelectionIdempotent(t *testing.T) {
	l := fourColumns(10)
	n := New()

	u := n.SetSelection(4, SourceKey, l)
	assert.NotEmpty(t, u.Invalid)

	u = n.SetSelection(4, SourceKey, l)
	assert.Empty(t, u.Invalid, "re-selecting the same item repaints nothing")
}

func TestSetSelectionOutOfRangeIgnored(t *testing.T) {
	l := fourColumns(10)
	n := New()
	n.SetSelection(4, SourceKey, l)

	u := n.SetSelection(10, SourceKey, l)
	assert.Empty(t, u.Invalid)
	assert.Equal(t, 4, n.Selected())
}

func TestInvalidationCoversOldAndNew(t *testing.T) {
	l := fourColumns(10)
	n := New()
	n.SetSelection(2, SourceKey, l)

	u := n.SetSelection(6, SourceKey, l)
	require.Len(t, u.Invalid, 2)
	assert.Equal(t, l.IconBounds(2, 0), u.Invalid[0])
	assert.Equal(t, l.IconBounds(6, 0), u.Invalid[1])
}

func TestPointerClearsOnlyPointerSelection(t *testing.T) {
	l := fourColumns(10)
	n := New()
	outside := image.Point{X: 5, Y: 5}

	n.PointerMoved(l.ItemRect(3, 0).Min.Add(image.Point{X: 1, Y: 1}), l)
	require.Equal(t, 3, n.Selected())
	n.PointerMoved(outside, l)
	assert.Equal(t, -1, n.Selected(), "pointer selection is transient")

	n.SetSelection(3, SourceKey, l)
	n.PointerMoved(outside, l)
	assert.Equal(t, 3, n.Selected(), "key selection survives pointer movement")
}

func TestPointerIgnoresItemsUnderTabBar(t *testing.T) {
	l := fourColumns(40)
	n := New()
	n.state.ScrollOffset = 70

	// Item 0 straddles the tab strip at this offset; hovering the strip
	// must not reach through to the row hidden behind it.
	u := n.PointerMoved(image.Point{X: 15, Y: 10}, l)
	assert.Equal(t, -1, n.Selected())
	assert.Empty(t, u.Invalid)

	// The part still inside the grid stays hoverable.
	n.PointerMoved(image.Point{X: 15, Y: 50}, l)
	assert.Equal(t, 0, n.Selected())
}

func TestScrollClampsToContent(t *testing.T) {
	l := fourColumns(40)
	n := New()
	viewport := 600

	n.Scroll(1<<20, l, viewport)
	assert.Equal(t, l.MaxScroll(viewport), n.ScrollOffset())

	n.Scroll(-1<<20, l, viewport)
	assert.Equal(t, 0, n.ScrollOffset())
}

func TestScrollSnapsSelectionToVisibleRow(t *testing.T) {
	l := fourColumns(40)
	n := New()
	n.SetSelection(0, SourceKey, l)

	n.Scroll(2*l.RowHeight(), l, 600)
	assert.Equal(t, 8, n.Selected())
	assert.Equal(t, SourceKey, n.State().Source)
}

func TestScrollWhenContentFits(t *testing.T) {
	l := fourColumns(4)
	n := New()

	u := n.Scroll(120, l, 600)
	assert.Equal(t, 0, n.ScrollOffset())
	assert.Empty(t, u.Invalid)
}

func TestSwitchTabResetsSelectionAndScroll(t *testing.T) {
	l := fourColumns(40)
	n := New()
	n.SetSelection(4, SourceKey, l)
	n.Scroll(120, l, 600)
	require.NotZero(t, n.ScrollOffset())

	u := n.SwitchTab(1, 3)
	assert.True(t, u.Whole)
	assert.Equal(t, 1, n.ActiveTab())
	assert.Equal(t, -1, n.Selected())
	assert.Equal(t, 0, n.ScrollOffset())
}

func TestSwitchTabWrapsBothWays(t *testing.T) {
	n := New()

	n.SwitchTab(-1, 3)
	assert.Equal(t, 2, n.ActiveTab())

	n.SwitchTab(1, 3)
	assert.Equal(t, 0, n.ActiveTab())
}

func TestSetActiveTabSameIndexNoop(t *testing.T) {
	l := fourColumns(10)
	n := New()
	n.SetSelection(4, SourceKey, l)

	u := n.SetActiveTab(0, 3)
	assert.False(t, u.Whole)
	assert.Equal(t, 4, n.Selected(), "re-selecting the active tab keeps state")
}

func TestStepScrollsSelectionIntoView(t *testing.T) {
	l := fourColumns(40)
	n := New()
	viewport := 400

	n.SetSelection(0, SourceKey, l)
	for i := 0; i < 4; i++ {
		n.Step(DirDown, l, viewport)
	}
	require.Equal(t, 16, n.Selected())

	bounds := l.IconBounds(16, n.ScrollOffset())
	assert.GreaterOrEqual(t, bounds.Min.Y, l.Container.Min.Y)
	assert.LessOrEqual(t, bounds.Max.Y, l.Container.Min.Y+viewport)
}

func TestRestoreClampsToGrid(t *testing.T) {
	l := fourColumns(6)
	n := New()

	n.Restore(State{Selected: 20, LastSelected: 20, ScrollOffset: 9999}, l, 600)
	assert.Equal(t, -1, n.Selected())
	assert.Equal(t, 0, n.ScrollOffset())
}

func TestConfirm(t *testing.T) {
	l := fourColumns(10)
	n := New()

	_, ok := n.Confirm()
	assert.False(t, ok)

	n.SetSelection(7, SourceKey, l)
	idx, ok := n.Confirm()
	assert.True(t, ok)
	assert.Equal(t, 7, idx)
}
