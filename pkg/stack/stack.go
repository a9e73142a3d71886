// Package stack computes vertical flow positions for breakpoints in
// automatic stacking mode.
//
// Stacked items render full-width in a single column. Their order is the
// "visual order" of a source breakpoint: ascending y, ties broken by
// ascending z-index. Each item's vertical position is the cumulative height
// of everything above it in that order.
package stack

import (
	"sort"

	"github.com/lucidworks/gridbuilder/pkg/grid"
)

// DefaultItemHeight is the height, in grid units, assumed for items whose
// source layout carries no height.
const DefaultItemHeight = 6.0

// VisualOrder returns the canvas items sorted by their position at the
// source breakpoint: y ascending, ties broken by z-index ascending. The sort
// is stable, so items that tie on both keys keep their canvas order. Items
// without a layout entry at the source breakpoint sort as y=0.
func VisualOrder(items []*grid.Item, sourceBreakpoint string) []*grid.Item {
	ordered := make([]*grid.Item, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		yi := ordered[i].Layout(sourceBreakpoint).YOr(0)
		yj := ordered[j].Layout(sourceBreakpoint).YOr(0)
		if yi != yj {
			return yi < yj
		}
		return ordered[i].ZIndex < ordered[j].ZIndex
	})
	return ordered
}

// AutoStackLayout computes the stacked layout for one item: full canvas
// width at x=0, with y equal to the summed heights of every item preceding
// it in the visual order of the source breakpoint. The item's own height is
// taken from its source layout, falling back to DefaultItemHeight.
//
// The result is always marked not customized: stacking is derived geometry.
func AutoStackLayout(item *grid.Item, canvasItems []*grid.Item, sourceBreakpoint string) *grid.Layout {
	return AutoStackLayoutWith(item, canvasItems, sourceBreakpoint, DefaultItemHeight)
}

// AutoStackLayoutWith is AutoStackLayout with a caller-chosen fallback
// height for items whose source layout carries none.
func AutoStackLayoutWith(item *grid.Item, canvasItems []*grid.Item, sourceBreakpoint string, fallbackHeight float64) *grid.Layout {
	if fallbackHeight <= 0 {
		fallbackHeight = DefaultItemHeight
	}

	y := 0.0
	for _, it := range VisualOrder(canvasItems, sourceBreakpoint) {
		if it.ID == item.ID {
			break
		}
		y += it.Layout(sourceBreakpoint).HeightOr(fallbackHeight)
	}

	return &grid.Layout{
		X:      grid.Unit(0),
		Y:      grid.Unit(y),
		Width:  grid.Unit(grid.CanvasWidthUnits),
		Height: grid.Unit(item.Layout(sourceBreakpoint).HeightOr(fallbackHeight)),
	}
}
