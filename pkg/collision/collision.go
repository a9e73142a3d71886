// Package collision provides the axis-aligned overlap test and the
// deterministic free-space search used when placing new items.
package collision

import (
	"math"

	"github.com/lucidworks/gridbuilder/pkg/grid"
)

// Placement defaults, in grid units.
const (
	// PreferredMargin is the top/left margin tried first for new items.
	PreferredMargin = 2.0

	// BottomSpacing is the gap left above an item pushed below all
	// existing content.
	BottomSpacing = 2.0

	// ScanMaxRows bounds the row-major free-space scan. Beyond this the
	// search falls back to the bottom position.
	ScanMaxRows = 200
)

// Rect is an axis-aligned rectangle in grid units.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Position is a candidate placement in grid units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RectOfLayout converts a layout to a Rect, treating unset fields as 0.
func RectOfLayout(l *grid.Layout) Rect {
	return Rect{
		X:      l.XOr(0),
		Y:      l.YOr(0),
		Width:  l.WidthOr(0),
		Height: l.HeightOr(0),
	}
}

// Collides reports whether two rectangles genuinely overlap. Touching edges
// (shared boundary) do not collide; any overlap of positive area does,
// including fully nested rectangles. The test is symmetric, and identical
// rectangles always collide.
func Collides(a, b Rect) bool {
	if a.X+a.Width <= b.X || b.X+b.Width <= a.X {
		return false
	}
	if a.Y+a.Height <= b.Y || b.Y+b.Height <= a.Y {
		return false
	}
	return true
}

// collidesAny reports whether candidate overlaps any existing rectangle.
func collidesAny(candidate Rect, existing []Rect) bool {
	for _, r := range existing {
		if Collides(candidate, r) {
			return true
		}
	}
	return false
}

// SearchOptions tunes the free-space search. The zero value is replaced by
// the package defaults.
type SearchOptions struct {
	// PreferredMargin is the top/left margin tried first.
	PreferredMargin float64 `json:"preferred_margin,omitempty"`

	// BottomSpacing is the gap left above a bottom-placed item.
	BottomSpacing float64 `json:"bottom_spacing,omitempty"`

	// MaxRows bounds the row-major scan.
	MaxRows int `json:"max_rows,omitempty"`
}

// DefaultSearchOptions returns the package default search tunables.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		PreferredMargin: PreferredMargin,
		BottomSpacing:   BottomSpacing,
		MaxRows:         ScanMaxRows,
	}
}

func (o SearchOptions) withDefaults() SearchOptions {
	if o.PreferredMargin <= 0 {
		o.PreferredMargin = PreferredMargin
	}
	if o.BottomSpacing <= 0 {
		o.BottomSpacing = BottomSpacing
	}
	if o.MaxRows <= 0 {
		o.MaxRows = ScanMaxRows
	}
	return o
}

// FindFreeSpace locates a position for a new width x height item among the
// existing rectangles, using the default search tunables.
func FindFreeSpace(existing []Rect, width, height float64) Position {
	return FindFreeSpaceIn(existing, width, height, DefaultSearchOptions())
}

// FindFreeSpaceIn locates a position for a new width x height item among the
// existing rectangles. The search is deterministic, in strategy order:
//
//  1. No existing items: centered horizontally, the preferred margin from
//     the top.
//  2. The preferred anchor (margin, margin) when it fits the canvas and
//     collides with nothing.
//  3. A row-major scan, top to bottom then left to right, bounded at
//     MaxRows rows; the first collision-free cell wins.
//  4. The bottom position: x=0, below all existing content.
//
// The result never collides with any existing rectangle.
func FindFreeSpaceIn(existing []Rect, width, height float64, opts SearchOptions) Position {
	opts = opts.withDefaults()

	if len(existing) == 0 {
		return Position{X: math.Floor((grid.CanvasWidthUnits - width) / 2), Y: opts.PreferredMargin}
	}

	if opts.PreferredMargin+width <= grid.CanvasWidthUnits {
		anchor := Rect{X: opts.PreferredMargin, Y: opts.PreferredMargin, Width: width, Height: height}
		if !collidesAny(anchor, existing) {
			return Position{X: opts.PreferredMargin, Y: opts.PreferredMargin}
		}
	}

	maxX := int(grid.CanvasWidthUnits - width)
	for y := 0; y < opts.MaxRows; y++ {
		for x := 0; x <= maxX; x++ {
			candidate := Rect{X: float64(x), Y: float64(y), Width: width, Height: height}
			if !collidesAny(candidate, existing) {
				return Position{X: float64(x), Y: float64(y)}
			}
		}
	}

	return bottomPosition(existing, opts.BottomSpacing)
}

// BottomPosition returns the slot below all existing content: x=0 and y just
// past the lowest bottom edge, with BottomSpacing of breathing room. With no
// existing rectangles it returns the origin.
func BottomPosition(existing []Rect) Position {
	return bottomPosition(existing, BottomSpacing)
}

func bottomPosition(existing []Rect, spacing float64) Position {
	if len(existing) == 0 {
		return Position{}
	}
	bottom := 0.0
	for _, r := range existing {
		bottom = math.Max(bottom, r.Y+r.Height)
	}
	return Position{X: 0, Y: bottom + spacing}
}
