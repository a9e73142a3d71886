// Package bounds clamps item geometry to the canvas and decides whether a
// component can fit the canvas at all.
//
// The canvas bounds only the horizontal axis: width 50 grid units, x in
// [0, 50-width]. Vertically the canvas grows downward without limit, so y is
// only clamped to be non-negative and heights are bounded by the caller's
// min/max sizes alone.
package bounds

import "github.com/lucidworks/gridbuilder/pkg/grid"

// Size is a width/height pair in grid units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SizeResult is the outcome of a size constraint pass.
type SizeResult struct {
	Size Size

	// Adjusted reports whether the default size needed any change.
	Adjusted bool
}

// PositionResult is the outcome of a position constraint pass.
type PositionResult struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Adjusted reports whether the position needed any change.
	Adjusted bool `json:"adjusted"`
}

// Placement is the outcome of the composed constraint pass.
type Placement struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	SizeAdjusted     bool `json:"size_adjusted"`
	PositionAdjusted bool `json:"position_adjusted"`
}

// CanFitCanvas reports whether a component with the given minimum width can
// fit a canvas at all.
func CanFitCanvas(minWidth, canvasWidth float64) bool {
	return minWidth <= canvasWidth
}

// ConstrainSize clamps a default size to [minSize, maxSize] with the width
// additionally bounded by the canvas: the width is shrunk to the canvas
// first, then floored to the minimum, then ceilinged to the maximum. Height
// never involves the canvas width.
func ConstrainSize(defaultSize, minSize, maxSize Size, canvasWidth float64) SizeResult {
	w := defaultSize.Width
	if w > canvasWidth {
		w = canvasWidth
	}
	if w < minSize.Width {
		w = minSize.Width
	}
	if w > maxSize.Width {
		w = maxSize.Width
	}

	h := defaultSize.Height
	if h < minSize.Height {
		h = minSize.Height
	}
	if h > maxSize.Height {
		h = maxSize.Height
	}

	out := Size{Width: w, Height: h}
	return SizeResult{Size: out, Adjusted: out != defaultSize}
}

// ConstrainPosition clamps x into [0, canvasWidth-width], left edge first,
// and y to be non-negative. There is no bottom bound: the canvas grows
// downward.
func ConstrainPosition(x, y, width, height, canvasWidth float64) PositionResult {
	cx, cy := x, y
	if cx < 0 {
		cx = 0
	}
	if cx+width > canvasWidth {
		cx = canvasWidth - width
	}
	if cy < 0 {
		cy = 0
	}
	_ = height // height does not constrain position; the canvas is unbounded below

	return PositionResult{X: cx, Y: cy, Adjusted: cx != x || cy != y}
}

// ApplyBoundaryConstraints composes the fit check, size clamp, and position
// clamp. Returns nil when the component cannot fit the canvas at all.
func ApplyBoundaryConstraints(x, y float64, defaultSize, minSize, maxSize Size, canvasWidth float64) *Placement {
	if !CanFitCanvas(minSize.Width, canvasWidth) {
		return nil
	}

	size := ConstrainSize(defaultSize, minSize, maxSize, canvasWidth)
	pos := ConstrainPosition(x, y, size.Size.Width, size.Size.Height, canvasWidth)

	return &Placement{
		X:                pos.X,
		Y:                pos.Y,
		Width:            size.Size.Width,
		Height:           size.Size.Height,
		SizeAdjusted:     size.Adjusted,
		PositionAdjusted: pos.Adjusted,
	}
}

// DefaultCanvasWidth is a convenience for callers constraining against the
// standard canvas.
const DefaultCanvasWidth = grid.CanvasWidthUnits
