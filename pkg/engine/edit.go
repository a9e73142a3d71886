package engine

import (
	"context"
	"time"

	"github.com/lucidworks/gridbuilder/pkg/bounds"
	"github.com/lucidworks/gridbuilder/pkg/breakpoint"
	"github.com/lucidworks/gridbuilder/pkg/collision"
	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/observability"
)

func minItemSize() bounds.Size {
	return bounds.Size{Width: grid.MinItemWidth, Height: grid.MinItemHeight}
}

func maxItemSize() bounds.Size {
	return bounds.Size{Width: grid.MaxItemWidth, Height: grid.MaxItemHeight}
}

// PlaceItem adds a new item to a canvas, searching for collision-free space
// at the largest breakpoint and initializing layouts for every breakpoint.
// A missing canvas is created. The requested size is clamped to the item
// size limits before placement.
func (e *Engine) PlaceItem(ctx context.Context, canvasID, itemType string, width, height float64) (*grid.Item, error) {
	start := time.Now()
	observability.Placement().OnPlacementStart(ctx, canvasID, width, height)

	canvas, err := e.store.Get(ctx, canvasID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		canvas = grid.NewCanvas(canvasID)
	}

	largest := e.bps.Largest()
	existing := make([]collision.Rect, 0, len(canvas.Items))
	for _, it := range canvas.Items {
		r, err := breakpoint.EffectiveLayout(it, largest, e.bps)
		if err != nil {
			return nil, err
		}
		existing = append(existing, collision.RectOfLayout(r.Layout))
	}

	pos := collision.FindFreeSpaceIn(existing, width, height, e.opts.Search)
	placement := bounds.ApplyBoundaryConstraints(pos.X, pos.Y,
		bounds.Size{Width: width, Height: height},
		minItemSize(), maxItemSize(),
		grid.CanvasWidthUnits)
	if placement == nil {
		err := errors.New(errors.ErrCodeUnfittable,
			"item of minimum width %g cannot fit a %g-unit canvas", grid.MinItemWidth, grid.CanvasWidthUnits)
		observability.Placement().OnPlacementComplete(ctx, canvasID, false, time.Since(start), err)
		return nil, err
	}

	base := grid.NewLayout(placement.X, placement.Y, placement.Width, placement.Height, true)
	layouts, err := breakpoint.InitializeLayouts(e.bps, base)
	if err != nil {
		return nil, err
	}

	it := grid.NewItem(canvasID, itemType)
	it.Layouts = layouts
	canvas.AddItem(it)

	if err := e.store.Put(ctx, canvas); err != nil {
		observability.Placement().OnPlacementComplete(ctx, canvasID, false, time.Since(start), err)
		return nil, err
	}

	adjusted := placement.SizeAdjusted || placement.PositionAdjusted
	observability.Placement().OnPlacementComplete(ctx, canvasID, adjusted, time.Since(start), nil)
	e.logger.Info("placed item",
		"canvas", canvasID,
		"item", it.ID,
		"type", itemType,
		"x", placement.X,
		"y", placement.Y,
		"adjusted", adjusted)
	return it, nil
}

// MoveItem sets an item's position at one breakpoint, clamping it inside
// the canvas and marking the breakpoint customized. The item's effective
// size at that breakpoint is materialized alongside the new position.
func (e *Engine) MoveItem(ctx context.Context, canvasID, itemID, bp string, x, y float64) (*grid.Layout, error) {
	canvas, it, err := e.loadItem(ctx, canvasID, itemID, bp)
	if err != nil {
		return nil, err
	}

	r, err := breakpoint.EffectiveLayout(it, bp, e.bps)
	if err != nil {
		return nil, err
	}
	l := r.Layout.Clone()

	w := l.WidthOr(grid.MinItemWidth)
	h := l.HeightOr(grid.MinItemHeight)
	p := bounds.ConstrainPosition(x, y, w, h, grid.CanvasWidthUnits)

	l.X = grid.Unit(p.X)
	l.Y = grid.Unit(p.Y)
	l.Width = grid.Unit(w)
	l.Height = grid.Unit(h)
	l.Customized = true
	it.SetLayout(bp, l)

	if err := e.store.Put(ctx, canvas); err != nil {
		return nil, err
	}
	e.logger.Debug("moved item", "canvas", canvasID, "item", itemID, "breakpoint", bp, "x", p.X, "y", p.Y)
	return l, nil
}

// ResizeItem sets an item's size at one breakpoint, clamping it to the item
// size limits and the canvas width, then re-clamping the position so the
// item stays inside the canvas. The breakpoint is marked customized.
func (e *Engine) ResizeItem(ctx context.Context, canvasID, itemID, bp string, width, height float64) (*grid.Layout, error) {
	canvas, it, err := e.loadItem(ctx, canvasID, itemID, bp)
	if err != nil {
		return nil, err
	}

	r, err := breakpoint.EffectiveLayout(it, bp, e.bps)
	if err != nil {
		return nil, err
	}
	l := r.Layout.Clone()

	sz := bounds.ConstrainSize(
		bounds.Size{Width: width, Height: height},
		minItemSize(), maxItemSize(),
		grid.CanvasWidthUnits)
	p := bounds.ConstrainPosition(l.XOr(0), l.YOr(0), sz.Size.Width, sz.Size.Height, grid.CanvasWidthUnits)

	l.X = grid.Unit(p.X)
	l.Y = grid.Unit(p.Y)
	l.Width = grid.Unit(sz.Size.Width)
	l.Height = grid.Unit(sz.Size.Height)
	l.Customized = true
	it.SetLayout(bp, l)

	if err := e.store.Put(ctx, canvas); err != nil {
		return nil, err
	}
	e.logger.Debug("resized item", "canvas", canvasID, "item", itemID, "breakpoint", bp, "width", sz.Size.Width, "height", sz.Size.Height)
	return l, nil
}

// RemoveItem deletes an item from a canvas. Removing an absent item is not
// an error.
func (e *Engine) RemoveItem(ctx context.Context, canvasID, itemID string) error {
	canvas, err := e.store.Get(ctx, canvasID)
	if err != nil {
		return err
	}
	if canvas == nil {
		return errors.New(errors.ErrCodeCanvasNotFound, "canvas %q not found", canvasID)
	}

	kept := canvas.Items[:0]
	for _, it := range canvas.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	canvas.Items = kept
	return e.store.Put(ctx, canvas)
}

func (e *Engine) loadItem(ctx context.Context, canvasID, itemID, bp string) (*grid.Canvas, *grid.Item, error) {
	if _, ok := e.bps[bp]; !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "unknown breakpoint %q", bp)
	}
	canvas, err := e.store.Get(ctx, canvasID)
	if err != nil {
		return nil, nil, err
	}
	if canvas == nil {
		return nil, nil, errors.New(errors.ErrCodeCanvasNotFound, "canvas %q not found", canvasID)
	}
	it := canvas.Item(itemID)
	if it == nil {
		return nil, nil, errors.New(errors.ErrCodeItemNotFound, "item %q not found on canvas %q", itemID, canvasID)
	}
	return canvas, it, nil
}
