package engine

import (
	"context"
	"time"

	"github.com/lucidworks/gridbuilder/pkg/breakpoint"
	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/observability"
	"github.com/lucidworks/gridbuilder/pkg/stack"
)

// ResolvedItem is one item's geometry at the resolved viewport.
type ResolvedItem struct {
	ItemID string       `json:"item_id"`
	Type   string       `json:"type"`
	ZIndex int          `json:"z_index"`
	Layout *grid.Layout `json:"layout"`

	// Source names the breakpoint whose stored geometry satisfied the
	// resolution. It may differ from the viewport breakpoint.
	Source string `json:"source"`
}

// Resolution is the outcome of resolving a canvas for a viewport width.
type Resolution struct {
	CanvasID      string         `json:"canvas_id"`
	Viewport      string         `json:"viewport"`
	ViewportWidth float64        `json:"viewport_width"`
	Items         []ResolvedItem `json:"items"`
}

// ResolveViewport returns the breakpoint matching a viewport width:
// the breakpoint with the greatest MinWidth not exceeding the width, or the
// smallest breakpoint when none qualifies.
func (e *Engine) ResolveViewport(width float64) (string, error) {
	return breakpoint.ViewportForWidth(width, e.bps)
}

// ResolveCanvas computes the effective geometry of every item on a canvas
// for the given viewport width. A missing canvas resolves to an empty item
// list, not an error.
//
// Items on a stack-mode viewport flow vertically: each gets a full-width
// layout whose y position is the summed height of the items above it in
// visual order. The largest breakpoint never stacks.
func (e *Engine) ResolveCanvas(ctx context.Context, canvasID string, viewportWidth float64) (*Resolution, error) {
	viewport, err := e.ResolveViewport(viewportWidth)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		CanvasID:      canvasID,
		Viewport:      viewport,
		ViewportWidth: viewportWidth,
	}

	canvas, err := e.store.Get(ctx, canvasID)
	if err != nil {
		return nil, err
	}
	if canvas == nil || len(canvas.Items) == 0 {
		return res, nil
	}

	start := time.Now()
	observability.Resolve().OnResolveStart(ctx, canvasID, len(canvas.Items))

	stacking := viewport != e.bps.Largest() && e.bps[viewport].EffectiveMode() == grid.ModeStack

	for _, it := range canvas.Items {
		r, err := breakpoint.EffectiveLayout(it, viewport, e.bps)
		if err != nil {
			observability.Resolve().OnResolveComplete(ctx, canvasID, viewport, time.Since(start), err)
			return nil, err
		}

		layout := r.Layout.Clone()
		if stacking {
			layout = stack.AutoStackLayoutWith(it, canvas.Items, r.Source, e.opts.StackItemHeight)
		}
		res.Items = append(res.Items, ResolvedItem{
			ItemID: it.ID,
			Type:   it.Type,
			ZIndex: it.ZIndex,
			Layout: layout,
			Source: r.Source,
		})
	}

	observability.Resolve().OnResolveComplete(ctx, canvasID, viewport, time.Since(start), nil)
	e.logger.Debug("resolved canvas",
		"canvas", canvasID,
		"viewport", viewport,
		"items", len(res.Items),
		"duration", time.Since(start))
	return res, nil
}

// CanvasHeightPx returns the canvas's rendered height in pixels for a
// viewport width: the lowest resolved bottom edge plus the bottom margin,
// converted through the vertical unit size. A missing or empty canvas has
// height 0.
func (e *Engine) CanvasHeightPx(ctx context.Context, canvasID string, viewportWidth float64) (float64, error) {
	res, err := e.ResolveCanvas(ctx, canvasID, viewportWidth)
	if err != nil {
		return 0, err
	}
	if len(res.Items) == 0 {
		return 0, nil
	}

	maxBottom := 0.0
	for _, it := range res.Items {
		if b := it.Layout.YOr(0) + it.Layout.HeightOr(0); b > maxBottom {
			maxBottom = b
		}
	}
	return e.mapper.ToPixelsY(maxBottom + e.opts.BottomMargin), nil
}
