// Package engine composes the layout algorithms into the operations the CLI
// and HTTP API expose: viewport matching, canvas resolution, item placement,
// and geometry edits.
//
// # Architecture
//
// An Engine owns four collaborators:
//
//  1. A store.CanvasStore for canvas persistence
//  2. A grid.Breakpoints set defining the responsive thresholds
//  3. A units.Mapper (plus units.SizeCache) for grid/pixel conversion
//  4. The placement tunables (margins, scan bound, stack height)
//
// The Engine is stateless apart from the store and the unit-size cache.
// Multiple goroutines can safely share one Engine.
//
// # Usage
//
// Create an engine and resolve a canvas:
//
//	eng, err := engine.New(store.NewMemoryStore(), bps, engine.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := eng.ResolveCanvas(ctx, "landing-page", 1280)
//	for _, it := range res.Items {
//	    fmt.Println(it.ItemID, it.Layout.XOr(0), it.Layout.YOr(0))
//	}
package engine

import (
	"github.com/charmbracelet/log"

	"github.com/lucidworks/gridbuilder/pkg/collision"
	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/stack"
	"github.com/lucidworks/gridbuilder/pkg/store"
	"github.com/lucidworks/gridbuilder/pkg/units"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultStackItemHeight is the fallback height for auto-stacked items.
	DefaultStackItemHeight = stack.DefaultItemHeight

	// DefaultBottomMargin is added below the lowest item when computing
	// canvas height.
	DefaultBottomMargin = 5.0
)

// =============================================================================
// Options - Engine Configuration
// =============================================================================

// Options contains all engine tunables.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Units configures grid/pixel conversion.
	Units units.Options `json:"units,omitempty"`

	// Search configures the free-space placement search.
	Search collision.SearchOptions `json:"search,omitempty"`

	// StackItemHeight is the fallback height for auto-stacked items.
	StackItemHeight float64 `json:"stack_item_height,omitempty"`

	// BottomMargin is added below the lowest item when computing canvas
	// height.
	BottomMargin float64 `json:"bottom_margin,omitempty"`

	// Logger receives structured engine logs. Defaults to log.Default().
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks ranges and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.StackItemHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "stack item height must not be negative, got %g", o.StackItemHeight)
	}
	if o.StackItemHeight == 0 {
		o.StackItemHeight = DefaultStackItemHeight
	}
	if o.BottomMargin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bottom margin must not be negative, got %g", o.BottomMargin)
	}
	if o.BottomMargin == 0 {
		o.BottomMargin = DefaultBottomMargin
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	o.validated = true
	return nil
}

// =============================================================================
// Engine
// =============================================================================

// Engine executes layout operations against a canvas store.
type Engine struct {
	store  store.CanvasStore
	bps    grid.Breakpoints
	mapper *units.Mapper
	sizes  *units.SizeCache
	opts   Options
	logger *log.Logger
}

// New creates an engine for the given store and breakpoint set.
// If st is nil, an in-memory store is used.
func New(st store.CanvasStore, bps grid.Breakpoints, opts Options) (*Engine, error) {
	if err := bps.Validate(); err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Engine{
		store:  st,
		bps:    bps,
		mapper: units.New(opts.Units),
		sizes:  units.NewSizeCache(),
		opts:   opts,
		logger: opts.Logger,
	}, nil
}

// Breakpoints returns the engine's breakpoint set.
func (e *Engine) Breakpoints() grid.Breakpoints {
	return e.bps
}

// Mapper returns the engine's unit mapper.
func (e *Engine) Mapper() *units.Mapper {
	return e.mapper
}

// Store returns the engine's canvas store.
func (e *Engine) Store() store.CanvasStore {
	return e.store
}

// UnitSizePx returns the horizontal grid unit size for a rendered canvas,
// lazily caching measurable container widths per canvas.
func (e *Engine) UnitSizePx(canvasID string, containerWidthPx float64) float64 {
	return e.mapper.CachedHorizontalUnitPx(e.sizes, canvasID, containerWidthPx)
}

// InvalidateUnitSize drops the cached unit size for a canvas, forcing a
// recompute on the next measurable read. Call after a container resize.
func (e *Engine) InvalidateUnitSize(canvasID string) {
	e.sizes.Invalidate(canvasID)
}
