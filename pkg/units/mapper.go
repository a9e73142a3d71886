// Package units converts between pixel space and grid-unit space.
//
// The canvas has two independently scaled axes. The horizontal grid unit is
// responsive: a fixed percentage of the live container width, clamped to a
// pixel range so items stay usable on very narrow or very wide containers.
// The vertical grid unit is a fixed pixel size, independent of any container.
//
// Conversions round to the nearest whole pixel or unit. They are lossy on
// purpose: grid snapping downstream relies on this rounding, not on exact
// inverses.
package units

import (
	"math"
	"sync"
)

// Default conversion parameters.
const (
	// DefaultHorizontalPercent is the horizontal grid unit as a fraction of
	// container width: 0.02 means 50 units span the full width.
	DefaultHorizontalPercent = 0.02

	// DefaultMinHorizontalPx is the lower clamp for the horizontal unit.
	DefaultMinHorizontalPx = 10.0

	// DefaultMaxHorizontalPx is the upper clamp for the horizontal unit.
	DefaultMaxHorizontalPx = 50.0

	// DefaultVerticalPx is the fixed vertical grid unit in pixels.
	DefaultVerticalPx = 20.0

	// minMeasurableWidthPx guards against transient zero-width container
	// readings during layout changes: anything below this is treated as
	// "not yet measurable" and never cached.
	minMeasurableWidthPx = 1.0
)

// Options configures a Mapper. Zero values fall back to the package defaults.
type Options struct {
	HorizontalPercent float64 `json:"horizontal_percent,omitempty"`
	MinHorizontalPx   float64 `json:"min_horizontal_px,omitempty"`
	MaxHorizontalPx   float64 `json:"max_horizontal_px,omitempty"`
	VerticalPx        float64 `json:"vertical_px,omitempty"`
}

// Mapper converts between pixels and grid units along both axes.
// The zero value is not usable; construct with New.
type Mapper struct {
	percent    float64
	minPx      float64
	maxPx      float64
	verticalPx float64
}

// New creates a Mapper, applying defaults for any unset option.
func New(opts Options) *Mapper {
	m := &Mapper{
		percent:    opts.HorizontalPercent,
		minPx:      opts.MinHorizontalPx,
		maxPx:      opts.MaxHorizontalPx,
		verticalPx: opts.VerticalPx,
	}
	if m.percent == 0 {
		m.percent = DefaultHorizontalPercent
	}
	if m.minPx == 0 {
		m.minPx = DefaultMinHorizontalPx
	}
	if m.maxPx == 0 {
		m.maxPx = DefaultMaxHorizontalPx
	}
	if m.verticalPx == 0 {
		m.verticalPx = DefaultVerticalPx
	}
	return m
}

// HorizontalUnitPx returns the horizontal grid unit in pixels for a container
// of the given width: containerWidthPx * percent, clamped to [minPx, maxPx].
// Widths below the measurable threshold return 0 so that transient zero-width
// layout states never produce a bogus unit size.
func (m *Mapper) HorizontalUnitPx(containerWidthPx float64) float64 {
	if containerWidthPx < minMeasurableWidthPx {
		return 0
	}
	unit := containerWidthPx * m.percent
	if unit < m.minPx {
		unit = m.minPx
	}
	if unit > m.maxPx {
		unit = m.maxPx
	}
	return unit
}

// VerticalUnitPx returns the fixed vertical grid unit in pixels.
func (m *Mapper) VerticalUnitPx() float64 {
	return m.verticalPx
}

// ToPixelsX converts horizontal grid units to pixels for the given container
// width, rounded to the nearest pixel.
func (m *Mapper) ToPixelsX(units, containerWidthPx float64) float64 {
	return ToPixels(units, m.HorizontalUnitPx(containerWidthPx))
}

// ToGridUnitsX converts horizontal pixels to grid units for the given
// container width, rounded to the nearest unit. Returns 0 while the
// container is not yet measurable.
func (m *Mapper) ToGridUnitsX(px, containerWidthPx float64) float64 {
	return ToGridUnits(px, m.HorizontalUnitPx(containerWidthPx))
}

// ToPixelsY converts vertical grid units to pixels.
func (m *Mapper) ToPixelsY(units float64) float64 {
	return ToPixels(units, m.verticalPx)
}

// ToGridUnitsY converts vertical pixels to grid units.
func (m *Mapper) ToGridUnitsY(px float64) float64 {
	return ToGridUnits(px, m.verticalPx)
}

// ToPixels converts grid units to pixels at the given unit size, rounding to
// the nearest pixel.
func ToPixels(units, unitPx float64) float64 {
	return math.Round(units * unitPx)
}

// ToGridUnits converts pixels to grid units at the given unit size, rounding
// to the nearest unit. A zero unit size returns 0 rather than dividing by
// zero; this happens while a container has not been measured yet.
func ToGridUnits(px, unitPx float64) float64 {
	if unitPx == 0 {
		return 0
	}
	return math.Round(px / unitPx)
}

// =============================================================================
// SizeCache - Per-Canvas Unit Size Cache
// =============================================================================

// SizeCache memoizes the horizontal unit size per canvas so that repeated
// conversions during a render pass do not recompute the clamp. The cache is
// an explicit object owned by the caller, not hidden process state: callers
// invalidate it when the container resizes and may pre-populate it when they
// already know a fresh width.
type SizeCache struct {
	mu sync.RWMutex
	px map[string]float64
}

// NewSizeCache creates an empty size cache.
func NewSizeCache() *SizeCache {
	return &SizeCache{px: map[string]float64{}}
}

// Get returns the cached unit size for a canvas.
func (c *SizeCache) Get(canvasID string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.px[canvasID]
	return v, ok
}

// Put stores a unit size for a canvas. Non-positive values are rejected so a
// zero-width reading can never poison the cache.
func (c *SizeCache) Put(canvasID string, unitPx float64) {
	if unitPx <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.px[canvasID] = unitPx
}

// Invalidate drops the cached value for a canvas. Callers must invalidate on
// container resize and on canvas teardown.
func (c *SizeCache) Invalidate(canvasID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.px, canvasID)
}

// Reset drops every cached value.
func (c *SizeCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.px = map[string]float64{}
}

// CachedHorizontalUnitPx returns the horizontal unit size for a canvas,
// consulting the cache first. A successful (measurable) computation is
// cached; an unmeasurable width returns 0 and leaves the cache untouched.
func (m *Mapper) CachedHorizontalUnitPx(cache *SizeCache, canvasID string, containerWidthPx float64) float64 {
	if cache != nil {
		if v, ok := cache.Get(canvasID); ok {
			return v
		}
	}
	unit := m.HorizontalUnitPx(containerWidthPx)
	if unit > 0 && cache != nil {
		cache.Put(canvasID, unit)
	}
	return unit
}
