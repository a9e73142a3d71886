package grid

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lucidworks/gridbuilder/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Canvas geometry in grid units.
const (
	// CanvasWidthUnits is the fixed canvas width: 50 units = 100% width.
	CanvasWidthUnits = 50.0

	// MinItemWidth is the smallest allowed item width in grid units.
	MinItemWidth = 1.0

	// MaxItemWidth is the largest allowed item width (full canvas).
	MaxItemWidth = 50.0

	// MinItemHeight is the smallest allowed item height in grid units.
	MinItemHeight = 1.0

	// MaxItemHeight is a generous validation ceiling; canvas height itself
	// is unbounded and grows to fit content.
	MaxItemHeight = 100.0
)

// LayoutMode is the per-breakpoint layout strategy.
type LayoutMode string

// Layout modes.
const (
	// ModeManual gives the breakpoint independent geometry.
	ModeManual LayoutMode = "manual"

	// ModeStack flows items vertically at full canvas width.
	ModeStack LayoutMode = "stack"

	// ModeInherit borrows geometry from another breakpoint.
	ModeInherit LayoutMode = "inherit"
)

// =============================================================================
// Breakpoint - Named Viewport Threshold
// =============================================================================

// Breakpoint is a named viewport threshold with an associated layout strategy.
type Breakpoint struct {
	// MinWidth is the minimum viewport width in pixels at which this
	// breakpoint matches. Values must be unique within a Breakpoints set.
	MinWidth float64 `json:"min_width" bson:"min_width"`

	// Mode is the layout strategy. Empty defaults to manual.
	Mode LayoutMode `json:"mode,omitempty" bson:"mode,omitempty"`

	// InheritFrom names the breakpoint to borrow geometry from when Mode is
	// inherit. Must reference a different, existing breakpoint.
	InheritFrom string `json:"inherit_from,omitempty" bson:"inherit_from,omitempty"`
}

// EffectiveMode returns the layout mode, defaulting to manual when unset.
func (b Breakpoint) EffectiveMode() LayoutMode {
	if b.Mode == "" {
		return ModeManual
	}
	return b.Mode
}

// Breakpoints maps breakpoint names to their configuration.
// Map insertion order is irrelevant; all ordered operations sort explicitly.
type Breakpoints map[string]Breakpoint

// Names returns all breakpoint names sorted by MinWidth descending.
// Equal MinWidth values (invalid, but tolerated here) tie-break by name so
// iteration stays deterministic.
func (bps Breakpoints) Names() []string {
	names := make([]string, 0, len(bps))
	for name := range bps {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := bps[names[i]], bps[names[j]]
		if a.MinWidth != b.MinWidth {
			return a.MinWidth > b.MinWidth
		}
		return names[i] < names[j]
	})
	return names
}

// Largest returns the name of the breakpoint with the greatest MinWidth.
// This breakpoint is the ultimate fallback target and always behaves as
// manual regardless of its configured mode. Empty set returns "".
func (bps Breakpoints) Largest() string {
	names := bps.Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// Smallest returns the name of the breakpoint with the smallest MinWidth.
// Empty set returns "".
func (bps Breakpoints) Smallest() string {
	names := bps.Names()
	if len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}

// Validate checks the structural invariants of the breakpoint set:
// non-empty, unique MinWidth values, and inherit references that name a
// different, existing breakpoint without forming a cycle.
func (bps Breakpoints) Validate() error {
	if len(bps) == 0 {
		return errors.New(errors.ErrCodeInvalidBreakpoints, "breakpoint config must not be empty")
	}

	seen := make(map[float64]string, len(bps))
	for _, name := range bps.Names() {
		bp := bps[name]
		if other, ok := seen[bp.MinWidth]; ok {
			return errors.New(errors.ErrCodeInvalidBreakpoints,
				"breakpoints %q and %q share min_width %g", other, name, bp.MinWidth)
		}
		seen[bp.MinWidth] = name

		switch bp.EffectiveMode() {
		case ModeManual, ModeStack:
		case ModeInherit:
			if bp.InheritFrom == "" {
				return errors.New(errors.ErrCodeInvalidBreakpoints,
					"breakpoint %q uses inherit mode without inherit_from", name)
			}
			if bp.InheritFrom == name {
				return errors.New(errors.ErrCodeInvalidBreakpoints,
					"breakpoint %q inherits from itself", name)
			}
			if _, ok := bps[bp.InheritFrom]; !ok {
				return errors.New(errors.ErrCodeInvalidBreakpoints,
					"breakpoint %q inherits from unknown breakpoint %q", name, bp.InheritFrom)
			}
		default:
			return errors.New(errors.ErrCodeInvalidBreakpoints,
				"breakpoint %q has unknown mode %q", name, bp.Mode)
		}
	}

	return bps.checkCycles()
}

// checkCycles walks every inherit chain with a visited set.
func (bps Breakpoints) checkCycles() error {
	for _, start := range bps.Names() {
		visited := map[string]bool{}
		chain := []string{start}
		current := start
		for {
			bp, ok := bps[current]
			if !ok || bp.EffectiveMode() != ModeInherit {
				break
			}
			if visited[current] {
				return errors.New(errors.ErrCodeCycleDetected,
					"inherit cycle: %s", strings.Join(chain, " -> "))
			}
			visited[current] = true
			current = bp.InheritFrom
			chain = append(chain, current)
		}
	}
	return nil
}

// =============================================================================
// Layout - Per-Breakpoint Geometry
// =============================================================================

// Layout holds an item's geometry at one breakpoint, in grid units.
// Nil fields mean "not yet resolved": they fall through the resolution
// cascade instead of carrying a value.
type Layout struct {
	X      *float64 `json:"x" bson:"x"`
	Y      *float64 `json:"y" bson:"y"`
	Width  *float64 `json:"width" bson:"width"`
	Height *float64 `json:"height" bson:"height"`

	// Customized records that a user explicitly set this geometry, which
	// gives it top priority in the resolution cascade.
	Customized bool `json:"customized" bson:"customized"`
}

// Unit wraps a grid-unit value for use in a Layout field.
func Unit(v float64) *float64 { return &v }

// NewLayout builds a fully resolved layout.
func NewLayout(x, y, width, height float64, customized bool) *Layout {
	return &Layout{
		X:          Unit(x),
		Y:          Unit(y),
		Width:      Unit(width),
		Height:     Unit(height),
		Customized: customized,
	}
}

// EmptyLayout builds an all-nil layout (inherit placeholder).
func EmptyLayout() *Layout { return &Layout{} }

// HasGeometry reports whether at least one coordinate field is set.
func (l *Layout) HasGeometry() bool {
	if l == nil {
		return false
	}
	return l.X != nil || l.Y != nil || l.Width != nil || l.Height != nil
}

// Clone returns a deep copy of the layout. Nil stays nil.
func (l *Layout) Clone() *Layout {
	if l == nil {
		return nil
	}
	c := &Layout{Customized: l.Customized}
	if l.X != nil {
		c.X = Unit(*l.X)
	}
	if l.Y != nil {
		c.Y = Unit(*l.Y)
	}
	if l.Width != nil {
		c.Width = Unit(*l.Width)
	}
	if l.Height != nil {
		c.Height = Unit(*l.Height)
	}
	return c
}

// XOr returns X or def when unset.
func (l *Layout) XOr(def float64) float64 {
	if l == nil || l.X == nil {
		return def
	}
	return *l.X
}

// YOr returns Y or def when unset.
func (l *Layout) YOr(def float64) float64 {
	if l == nil || l.Y == nil {
		return def
	}
	return *l.Y
}

// WidthOr returns Width or def when unset.
func (l *Layout) WidthOr(def float64) float64 {
	if l == nil || l.Width == nil {
		return def
	}
	return *l.Width
}

// HeightOr returns Height or def when unset.
func (l *Layout) HeightOr(def float64) float64 {
	if l == nil || l.Height == nil {
		return def
	}
	return *l.Height
}

// =============================================================================
// Item - Positioned Canvas Element
// =============================================================================

// Item is a rectangular element placed on a canvas.
// Layouts holds one entry per breakpoint; missing entries fall back through
// the resolution cascade. Config is an opaque payload the engine never
// interprets.
type Item struct {
	ID       string             `json:"id" bson:"id"`
	CanvasID string             `json:"canvas_id" bson:"canvas_id"`
	Type     string             `json:"type" bson:"type"`
	ZIndex   int                `json:"z_index" bson:"z_index"`
	Layouts  map[string]*Layout `json:"layouts" bson:"layouts"`
	Config   map[string]any     `json:"config,omitempty" bson:"config,omitempty"`
}

// NewItem creates an item with a fresh UUID and an empty layout map.
func NewItem(canvasID, itemType string) *Item {
	return &Item{
		ID:       uuid.NewString(),
		CanvasID: canvasID,
		Type:     itemType,
		Layouts:  map[string]*Layout{},
	}
}

// Layout returns the layout entry for a breakpoint, or nil if absent.
func (it *Item) Layout(breakpoint string) *Layout {
	if it == nil || it.Layouts == nil {
		return nil
	}
	return it.Layouts[breakpoint]
}

// SetLayout writes a layout entry, allocating the map if needed.
func (it *Item) SetLayout(breakpoint string, l *Layout) {
	if it.Layouts == nil {
		it.Layouts = map[string]*Layout{}
	}
	it.Layouts[breakpoint] = l
}

// =============================================================================
// Canvas - Ordered Item Collection
// =============================================================================

// Canvas is an ordered collection of items. Width is fixed at
// CanvasWidthUnits; height grows to fit content.
type Canvas struct {
	ID            string  `json:"id" bson:"id"`
	Items         []*Item `json:"items" bson:"items"`
	ZIndexCounter int     `json:"z_index_counter" bson:"z_index_counter"`
}

// NewCanvas creates an empty canvas.
func NewCanvas(id string) *Canvas {
	return &Canvas{ID: id}
}

// Item returns the item with the given ID, or nil if absent.
func (c *Canvas) Item(id string) *Item {
	if c == nil {
		return nil
	}
	for _, it := range c.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// AddItem appends an item and assigns it the next z-index.
func (c *Canvas) AddItem(it *Item) {
	c.ZIndexCounter++
	it.ZIndex = c.ZIndexCounter
	c.Items = append(c.Items, it)
}

// MaxBottom returns the greatest y+height over all item layouts at the given
// breakpoint, in grid units. Items without a layout entry at the breakpoint
// are skipped. An empty canvas returns 0.
func (c *Canvas) MaxBottom(breakpoint string) float64 {
	if c == nil {
		return 0
	}
	bottom := 0.0
	for _, it := range c.Items {
		l := it.Layout(breakpoint)
		if l == nil {
			continue
		}
		b := l.YOr(0) + l.HeightOr(0)
		bottom = math.Max(bottom, b)
	}
	return bottom
}
