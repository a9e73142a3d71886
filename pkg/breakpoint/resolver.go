package breakpoint

import (
	"math"
	"strings"

	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
)

// DefaultStackHeight is the height fallback, in grid units, used when a
// stack placeholder is initialized from a base layout without a height.
const DefaultStackHeight = 6.0

// ViewportForWidth returns the breakpoint matching a viewport width in
// pixels: the one with the greatest MinWidth at or below the width. When no
// breakpoint qualifies, the smallest breakpoint is returned. An empty
// breakpoint set is a programming error and fails loudly.
func ViewportForWidth(width float64, bps grid.Breakpoints) (string, error) {
	if len(bps) == 0 {
		return "", errors.New(errors.ErrCodeInvalidBreakpoints, "breakpoint config must not be empty")
	}

	names := bps.Names()
	for _, name := range names {
		if bps[name].MinWidth <= width {
			return name, nil
		}
	}
	return names[len(names)-1], nil
}

// Resolved is the outcome of an effective-layout resolution.
type Resolved struct {
	// Layout is the geometry satisfying the request. It aliases the item's
	// stored layout; callers that mutate must Clone first.
	Layout *grid.Layout

	// Source names the breakpoint whose geometry satisfied the request.
	// It may differ from the requested target: for stack-mode targets it
	// identifies the breakpoint that defines visual ordering.
	Source string
}

// EffectiveLayout resolves the layout an item renders with at the target
// breakpoint, walking the priority cascade documented on the package.
//
// The walk is iterative: inherit re-targeting is followed with a visited
// set, and a cyclic InheritFrom chain yields a CYCLE_DETECTED error naming
// the chain. Acyclic chains of any depth terminate.
func EffectiveLayout(it *grid.Item, target string, bps grid.Breakpoints) (Resolved, error) {
	if len(bps) == 0 {
		return Resolved{}, errors.New(errors.ErrCodeInvalidBreakpoints, "breakpoint config must not be empty")
	}
	if _, ok := bps[target]; !ok {
		return Resolved{}, errors.New(errors.ErrCodeInvalidInput, "unknown breakpoint %q", target)
	}

	largest := bps.Largest()
	visited := map[string]bool{}
	chain := []string{}
	current := target

	for {
		if visited[current] {
			chain = append(chain, current)
			return Resolved{}, errors.New(errors.ErrCodeCycleDetected,
				"inherit cycle: %s", strings.Join(chain, " -> "))
		}
		visited[current] = true
		chain = append(chain, current)

		bp := bps[current]
		layout := it.Layout(current)

		// 1. Explicit customization wins outright.
		if layout != nil && layout.Customized {
			return Resolved{Layout: layout, Source: current}, nil
		}

		// The largest breakpoint always behaves as manual: it is the
		// ultimate fallback target, so stack and inherit do not apply.
		mode := bp.EffectiveMode()
		if current == largest {
			mode = grid.ModeManual
		}

		// 2. Stack-with-reference: the stack placeholder renders as-is,
		// but the source points at the geometry that defines ordering.
		if mode == grid.ModeStack && layout.HasGeometry() {
			source := nearestCustomized(it, bps, current)
			if source == "" {
				source = largest
			}
			return Resolved{Layout: layout, Source: source}, nil
		}

		// 3. Inheritance re-targets the walk.
		if mode == grid.ModeInherit && bp.InheritFrom != "" {
			if _, ok := bps[bp.InheritFrom]; ok {
				if it.Layout(bp.InheritFrom) != nil {
					current = bp.InheritFrom
					continue
				}
			}
		}

		// 4. Nearest customized breakpoint.
		if source := nearestCustomized(it, bps, current); source != "" {
			return Resolved{Layout: it.Layout(source), Source: source}, nil
		}

		// 5. Global fallback: the largest breakpoint.
		return Resolved{Layout: it.Layout(largest), Source: largest}, nil
	}
}

// nearestCustomized returns the breakpoint whose own layout is customized
// and whose MinWidth is closest (absolute difference) to the target's.
// Candidates are scanned in the deterministic Names order, so ties go to the
// larger breakpoint. Returns "" when no customized breakpoint exists.
func nearestCustomized(it *grid.Item, bps grid.Breakpoints, target string) string {
	targetWidth := bps[target].MinWidth

	best := ""
	bestDist := math.Inf(1)
	for _, name := range bps.Names() {
		l := it.Layout(name)
		if l == nil || !l.Customized {
			continue
		}
		dist := math.Abs(bps[name].MinWidth - targetWidth)
		if dist < bestDist {
			best = name
			bestDist = dist
		}
	}
	return best
}

// InitializeLayouts produces one layout entry per breakpoint from a base
// layout assumed to be the user's intended geometry. The largest breakpoint
// receives the base marked customized; every other breakpoint receives a
// mode-appropriate derived entry marked not customized:
//
//   - stack: a full-width placeholder at the origin carrying the base height
//   - inherit: an all-nil placeholder that defers to the cascade
//   - manual: a copy of the base geometry
func InitializeLayouts(bps grid.Breakpoints, base *grid.Layout) (map[string]*grid.Layout, error) {
	if len(bps) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidBreakpoints, "breakpoint config must not be empty")
	}
	if base == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "base layout must not be nil")
	}

	largest := bps.Largest()
	layouts := make(map[string]*grid.Layout, len(bps))

	for name, bp := range bps {
		if name == largest {
			l := base.Clone()
			l.Customized = true
			layouts[name] = l
			continue
		}

		switch bp.EffectiveMode() {
		case grid.ModeStack:
			layouts[name] = &grid.Layout{
				X:      grid.Unit(0),
				Y:      grid.Unit(0),
				Width:  grid.Unit(grid.CanvasWidthUnits),
				Height: grid.Unit(base.HeightOr(DefaultStackHeight)),
			}
		case grid.ModeInherit:
			layouts[name] = grid.EmptyLayout()
		default:
			l := base.Clone()
			l.Customized = false
			layouts[name] = l
		}
	}

	return layouts, nil
}
