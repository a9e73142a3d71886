package grid

import (
	"fmt"
	"math"
	"sort"
)

// ValidateLayout checks a layout's geometry against the canvas invariants
// and returns a list of human-readable messages, one per violation. Nil
// fields are legal (unresolved) and produce no message. The layout is never
// mutated or repaired; callers decide whether to reject or log-and-proceed.
//
// Invariants checked, per field when set:
//   - all values finite
//   - x >= 0, y >= 0
//   - 1 <= width <= 50
//   - 1 <= height <= 100
func ValidateLayout(l *Layout) []string {
	if l == nil {
		return nil
	}

	var msgs []string

	check := func(name string, p *float64, min, max float64) {
		if p == nil {
			return
		}
		v := *p
		if math.IsNaN(v) || math.IsInf(v, 0) {
			msgs = append(msgs, fmt.Sprintf("%s must be a finite number, got %v", name, v))
			return
		}
		if v < min {
			msgs = append(msgs, fmt.Sprintf("%s must be at least %g, got %g", name, min, v))
		}
		if v > max {
			msgs = append(msgs, fmt.Sprintf("%s must be at most %g, got %g", name, max, v))
		}
	}

	check("x", l.X, 0, math.MaxFloat64)
	check("y", l.Y, 0, math.MaxFloat64)
	check("width", l.Width, MinItemWidth, MaxItemWidth)
	check("height", l.Height, MinItemHeight, MaxItemHeight)

	return msgs
}

// ValidateItem validates every layout entry of an item. Messages are
// prefixed with the breakpoint name so a caller can report them directly.
func ValidateItem(it *Item) []string {
	if it == nil {
		return nil
	}

	var msgs []string
	for _, name := range sortedLayoutNames(it) {
		for _, msg := range ValidateLayout(it.Layouts[name]) {
			msgs = append(msgs, fmt.Sprintf("%s: %s", name, msg))
		}
	}
	return msgs
}

// ValidateCanvas validates every item on a canvas. Messages are prefixed
// with the item ID.
func ValidateCanvas(c *Canvas) []string {
	if c == nil {
		return nil
	}

	var msgs []string
	for _, it := range c.Items {
		for _, msg := range ValidateItem(it) {
			msgs = append(msgs, fmt.Sprintf("item %s: %s", it.ID, msg))
		}
	}
	return msgs
}

// sortedLayoutNames returns an item's layout keys in lexical order so that
// validation output is deterministic.
func sortedLayoutNames(it *Item) []string {
	names := make([]string, 0, len(it.Layouts))
	for name := range it.Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
