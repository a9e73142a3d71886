// Package breakpoint matches viewport widths to breakpoints and resolves
// the effective layout of an item at a breakpoint.
//
// # Viewport matching
//
// Matching is mobile-first: breakpoints are scanned by MinWidth descending
// and the first whose MinWidth is at or below the viewport width wins. When
// no breakpoint qualifies, the smallest one is returned as a floor.
//
// # Effective layout resolution
//
// An item need not carry explicit geometry at every breakpoint. EffectiveLayout
// walks a priority cascade, first match wins:
//
//  1. Explicit customization: the target's own layout when Customized.
//  2. Stack-with-reference: a stack-mode target with any geometry returns its
//     own layout, paired with the nearest customized breakpoint as source.
//     The source is informational: it tells the auto-stack calculator which
//     breakpoint's geometry defines visual ordering and per-item heights.
//  3. Inheritance: an inherit-mode target re-targets to its InheritFrom
//     breakpoint. The walk is iterative with a visited set; a cyclic chain
//     returns a CYCLE_DETECTED error naming the cycle instead of recursing
//     until the stack overflows.
//  4. Nearest customized: the customized breakpoint whose MinWidth is
//     closest to the target's.
//  5. Global fallback: the largest breakpoint's layout.
//
// The largest breakpoint always behaves as manual regardless of its
// configured mode; it is the ultimate fallback target of the cascade.
package breakpoint
