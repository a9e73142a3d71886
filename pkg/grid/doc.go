// Package grid defines the data model for the canvas layout engine.
//
// A canvas is a vertical surface measured in grid units: 50 units span the
// full canvas width, while height grows without bound. Items are rectangles
// positioned in grid units, with one layout entry per configured breakpoint.
//
// # Breakpoints
//
// Breakpoints map viewport widths to layout strategies. Each breakpoint has a
// minimum pixel width and a layout mode:
//   - manual: the breakpoint carries independent geometry
//   - stack: items flow vertically at full width
//   - inherit: geometry is borrowed from another breakpoint
//
// The breakpoint with the greatest MinWidth is the ultimate fallback target
// and always behaves as manual, regardless of its configured mode.
//
// # Layouts
//
// Layout fields are nullable: a nil coordinate means "not yet resolved" and
// falls through the resolution cascade (see package breakpoint). The
// Customized flag records whether a user explicitly set the geometry, which
// drives resolution priority.
//
// # Validation
//
// Breakpoints.Validate enforces structural invariants (non-empty set, unique
// MinWidth values, acyclic inherit references) with typed errors.
// ValidateLayout reports out-of-range geometry as a list of human-readable
// messages and never mutates or repairs data.
package grid
