// Package pkg provides the core libraries for gridbuilder canvas layout.
//
// # Overview
//
// Gridbuilder resolves the geometry of items on a responsive visual canvas:
// a 50-unit grid whose items can lay out differently per viewport
// breakpoint. The pkg directory is organized into three main areas:
//
//  1. Domain logic - grid model, breakpoint cascade, stacking, collision,
//     boundary constraints, and unit mapping
//  2. Infrastructure - canvas stores, configuration, errors, observability
//  3. Composition - the engine tying stores and algorithms together, plus
//     cascade visualization
//
// # Architecture
//
// The typical data flow through gridbuilder:
//
//	Viewport width
//	         ↓
//	    [breakpoint] package (viewport match + layout cascade)
//	         ↓
//	    [stack] package (vertical flow for stack-mode breakpoints)
//	         ↓
//	    [units] package (grid units → pixels)
//	         ↓
//	    Resolved item geometry
//
// Placement runs the other direction: [collision] finds free space,
// [bounds] clamps the result, and [breakpoint] initializes a layout per
// breakpoint.
//
// # Quick Start
//
// Place an item and resolve the canvas for a tablet viewport:
//
//	import (
//	    "context"
//	    "github.com/lucidworks/gridbuilder/pkg/engine"
//	    "github.com/lucidworks/gridbuilder/pkg/grid"
//	    "github.com/lucidworks/gridbuilder/pkg/store"
//	)
//
//	bps := grid.Breakpoints{
//	    "mobile":  {MinWidth: 0, Mode: grid.ModeStack},
//	    "desktop": {MinWidth: 1024},
//	}
//	eng, _ := engine.New(store.NewMemoryStore(), bps, engine.Options{})
//
//	it, _ := eng.PlaceItem(context.Background(), "landing", "hero", 20, 8)
//	res, _ := eng.ResolveCanvas(context.Background(), "landing", 768)
//	_ = it
//	_ = res
//
// # Main Packages
//
//   - [grid] - canvas, item, breakpoint, and layout types with validation
//   - [breakpoint] - viewport matching and the effective-layout cascade
//   - [stack] - auto-stack vertical flow
//   - [collision] - AABB overlap test and free-space search
//   - [bounds] - size and position clamping
//   - [units] - grid/pixel mapping with per-canvas caching
//   - [engine] - operation layer over a canvas store
//   - [store] - memory, file, Redis, and MongoDB canvas stores
//   - [config] - TOML configuration
//   - [vizgraph] - breakpoint cascade diagrams via Graphviz
package pkg
