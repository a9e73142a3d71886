// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about layout resolution, item placement, and
// canvas store operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResolveHooks(&myResolveHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Resolve().OnResolveStart(ctx, canvasID, itemCount)
//	// ... resolve layouts ...
//	observability.Resolve().OnResolveComplete(ctx, canvasID, viewport, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives events from layout resolution.
type ResolveHooks interface {
	// OnResolveStart records the beginning of a canvas resolution pass.
	OnResolveStart(ctx context.Context, canvasID string, itemCount int)

	// OnResolveComplete records the end of a canvas resolution pass,
	// including the matched viewport breakpoint.
	OnResolveComplete(ctx context.Context, canvasID, viewport string, duration time.Duration, err error)
}

// =============================================================================
// Placement Hooks
// =============================================================================

// PlacementHooks receives events from item placement.
type PlacementHooks interface {
	// OnPlacementStart records a free-space search for a new item.
	OnPlacementStart(ctx context.Context, canvasID string, width, height float64)

	// OnPlacementComplete records the placement outcome. adjusted is true
	// when boundary constraints changed the requested geometry.
	OnPlacementComplete(ctx context.Context, canvasID string, adjusted bool, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from canvas store operations.
type StoreHooks interface {
	// OnStoreGet records a canvas load. found is false for absent canvases.
	OnStoreGet(ctx context.Context, backend, canvasID string, found bool)

	// OnStorePut records a canvas write.
	OnStorePut(ctx context.Context, backend, canvasID string)

	// OnStoreError records a storage failure.
	OnStoreError(ctx context.Context, backend, op string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolveStart(context.Context, string, int) {}
func (NoopResolveHooks) OnResolveComplete(context.Context, string, string, time.Duration, error) {
}

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnPlacementStart(context.Context, string, float64, float64) {}
func (NoopPlacementHooks) OnPlacementComplete(context.Context, string, bool, time.Duration, error) {
}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreGet(context.Context, string, string, bool) {}
func (NoopStoreHooks) OnStorePut(context.Context, string, string)       {}
func (NoopStoreHooks) OnStoreError(context.Context, string, string, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resolveHooks   ResolveHooks   = NoopResolveHooks{}
	placementHooks PlacementHooks = NoopPlacementHooks{}
	storeHooks     StoreHooks     = NoopStoreHooks{}
	hooksMu        sync.RWMutex
)

// SetResolveHooks registers custom resolve hooks.
// This should be called once at application startup before any resolution.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup before any placement.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store access.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resolveHooks = NoopResolveHooks{}
	placementHooks = NoopPlacementHooks{}
	storeHooks = NoopStoreHooks{}
}
