// Package store provides persistence backends for canvas documents.
//
// This package defines the CanvasStore interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI workflows
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable document persistence
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.config/gridbuilder/canvases/
//
//	// Production
//	st, err := store.NewRedisStore(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
// All implementations return nil, nil from Get for absent canvases so
// callers can distinguish "not found" from storage failures.
package store

import (
	"context"

	"github.com/lucidworks/gridbuilder/pkg/grid"
)

// CanvasStore is the interface for canvas persistence backends.
type CanvasStore interface {
	// Get retrieves a canvas by ID.
	// Returns nil, nil if the canvas doesn't exist.
	Get(ctx context.Context, canvasID string) (*grid.Canvas, error)

	// Put stores a canvas, replacing any existing document with the same ID.
	Put(ctx context.Context, canvas *grid.Canvas) error

	// Delete removes a canvas. Deleting an absent canvas is not an error.
	Delete(ctx context.Context, canvasID string) error

	// List returns the IDs of all stored canvases.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}
