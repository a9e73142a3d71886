package store

import (
	"context"
	"sort"
	"sync"

	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/observability"
)

// MemoryStore is an in-memory canvas store for development and testing.
// Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	canvases map[string]*grid.Canvas
}

// NewMemoryStore creates a new in-memory canvas store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{canvases: make(map[string]*grid.Canvas)}
}

func (s *MemoryStore) Get(ctx context.Context, canvasID string) (*grid.Canvas, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.canvases[canvasID]
	observability.Store().OnStoreGet(ctx, "memory", canvasID, ok)
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (s *MemoryStore) Put(ctx context.Context, canvas *grid.Canvas) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.canvases[canvas.ID] = canvas
	observability.Store().OnStorePut(ctx, "memory", canvas.ID)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, canvasID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.canvases, canvasID)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.canvases))
	for id := range s.canvases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
