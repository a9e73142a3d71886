package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/observability"
)

// FileStore is a file-based canvas store for CLI workflows.
// Each canvas is stored as a JSON file in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based canvas store.
// If baseDir is empty, defaults to ~/.config/gridbuilder/canvases/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "get home dir")
		}
		baseDir = filepath.Join(home, ".config", "gridbuilder", "canvases")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create canvas dir %q", baseDir)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// BaseDir returns the directory canvases are stored in.
func (s *FileStore) BaseDir() string {
	return s.baseDir
}

func (s *FileStore) canvasPath(canvasID string) string {
	return filepath.Join(s.baseDir, canvasID+".json")
}

func (s *FileStore) Get(ctx context.Context, canvasID string) (*grid.Canvas, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.canvasPath(canvasID))
	if err != nil {
		if os.IsNotExist(err) {
			observability.Store().OnStoreGet(ctx, "file", canvasID, false)
			return nil, nil
		}
		observability.Store().OnStoreError(ctx, "file", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read canvas file")
	}

	var c grid.Canvas
	if err := json.Unmarshal(data, &c); err != nil {
		observability.Store().OnStoreError(ctx, "file", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parse canvas %q", canvasID)
	}
	observability.Store().OnStoreGet(ctx, "file", canvasID, true)
	return &c, nil
}

func (s *FileStore) Put(ctx context.Context, canvas *grid.Canvas) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(canvas, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal canvas %q", canvas.ID)
	}
	if err := os.WriteFile(s.canvasPath(canvas.ID), data, 0600); err != nil {
		observability.Store().OnStoreError(ctx, "file", "put", err)
		return errors.Wrap(errors.ErrCodeStore, err, "write canvas file")
	}
	observability.Store().OnStorePut(ctx, "file", canvas.ID)
	return nil
}

func (s *FileStore) Delete(_ context.Context, canvasID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.canvasPath(canvasID)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStore, err, "remove canvas file")
	}
	return nil
}

func (s *FileStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read canvas dir")
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *FileStore) Close() error {
	return nil
}
