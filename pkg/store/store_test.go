package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lucidworks/gridbuilder/pkg/grid"
)

// storeUnderTest allows the same behavioral checks to run against
// every local backend.
func storeUnderTest(t *testing.T, name string) CanvasStore {
	t.Helper()
	switch name {
	case "memory":
		return NewMemoryStore()
	case "file":
		s, err := NewFileStore(filepath.Join(t.TempDir(), "canvases"))
		if err != nil {
			t.Fatalf("NewFileStore: %v", err)
		}
		return s
	default:
		t.Fatalf("unknown backend %q", name)
		return nil
	}
}

func sampleCanvas(id string) *grid.Canvas {
	c := grid.NewCanvas(id)
	it := grid.NewItem(id, "hero")
	it.SetLayout("desktop", grid.NewLayout(10, 2, 20, 8, true))
	c.AddItem(it)
	return c
}

func TestStoreRoundTrip(t *testing.T) {
	for _, backend := range []string{"memory", "file"} {
		t.Run(backend, func(t *testing.T) {
			s := storeUnderTest(t, backend)
			defer s.Close()
			ctx := context.Background()

			got, err := s.Get(ctx, "missing")
			if err != nil {
				t.Fatalf("Get(missing): %v", err)
			}
			if got != nil {
				t.Fatalf("Get(missing) = %+v, want nil", got)
			}

			want := sampleCanvas("c1")
			if err := s.Put(ctx, want); err != nil {
				t.Fatalf("Put: %v", err)
			}

			got, err = s.Get(ctx, "c1")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got == nil {
				t.Fatal("Get returned nil for stored canvas")
			}
			if got.ID != want.ID {
				t.Errorf("ID = %q, want %q", got.ID, want.ID)
			}
			if len(got.Items) != 1 {
				t.Fatalf("len(Items) = %d, want 1", len(got.Items))
			}
			l := got.Items[0].Layout("desktop")
			if l == nil || !l.Customized || l.WidthOr(0) != 20 {
				t.Errorf("stored layout = %+v, want customized width 20", l)
			}
		})
	}
}

func TestStoreList(t *testing.T) {
	for _, backend := range []string{"memory", "file"} {
		t.Run(backend, func(t *testing.T) {
			s := storeUnderTest(t, backend)
			defer s.Close()
			ctx := context.Background()

			for _, id := range []string{"beta", "alpha", "gamma"} {
				if err := s.Put(ctx, grid.NewCanvas(id)); err != nil {
					t.Fatalf("Put(%s): %v", id, err)
				}
			}

			ids, err := s.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			want := []string{"alpha", "beta", "gamma"}
			if !reflect.DeepEqual(ids, want) {
				t.Errorf("List = %v, want %v", ids, want)
			}
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for _, backend := range []string{"memory", "file"} {
		t.Run(backend, func(t *testing.T) {
			s := storeUnderTest(t, backend)
			defer s.Close()
			ctx := context.Background()

			if err := s.Put(ctx, grid.NewCanvas("c1")); err != nil {
				t.Fatalf("Put: %v", err)
			}
			if err := s.Delete(ctx, "c1"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			got, err := s.Get(ctx, "c1")
			if err != nil {
				t.Fatalf("Get after delete: %v", err)
			}
			if got != nil {
				t.Errorf("Get after delete = %+v, want nil", got)
			}

			// Deleting again is not an error.
			if err := s.Delete(ctx, "c1"); err != nil {
				t.Errorf("Delete(absent): %v", err)
			}
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "canvases")
	ctx := context.Background()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := first.Put(ctx, sampleCanvas("c1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	first.Close()

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore (reopen): %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.ID != "c1" {
		t.Errorf("reopened store Get = %+v, want canvas c1", got)
	}
}
