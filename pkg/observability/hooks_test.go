package observability

import (
	"context"
	"testing"
	"time"
)

type recordingResolveHooks struct {
	starts    int
	completes int
	viewport  string
}

func (r *recordingResolveHooks) OnResolveStart(_ context.Context, _ string, _ int) {
	r.starts++
}

func (r *recordingResolveHooks) OnResolveComplete(_ context.Context, _, viewport string, _ time.Duration, _ error) {
	r.completes++
	r.viewport = viewport
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Resolve().OnResolveStart(ctx, "c1", 3)
	Resolve().OnResolveComplete(ctx, "c1", "desktop", time.Millisecond, nil)
	Placement().OnPlacementStart(ctx, "c1", 20, 10)
	Placement().OnPlacementComplete(ctx, "c1", false, time.Millisecond, nil)
	Store().OnStoreGet(ctx, "memory", "c1", true)
	Store().OnStorePut(ctx, "memory", "c1")
	Store().OnStoreError(ctx, "memory", "get", nil)
}

func TestSetResolveHooks(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingResolveHooks{}
	SetResolveHooks(rec)

	ctx := context.Background()
	Resolve().OnResolveStart(ctx, "c1", 2)
	Resolve().OnResolveComplete(ctx, "c1", "tablet", time.Millisecond, nil)

	if rec.starts != 1 {
		t.Errorf("starts = %d, want 1", rec.starts)
	}
	if rec.completes != 1 {
		t.Errorf("completes = %d, want 1", rec.completes)
	}
	if rec.viewport != "tablet" {
		t.Errorf("viewport = %q, want %q", rec.viewport, "tablet")
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	Reset()
	defer Reset()

	SetResolveHooks(nil)
	if Resolve() == nil {
		t.Fatal("Resolve() returned nil after SetResolveHooks(nil)")
	}
	SetPlacementHooks(nil)
	if Placement() == nil {
		t.Fatal("Placement() returned nil after SetPlacementHooks(nil)")
	}
	SetStoreHooks(nil)
	if Store() == nil {
		t.Fatal("Store() returned nil after SetStoreHooks(nil)")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingResolveHooks{}
	SetResolveHooks(rec)
	Reset()

	Resolve().OnResolveStart(context.Background(), "c1", 1)
	if rec.starts != 0 {
		t.Errorf("hooks still registered after Reset, starts = %d", rec.starts)
	}
}
