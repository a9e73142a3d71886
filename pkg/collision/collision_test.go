package collision

import (
	"testing"

	"github.com/lucidworks/gridbuilder/pkg/grid"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "Overlap",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "OneUnitOverlap",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 9, Y: 9, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "TouchingRightEdge",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 0, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "TouchingBottomEdge",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 0, Y: 10, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "TouchingCorner",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 10, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "Disjoint",
			a:    Rect{X: 0, Y: 0, Width: 5, Height: 5},
			b:    Rect{X: 20, Y: 20, Width: 5, Height: 5},
			want: false,
		},
		{
			name: "Identical",
			a:    Rect{X: 3, Y: 4, Width: 5, Height: 6},
			b:    Rect{X: 3, Y: 4, Width: 5, Height: 6},
			want: true,
		},
		{
			name: "Nested",
			a:    Rect{X: 0, Y: 0, Width: 20, Height: 20},
			b:    Rect{X: 5, Y: 5, Width: 2, Height: 2},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Collides(a,b) = %v, want %v", got, tt.want)
			}
			if got := Collides(tt.b, tt.a); got != tt.want {
				t.Errorf("Collides(b,a) = %v, want %v (symmetry)", got, tt.want)
			}
		})
	}
}

func TestFindFreeSpaceEmptyCanvasCentered(t *testing.T) {
	got := FindFreeSpace(nil, 10, 6)
	if got.X != 20 || got.Y != 2 {
		t.Errorf("position = (%g,%g), want (20,2)", got.X, got.Y)
	}

	// odd leftover floors
	got = FindFreeSpace(nil, 15, 6)
	if got.X != 17 || got.Y != 2 {
		t.Errorf("position = (%g,%g), want (17,2)", got.X, got.Y)
	}
}

func TestFindFreeSpacePreferredAnchor(t *testing.T) {
	existing := []Rect{{X: 30, Y: 30, Width: 10, Height: 10}}
	got := FindFreeSpace(existing, 10, 6)
	if got.X != 2 || got.Y != 2 {
		t.Errorf("position = (%g,%g), want anchor (2,2)", got.X, got.Y)
	}
}

func TestFindFreeSpaceAnchorTooWide(t *testing.T) {
	// width 49: anchor at x=2 would overflow the canvas, scan finds x=0
	existing := []Rect{{X: 30, Y: 100, Width: 10, Height: 10}}
	got := FindFreeSpace(existing, 49, 6)
	if got.X != 0 || got.Y != 0 {
		t.Errorf("position = (%g,%g), want (0,0)", got.X, got.Y)
	}
}

func TestFindFreeSpaceScanOrder(t *testing.T) {
	// anchor blocked; row 0 is blocked until x=10
	existing := []Rect{{X: 0, Y: 0, Width: 10, Height: 10}}
	got := FindFreeSpace(existing, 10, 6)
	if got.X != 10 || got.Y != 0 {
		t.Errorf("position = (%g,%g), want first scan hit (10,0)", got.X, got.Y)
	}
}

func TestFindFreeSpaceSkipsToNextRow(t *testing.T) {
	// full-width block of height 12 starting at y=0: first free row is y=12
	existing := []Rect{{X: 0, Y: 0, Width: 50, Height: 12}}
	got := FindFreeSpace(existing, 10, 6)
	if got.X != 0 || got.Y != 12 {
		t.Errorf("position = (%g,%g), want (0,12)", got.X, got.Y)
	}
}

func TestFindFreeSpaceBottomFallback(t *testing.T) {
	// wall covering the whole scan window forces the bottom fallback
	existing := []Rect{{X: 0, Y: 0, Width: 50, Height: ScanMaxRows + 10}}
	got := FindFreeSpace(existing, 10, 6)
	wantY := float64(ScanMaxRows+10) + BottomSpacing
	if got.X != 0 || got.Y != wantY {
		t.Errorf("position = (%g,%g), want (0,%g)", got.X, got.Y, wantY)
	}
}

func TestFindFreeSpaceNeverCollides(t *testing.T) {
	existing := []Rect{
		{X: 2, Y: 2, Width: 10, Height: 6},
		{X: 20, Y: 0, Width: 20, Height: 8},
		{X: 0, Y: 10, Width: 50, Height: 4},
		{X: 5, Y: 16, Width: 30, Height: 20},
	}

	for _, size := range []struct{ w, h float64 }{{10, 6}, {50, 2}, {1, 1}, {25, 30}} {
		pos := FindFreeSpace(existing, size.w, size.h)
		candidate := Rect{X: pos.X, Y: pos.Y, Width: size.w, Height: size.h}
		for _, r := range existing {
			if Collides(candidate, r) {
				t.Errorf("FindFreeSpace(%gx%g) = (%g,%g) collides with %+v",
					size.w, size.h, pos.X, pos.Y, r)
			}
		}
	}
}

func TestFindFreeSpaceDeterministic(t *testing.T) {
	existing := []Rect{
		{X: 2, Y: 2, Width: 10, Height: 6},
		{X: 14, Y: 2, Width: 10, Height: 6},
	}
	first := FindFreeSpace(existing, 8, 4)
	for i := 0; i < 10; i++ {
		if got := FindFreeSpace(existing, 8, 4); got != first {
			t.Fatalf("run %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestBottomPosition(t *testing.T) {
	if got := BottomPosition(nil); got.X != 0 || got.Y != 0 {
		t.Errorf("empty = (%g,%g), want origin", got.X, got.Y)
	}

	existing := []Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 20, Y: 14, Width: 10, Height: 6}, // bottom edge at 20
	}
	got := BottomPosition(existing)
	if got.X != 0 || got.Y != 22 {
		t.Errorf("position = (%g,%g), want (0,22)", got.X, got.Y)
	}
}

func TestRectOfLayout(t *testing.T) {
	l := &grid.Layout{X: grid.Unit(3), Width: grid.Unit(10)}
	got := RectOfLayout(l)
	want := Rect{X: 3, Y: 0, Width: 10, Height: 0}
	if got != want {
		t.Errorf("RectOfLayout = %+v, want %+v", got, want)
	}
}
