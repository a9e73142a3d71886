package units

import "testing"

func TestHorizontalUnitPx(t *testing.T) {
	m := New(Options{})

	tests := []struct {
		name  string
		width float64
		want  float64
	}{
		{name: "FullHD", width: 1920, want: 38.4},
		{name: "ClampedToMin", width: 300, want: 10},  // 300*0.02 = 6 -> min 10
		{name: "ClampedToMax", width: 4000, want: 50}, // 4000*0.02 = 80 -> max 50
		{name: "AtMinBoundary", width: 500, want: 10}, // exactly min
		{name: "Zero", width: 0, want: 0},
		{name: "NearZero", width: 0.5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.HorizontalUnitPx(tt.width); got != tt.want {
				t.Errorf("HorizontalUnitPx(%g) = %g, want %g", tt.width, got, tt.want)
			}
		})
	}
}

func TestCustomOptions(t *testing.T) {
	m := New(Options{HorizontalPercent: 0.01, MinHorizontalPx: 5, MaxHorizontalPx: 100, VerticalPx: 8})

	if got := m.HorizontalUnitPx(1000); got != 10 {
		t.Errorf("HorizontalUnitPx(1000) = %g, want 10", got)
	}
	if got := m.VerticalUnitPx(); got != 8 {
		t.Errorf("VerticalUnitPx() = %g, want 8", got)
	}
}

func TestConversionRounding(t *testing.T) {
	tests := []struct {
		name   string
		units  float64
		unitPx float64
		want   float64
	}{
		{name: "Exact", units: 10, unitPx: 20, want: 200},
		{name: "RoundsDown", units: 3, unitPx: 38.4, want: 115}, // 115.2
		{name: "RoundsUp", units: 5, unitPx: 38.5, want: 193},   // 192.5 rounds half away from zero
		{name: "ZeroUnits", units: 0, unitPx: 20, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPixels(tt.units, tt.unitPx); got != tt.want {
				t.Errorf("ToPixels(%g, %g) = %g, want %g", tt.units, tt.unitPx, got, tt.want)
			}
		})
	}
}

func TestToGridUnits(t *testing.T) {
	if got := ToGridUnits(115, 38.4); got != 3 {
		t.Errorf("ToGridUnits(115, 38.4) = %g, want 3", got)
	}
	if got := ToGridUnits(100, 0); got != 0 {
		t.Errorf("ToGridUnits with zero unit = %g, want 0", got)
	}
}

func TestConversionsAreLossy(t *testing.T) {
	m := New(Options{})

	// round trip through pixels snaps to the grid rather than inverting
	px := m.ToPixelsX(3, 1000) // unit = 20, px = 60
	units := m.ToGridUnitsX(px+9, 1000)
	if units != 3 {
		t.Errorf("snap-back = %g, want 3", units)
	}
}

func TestVerticalAxisIndependent(t *testing.T) {
	m := New(Options{})

	if got := m.ToPixelsY(6); got != 120 {
		t.Errorf("ToPixelsY(6) = %g, want 120", got)
	}
	if got := m.ToGridUnitsY(130); got != 7 {
		t.Errorf("ToGridUnitsY(130) = %g, want 7 (rounded)", got)
	}
}

func TestSizeCache(t *testing.T) {
	c := NewSizeCache()

	if _, ok := c.Get("c1"); ok {
		t.Error("empty cache reported a hit")
	}

	c.Put("c1", 38.4)
	if v, ok := c.Get("c1"); !ok || v != 38.4 {
		t.Errorf("Get = %g, %v, want 38.4, true", v, ok)
	}

	c.Invalidate("c1")
	if _, ok := c.Get("c1"); ok {
		t.Error("Get hit after Invalidate")
	}
}

func TestSizeCacheRejectsNonPositive(t *testing.T) {
	c := NewSizeCache()
	c.Put("c1", 0)
	c.Put("c2", -5)

	if _, ok := c.Get("c1"); ok {
		t.Error("cache accepted zero unit size")
	}
	if _, ok := c.Get("c2"); ok {
		t.Error("cache accepted negative unit size")
	}
}

func TestSizeCacheReset(t *testing.T) {
	c := NewSizeCache()
	c.Put("c1", 20)
	c.Put("c2", 30)
	c.Reset()

	if _, ok := c.Get("c1"); ok {
		t.Error("Get hit after Reset")
	}
}

func TestCachedHorizontalUnitPx(t *testing.T) {
	m := New(Options{})
	c := NewSizeCache()

	// first measurable read populates the cache
	if got := m.CachedHorizontalUnitPx(c, "c1", 1920); got != 38.4 {
		t.Fatalf("first read = %g, want 38.4", got)
	}
	if v, ok := c.Get("c1"); !ok || v != 38.4 {
		t.Fatal("cache not populated after measurable read")
	}

	// cached value wins even when the live width changed; callers must
	// invalidate on resize
	if got := m.CachedHorizontalUnitPx(c, "c1", 500); got != 38.4 {
		t.Errorf("stale read = %g, want cached 38.4", got)
	}

	c.Invalidate("c1")
	if got := m.CachedHorizontalUnitPx(c, "c1", 500); got != 10 {
		t.Errorf("post-invalidate read = %g, want 10", got)
	}
}

func TestCachedHorizontalUnitPxZeroWidthNotCached(t *testing.T) {
	m := New(Options{})
	c := NewSizeCache()

	if got := m.CachedHorizontalUnitPx(c, "c1", 0); got != 0 {
		t.Fatalf("zero-width read = %g, want 0", got)
	}
	if _, ok := c.Get("c1"); ok {
		t.Error("zero-width reading populated the cache")
	}

	// pre-population by a caller that knows the fresh width
	c.Put("c1", 25)
	if got := m.CachedHorizontalUnitPx(c, "c1", 0); got != 25 {
		t.Errorf("pre-populated read = %g, want 25", got)
	}
}

func TestCachedHorizontalUnitPxNilCache(t *testing.T) {
	m := New(Options{})
	if got := m.CachedHorizontalUnitPx(nil, "c1", 1920); got != 38.4 {
		t.Errorf("nil-cache read = %g, want 38.4", got)
	}
}
