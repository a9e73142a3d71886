package breakpoint

import (
	"testing"

	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
)

func testBreakpoints() grid.Breakpoints {
	return grid.Breakpoints{
		"mobile":  {MinWidth: 0, Mode: grid.ModeStack},
		"tablet":  {MinWidth: 480, Mode: grid.ModeInherit, InheritFrom: "desktop"},
		"desktop": {MinWidth: 768},
	}
}

func TestViewportForWidth(t *testing.T) {
	bps := grid.Breakpoints{
		"mobile":  {MinWidth: 0},
		"desktop": {MinWidth: 768},
	}

	tests := []struct {
		name  string
		width float64
		want  string
	}{
		{name: "BelowBoundary", width: 767, want: "mobile"},
		{name: "AtBoundary", width: 768, want: "desktop"},
		{name: "AboveBoundary", width: 1920, want: "desktop"},
		{name: "Zero", width: 0, want: "mobile"},
		{name: "BelowSmallest", width: -10, want: "mobile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ViewportForWidth(tt.width, bps)
			if err != nil {
				t.Fatalf("ViewportForWidth: %v", err)
			}
			if got != tt.want {
				t.Errorf("ViewportForWidth(%g) = %q, want %q", tt.width, got, tt.want)
			}
		})
	}
}

func TestViewportForWidthSmallestFloor(t *testing.T) {
	bps := grid.Breakpoints{
		"tablet":  {MinWidth: 480},
		"desktop": {MinWidth: 768},
	}

	got, err := ViewportForWidth(100, bps)
	if err != nil {
		t.Fatalf("ViewportForWidth: %v", err)
	}
	if got != "tablet" {
		t.Errorf("ViewportForWidth(100) = %q, want tablet floor", got)
	}
}

func TestViewportForWidthEmpty(t *testing.T) {
	_, err := ViewportForWidth(800, grid.Breakpoints{})
	if err == nil {
		t.Fatal("expected error for empty config")
	}
	if !errors.Is(err, errors.ErrCodeInvalidBreakpoints) {
		t.Errorf("code = %q, want INVALID_BREAKPOINTS", errors.GetCode(err))
	}
}

func TestEffectiveLayoutCustomizedWins(t *testing.T) {
	bps := testBreakpoints()
	it := grid.NewItem("c1", "chart")
	it.SetLayout("mobile", grid.NewLayout(0, 0, 50, 6, true))
	it.SetLayout("desktop", grid.NewLayout(10, 20, 30, 40, true))

	got, err := EffectiveLayout(it, "mobile", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	if got.Source != "mobile" {
		t.Errorf("source = %q, want mobile", got.Source)
	}
	if got.Layout.WidthOr(-1) != 50 {
		t.Errorf("width = %g, want 50", got.Layout.WidthOr(-1))
	}
}

func TestEffectiveLayoutStackReference(t *testing.T) {
	bps := testBreakpoints()
	it := grid.NewItem("c1", "chart")
	// mobile carries an uncustomized stack placeholder
	it.SetLayout("mobile", grid.NewLayout(0, 0, 50, 8, false))
	it.SetLayout("desktop", grid.NewLayout(10, 20, 30, 40, true))

	got, err := EffectiveLayout(it, "mobile", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	// the placeholder itself renders, but the source points at the
	// customized breakpoint that defines ordering
	if got.Layout.HeightOr(-1) != 8 {
		t.Errorf("height = %g, want placeholder 8", got.Layout.HeightOr(-1))
	}
	if got.Source != "desktop" {
		t.Errorf("source = %q, want desktop", got.Source)
	}
}

func TestEffectiveLayoutStackNoCustomizedFallsToLargest(t *testing.T) {
	bps := grid.Breakpoints{
		"mobile":  {MinWidth: 0, Mode: grid.ModeStack},
		"desktop": {MinWidth: 768},
	}
	it := grid.NewItem("c1", "chart")
	it.SetLayout("mobile", grid.NewLayout(0, 0, 50, 6, false))
	it.SetLayout("desktop", grid.NewLayout(1, 1, 10, 10, false))

	got, err := EffectiveLayout(it, "mobile", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	if got.Source != "desktop" {
		t.Errorf("source = %q, want largest desktop", got.Source)
	}
}

func TestEffectiveLayoutInheritance(t *testing.T) {
	bps := testBreakpoints()
	it := grid.NewItem("c1", "chart")
	it.SetLayout("tablet", grid.EmptyLayout())
	it.SetLayout("desktop", grid.NewLayout(10, 20, 30, 40, true))

	got, err := EffectiveLayout(it, "tablet", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	if got.Source != "desktop" {
		t.Errorf("source = %q, want desktop", got.Source)
	}
	if got.Layout.XOr(-1) != 10 || got.Layout.YOr(-1) != 20 {
		t.Errorf("layout = (%g,%g), want (10,20)", got.Layout.XOr(-1), got.Layout.YOr(-1))
	}
}

func TestEffectiveLayoutDeepInheritChain(t *testing.T) {
	bps := grid.Breakpoints{
		"a": {MinWidth: 0, Mode: grid.ModeInherit, InheritFrom: "b"},
		"b": {MinWidth: 100, Mode: grid.ModeInherit, InheritFrom: "c"},
		"c": {MinWidth: 200, Mode: grid.ModeInherit, InheritFrom: "d"},
		"d": {MinWidth: 768},
	}
	it := grid.NewItem("c1", "chart")
	it.SetLayout("a", grid.EmptyLayout())
	it.SetLayout("b", grid.EmptyLayout())
	it.SetLayout("c", grid.EmptyLayout())
	it.SetLayout("d", grid.NewLayout(5, 5, 20, 10, true))

	got, err := EffectiveLayout(it, "a", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	if got.Source != "d" {
		t.Errorf("source = %q, want d", got.Source)
	}
}

func TestEffectiveLayoutInheritCycle(t *testing.T) {
	bps := grid.Breakpoints{
		"a": {MinWidth: 0, Mode: grid.ModeInherit, InheritFrom: "b"},
		"b": {MinWidth: 100, Mode: grid.ModeInherit, InheritFrom: "a"},
		"c": {MinWidth: 768},
	}
	it := grid.NewItem("c1", "chart")
	it.SetLayout("a", grid.EmptyLayout())
	it.SetLayout("b", grid.EmptyLayout())
	it.SetLayout("c", grid.NewLayout(0, 0, 10, 10, false))

	_, err := EffectiveLayout(it, "a", bps)
	if err == nil {
		t.Fatal("expected cycle error")
	}
	if !errors.Is(err, errors.ErrCodeCycleDetected) {
		t.Errorf("code = %q, want CYCLE_DETECTED", errors.GetCode(err))
	}
}

func TestEffectiveLayoutNearestCustomized(t *testing.T) {
	bps := grid.Breakpoints{
		"mobile":  {MinWidth: 0},
		"tablet":  {MinWidth: 480},
		"desktop": {MinWidth: 768},
		"wide":    {MinWidth: 1440},
	}
	it := grid.NewItem("c1", "chart")
	it.SetLayout("mobile", grid.NewLayout(0, 0, 50, 6, true))
	it.SetLayout("tablet", grid.NewLayout(0, 0, 25, 6, false))
	it.SetLayout("desktop", grid.NewLayout(0, 0, 10, 6, false))
	it.SetLayout("wide", grid.NewLayout(0, 0, 5, 6, true))

	// |480-0| = 480 < |480-1440| = 960, so mobile is nearest
	got, err := EffectiveLayout(it, "tablet", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	if got.Source != "mobile" {
		t.Errorf("source = %q, want mobile", got.Source)
	}

	// |768-1440| = 672 < |768-0| = 768, so wide is nearest
	got, err = EffectiveLayout(it, "desktop", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	if got.Source != "wide" {
		t.Errorf("source = %q, want wide", got.Source)
	}
}

func TestEffectiveLayoutGlobalFallback(t *testing.T) {
	bps := testBreakpoints()
	it := grid.NewItem("c1", "chart")
	it.SetLayout("mobile", grid.EmptyLayout())
	it.SetLayout("desktop", grid.NewLayout(1, 2, 3, 4, false))

	got, err := EffectiveLayout(it, "mobile", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	if got.Source != "desktop" {
		t.Errorf("source = %q, want largest desktop", got.Source)
	}
}

func TestEffectiveLayoutLargestIgnoresConfiguredMode(t *testing.T) {
	// the largest breakpoint behaves as manual even when configured stack
	bps := grid.Breakpoints{
		"mobile":  {MinWidth: 0},
		"desktop": {MinWidth: 768, Mode: grid.ModeStack},
	}
	it := grid.NewItem("c1", "chart")
	it.SetLayout("mobile", grid.NewLayout(0, 0, 50, 6, true))
	it.SetLayout("desktop", grid.NewLayout(0, 0, 50, 6, false))

	got, err := EffectiveLayout(it, "desktop", bps)
	if err != nil {
		t.Fatalf("EffectiveLayout: %v", err)
	}
	// stack-with-reference must not fire; nearest customized wins
	if got.Source != "mobile" {
		t.Errorf("source = %q, want mobile", got.Source)
	}
}

func TestEffectiveLayoutUnknownTarget(t *testing.T) {
	it := grid.NewItem("c1", "chart")
	_, err := EffectiveLayout(it, "ghost", testBreakpoints())
	if err == nil {
		t.Fatal("expected error for unknown target")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %q, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestEffectiveLayoutSourceAlwaysPresent(t *testing.T) {
	bps := testBreakpoints()
	base := grid.NewLayout(10, 2, 20, 8, true)
	layouts, err := InitializeLayouts(bps, base)
	if err != nil {
		t.Fatal(err)
	}

	it := grid.NewItem("c1", "chart")
	it.Layouts = layouts

	for name := range bps {
		got, err := EffectiveLayout(it, name, bps)
		if err != nil {
			t.Fatalf("EffectiveLayout(%s): %v", name, err)
		}
		if _, ok := it.Layouts[got.Source]; !ok {
			t.Errorf("source %q for target %q not present in item layouts", got.Source, name)
		}
	}
}

func TestInitializeLayouts(t *testing.T) {
	bps := testBreakpoints()
	base := grid.NewLayout(10, 2, 20, 8, true)

	layouts, err := InitializeLayouts(bps, base)
	if err != nil {
		t.Fatalf("InitializeLayouts: %v", err)
	}
	if len(layouts) != 3 {
		t.Fatalf("got %d layouts, want 3", len(layouts))
	}

	// exactly one customized entry: the largest breakpoint
	customized := 0
	for _, l := range layouts {
		if l.Customized {
			customized++
		}
	}
	if customized != 1 {
		t.Errorf("customized entries = %d, want 1", customized)
	}
	if !layouts["desktop"].Customized {
		t.Error("largest breakpoint not customized")
	}

	// stack placeholder: full width at origin, base height
	mobile := layouts["mobile"]
	if mobile.XOr(-1) != 0 || mobile.YOr(-1) != 0 {
		t.Errorf("stack placeholder at (%g,%g), want origin", mobile.XOr(-1), mobile.YOr(-1))
	}
	if mobile.WidthOr(-1) != grid.CanvasWidthUnits {
		t.Errorf("stack placeholder width = %g, want %g", mobile.WidthOr(-1), float64(grid.CanvasWidthUnits))
	}
	if mobile.HeightOr(-1) != 8 {
		t.Errorf("stack placeholder height = %g, want base 8", mobile.HeightOr(-1))
	}

	// inherit placeholder: all nil
	if layouts["tablet"].HasGeometry() {
		t.Error("inherit placeholder carries geometry")
	}
}

func TestInitializeLayoutsManualCopy(t *testing.T) {
	bps := grid.Breakpoints{
		"mobile":  {MinWidth: 0}, // manual by default
		"desktop": {MinWidth: 768},
	}
	base := grid.NewLayout(4, 6, 12, 10, true)

	layouts, err := InitializeLayouts(bps, base)
	if err != nil {
		t.Fatal(err)
	}

	mobile := layouts["mobile"]
	if mobile.Customized {
		t.Error("manual copy marked customized")
	}
	if mobile.XOr(-1) != 4 || mobile.WidthOr(-1) != 12 {
		t.Errorf("manual copy = (%g, w=%g), want base geometry", mobile.XOr(-1), mobile.WidthOr(-1))
	}

	// copies must not alias the base
	*mobile.X = 99
	if *base.X != 4 {
		t.Error("manual copy aliases base layout")
	}
}

func TestInitializeLayoutsStackHeightFallback(t *testing.T) {
	bps := grid.Breakpoints{
		"mobile":  {MinWidth: 0, Mode: grid.ModeStack},
		"desktop": {MinWidth: 768},
	}
	base := &grid.Layout{X: grid.Unit(0), Y: grid.Unit(0), Width: grid.Unit(10)}

	layouts, err := InitializeLayouts(bps, base)
	if err != nil {
		t.Fatal(err)
	}
	if got := layouts["mobile"].HeightOr(-1); got != DefaultStackHeight {
		t.Errorf("stack height = %g, want fallback %g", got, DefaultStackHeight)
	}
}

func TestInitializeLayoutsErrors(t *testing.T) {
	if _, err := InitializeLayouts(grid.Breakpoints{}, grid.EmptyLayout()); err == nil {
		t.Error("expected error for empty breakpoints")
	}
	if _, err := InitializeLayouts(testBreakpoints(), nil); err == nil {
		t.Error("expected error for nil base")
	}
}
