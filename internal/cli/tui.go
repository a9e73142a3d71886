package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucidworks/gridbuilder/pkg/engine"
	"github.com/lucidworks/gridbuilder/pkg/grid"
)

var (
	previewItemStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	previewEmptyStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// sketchScale divides grid-unit heights when sketching the canvas, keeping
// tall layouts on screen.
const sketchScale = 2.0

// =============================================================================
// previewModel - Interactive breakpoint preview
// =============================================================================

// previewModel is the bubbletea model for the canvas preview.
type previewModel struct {
	ctx      context.Context
	engine   *engine.Engine
	canvasID string

	// breakpoints in ascending min-width order; cursor indexes into it.
	breakpoints []string
	cursor      int

	resolution *engine.Resolution
	err        error
}

func newPreviewModel(ctx context.Context, eng *engine.Engine, canvasID string) (*previewModel, error) {
	bps := eng.Breakpoints()
	names := bps.Names()
	// Names() is descending; the preview walks smallest to largest.
	sort.SliceStable(names, func(i, j int) bool {
		return bps[names[i]].MinWidth < bps[names[j]].MinWidth
	})

	m := &previewModel{
		ctx:         ctx,
		engine:      eng,
		canvasID:    canvasID,
		breakpoints: names,
	}
	m.resolve()
	return m, m.err
}

// previewWidth picks a representative viewport width for a breakpoint.
func (m *previewModel) previewWidth() float64 {
	name := m.breakpoints[m.cursor]
	w := m.engine.Breakpoints()[name].MinWidth
	if w == 0 {
		return 375
	}
	return w
}

func (m *previewModel) resolve() {
	m.resolution, m.err = m.engine.ResolveCanvas(m.ctx, m.canvasID, m.previewWidth())
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
				m.resolve()
			}
		case "right", "l":
			if m.cursor < len(m.breakpoints)-1 {
				m.cursor++
				m.resolve()
			}
		}
	}
	return m, nil
}

func (m *previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Canvas " + m.canvasID))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ switch breakpoint  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.breakpoints {
		label := name
		if i == m.cursor {
			label = StyleHighlight.Render("[" + name + "]")
		} else {
			label = StyleDim.Render(label)
		}
		b.WriteString(label)
		if i < len(m.breakpoints)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	if m.resolution != nil {
		b.WriteString(previewHint(m.resolution.Viewport, m.resolution.ViewportWidth))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if len(m.resolution.Items) == 0 {
		b.WriteString(previewEmptyStyle.Render("canvas is empty"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(sketchCanvas(m.resolution))
	b.WriteString("\n")
	b.WriteString(resolutionTable(m.resolution))
	b.WriteString("\n")
	return b.String()
}

// sketchCanvas draws the resolved layouts to scale: one column per grid
// unit, one row per sketchScale grid units. Items are labeled a, b, c...
// in canvas order.
func sketchCanvas(res *engine.Resolution) string {
	maxBottom := 0.0
	for _, it := range res.Items {
		if b := it.Layout.YOr(0) + it.Layout.HeightOr(0); b > maxBottom {
			maxBottom = b
		}
	}

	rows := int(maxBottom/sketchScale) + 1
	cols := int(grid.CanvasWidthUnits)
	cells := make([][]rune, rows)
	for y := range cells {
		cells[y] = make([]rune, cols)
		for x := range cells[y] {
			cells[y][x] = '·'
		}
	}

	for i, it := range res.Items {
		label := rune('a' + i%26)
		x0 := int(it.Layout.XOr(0))
		x1 := int(it.Layout.XOr(0) + it.Layout.WidthOr(0))
		y0 := int(it.Layout.YOr(0) / sketchScale)
		y1 := int((it.Layout.YOr(0) + it.Layout.HeightOr(0)) / sketchScale)
		for y := y0; y < y1 && y < rows; y++ {
			for x := x0; x < x1 && x < cols; x++ {
				cells[y][x] = label
			}
		}
	}

	var b strings.Builder
	for _, row := range cells {
		line := string(row)
		b.WriteString(previewItemStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// previewHint is shown below the sketch for orientation.
func previewHint(viewport string, width float64) string {
	return StyleDim.Render(fmt.Sprintf("viewport %s at %gpx", viewport, width))
}
