// Package vizgraph renders a breakpoint set as a cascade diagram: one node
// per breakpoint, one edge per inherit relationship. Useful for debugging
// why a breakpoint resolves the way it does.
package vizgraph

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
)

// Options configures cascade diagram rendering.
type Options struct {
	// Detailed includes the layout mode and min width in node labels.
	// When false, only the breakpoint name is shown.
	Detailed bool
}

// ToDOT converts a breakpoint set to Graphviz DOT format. Nodes appear in
// descending min-width order; the largest breakpoint is highlighted, and
// stack-mode breakpoints are dashed. The resulting DOT string can be
// rendered with [RenderSVG] or [RenderPNG].
func ToDOT(bps grid.Breakpoints, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph cascade {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	largest := bps.Largest()
	for _, name := range bps.Names() {
		bp := bps[name]
		attrs := fmtAttrs(name, bp, name == largest, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, name := range bps.Names() {
		if bp := bps[name]; bp.EffectiveMode() == grid.ModeInherit && bp.InheritFrom != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"inherits\"];\n", name, bp.InheritFrom)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(name string, bp grid.Breakpoint, isLargest bool, opts Options) []string {
	label := name
	if opts.Detailed {
		label = fmt.Sprintf("%s\nmin %gpx\n%s", name, bp.MinWidth, bp.EffectiveMode())
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case isLargest:
		attrs = append(attrs, "fillcolor=lightyellow", "penwidth=2")
	case bp.EffectiveMode() == grid.ModeStack:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT cascade diagram to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT cascade diagram to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render cascade diagram")
	}
	return buf.Bytes(), nil
}
