package schematic

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/framer/pkg/errors"
	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/geom"
	"github.com/matzehuels/framer/pkg/units"
)

// ToDOT converts plan to Graphviz DOT. Every boundary corner becomes a
// pinned point node and every edge a colored line, so neato reproduces the
// layout at true scale. Labels are plaintext nodes at their anchor points.
func ToDOT(plan frame.Plan, opts ...Option) string {
	c := newConfig(opts)

	var buf bytes.Buffer
	buf.WriteString("graph schematic {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	fmt.Fprintf(&buf, "  label=%q;\n", c.heading(plan))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  fontname=\"Helvetica\";\n")
	buf.WriteString("  node [shape=point, width=0.03, color=\"#555555\", label=\"\"];\n")
	buf.WriteString("  edge [penwidth=1.5];\n")

	for _, sb := range drawOrder(plan.Layout) {
		buf.WriteString("\n")
		for _, corner := range geom.Corners {
			fmt.Fprintf(&buf, "  %q [pos=%q];\n", nodeID(sb.ID, corner), pinned(sb.B[corner]))
		}
		style := "solid"
		if sb.Dash {
			style = "dashed"
		}
		for _, side := range geom.Sides {
			from, to := side.Corners()
			fmt.Fprintf(&buf, "  %q -- %q [color=%q, style=%s];\n",
				nodeID(sb.ID, from), nodeID(sb.ID, to), sb.Color, style)
		}
	}

	buf.WriteString("\n")
	for _, lb := range annotate(plan, c) {
		fmt.Fprintf(&buf, "  %q [shape=plaintext, fontsize=9, fontname=\"Helvetica\", label=%q, pos=%q];\n",
			"label-"+lb.ID, lb.Text, pinned(lb.At))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(boundary string, c geom.Corner) string {
	return boundary + "-" + strings.ReplaceAll(c.String(), " ", "-")
}

// pinned formats a layout point as a fixed neato position in inches.
func pinned(p geom.Coordinate) string {
	return fmt.Sprintf("%.4f,%.4f!", units.CMToIn(p.X), units.CMToIn(p.Y))
}

// RenderDOT lays out a DOT graph with neato and renders it in format
// (graphviz.PNG, graphviz.SVG, ...).
func RenderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
