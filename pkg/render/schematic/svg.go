package schematic

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/geom"
)

const schematicCSS = `
    text { font-family: Helvetica, Arial, sans-serif; }
    .title { font-size: 16px; font-weight: bold; fill: #222; }
    .dim { font-size: 11px; fill: #333; }
    .dim.outer { font-weight: bold; }
    .dim.lip { font-size: 9px; fill: #7a4b12; }
    .legend { font-size: 11px; fill: #444; }`

const (
	headerHeight = 36.0
	legendRow    = 18.0
	frameFill    = "#f3e3c3"
)

// viewport maps layout centimeters onto SVG pixels. SVG grows downward, so
// the y axis is flipped.
type viewport struct {
	lo, hi geom.Coordinate
	scale  float64
	top    float64
}

func (v viewport) point(p geom.Coordinate) (x, y float64) {
	return (p.X - v.lo.X) * v.scale, v.top + (v.hi.Y-p.Y)*v.scale
}

func (v viewport) width() float64  { return (v.hi.X - v.lo.X) * v.scale }
func (v viewport) height() float64 { return (v.hi.Y - v.lo.Y) * v.scale }

// RenderSVG draws plan as a standalone SVG document.
func RenderSVG(plan frame.Plan, opts ...Option) []byte {
	c := newConfig(opts)
	labels := annotate(plan, c)

	lo, hi := extents(plan.Layout, labels)
	pad := geom.Coordinate{X: c.margin, Y: c.margin}
	vp := viewport{lo: lo.Sub(pad), hi: hi.Add(pad), scale: c.scale, top: headerHeight}

	order := drawOrder(plan.Layout)
	legendHeight := 0.0
	if c.legend {
		legendHeight = legendRow*float64(len(order)) + legendRow/2
	}
	width := vp.width()
	total := headerHeight + vp.height() + legendHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, total, width, total)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", schematicCSS)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", width, total)
	fmt.Fprintf(&buf, `  <text class="title" x="%.1f" y="%.1f">%s</text>`+"\n",
		legendRow, headerHeight*0.65, html.EscapeString(c.heading(plan)))

	renderFrameBody(&buf, vp, plan.Layout)
	for _, sb := range order {
		renderBoundary(&buf, vp, sb)
	}
	for _, lb := range labels {
		renderLabel(&buf, vp, lb)
	}
	if c.legend {
		renderLegend(&buf, order, headerHeight+vp.height())
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func pathData(vp viewport, b geom.Boundary) string {
	var sb strings.Builder
	for i, p := range b {
		x, y := vp.point(p)
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&sb, "%s%.2f %.2f ", cmd, x, y)
	}
	return strings.TrimSpace(sb.String())
}

// renderFrameBody shades the moulding between the exterior and the opening.
func renderFrameBody(buf *bytes.Buffer, vp viewport, l frame.Layout) {
	fmt.Fprintf(buf, `  <path class="frame-body" d="%s %s" fill="%s" fill-rule="evenodd"/>`+"\n",
		pathData(vp, l.Exterior), pathData(vp, l.Overlap), frameFill)
}

func renderBoundary(buf *bytes.Buffer, vp viewport, sb styledBoundary) {
	dash := ""
	if sb.Dash {
		dash = ` stroke-dasharray="6 4"`
	}
	fmt.Fprintf(buf, `  <path id="%s" d="%s" fill="none" stroke="%s" stroke-width="1.5"%s/>`+"\n",
		sb.ID, pathData(vp, sb.B), sb.Color, dash)
}

func renderLabel(buf *bytes.Buffer, vp viewport, lb label) {
	x, y := vp.point(lb.At)
	transform := ""
	if lb.Vertical {
		transform = fmt.Sprintf(` transform="rotate(-90 %.2f %.2f)"`, x, y)
	}
	fmt.Fprintf(buf, `  <text id="%s" class="dim %s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle"%s>%s</text>`+"\n",
		lb.ID, lb.Class, x, y, transform, html.EscapeString(lb.Text))
}

func renderLegend(buf *bytes.Buffer, order []styledBoundary, top float64) {
	for i, sb := range order {
		y := top + legendRow*float64(i+1)
		dash := ""
		if sb.Dash {
			dash = ` stroke-dasharray="6 4"`
		}
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"%s/>`+"\n",
			legendRow, y, legendRow*2.5, y, sb.Color, dash)
		fmt.Fprintf(buf, `  <text class="legend" x="%.1f" y="%.1f" dominant-baseline="middle">%s</text>`+"\n",
			legendRow*3, y, html.EscapeString(sb.Label))
	}
}
