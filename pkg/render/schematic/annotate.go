package schematic

import (
	"fmt"

	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/geom"
)

// boundaryStyle names and colors one layout boundary.
type boundaryStyle struct {
	ID    string
	Label string
	Color string
	Dash  bool
}

var (
	styleMax      = boundaryStyle{ID: "painting-max", Label: "painting (max)", Color: "#000000"}
	styleMin      = boundaryStyle{ID: "painting-min", Label: "painting (min)", Color: "#1f4fd8", Dash: true}
	styleOverlap  = boundaryStyle{ID: "overlap", Label: "opening", Color: "#d62828"}
	styleExterior = boundaryStyle{ID: "exterior", Label: "frame exterior", Color: "#2a9d3f"}
)

type styledBoundary struct {
	boundaryStyle
	B geom.Boundary
}

// drawOrder lists the boundaries from the outside in.
func drawOrder(l frame.Layout) []styledBoundary {
	return []styledBoundary{
		{styleExterior, l.Exterior},
		{styleMax, l.PaintingMax},
		{styleMin, l.PaintingMin},
		{styleOverlap, l.Overlap},
	}
}

// label is a piece of text anchored in layout coordinates (centimeters).
type label struct {
	ID       string
	Text     string
	At       geom.Coordinate
	Vertical bool
	Class    string
}

// labelGap is the distance between an edge and its label, in centimeters.
const labelGap = 1.2

// outward is the unit normal pointing away from the opening for each side.
var outward = [4]geom.Coordinate{
	geom.Bottom: {X: 0, Y: -1},
	geom.Right:  {X: 1, Y: 0},
	geom.Top:    {X: 0, Y: 1},
	geom.Left:   {X: -1, Y: 0},
}

func midpoint(b geom.Boundary, s geom.Side) geom.Coordinate {
	from, to := s.Corners()
	return b[from].Add(b[to]).Scale(0.5)
}

// annotate places the dimension labels for every member of plan.
func annotate(plan frame.Plan, c config) []label {
	l := plan.Layout
	labels := make([]label, 0, 3*len(geom.Sides))
	for _, side := range geom.Sides {
		part := plan.Parts[side]
		n := outward[side]
		vertical := side.Axis() == geom.AxisX

		outer := midpoint(l.Exterior, side)
		inner := midpoint(l.Overlap, side)

		labels = append(labels,
			label{
				ID:       side.String() + "-outer",
				Text:     fmt.Sprintf("%s cut %s", side, c.format(part.OuterLength)),
				At:       outer.Add(n.Scale(labelGap)),
				Vertical: vertical,
				Class:    "outer",
			},
			label{
				ID:       side.String() + "-inner",
				Text:     fmt.Sprintf("opening %s", c.format(part.InnerLength)),
				At:       inner.Sub(n.Scale(labelGap)),
				Vertical: vertical,
				Class:    "inner",
			},
			label{
				ID:       side.String() + "-lip",
				Text:     fmt.Sprintf("lip %s / %s", c.format(part.InlayWidth), c.format(part.CoverageWidth)),
				At:       inner.Add(outer).Scale(0.5),
				Vertical: vertical,
				Class:    "lip",
			},
		)
	}
	return labels
}

// extents returns the bounding box of every boundary and label anchor.
func extents(l frame.Layout, labels []label) (lo, hi geom.Coordinate) {
	lo, hi = l.Exterior.Min(), l.Exterior.Max()
	grow := func(p geom.Coordinate) {
		lo = geom.Coordinate{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = geom.Coordinate{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	for _, sb := range drawOrder(l) {
		grow(sb.B.Min())
		grow(sb.B.Max())
	}
	for _, lb := range labels {
		grow(lb.At)
	}
	return lo, hi
}

func (c config) heading(plan frame.Plan) string {
	if c.title != "" {
		return c.title
	}
	name := plan.Painting.Name
	if name == "" {
		name = "Frame"
	}
	return fmt.Sprintf("%s, %g\" x %g\" stock", name, plan.Stock.WidthIn, plan.Stock.HeightIn)
}
