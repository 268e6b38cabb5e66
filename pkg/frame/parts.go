package frame

import (
	"github.com/matzehuels/framer/pkg/geom"
	"github.com/matzehuels/framer/pkg/units"
)

// Part holds the cut dimensions of one frame member.
type Part struct {
	Side geom.Side

	// InnerLength is the finished inside edge, along the opening.
	InnerLength units.Value
	// OuterLength is the outside edge, the length the stock is cut to.
	OuterLength units.Value
	// InlayWidth is how far the lip overlaps the painting at its largest.
	InlayWidth units.Value
	// CoverageWidth is how far the lip overlaps the painting at its smallest.
	CoverageWidth units.Value
}

// Parts is the cut list, indexed by [geom.Side].
type Parts [4]Part

// ComputeBuildDimensions measures each side of the layout.
//
// Lengths are distances between the two corners bounding the side. Widths
// are single-axis deltas, perpendicular to the side, between the opening's
// leading corner and the painting boundary's trailing corner.
func ComputeBuildDimensions(l Layout) Parts {
	var parts Parts
	for _, side := range geom.Sides {
		from, to := side.Corners()
		axis := side.Axis()
		parts[side] = Part{
			Side:          side,
			InnerLength:   units.FromCM(l.Overlap[from].Distance(l.Overlap[to])),
			OuterLength:   units.FromCM(l.Exterior[from].Distance(l.Exterior[to])),
			InlayWidth:    units.FromCM(l.Overlap[from].Delta(l.PaintingMax[to], axis)),
			CoverageWidth: units.FromCM(l.Overlap[from].Delta(l.PaintingMin[to], axis)),
		}
	}
	return parts
}

// TotalStock is the summed outer length of all members, before kerf.
func (ps Parts) TotalStock() units.Value {
	var cm float64
	for _, p := range ps {
		cm += p.OuterLength.CM()
	}
	return units.FromCM(cm)
}
