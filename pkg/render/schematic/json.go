package schematic

import (
	"encoding/json"

	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/geom"
	"github.com/matzehuels/framer/pkg/units"
)

type jsonOutput struct {
	Painting   frame.PaintingSpec      `json:"painting"`
	Stock      frame.FrameStock        `json:"stock"`
	Units      string                  `json:"units"`
	Boundaries map[string][][2]float64 `json:"boundaries"`
	Parts      []jsonPart              `json:"parts"`
	TotalStock jsonValue               `json:"total_stock"`
}

type jsonPart struct {
	Side          string    `json:"side"`
	InnerLength   jsonValue `json:"inner_length"`
	OuterLength   jsonValue `json:"outer_length"`
	InlayWidth    jsonValue `json:"inlay_width"`
	CoverageWidth jsonValue `json:"coverage_width"`
}

type jsonValue struct {
	CM      float64 `json:"cm"`
	Inches  float64 `json:"in"`
	Tape    string  `json:"tape"`
	Display string  `json:"display"`
}

// RenderJSON exports the layout and cut list as a pretty-printed JSON
// document. Boundary points are [x, y] pairs in centimeters, five per
// boundary with the closing point repeated. Every length carries its
// centimeter, inch, tape and display views.
func RenderJSON(plan frame.Plan, opts ...Option) ([]byte, error) {
	c := newConfig(opts)

	out := jsonOutput{
		Painting:   plan.Painting,
		Stock:      plan.Stock,
		Units:      c.mode.String(),
		Boundaries: make(map[string][][2]float64, 4),
		Parts:      make([]jsonPart, 0, len(plan.Parts)),
		TotalStock: c.jsonValue(plan.Parts.TotalStock()),
	}
	for _, sb := range drawOrder(plan.Layout) {
		out.Boundaries[sb.ID] = points(sb.B)
	}
	for _, p := range plan.Parts {
		out.Parts = append(out.Parts, jsonPart{
			Side:          p.Side.String(),
			InnerLength:   c.jsonValue(p.InnerLength),
			OuterLength:   c.jsonValue(p.OuterLength),
			InlayWidth:    c.jsonValue(p.InlayWidth),
			CoverageWidth: c.jsonValue(p.CoverageWidth),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

func points(b geom.Boundary) [][2]float64 {
	pts := make([][2]float64, len(b))
	for i, p := range b {
		pts[i] = [2]float64{p.X, p.Y}
	}
	return pts
}

func (c config) jsonValue(v units.Value) jsonValue {
	return jsonValue{
		CM:      v.CMRounded(),
		Inches:  v.Inches(),
		Tape:    v.Tape(c.tape...),
		Display: c.format(v),
	}
}
