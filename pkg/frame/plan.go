package frame

import "github.com/matzehuels/framer/pkg/geom"

// Plan bundles everything needed to build and draw one frame.
type Plan struct {
	Painting PaintingSpec
	Stock    FrameStock
	Layout   Layout
	Parts    Parts
}

// Build lays out painting p in stock s at the origin and measures the parts.
func Build(p PaintingSpec, s FrameStock) (Plan, error) {
	l, err := ComputeLayout(p, s, geom.Coordinate{})
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Painting: p,
		Stock:    s,
		Layout:   l,
		Parts:    ComputeBuildDimensions(l),
	}, nil
}
