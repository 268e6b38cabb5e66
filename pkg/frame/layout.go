package frame

import (
	"github.com/matzehuels/framer/pkg/errors"
	"github.com/matzehuels/framer/pkg/geom"
)

// Layout holds the four nested boundaries of a frame build.
type Layout struct {
	PaintingMax geom.Boundary `json:"painting_max"`
	PaintingMin geom.Boundary `json:"painting_min"`
	Overlap     geom.Boundary `json:"overlap"`
	Exterior    geom.Boundary `json:"exterior"`
}

// Translate shifts every boundary by d.
func (l Layout) Translate(d geom.Coordinate) Layout {
	return Layout{
		PaintingMax: l.PaintingMax.Add(d),
		PaintingMin: l.PaintingMin.Add(d),
		Overlap:     l.Overlap.Add(d),
		Exterior:    l.Exterior.Add(d),
	}
}

// exteriorOffsets moves each overlap corner outward by one stock width.
var exteriorOffsets = [5]geom.Coordinate{
	geom.BottomLeft:  {X: -1, Y: -1},
	geom.BottomRight: {X: 1, Y: -1},
	geom.TopRight:    {X: 1, Y: 1},
	geom.TopLeft:     {X: -1, Y: 1},
	geom.Closing:     {X: -1, Y: -1},
}

// ComputeLayout derives the four boundaries of the build for painting p and
// stock s, positioned so the exterior's bottom-left corner is at origin.
//
// It returns an INVALID_DIMENSION error for negative, non-finite or
// inverted measurements and a DEGENERATE_LAYOUT error when the hidden
// edges leave no visible opening.
func ComputeLayout(p PaintingSpec, s FrameStock, origin geom.Coordinate) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	if err := s.Validate(); err != nil {
		return Layout{}, err
	}
	if !origin.IsFinite() {
		return Layout{}, errors.New(errors.ErrCodeInvalidDimension, "origin must be finite, got %v", origin)
	}

	openW := p.WidthMax - p.HideRight - p.HideLeft
	openH := p.HeightMax - p.HideTop - p.HideBottom
	if openW <= 0 || openH <= 0 {
		return Layout{}, errors.New(errors.ErrCodeDegenerateLayout,
			"hidden edges leave no opening: %gx%g cm", openW, openH)
	}

	minOrigin := origin.Add(p.SizeDelta().Scale(0.5))
	overlapOrigin := origin.Add(geom.Coordinate{X: p.HideLeft, Y: p.HideBottom})

	overlap := geom.Rect(overlapOrigin, openW, openH)

	var exterior geom.Boundary
	w := s.WidthCM()
	for i, c := range overlap {
		exterior[i] = c.Add(exteriorOffsets[i].Scale(w))
	}

	l := Layout{
		PaintingMax: geom.Rect(origin, p.WidthMax, p.HeightMax),
		PaintingMin: geom.Rect(minOrigin, p.WidthMin, p.HeightMin),
		Overlap:     overlap,
		Exterior:    exterior,
	}

	// Hide offsets can push the exterior below or left of the painting; pull
	// everything back so the exterior starts at origin.
	return l.Translate(origin.Sub(exterior.Min())), nil
}
