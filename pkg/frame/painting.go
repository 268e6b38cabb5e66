package frame

import (
	"github.com/matzehuels/framer/pkg/errors"
	"github.com/matzehuels/framer/pkg/geom"
	"github.com/matzehuels/framer/pkg/units"
)

// PaintingSpec describes a painting's measured size range and the depth the
// frame lip hides on each edge. All fields are centimeters.
type PaintingSpec struct {
	Name string `json:"name,omitempty"`

	WidthMin  float64 `json:"width_min_cm"`
	WidthMax  float64 `json:"width_max_cm"`
	HeightMin float64 `json:"height_min_cm"`
	HeightMax float64 `json:"height_max_cm"`

	HideLeft   float64 `json:"hide_left_cm"`
	HideTop    float64 `json:"hide_top_cm"`
	HideRight  float64 `json:"hide_right_cm"`
	HideBottom float64 `json:"hide_bottom_cm"`
}

// SizeDelta is the tolerance band between the largest and smallest size.
func (p PaintingSpec) SizeDelta() geom.Coordinate {
	return geom.Coordinate{X: p.WidthMax - p.WidthMin, Y: p.HeightMax - p.HeightMin}
}

// Hide returns the hidden depth along side s.
func (p PaintingSpec) Hide(s geom.Side) float64 {
	switch s {
	case geom.Bottom:
		return p.HideBottom
	case geom.Right:
		return p.HideRight
	case geom.Top:
		return p.HideTop
	default:
		return p.HideLeft
	}
}

// Validate checks that every measurement is finite and non-negative and that
// each minimum does not exceed its maximum.
func (p PaintingSpec) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"width_min_cm", p.WidthMin},
		{"width_max_cm", p.WidthMax},
		{"height_min_cm", p.HeightMin},
		{"height_max_cm", p.HeightMax},
		{"hide_left_cm", p.HideLeft},
		{"hide_top_cm", p.HideTop},
		{"hide_right_cm", p.HideRight},
		{"hide_bottom_cm", p.HideBottom},
	}
	for _, f := range fields {
		if err := errors.ValidateLength(f.name, f.v); err != nil {
			return err
		}
	}
	if err := errors.ValidateRange("width_min_cm", p.WidthMin, "width_max_cm", p.WidthMax); err != nil {
		return err
	}
	return errors.ValidateRange("height_min_cm", p.HeightMin, "height_max_cm", p.HeightMax)
}

// FrameStock is the cross-section of the moulding, in inches. Only the
// width enters the layout; the height is carried for display.
type FrameStock struct {
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// DefaultStock is 2" wide, 1" deep moulding.
var DefaultStock = FrameStock{WidthIn: 2, HeightIn: 1}

func (s FrameStock) WidthCM() float64  { return units.InToCM(s.WidthIn) }
func (s FrameStock) HeightCM() float64 { return units.InToCM(s.HeightIn) }

// Validate checks that the stock has a positive, finite width and a finite,
// non-negative height.
func (s FrameStock) Validate() error {
	if err := errors.ValidateLength("stock_width_in", s.WidthIn); err != nil {
		return err
	}
	if s.WidthIn == 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "stock_width_in must be positive")
	}
	return errors.ValidateLength("stock_height_in", s.HeightIn)
}
