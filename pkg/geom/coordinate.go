package geom

import (
	"fmt"
	"math"
)

// Coordinate is a point (or displacement) in the plane, in centimeters.
type Coordinate struct {
	X, Y float64
}

// Add returns the component-wise sum c + o.
func (c Coordinate) Add(o Coordinate) Coordinate { return Coordinate{c.X + o.X, c.Y + o.Y} }

// Sub returns the component-wise difference c - o.
func (c Coordinate) Sub(o Coordinate) Coordinate { return Coordinate{c.X - o.X, c.Y - o.Y} }

// Scale multiplies both components by f.
func (c Coordinate) Scale(f float64) Coordinate { return Coordinate{c.X * f, c.Y * f} }

// Distance returns the Euclidean distance between c and o.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// DeltaX returns the absolute horizontal distance between c and o.
func (c Coordinate) DeltaX(o Coordinate) float64 { return math.Abs(c.X - o.X) }

// DeltaY returns the absolute vertical distance between c and o.
func (c Coordinate) DeltaY(o Coordinate) float64 { return math.Abs(c.Y - o.Y) }

// Delta returns the absolute distance between c and o along a single axis.
func (c Coordinate) Delta(o Coordinate, a Axis) float64 {
	if a == AxisX {
		return c.DeltaX(o)
	}
	return c.DeltaY(o)
}

// IsFinite reports whether neither component is NaN or infinite.
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) && !math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

func (c Coordinate) String() string { return fmt.Sprintf("(%g, %g)", c.X, c.Y) }
