package geom

import "slices"

// Boundary is a closed rectangular polygon. Points are ordered
// bottom-left, bottom-right, top-right, top-left, bottom-left.
//
// Boundary is a value type; every operation returns a new Boundary.
type Boundary [5]Coordinate

// Rect builds the axis-aligned boundary with its bottom-left corner at
// origin. Negative sizes are passed through unchanged.
func Rect(origin Coordinate, width, height float64) Boundary {
	return Boundary{
		origin,
		{origin.X + width, origin.Y},
		{origin.X + width, origin.Y + height},
		{origin.X, origin.Y + height},
		origin,
	}
}

// Corner returns the point at c.
func (b Boundary) Corner(c Corner) Coordinate { return b[c] }

// Points returns a copy of all five points, closing point included.
func (b Boundary) Points() []Coordinate { return slices.Clone(b[:]) }

// Add translates every point by d.
func (b Boundary) Add(d Coordinate) Boundary {
	for i := range b {
		b[i] = b[i].Add(d)
	}
	return b
}

// Sub translates every point by -d.
func (b Boundary) Sub(d Coordinate) Boundary {
	for i := range b {
		b[i] = b[i].Sub(d)
	}
	return b
}

// Xs returns the x components in point order.
func (b Boundary) Xs() []float64 {
	xs := make([]float64, len(b))
	for i, p := range b {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the y components in point order.
func (b Boundary) Ys() []float64 {
	ys := make([]float64, len(b))
	for i, p := range b {
		ys[i] = p.Y
	}
	return ys
}

func (b Boundary) XMin() float64 { return slices.Min(b.Xs()) }
func (b Boundary) XMax() float64 { return slices.Max(b.Xs()) }
func (b Boundary) YMin() float64 { return slices.Min(b.Ys()) }
func (b Boundary) YMax() float64 { return slices.Max(b.Ys()) }

// Min returns the lower-left corner of the bounding box.
func (b Boundary) Min() Coordinate { return Coordinate{b.XMin(), b.YMin()} }

// Max returns the upper-right corner of the bounding box.
func (b Boundary) Max() Coordinate { return Coordinate{b.XMax(), b.YMax()} }

// Width is the horizontal extent of the bounding box.
func (b Boundary) Width() float64 { return b.XMax() - b.XMin() }

// Height is the vertical extent of the bounding box.
func (b Boundary) Height() float64 { return b.YMax() - b.YMin() }

// Closed reports whether the last point repeats the first.
func (b Boundary) Closed() bool { return b[Closing] == b[BottomLeft] }

// Contains reports whether the extents of o lie strictly inside b.
func (b Boundary) Contains(o Boundary) bool {
	return b.XMin() < o.XMin() && o.XMax() < b.XMax() &&
		b.YMin() < o.YMin() && o.YMax() < b.YMax()
}
