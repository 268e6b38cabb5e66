package geom

// Corner indexes a point of a [Boundary].
type Corner int

const (
	BottomLeft Corner = iota
	BottomRight
	TopRight
	TopLeft
	// Closing is the repeated bottom-left point that closes the polygon.
	Closing
)

// Corners lists the four distinct rectangle corners in boundary order.
var Corners = [4]Corner{BottomLeft, BottomRight, TopRight, TopLeft}

var cornerNames = [...]string{"bottom-left", "bottom-right", "top-right", "top-left", "bottom-left (closing)"}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return "unknown"
	}
	return cornerNames[c]
}

// Axis selects one of the two coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Side is one of the four frame members. The order is fixed: bottom, right,
// top, left, matching a counter-clockwise walk from the bottom-left corner.
type Side int

const (
	Bottom Side = iota
	Right
	Top
	Left
)

// Sides lists every side in build order.
var Sides = [4]Side{Bottom, Right, Top, Left}

var sideNames = [...]string{"bottom", "right", "top", "left"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return "unknown"
	}
	return sideNames[s]
}

// Corners returns the two adjacent corners bounding s, in traversal order.
func (s Side) Corners() (from, to Corner) {
	switch s {
	case Bottom:
		return BottomLeft, BottomRight
	case Right:
		return BottomRight, TopRight
	case Top:
		return TopRight, TopLeft
	default:
		return TopLeft, BottomLeft
	}
}

// Axis returns the axis perpendicular to s, along which widths of that
// side are measured.
func (s Side) Axis() Axis {
	if s == Bottom || s == Top {
		return AxisY
	}
	return AxisX
}
