package geom

import (
	"math"
	"testing"
)

func TestCoordinateArithmetic(t *testing.T) {
	a := Coordinate{X: 1.5, Y: -2}
	b := Coordinate{X: 0.5, Y: 4}

	if got, want := a.Add(b), (Coordinate{2, 2}); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Coordinate{1, -6}); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := b.Scale(2), (Coordinate{1, 8}); got != want {
		t.Errorf("Scale() = %v, want %v", got, want)
	}
}

func TestCoordinateDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
		want float64
	}{
		{"same point", Coordinate{3, 3}, Coordinate{3, 3}, 0},
		{"horizontal", Coordinate{0, 0}, Coordinate{5, 0}, 5},
		{"vertical", Coordinate{0, 2}, Coordinate{0, -1}, 3},
		{"3-4-5", Coordinate{0, 0}, Coordinate{3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Distance(tt.a); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance() not symmetric: %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinateDelta(t *testing.T) {
	a := Coordinate{X: 1, Y: 10}
	b := Coordinate{X: 4, Y: 2}

	if got := a.DeltaX(b); got != 3 {
		t.Errorf("DeltaX() = %v, want 3", got)
	}
	if got := a.DeltaY(b); got != 8 {
		t.Errorf("DeltaY() = %v, want 8", got)
	}
	if got := b.Delta(a, AxisX); got != 3 {
		t.Errorf("Delta(x) = %v, want 3", got)
	}
	if got := b.Delta(a, AxisY); got != 8 {
		t.Errorf("Delta(y) = %v, want 8", got)
	}
}

func TestCoordinateIsFinite(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want bool
	}{
		{Coordinate{0, 0}, true},
		{Coordinate{math.NaN(), 0}, false},
		{Coordinate{0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		if got := tt.c.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestRectOrdering(t *testing.T) {
	b := Rect(Coordinate{X: 1, Y: 2}, 10, 20)

	want := map[Corner]Coordinate{
		BottomLeft:  {1, 2},
		BottomRight: {11, 2},
		TopRight:    {11, 22},
		TopLeft:     {1, 22},
		Closing:     {1, 2},
	}
	for c, p := range want {
		if got := b.Corner(c); got != p {
			t.Errorf("Corner(%s) = %v, want %v", c, got, p)
		}
	}
	if !b.Closed() {
		t.Error("Rect() should produce a closed boundary")
	}
}

func TestBoundaryExtents(t *testing.T) {
	b := Rect(Coordinate{X: -3, Y: 4}, 6, 2)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"XMin", b.XMin(), -3},
		{"XMax", b.XMax(), 3},
		{"YMin", b.YMin(), 4},
		{"YMax", b.YMax(), 6},
		{"Width", b.Width(), 6},
		{"Height", b.Height(), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if got, want := b.Min(), (Coordinate{-3, 4}); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got, want := b.Max(), (Coordinate{3, 6}); got != want {
		t.Errorf("Max() = %v, want %v", got, want)
	}
}

func TestBoundaryTranslate(t *testing.T) {
	b := Rect(Coordinate{}, 2, 3)
	d := Coordinate{X: 5, Y: -1}

	moved := b.Add(d)
	for i := range b {
		if moved[i] != b[i].Add(d) {
			t.Errorf("Add()[%d] = %v, want %v", i, moved[i], b[i].Add(d))
		}
	}
	if b[0] != (Coordinate{}) {
		t.Error("Add() must not modify the receiver")
	}
	if back := moved.Sub(d); back != b {
		t.Errorf("Sub(Add(d)) = %v, want %v", back, b)
	}
	if !moved.Closed() {
		t.Error("translation should keep the boundary closed")
	}
}

func TestBoundaryPointsIsCopy(t *testing.T) {
	b := Rect(Coordinate{}, 1, 1)
	pts := b.Points()
	if len(pts) != 5 {
		t.Fatalf("Points() length = %d, want 5", len(pts))
	}
	pts[0] = Coordinate{X: 99}
	if b[0] == pts[0] {
		t.Error("Points() should return a copy")
	}
}

func TestBoundaryContains(t *testing.T) {
	outer := Rect(Coordinate{}, 10, 10)

	tests := []struct {
		name  string
		inner Boundary
		want  bool
	}{
		{"strictly inside", Rect(Coordinate{1, 1}, 8, 8), true},
		{"touching edge", Rect(Coordinate{0, 1}, 8, 8), false},
		{"same", outer, false},
		{"overflows", Rect(Coordinate{5, 5}, 8, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSideCorners(t *testing.T) {
	tests := []struct {
		side     Side
		from, to Corner
		axis     Axis
	}{
		{Bottom, BottomLeft, BottomRight, AxisY},
		{Right, BottomRight, TopRight, AxisX},
		{Top, TopRight, TopLeft, AxisY},
		{Left, TopLeft, BottomLeft, AxisX},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			from, to := tt.side.Corners()
			if from != tt.from || to != tt.to {
				t.Errorf("Corners() = (%s, %s), want (%s, %s)", from, to, tt.from, tt.to)
			}
			if got := tt.side.Axis(); got != tt.axis {
				t.Errorf("Axis() = %s, want %s", got, tt.axis)
			}
		})
	}
}

func TestSideCornersAreAdjacent(t *testing.T) {
	for _, s := range Sides {
		from, to := s.Corners()
		if (int(from)+1)%4 != int(to) {
			t.Errorf("side %s corners %s -> %s are not adjacent", s, from, to)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if Corner(9).String() != "unknown" {
		t.Error("out of range corner should be unknown")
	}
	if Side(-1).String() != "unknown" {
		t.Error("out of range side should be unknown")
	}
	if Left.String() != "left" || TopRight.String() != "top-right" {
		t.Error("unexpected enum names")
	}
}
