// Package geom provides the planar primitives used by the frame layout:
// coordinates, closed rectangular boundaries, and the fixed corner and side
// enumerations that index them.
//
// # Boundaries
//
// A [Boundary] is a closed polygon of five points. The first four are the
// corners of an axis-aligned rectangle in counter-clockwise order starting
// at the bottom-left; the fifth repeats the first so the polygon can be
// drawn or iterated without wrapping:
//
//	3 ---------- 2
//	|            |
//	|            |
//	0/4 -------- 1
//
// Corners are addressed with [Corner] values rather than raw indices:
//
//	b := geom.Rect(geom.Coordinate{}, 24.3, 35.3)
//	b.Corner(geom.TopRight) // {24.3 35.3}
//
// Each frame [Side] is bounded by two adjacent corners, returned by
// [Side.Corners], and measures its width along [Side.Axis].
package geom
