// Package frame computes the geometry of a picture frame build.
//
// # Overview
//
// A painting is described by a [PaintingSpec]: the range its width and
// height may take (canvas shrinks and swells) and how deep the frame lip
// hides each edge. Together with the [FrameStock] cross-section this fixes
// four nested boundaries, computed by [ComputeLayout]:
//
//   - PaintingMax: the painting at its largest
//   - PaintingMin: the painting at its smallest, centered in PaintingMax
//   - Overlap: the visible opening, where the lip meets the painting
//   - Exterior: the outside edge of the assembled frame
//
// [ComputeBuildDimensions] turns a [Layout] into the cut list: one [Part]
// per side in the fixed order bottom, right, top, left.
//
//	plan, err := frame.Build(painting, frame.DefaultStock)
//	if err != nil {
//	    return err
//	}
//	bottom := plan.Parts[geom.Bottom]
//	fmt.Println(bottom.OuterLength.Tape()) // stock cut length
//
// # Coordinates
//
// All lengths are centimeters. The layout is normalized so that the
// bottom-left corner of the exterior sits at the requested origin. The
// painting boundaries overhang the exterior when a hidden edge is deeper
// than the stock is wide.
//
// Both engines are pure functions of their inputs and safe for concurrent use.
package frame
