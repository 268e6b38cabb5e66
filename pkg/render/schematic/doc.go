// Package schematic draws a frame [frame.Plan] as an annotated diagram.
//
// The diagram shows the four boundaries of the layout, each in its own
// color, and labels every frame member with its dimensions:
//
//   - outside the frame: the outer length (what the stock is cut to)
//   - inside the opening: the inner length
//   - on the member itself: the lip inlay and coverage widths
//
// Output formats:
//
//   - [RenderSVG]: handwritten SVG, y axis pointing up like the layout
//   - [ToDOT] / [RenderDOT]: Graphviz source with pinned corner nodes, laid
//     out by neato at true scale (inches)
//   - [RenderJSON]: the computed geometry and cut list for other tools
//
// [Render] dispatches on a format name and also produces PNG and PDF.
package schematic
