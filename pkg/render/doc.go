// Package render converts rendered schematics between output formats.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The schematic renderer uses
// them for PDF output, and for PNG output when the tool is installed:
//
//	svg := schematic.RenderSVG(plan, opts...)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x zoom
//
// [RSVGAvailable] reports whether the tool can be found on PATH.
//
// # Schematics
//
// The [schematic] subpackage draws the frame layout: SVG written by hand,
// DOT laid out by Graphviz, and a JSON export of the computed geometry.
//
// [schematic]: github.com/matzehuels/framer/pkg/render/schematic
package render
