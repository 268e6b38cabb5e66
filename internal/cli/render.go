package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framer/pkg/errors"
	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/render"
	"github.com/matzehuels/framer/pkg/render/schematic"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path
	formats  []string // svg, png, pdf, dot, json
	scale    float64  // SVG pixels per centimeter
	margin   float64  // centimeters around the drawing
	title    string   // heading override
	noLegend bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 12, margin: 4}

	cmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "Draw the dimensioned frame schematic",
		Long: `Draw the frame schematic for a preset (default: ruby).

The drawing shows the largest and smallest painting, the visible opening and
the frame exterior, labelled with every member's cut length, opening length
and lip widths in the selected units.

Formats:
  svg   standalone SVG (default)
  png   raster image, via rsvg-convert when installed, otherwise Graphviz
  pdf   single page, requires rsvg-convert
  dot   Graphviz source with pinned coordinates (neato)
  json  layout boundaries and cut list

With one format, -o names the file. With several, -o is a base path and each
format gets its own extension. The default base is the preset key.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: c.completePresets,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = schematic.ParseFormats(formatsStr)
			if err := schematic.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "SVG resolution in pixels per centimeter")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "blank border around the drawing in centimeters")
	cmd.Flags().StringVar(&opts.title, "title", "", "heading (default: painting name and stock)")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "omit the color key")
	cmd.Flags().Float64("png-zoom", defaultPNGZoom, "PNG scale factor")
	_ = c.v.BindPFlag(keyPNGZoom, cmd.Flags().Lookup("png-zoom"))

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout, stderr io.Writer, args []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	key, plan, s, err := c.buildPlan(ctx, args)
	if err != nil {
		return err
	}
	logger.Infof("Rendering %s as %s", key, strings.Join(opts.formats, ", "))

	schematicOpts := []schematic.Option{
		schematic.WithUnits(s.mode),
		schematic.WithTapeOptions(s.tape...),
		schematic.WithScale(opts.scale),
		schematic.WithMargin(opts.margin),
		schematic.WithPNGZoom(s.pngZoom),
	}
	if opts.title != "" {
		schematicOpts = append(schematicOpts, schematic.WithTitle(opts.title))
	}
	if opts.noLegend {
		schematicOpts = append(schematicOpts, schematic.WithoutLegend())
	}

	base := basePath(opts.output, key)
	var written []string
	for _, format := range opts.formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := outputPath(opts.output, base, format, len(opts.formats))
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		if err := c.renderFile(ctx, stderr, plan, format, path, schematicOpts); err != nil {
			return err
		}
		written = append(written, path)
	}

	printSuccess(stdout, "Rendered %s", plan.Painting.Name)
	for _, path := range written {
		printFile(stdout, path)
	}
	return nil
}

// renderFile renders one format and writes it to path.
func (c *CLI) renderFile(ctx context.Context, stderr io.Writer, plan frame.Plan, format, path string, opts []schematic.Option) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	rasterized := format == schematic.FormatPDF || format == schematic.FormatPNG
	if format == schematic.FormatPNG && !render.RSVGAvailable() {
		printWarning(stderr, "rsvg-convert not found; rendering PNG with Graphviz")
	}

	var sp *spinner
	if rasterized {
		sp = newSpinner(ctx, stderr, fmt.Sprintf("Rendering %s...", format))
		sp.Start()
	}
	data, err := schematic.Render(ctx, plan, format, opts...)
	if sp != nil {
		if err != nil {
			sp.StopWithError(fmt.Sprintf("%s rendering failed", format))
		} else {
			sp.Stop()
		}
	}
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	prog.done("Wrote " + path)
	return nil
}

// basePath strips a known format extension from output, or falls back to
// the preset key when no output was given.
func basePath(output, key string) string {
	if output == "" {
		return key
	}
	ext := filepath.Ext(output)
	if schematic.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the file for one format. A single format keeps an
// explicit -o as given.
func outputPath(output, base, format string, count int) string {
	if count == 1 && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return base + "." + format
}
