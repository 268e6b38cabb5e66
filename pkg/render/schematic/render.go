package schematic

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/framer/pkg/errors"
	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/render"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ValidateFormats checks that all requested formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be one of svg, png, pdf, dot, json)", f)
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list. An empty string
// selects SVG.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatSVG}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Render produces plan in a single format.
//
// PNG is rasterized from the SVG by rsvg-convert when it is installed and
// falls back to Graphviz otherwise. PDF always requires rsvg-convert.
func Render(ctx context.Context, plan frame.Plan, format string, opts ...Option) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(plan, opts...), nil
	case FormatPNG:
		if render.RSVGAvailable() {
			return render.ToPNG(ctx, RenderSVG(plan, opts...), newConfig(opts).pngZoom)
		}
		return RenderDOT(ctx, ToDOT(plan, opts...), graphviz.PNG)
	case FormatPDF:
		return render.ToPDF(ctx, RenderSVG(plan, opts...))
	case FormatDOT:
		return []byte(ToDOT(plan, opts...)), nil
	case FormatJSON:
		return RenderJSON(plan, opts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

// RenderAll produces plan in every requested format, keyed by format.
func RenderAll(ctx context.Context, plan frame.Plan, formats []string, opts ...Option) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(formats))
	for _, f := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := Render(ctx, plan, f, opts...)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		artifacts[f] = data
	}
	return artifacts, nil
}
