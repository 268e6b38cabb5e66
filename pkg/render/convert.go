package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/framer/pkg/errors"
)

// RSVGTool is the rasterizer used for PDF and PNG export. It is a variable
// so tests can point it at a missing binary.
var RSVGTool = "rsvg-convert"

// RSVGAvailable reports whether the rasterizer is on PATH.
func RSVGAvailable() bool {
	_, err := exec.LookPath(RSVGTool)
	return err == nil
}

// ToPDF converts an SVG document to a single-page PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToPNG rasterizes an SVG document. A zoom of 2 doubles the pixel size;
// values <= 0 render at 1:1.
func ToPNG(ctx context.Context, svg []byte, zoom float64) ([]byte, error) {
	if zoom <= 0 {
		zoom = 1
	}
	return rsvgConvert(ctx, svg, "png", "--zoom", fmt.Sprintf("%.2f", zoom))
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if len(svg) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s export: empty SVG document", format)
	}
	if !RSVGAvailable() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"--format", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, RSVGTool, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", RSVGTool, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
