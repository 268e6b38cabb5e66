package schematic

import "github.com/matzehuels/framer/pkg/units"

// Option configures the schematic renderers.
type Option func(*config)

type config struct {
	mode    units.DisplayMode
	tape    []units.TapeOption
	scale   float64 // SVG pixels per centimeter
	margin  float64 // centimeters around the drawing
	title   string
	legend  bool
	pngZoom float64
}

const (
	defaultScale   = 12.0
	defaultMargin  = 4.0
	defaultPNGZoom = 2.0
)

func newConfig(opts []Option) config {
	c := config{
		mode:    units.ModeCM,
		scale:   defaultScale,
		margin:  defaultMargin,
		legend:  true,
		pngZoom: defaultPNGZoom,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithUnits selects how dimensions are printed.
func WithUnits(m units.DisplayMode) Option { return func(c *config) { c.mode = m } }

// WithTapeOptions sets denominator and rounding for tape measure labels.
func WithTapeOptions(opts ...units.TapeOption) Option {
	return func(c *config) { c.tape = opts }
}

// WithScale sets the SVG resolution in pixels per centimeter.
func WithScale(pxPerCM float64) Option {
	return func(c *config) {
		if pxPerCM > 0 {
			c.scale = pxPerCM
		}
	}
}

// WithMargin sets the blank border around the drawing, in centimeters.
func WithMargin(cm float64) Option {
	return func(c *config) {
		if cm >= 0 {
			c.margin = cm
		}
	}
}

// WithTitle overrides the heading, which defaults to the painting name.
func WithTitle(s string) Option { return func(c *config) { c.title = s } }

// WithoutLegend omits the color key.
func WithoutLegend() Option { return func(c *config) { c.legend = false } }

// WithPNGZoom sets the PNG scale factor (default 2.0 for 2x resolution).
func WithPNGZoom(z float64) Option {
	return func(c *config) {
		if z > 0 {
			c.pngZoom = z
		}
	}
}

func (c config) format(v units.Value) string { return v.Format(c.mode, c.tape...) }
