package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/framer/pkg/errors"
)

// Denominator is the finest fraction of an inch a tape measure reading
// resolves to.
type Denominator int

const (
	Inch         Denominator = 1
	Half         Denominator = 2
	Quarter      Denominator = 4
	Eighth       Denominator = 8
	Sixteenth    Denominator = 16
	ThirtySecond Denominator = 32
	SixtyFourth  Denominator = 64
)

// DefaultDenominator matches the finest marks on a typical shop tape.
const DefaultDenominator = ThirtySecond

// Valid reports whether d is one of the supported tape graduations.
func (d Denominator) Valid() bool {
	switch d {
	case Inch, Half, Quarter, Eighth, Sixteenth, ThirtySecond, SixtyFourth:
		return true
	}
	return false
}

// ParseDenominator converts an integer such as 16 into a Denominator.
func ParseDenominator(n int) (Denominator, error) {
	d := Denominator(n)
	if !d.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidUnits, "unsupported tape denominator %d (use 1, 2, 4, 8, 16, 32 or 64)", n)
	}
	return d, nil
}

// RoundingMode selects how a value snaps to the nearest tape graduation.
type RoundingMode int

const (
	Ceiling RoundingMode = iota
	Floor
	Nearest
)

func (m RoundingMode) String() string {
	switch m {
	case Floor:
		return "floor"
	case Nearest:
		return "nearest"
	default:
		return "ceiling"
	}
}

// ParseRoundingMode parses "ceiling", "floor" or "nearest" (case-insensitive).
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ceiling", "ceil", "up":
		return Ceiling, nil
	case "floor", "down":
		return Floor, nil
	case "nearest", "round":
		return Nearest, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidUnits, "invalid rounding mode %q (must be 'ceiling', 'floor' or 'nearest')", s)
}

// TapeOption configures [TapeMeasure].
type TapeOption func(*tapeConfig)

type tapeConfig struct {
	denom Denominator
	mode  RoundingMode
}

// WithDenominator sets the graduation to round to. Unsupported values are
// ignored.
func WithDenominator(d Denominator) TapeOption {
	return func(c *tapeConfig) {
		if d.Valid() {
			c.denom = d
		}
	}
}

// WithRounding sets the rounding mode.
func WithRounding(m RoundingMode) TapeOption { return func(c *tapeConfig) { c.mode = m } }

func newTapeConfig(opts []TapeOption) tapeConfig {
	c := tapeConfig{denom: DefaultDenominator, mode: Ceiling}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// TapeMeasure formats an inch value as a tape measure reading, e.g. "24 5/16".
// The fraction is reduced to lowest terms; whole values print without one.
func TapeMeasure(valueIn float64, opts ...TapeOption) string {
	if math.IsNaN(valueIn) || math.IsInf(valueIn, 0) {
		return strconv.FormatFloat(valueIn, 'g', -1, 64)
	}
	c := newTapeConfig(opts)

	ticks := int64(c.mode.apply(valueIn * float64(c.denom)))
	sign := ""
	if ticks < 0 {
		sign, ticks = "-", -ticks
	}

	d := int64(c.denom)
	whole, num := ticks/d, ticks%d
	if num == 0 {
		return fmt.Sprintf("%s%d", sign, whole)
	}
	g := gcd(num, d)
	return fmt.Sprintf("%s%d %d/%d", sign, whole, num/g, d/g)
}

func (m RoundingMode) apply(x float64) float64 {
	switch m {
	case Floor:
		return math.Floor(x)
	case Nearest:
		return math.RoundToEven(x)
	default:
		return math.Ceil(x)
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ParseTapeMeasure reads a tape measure string back into inches. It accepts
// whole numbers ("24"), mixed numbers ("24 5/16"), bare fractions ("5/16"),
// decimals ("1.5") and an optional trailing inch mark.
func ParseTapeMeasure(s string) (float64, error) {
	in := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), `"`))
	neg := strings.HasPrefix(in, "-")
	in = strings.TrimSpace(strings.TrimPrefix(in, "-"))

	fields := strings.Fields(in)
	var v float64
	switch len(fields) {
	case 1:
		f, err := parseTapeTerm(fields[0])
		if err != nil {
			return 0, invalidTape(s, err)
		}
		v = f
	case 2:
		whole, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return 0, invalidTape(s, err)
		}
		if !strings.Contains(fields[1], "/") {
			return 0, invalidTape(s, fmt.Errorf("second term %q is not a fraction", fields[1]))
		}
		frac, err := parseTapeTerm(fields[1])
		if err != nil {
			return 0, invalidTape(s, err)
		}
		v = float64(whole) + frac
	default:
		return 0, invalidTape(s, fmt.Errorf("expected 1 or 2 terms, got %d", len(fields)))
	}

	if neg {
		v = -v
	}
	return v, nil
}

func parseTapeTerm(t string) (float64, error) {
	num, den, ok := strings.Cut(t, "/")
	if !ok {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, fmt.Errorf("%q is not a finite length", t)
		}
		return v, nil
	}
	n, err := strconv.ParseUint(num, 10, 32)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseUint(den, 10, 32)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("zero denominator")
	}
	return float64(n) / float64(d), nil
}

func invalidTape(s string, cause error) error {
	return errors.Wrap(errors.ErrCodeInvalidUnits, cause, "invalid tape measure %q", s)
}
