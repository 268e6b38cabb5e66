package units

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/framer/pkg/errors"
)

// Value is a length stored in centimeters.
type Value struct {
	cm float64
}

// FromCM wraps a centimeter length.
func FromCM(cm float64) Value { return Value{cm: cm} }

// FromInches wraps an inch length.
func FromInches(in float64) Value { return Value{cm: InToCM(in)} }

// CM returns the exact centimeter magnitude.
func (v Value) CM() float64 { return v.cm }

// CMRounded returns the length rounded to hundredths of a centimeter.
func (v Value) CMRounded() float64 { return math.Round(v.cm*100) / 100 }

// Inches returns the exact inch magnitude.
func (v Value) Inches() float64 { return CMToIn(v.cm) }

// Tape returns the inch length as a tape measure reading.
func (v Value) Tape(opts ...TapeOption) string { return TapeMeasure(v.Inches(), opts...) }

// Format renders the value for display in the given mode, with its unit.
func (v Value) Format(m DisplayMode, opts ...TapeOption) string {
	switch m {
	case ModeInch:
		return fmt.Sprintf("%.3f in", v.Inches())
	case ModeTape:
		return v.Tape(opts...) + `"`
	default:
		return fmt.Sprintf("%.2f cm", v.CMRounded())
	}
}

func (v Value) String() string { return v.Format(ModeCM) }

// DisplayMode selects which view of a [Value] is printed.
type DisplayMode int

const (
	ModeCM DisplayMode = iota
	ModeInch
	ModeTape
)

func (m DisplayMode) String() string {
	switch m {
	case ModeInch:
		return "in"
	case ModeTape:
		return "tape"
	default:
		return "cm"
	}
}

// ParseDisplayMode parses a unit selector such as "cm", "in" or "tape".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm", "centimeter", "centimeters":
		return ModeCM, nil
	case "in", "inch", "inches":
		return ModeInch, nil
	case "tape", "fraction":
		return ModeTape, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidUnits, "invalid units %q (must be 'cm', 'in' or 'tape')", s)
}
