// Package units converts between centimeters and inches and formats inch
// values the way they read off a tape measure.
//
// All geometry in framer is computed in centimeters. A [Value] wraps a
// centimeter magnitude and offers the views a shop needs:
//
//	v := units.FromCM(33.46)
//	v.CMRounded()           // 33.46
//	v.Inches()              // 13.1732...
//	v.Tape()                // "13 3/16"  (ceiling at 1/32")
//	v.Format(units.ModeTape) // `13 3/16"`
//
// Tape rounding defaults to [Ceiling] so that stock cut to the printed
// mark is never short. Use [WithRounding] and [WithDenominator] to change
// the behavior.
package units
