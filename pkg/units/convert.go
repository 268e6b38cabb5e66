package units

// CMPerInch is the exact international inch.
const CMPerInch = 2.54

// InToCM converts inches to centimeters.
func InToCM(in float64) float64 { return in * CMPerInch }

// CMToIn converts centimeters to inches.
func CMToIn(cm float64) float64 { return cm / CMPerInch }
