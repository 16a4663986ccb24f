// Package units converts between the fixed-point units used by DrawingML and
// display units.
//
// DrawingML stores lengths in English Metric Units (914400 EMU per inch),
// angles in 60000ths of a degree, and font sizes in hundredths of a point.
package units

import "math"

const (
	// EMUPerInch is the number of EMUs in one inch.
	EMUPerInch = 914400
	// EMUPerPoint is the number of EMUs in one typographic point.
	EMUPerPoint = 12700
	// AngleUnit is the number of angle units in one degree.
	AngleUnit = 60000
	// Percent is the 100000 = 100% scale used by color modifiers and
	// relative spacing.
	Percent = 100000
)

// EMUToInches converts EMUs to inches.
func EMUToInches(emu int64) float64 {
	return float64(emu) / EMUPerInch
}

// InchesToEMU converts inches to EMUs, rounding to the nearest unit.
func InchesToEMU(in float64) int64 {
	return int64(math.Round(in * EMUPerInch))
}

// EMUToPoints converts EMUs to points.
func EMUToPoints(emu int64) float64 {
	return float64(emu) / EMUPerPoint
}

// AngleToDegrees converts a DrawingML angle to degrees.
func AngleToDegrees(angle int64) float64 {
	return float64(angle) / AngleUnit
}

// HundredthsToPoints converts a size in hundredths of a point to points.
func HundredthsToPoints(v int64) float64 {
	return float64(v) / 100
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
