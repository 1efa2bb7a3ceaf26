// Package numeric stabilizes floating values decoded from solution files.
//
// HiGHS writes primal values with the noise of its interior-point or
// simplex arithmetic (e.g. 0.9999999999999997). Decoded values pass
// through two steps: a fixed decimal-place rounding, then a truncation
// whose decimal-place count adapts to the value's order of magnitude, so
// the precision parameter behaves as a significant-digit count rather
// than a fixed decimal count.
package numeric

import "math"

// Round rounds x to the given number of decimal places, half away
// from zero. Negative digits counts are treated as zero.
func Round(x float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}
	shift := math.Pow(10, float64(digits))
	return math.Round(x*shift) / shift
}

// Truncate rounds x to a decimal-place count adapted to its magnitude:
//
//	base   = floor(log10(|x| + 10^-precision))
//	digits = max(precision - base, 1)
//
// The 10^-precision offset keeps log10 defined at zero. Safe for zero
// and negative inputs.
func Truncate(x float64, precision int) float64 {
	base := int(math.Floor(math.Log10(math.Abs(x) + math.Pow(10, float64(-precision)))))
	digits := precision - base
	if digits < 1 {
		digits = 1
	}
	return Round(x, digits)
}

// Normalize applies Round then Truncate, the full post-processing
// pipeline for one decoded value.
func Normalize(x float64, digits, precision int) float64 {
	return Truncate(Round(x, digits), precision)
}
