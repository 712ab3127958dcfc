// Package numeric holds the rounding and clamping rules every pipeline
// stage shares.
package numeric

import "math"

// Round rounds half toward positive infinity, so -2.5 becomes -2 and 2.5
// becomes 3. All pipeline rounding goes through here so that results do not
// depend on which stage rounded.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundInt is Round converted to int.
func RoundInt(x float64) int {
	return int(Round(x))
}

// Clamp bounds v to [lo, hi].
func Clamp[T int | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundToStep rounds x to the nearest multiple of step.
func RoundToStep(x, step float64) float64 {
	return Round(x/step) * step
}
