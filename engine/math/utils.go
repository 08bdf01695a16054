package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// Subdivision depths and sample counts are clamped through it.
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Round returns f rounded half away from zero to the given number of decimals.
func Round(f float64, decimals int) float64 {
	p := m.Pow10(decimals)
	return m.Round(f*p) / p
}
