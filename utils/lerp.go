// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp01 clamps x to [0, 1].
func Clamp01(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < 0 {
		return 0
	}

	return x
}

// LerpPow blends a toward b by f raised to pow.
// f is clamped to [0, 1] first, so pow=1 is a plain linear blend,
// pow>1 eases in and pow<1 eases out.
func LerpPow(a, b, f, pow float64) float64 {
	fn := math.Pow(Clamp01(f), pow)
	return a*(1-fn) + b*fn
}
