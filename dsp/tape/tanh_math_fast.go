//go:build fastmath

package tape

import (
	"github.com/meko-christian/algo-approx"
)

// tanh32 computes tanh(x) using fast approximation.
// Uses the identity: tanh(x) = 1 - 2/(e^(2x) + 1), saturating early to keep
// the exponential argument in range. The saturation point matches float32
// precision: tanh(9) already rounds to 1.
func tanh32(x float32) float32 {
	if x > 9 {
		return 1
	}

	if x < -9 {
		return -1
	}

	return float32(1 - 2/(approx.FastExp(2*float64(x))+1))
}
