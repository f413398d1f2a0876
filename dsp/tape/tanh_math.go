//go:build !fastmath

package tape

import "math"

// tanh32 computes tanh(x) using standard library math.
func tanh32(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}
