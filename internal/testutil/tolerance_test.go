package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	a := []float32{1.0, 2.0, 3.0}
	b := []float32{1.0, 2.00005, 3.0}

	RequireSliceNearlyEqual(t, a, b, 1e-3)
}

func TestRequireSliceEqualPasses(t *testing.T) {
	a := []float32{1, 2, 3}
	RequireSliceEqual(t, a, a)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float32{0, -1, 1, float32(math.Pi)})
}
