// Package testutil provides deterministic float32 signal generators and
// slice assertion helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// TwoTone generates the sum of two sines. The combined amplitude exceeds 1,
// which exercises saturation stages the way real program material does.
func TwoTone(freqA, freqB, sampleRate float64, length int) []float32 {
	out := make([]float32, length)
	stepA := 2 * math.Pi * freqA / sampleRate
	stepB := 2 * math.Pi * freqB / sampleRate
	for i := range out {
		out[i] = float32(0.8*math.Sin(stepA*float64(i)) + 0.4*math.Sin(stepB*float64(i)+0.5))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
