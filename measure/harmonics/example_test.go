package harmonics_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tape/measure/harmonics"
)

func ExampleAnalyzeSignal() {
	const (
		sampleRate = 48000.0
		fftSize    = 4096
	)

	// Sine on an exact FFT bin, lightly clipped to create harmonics.
	freq := 100 * sampleRate / fftSize

	signal := make([]float64, fftSize)
	for i := range signal {
		s := 1.2 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
		signal[i] = math.Tanh(s)
	}

	res := harmonics.AnalyzeSignal(signal, harmonics.Config{
		SampleRate:      sampleRate,
		FFTSize:         fftSize,
		FundamentalFreq: freq,
	})

	fmt.Println(res.THD > 0.01)
	fmt.Println(res.OddLevel > res.EvenLevel)
	// Output:
	// true
	// true
}
