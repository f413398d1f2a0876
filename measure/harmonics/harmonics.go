package harmonics

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const defaultMaxHarmonics = 8

// Config holds harmonic analysis parameters.
type Config struct {
	// SampleRate of the captured signal in Hz. When <= 0 the FFT size is
	// used, so frequencies degrade to bin indices.
	SampleRate float64
	// FFTSize is the transform length. When <= 0 the next power of two
	// covering the signal is used.
	FFTSize int
	// FundamentalFreq pins the fundamental in Hz. When <= 0 the strongest
	// bin is taken as the fundamental.
	FundamentalFreq float64
	// MaxHarmonics bounds how many harmonics above the fundamental are
	// measured. Defaults to 8.
	MaxHarmonics int
}

// Result holds harmonic analysis results.
type Result struct {
	FundamentalFreq  float64
	FundamentalLevel float64
	// Harmonics holds linear magnitudes of harmonics 2..N, index 0 being
	// the 2nd harmonic. Harmonics above Nyquist are reported as 0.
	Harmonics []float64
	THD       float64
	THDdB     float64
	OddLevel  float64
	EvenLevel float64
}

// AnalyzeSignal measures harmonic content of a real-valued capture.
// It applies a Hann window, zero-pads to the FFT size, and evaluates bin
// magnitudes around the fundamental and its integer multiples.
func AnalyzeSignal(signal []float64, cfg Config) Result {
	if len(signal) == 0 {
		return Result{}
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	if fftSize <= 1 || fftSize < len(signal) {
		return Result{}
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = float64(fftSize)
	}

	maxHarmonics := cfg.MaxHarmonics
	if maxHarmonics <= 0 {
		maxHarmonics = defaultMaxHarmonics
	}

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v*hann(i, len(signal)), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}
	}

	out := make([]complex128, fftSize)

	err = plan.Forward(out, inData)
	if err != nil {
		return Result{}
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := range binCount {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	binHz := sampleRate / float64(fftSize)
	maxBin := binCount - 1

	fundamentalBin := 0
	if cfg.FundamentalFreq > 0 {
		fundamentalBin = peakAround(mag, int(math.Round(cfg.FundamentalFreq/binHz)), 2, maxBin)
	} else {
		fundamentalBin = strongestBin(mag, 1, maxBin)
	}

	if fundamentalBin < 1 {
		return Result{}
	}

	res := Result{
		FundamentalFreq:  float64(fundamentalBin) * binHz,
		FundamentalLevel: mag[fundamentalBin],
		Harmonics:        make([]float64, 0, maxHarmonics),
	}

	sumSquares := 0.0

	for k := 2; k <= maxHarmonics+1; k++ {
		bin := fundamentalBin * k
		if bin > maxBin {
			res.Harmonics = append(res.Harmonics, 0)
			continue
		}

		level := mag[peakAround(mag, bin, 1, maxBin)]
		res.Harmonics = append(res.Harmonics, level)
		sumSquares += level * level

		if k%2 == 0 {
			res.EvenLevel += level
		} else {
			res.OddLevel += level
		}
	}

	if res.FundamentalLevel > 0 {
		res.THD = math.Sqrt(sumSquares) / res.FundamentalLevel
	}

	if res.THD > 0 {
		res.THDdB = 20 * math.Log10(res.THD)
	} else {
		res.THDdB = math.Inf(-1)
	}

	return res
}

func hann(i, n int) float64 {
	if n <= 1 {
		return 1
	}

	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

// peakAround returns the index of the largest magnitude within +-radius
// bins of center, clamped to [1, maxBin].
func peakAround(mag []float64, center, radius, maxBin int) int {
	lo := center - radius
	if lo < 1 {
		lo = 1
	}

	hi := center + radius
	if hi > maxBin {
		hi = maxBin
	}

	if lo > hi {
		return 0
	}

	best := lo
	for i := lo + 1; i <= hi; i++ {
		if mag[i] > mag[best] {
			best = i
		}
	}

	return best
}

func strongestBin(mag []float64, lo, hi int) int {
	if lo < 1 {
		lo = 1
	}

	if hi >= len(mag) {
		hi = len(mag) - 1
	}

	if lo > hi {
		return 0
	}

	best := lo
	for i := lo + 1; i <= hi; i++ {
		if mag[i] > mag[best] {
			best = i
		}
	}

	return best
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
