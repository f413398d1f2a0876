package harmonics

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-tape/dsp/tape"
)

const testSampleRate = 48000.0

// binAlignedSine generates a sine whose frequency sits exactly on an FFT
// bin, so harmonic bins are also exact and leakage stays negligible.
func binAlignedSine(n, fftSize, bin int, amplitude float64) ([]float64, float64) {
	freq := float64(bin) * testSampleRate / float64(fftSize)

	buf := make([]float64, n)
	for i := range buf {
		buf[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/testSampleRate)
	}

	return buf, freq
}

func TestAnalyzeEmptySignal(t *testing.T) {
	res := AnalyzeSignal(nil, Config{})
	if res.FundamentalLevel != 0 || res.THD != 0 {
		t.Fatalf("AnalyzeSignal(nil) = %+v, want zero result", res)
	}
}

func TestPureSineLowTHD(t *testing.T) {
	const fftSize = 8192

	signal, freq := binAlignedSine(fftSize, fftSize, 170, 0.5)

	res := AnalyzeSignal(signal, Config{
		SampleRate: testSampleRate,
		FFTSize:    fftSize,
	})

	if math.Abs(res.FundamentalFreq-freq) > testSampleRate/fftSize {
		t.Fatalf("FundamentalFreq = %v, want %v within one bin", res.FundamentalFreq, freq)
	}

	if res.FundamentalLevel <= 0 {
		t.Fatalf("FundamentalLevel = %v, want > 0", res.FundamentalLevel)
	}

	if res.THD > 0.001 {
		t.Fatalf("THD = %v for a pure sine, want < 0.001", res.THD)
	}
}

func TestTapeChainProducesOddHarmonics(t *testing.T) {
	const fftSize = 8192

	signal, freq := binAlignedSine(fftSize, fftSize, 170, 0.9)

	p, err := tape.New()
	if err != nil {
		t.Fatalf("tape.New() error = %v", err)
	}

	buf := make([]float32, len(signal))
	for i, v := range signal {
		buf[i] = float32(v)
	}

	p.ProcessInPlace(buf)

	processed := make([]float64, len(buf))
	for i, v := range buf {
		processed[i] = float64(v)
	}

	res := AnalyzeSignal(processed, Config{
		SampleRate:      testSampleRate,
		FFTSize:         fftSize,
		FundamentalFreq: freq,
		MaxHarmonics:    8,
	})

	// tanh is odd-symmetric, so the chain adds odd harmonics only.
	if res.THD < 0.01 {
		t.Fatalf("THD = %v after saturation, want >= 0.01", res.THD)
	}

	if res.OddLevel <= 10*res.EvenLevel {
		t.Fatalf("OddLevel = %v, EvenLevel = %v, want odd-dominant spectrum", res.OddLevel, res.EvenLevel)
	}

	if len(res.Harmonics) != 8 {
		t.Fatalf("len(Harmonics) = %d, want 8", len(res.Harmonics))
	}

	// 3rd harmonic should dominate the 2nd by a wide margin.
	if res.Harmonics[1] <= res.Harmonics[0] {
		t.Fatalf("H3 = %v, H2 = %v, want H3 > H2", res.Harmonics[1], res.Harmonics[0])
	}
}

func TestFundamentalDetection(t *testing.T) {
	const fftSize = 4096

	signal, freq := binAlignedSine(fftSize, fftSize, 97, 0.7)

	res := AnalyzeSignal(signal, Config{
		SampleRate: testSampleRate,
		FFTSize:    fftSize,
	})

	if math.Abs(res.FundamentalFreq-freq) > testSampleRate/fftSize {
		t.Fatalf("FundamentalFreq = %v, want %v within one bin", res.FundamentalFreq, freq)
	}
}
