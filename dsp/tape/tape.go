package tape

import (
	"fmt"
	"math"
)

const (
	// Defaults reproduce the classic chain: 1.5x drive into tanh, a one-pole
	// lowpass with a = 0.19 (~18 kHz warmth roll-off at 48 kHz), and a 0.9x
	// gain into a final tanh limiter.
	defaultDrive       = 1.5
	defaultWarmthCoef  = 0.19
	defaultLimiterGain = 0.9

	minDrive = 0.01
	maxDrive = 20.0
)

// Option mutates construction-time parameters.
type Option func(*config) error

type config struct {
	drive       float64
	warmthCoef  float64
	limiterGain float64
}

func defaultTapeConfig() config {
	return config{
		drive:       defaultDrive,
		warmthCoef:  defaultWarmthCoef,
		limiterGain: defaultLimiterGain,
	}
}

// WithDrive sets pre-saturation input gain in [0.01, 20].
func WithDrive(drive float64) Option {
	return func(cfg *config) error {
		if drive < minDrive || drive > maxDrive || math.IsNaN(drive) || math.IsInf(drive, 0) {
			return fmt.Errorf("tape drive must be in [%g, %g]: %f", minDrive, maxDrive, drive)
		}

		cfg.drive = drive

		return nil
	}
}

// WithWarmthCoefficient sets the one-pole lowpass coefficient directly.
// The coefficient must be in (0, 1]; 1 disables the filter memory entirely.
func WithWarmthCoefficient(a float64) Option {
	return func(cfg *config) error {
		if a <= 0 || a > 1 || math.IsNaN(a) {
			return fmt.Errorf("tape warmth coefficient must be in (0, 1]: %f", a)
		}

		cfg.warmthCoef = a

		return nil
	}
}

// WithWarmthCutoff derives the lowpass coefficient from a cutoff frequency
// via a = 1 / (1 + 2*pi*fc/fs). The cutoff must lie below Nyquist.
func WithWarmthCutoff(cutoffHz, sampleRate float64) Option {
	return func(cfg *config) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("tape sample rate must be > 0 and finite: %f", sampleRate)
		}

		if cutoffHz <= 0 || cutoffHz >= sampleRate/2 || math.IsNaN(cutoffHz) {
			return fmt.Errorf("tape warmth cutoff must be in (0, %g): %f", sampleRate/2, cutoffHz)
		}

		cfg.warmthCoef = 1 / (1 + 2*math.Pi*cutoffHz/sampleRate)

		return nil
	}
}

// WithLimiterGain sets the gain into the final soft limiter in (0, 1].
func WithLimiterGain(gain float64) Option {
	return func(cfg *config) error {
		if gain <= 0 || gain > 1 || math.IsNaN(gain) {
			return fmt.Errorf("tape limiter gain must be in (0, 1]: %f", gain)
		}

		cfg.limiterGain = gain

		return nil
	}
}

// Processor is a mono tape-emulation chain with a single scalar of state.
//
// The filter state is the true previous output of the warmth lowpass and is
// never reset between buffers; restart semantics are expressed by building
// a fresh Processor. A Processor must not be shared across goroutines
// without external serialization.
type Processor struct {
	drive       float32
	warmthCoef  float32
	limiterGain float32

	filterState float32
}

// New creates a tape processor. With no options it never fails and uses the
// default chain constants.
func New(opts ...Option) (*Processor, error) {
	cfg := defaultTapeConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	return &Processor{
		drive:       float32(cfg.drive),
		warmthCoef:  float32(cfg.warmthCoef),
		limiterGain: float32(cfg.limiterGain),
	}, nil
}

// ProcessSample runs one sample through the chain and advances the state.
// Non-finite inputs propagate per IEEE semantics; a NaN reaching the filter
// state poisons all subsequent output until the Processor is rebuilt.
func (p *Processor) ProcessSample(input float32) float32 {
	driven := input * p.drive
	saturated := tanh32(driven)

	p.filterState = p.warmthCoef*saturated + (1-p.warmthCoef)*p.filterState

	return tanh32(p.filterState * p.limiterGain)
}

// ProcessInPlace runs buf through the chain in place, in ascending index
// order. Splitting a stream into blocks of any size yields the same output
// as one call over the whole stream.
func (p *Processor) ProcessInPlace(buf []float32) {
	for i := range buf {
		buf[i] = p.ProcessSample(buf[i])
	}
}

// Drive returns the pre-saturation input gain.
func (p *Processor) Drive() float32 { return p.drive }

// WarmthCoefficient returns the one-pole lowpass coefficient.
func (p *Processor) WarmthCoefficient() float32 { return p.warmthCoef }

// LimiterGain returns the gain applied before the final limiter.
func (p *Processor) LimiterGain() float32 { return p.limiterGain }

// FilterState returns the warmth lowpass output after the last sample.
func (p *Processor) FilterState() float32 { return p.filterState }
