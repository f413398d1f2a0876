// Package tape provides a streaming tape-emulation processor.
//
// The chain is drive/saturation (tanh), a one-pole "warmth" lowpass, and a
// gentle tanh soft limiter. The processor holds a single scalar of state
// (the lowpass output) and processes float32 blocks in place, so output is
// continuous across arbitrary buffer boundaries. It is designed for use
// inside a real-time audio callback: the hot path performs only arithmetic
// and never allocates.
package tape
