// Package harmonics measures the harmonic signature of a nonlinear
// processor from a time-domain capture. It windows the signal, takes an
// FFT, and reports the fundamental level, per-harmonic magnitudes, and
// total harmonic distortion. It is an offline analysis tool, used mainly
// to characterize the tape chain's saturation stages.
package harmonics
