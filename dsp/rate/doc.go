// Package rate implements an arbitrary-ratio, double-precision,
// monophonic sample-rate converter.
//
// A [Rate] pipeline decomposes an input/output ratio into a chain of
// elementary stages — half-band FFT decimation/interpolation, short
// time-domain half-band stages for interior cascades, a polyphase FIR
// fractional resampler with optional inter-phase interpolation, and a
// cubic-spline fallback for the Quick quality level — linked by FIFOs.
// The caller drives the pipeline with Input/Process/Output/Flush/Close,
// in that causal order; see [Rate] for the full contract.
//
// Quality presets:
//
//	level          taps/phase   nominal stopband
//	QualityQuick   n/a (spline) n/a
//	QualityLow     8            ~40 dB
//	QualityMedium  16           ~110 dB
//	QualityHigh    32           ~140 dB
//	QualityVery    48           ~160 dB
//
// Typical usage:
//
//	r, err := rate.NewRate(44100.0/48000.0, rate.QualityHigh)
//	r.Input(samples)
//	r.Process()
//	n := r.Output(out)
//	r.Flush()
//	r.Close()
package rate
