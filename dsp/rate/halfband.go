package rate

import algofft "github.com/cwbudde/algo-fft"

// halfBandFilter is a frequency-domain FIR: its DFT coefficient buffer
// plus the bookkeeping (`num_taps`, `post_peak`) needed to compute
// warm-up lengths and to drive overlap-save convolution in
// kernel_fft.go. Two of these live in [SharedFilters] — see §3.
type halfBandFilter struct {
	coefDFT  []complex128
	numTaps  int
	postPeak int
	dftLen   int
}

// buildHalfBandFilter designs (or adopts an explicit prototype) and
// forward-transforms a half-band filter, per §4.2's "Half-band filter
// init". multiplier scales the passband gain; the shared filter
// factory always passes 1, and doubleSampleKernel applies the
// zero-stuffing compensation (x2) itself.
func buildHalfBandFilter(plan *algofft.Plan[complex128], prototype []float64, phasePct, multiplier float64) (*halfBandFilter, error) {
	numTaps := len(prototype)
	if numTaps%2 == 0 {
		return nil, ErrOddTapsRequired
	}

	rotated, postPeak := firToPhase(prototype, phasePct)

	dftLen := nextDFTSize(numTaps)
	buf := make([]complex128, dftLen)
	scale := 2 * multiplier / float64(dftLen)
	for i, h := range rotated {
		pos := (i + dftLen - numTaps + 1) % dftLen
		buf[pos] = complex(h*scale, 0)
	}

	if err := plan.Forward(buf, buf); err != nil {
		return nil, err
	}

	return &halfBandFilter{coefDFT: buf, numTaps: numTaps, postPeak: postPeak, dftLen: dftLen}, nil
}

// designHalfBand builds the prototype for one of the two half-band
// slots described in §3: cutoff (the -6 dB point) at 0.25 of the
// pre-halving rate, with a fixed-width transition band centred on it
// and the quality's stop-band attenuation.
func designHalfBand(stopbandDB float64, allowAliasing bool) []float64 {
	trans := 0.05
	if allowAliasing {
		trans = 0.10
	}
	return designLowpass(0.5, trans, stopbandDB, 0)
}
