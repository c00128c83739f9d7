package rate

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// nextDFTSize is the `set_dft_length` collaborator of §6: the smallest
// power-of-two size an algofft plan accepts that is >= n.
func nextDFTSize(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}

// newComplexPlan builds an algofft plan for a real-valued DFT of length
// n, used by the half-band filter factory and stage kernels as the
// `safe_rdft` collaborator of §6. A real signal is carried in the real
// part of a complex128 buffer; algofft computes the full complex
// spectrum rather than a packed real-DFT layout, which is a strictly
// more general and equally valid implementation of the same contract.
func newComplexPlan(n int) (*algofft.Plan[complex128], error) {
	return algofft.NewPlan64(n)
}

// toMinimumPhase converts a linear-phase FIR prototype to minimum
// phase using the real-cepstrum (homomorphic) method: take the log
// magnitude spectrum, transform to the cepstral domain, fold the
// anti-causal half onto the causal half (doubling it and zeroing the
// rest), then exponentiate back through the spectral domain. This is
// the standard technique behind dsp/filter/hilbert's analytic-signal
// construction, applied here to a magnitude response instead of a
// signal.
func toMinimumPhase(h []float64) []float64 {
	n := nextDFTSize(len(h) * 4)
	plan, err := newComplexPlan(n)
	if err != nil {
		return append([]float64(nil), h...)
	}

	padded := make([]complex128, n)
	for i, v := range h {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, padded); err != nil {
		return append([]float64(nil), h...)
	}

	logSpec := make([]complex128, n)
	for i, c := range spectrum {
		mag := cmplx.Abs(c)
		if mag < 1e-20 {
			mag = 1e-20
		}
		logSpec[i] = complex(math.Log(mag), 0)
	}

	cepstrum := make([]complex128, n)
	if err := plan.Inverse(cepstrum, logSpec); err != nil {
		return append([]float64(nil), h...)
	}

	for i := 1; i < n/2; i++ {
		cepstrum[i] *= 2
	}
	for i := n/2 + 1; i < n; i++ {
		cepstrum[i] = 0
	}

	minLogSpec := make([]complex128, n)
	if err := plan.Forward(minLogSpec, cepstrum); err != nil {
		return append([]float64(nil), h...)
	}
	for i := range minLogSpec {
		minLogSpec[i] = cmplx.Exp(minLogSpec[i])
	}

	timeDomain := make([]complex128, n)
	if err := plan.Inverse(timeDomain, minLogSpec); err != nil {
		return append([]float64(nil), h...)
	}

	out := make([]float64, len(h))
	for i := range out {
		out[i] = real(timeDomain[i])
	}
	return out
}
