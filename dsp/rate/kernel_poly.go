package rate

import "github.com/cwbudde/algo-vecmath"

// polyphaseKernel is the fractional-resampling family of §4.3: for
// each output sample it picks a polyphase filter phase, evaluates that
// phase's interpOrder-th degree polynomial per tap, and dot-products
// the resulting coefficients against the input window. It dispatches
// on st.divisor: for a rational residual (§4.1 step 3 found an exact
// p/q) the step's integer part counts 1/divisor input samples, so each
// output adds it to an explicit phase counter 0..divisor-1 and carries
// whole input samples into the accumulator's integer part; an
// irrational residual reads phase from the top bits of the 32.32
// accumulator's fraction and interpolates with the bits below them.
func polyphaseKernel(st *stage, out *fifo) error {
	poly := st.shared.poly
	numCoefs := poly.numCoefs
	taps := make([]float64, numCoefs)

	for {
		intIdx := int(st.at.Int())
		if intIdx+numCoefs > st.buf.Len() {
			break
		}
		window := st.buf.Peek(intIdx + numCoefs)[intIdx:]

		var phase int
		var x float64
		if st.divisor > 1 {
			phase = st.phase
		} else {
			phase = st.at.TopBits(st.phaseBits)
			x = st.at.FracFloat()*float64(uint64(1)<<uint(st.phaseBits)) - float64(phase)
		}

		for k := range taps {
			taps[k] = poly.evalTap(phase, k, x)
		}

		res := out.Reserve(1)
		res[0] = vecmath.DotProduct(taps, window)

		if st.divisor > 1 {
			st.phase += int(st.step.Int())
			st.at += newFixed(int64(st.phase/st.divisor), 0)
			st.phase %= st.divisor
		} else {
			st.at += st.step
		}
	}

	if consumed := int(st.at.Int()); consumed > 0 {
		st.buf.Advance(consumed)
		st.at = st.at.withZeroInt()
	}
	return nil
}
