package rate

// cubicSplineKernel is the Quick-quality fallback: a 4-point cubic
// evaluated per output sample directly from the 32.32 accumulator's
// fraction, with no filter design or FFT at all. It fits the same
// order-3 finite-difference stencil as polyphase.go's preparePolyCoefs
// (and rate.c's cubic_spline), computed on the fly instead of
// tabulated, since a single-quality fallback has no phase table to
// amortize the work across.
func cubicSplineKernel(st *stage, out *fifo) error {
	for {
		intIdx := int(st.at.Int())
		if intIdx+4 > st.buf.Len() {
			break
		}
		win := st.buf.Peek(intIdx + 4)[intIdx:]
		sm1, s0, s1, s2 := win[0], win[1], win[2], win[3]

		frac := st.at.FracFloat()
		res := out.Reserve(1)
		res[0] = hermiteEval(frac, sm1, s0, s1, s2)

		st.at += st.step
	}

	if consumed := int(st.at.Int()); consumed > 0 {
		st.buf.Advance(consumed)
		st.at = st.at.withZeroInt()
	}
	return nil
}

// hermiteEval evaluates the order-3 finite-difference cubic through
// four consecutive samples at fractional offset x in [0,1) between s0
// and s1.
func hermiteEval(x, sm1, s0, s1, s2 float64) float64 {
	c := 0.5*(s1+sm1) - s0
	d := (s2 - s1 + sm1 - s0 - 4*c) / 6
	b := s1 - s0 - d - c
	return ((d*x+c)*x+b)*x + s0
}
