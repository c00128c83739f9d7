package rate

// halfSampleKernel decimates st's input by 2 using overlap-save
// convolution against the filter's forward-transformed taps, per
// §4.3's half_sample kernel. It is used for the interior cascade's
// last halving and for the post-stage at High/Medium/Very quality.
func halfSampleKernel(st *stage, out *fifo) error {
	filt := st.filter
	plan, err := st.shared.planFor(filt.dftLen)
	if err != nil {
		return err
	}

	overlap := filt.numTaps - 1
	hop := filt.dftLen - overlap
	if hop <= 0 {
		return nil
	}

	scratch := make([]complex128, filt.dftLen)
	for st.buf.Len() >= filt.dftLen {
		window := st.buf.Peek(filt.dftLen)
		for i, v := range window {
			scratch[i] = complex(v, 0)
		}

		if err := plan.Forward(scratch, scratch); err != nil {
			return err
		}
		for i := range scratch {
			scratch[i] *= filt.coefDFT[i]
		}
		if err := plan.Inverse(scratch, scratch); err != nil {
			return err
		}

		nOut := hop / 2
		res := out.Reserve(nOut)
		for i := range res {
			res[i] = real(scratch[overlap+2*i])
		}
		st.buf.Advance(hop)
	}
	return nil
}

// doubleSampleKernel upsamples st's input by 2: each raw input sample
// is zero-stuffed against an inserted zero, the pair is overlap-save
// filtered through the same half-band machinery as halfSampleKernel,
// and the result is rescaled by 2 to restore the pre-stuffing
// amplitude, per §4.3's double_sample kernel.
func doubleSampleKernel(st *stage, out *fifo) error {
	filt := st.filter
	plan, err := st.shared.planFor(filt.dftLen)
	if err != nil {
		return err
	}

	overlap := filt.numTaps - 1
	hop := filt.dftLen - overlap
	if hop <= 0 {
		return nil
	}

	inWin := filt.dftLen / 2
	overlapIn := overlap / 2
	hopIn := inWin - overlapIn
	if hopIn <= 0 {
		return nil
	}

	scratch := make([]complex128, filt.dftLen)
	for st.buf.Len() >= inWin {
		window := st.buf.Peek(inWin)
		for i, v := range window {
			scratch[2*i] = complex(v, 0)
			scratch[2*i+1] = 0
		}

		if err := plan.Forward(scratch, scratch); err != nil {
			return err
		}
		for i := range scratch {
			scratch[i] *= filt.coefDFT[i]
		}
		if err := plan.Inverse(scratch, scratch); err != nil {
			return err
		}

		res := out.Reserve(hop)
		for i := range res {
			res[i] = real(scratch[overlap+i]) * 2
		}
		st.buf.Advance(hopIn)
	}
	return nil
}
