package rate

import "github.com/cwbudde/algo-vecmath"

// halfSample25Kernel decimates st's input by 2 through a short, fixed-
// length time-domain half-band FIR, per §4.3's half_sample_25 kernel
// used by the interior cascade stages below the top level. The name
// carries over from the filter's quarter-sample-rate cutoff, not a
// literal tap count.
func halfSample25Kernel(st *stage, out *fifo) error {
	return timeDomainDecimateBy2(st, out)
}

// halfSampleLowKernel is the Low-quality downsample output stage: the
// same decimate-by-2 time-domain convolution as halfSample25Kernel,
// against a shorter prototype chosen for speed over attenuation.
func halfSampleLowKernel(st *stage, out *fifo) error {
	return timeDomainDecimateBy2(st, out)
}

func timeDomainDecimateBy2(st *stage, out *fifo) error {
	taps := st.timeTaps
	n := len(taps)
	if n == 0 {
		return nil
	}

	for st.buf.Len() >= n {
		window := st.buf.Peek(n)
		y := vecmath.DotProduct(taps, window)
		res := out.Reserve(1)
		res[0] = y
		st.buf.Advance(2)
	}
	return nil
}
