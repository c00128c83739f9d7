package rate

import (
	"testing"

	algofft "github.com/cwbudde/algo-fft"
)

func TestHalfSampleKernelDecimates(t *testing.T) {
	proto := designHalfBand(80, false)
	dftLen := nextDFTSize(len(proto))

	sf := &SharedFilters{fftCache: make(map[int]*algofft.Plan[complex128])}
	plan, err := sf.planFor(dftLen)
	if err != nil {
		t.Fatalf("planFor() error = %v", err)
	}
	filt, err := buildHalfBandFilter(plan, proto, 50, 1)
	if err != nil {
		t.Fatalf("buildHalfBandFilter() error = %v", err)
	}

	st := newStage("half_sample", halfSampleKernel, filt.postPeak, filt.numTaps-1, filt.postPeak)
	st.filter = filt
	st.shared = sf

	n := filt.dftLen * 3
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i%7) - 3
	}
	st.buf.Write(samples)

	var out fifo
	if err := halfSampleKernel(st, &out); err != nil {
		t.Fatalf("halfSampleKernel() error = %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected decimated output samples, got none")
	}

	consumed := n + filt.postPeak - st.buf.Len()
	wantApproxOut := consumed / 2
	if diff := out.Len() - wantApproxOut; diff < -4 || diff > 4 {
		t.Errorf("out.Len() = %d, want approximately %d (consumed/2)", out.Len(), wantApproxOut)
	}
}

func TestDoubleSampleKernelEmitsOutput(t *testing.T) {
	proto := designHalfBand(80, false)
	dftLen := nextDFTSize(len(proto))

	sf := &SharedFilters{fftCache: make(map[int]*algofft.Plan[complex128])}
	plan, err := sf.planFor(dftLen)
	if err != nil {
		t.Fatalf("planFor() error = %v", err)
	}
	filt, err := buildHalfBandFilter(plan, proto, 50, 1)
	if err != nil {
		t.Fatalf("buildHalfBandFilter() error = %v", err)
	}

	st := newStage("double_sample", doubleSampleKernel, filt.postPeak, filt.numTaps-1, filt.postPeak)
	st.filter = filt
	st.shared = sf

	samples := make([]float64, filt.dftLen)
	for i := range samples {
		samples[i] = 1
	}
	st.buf.Write(samples)

	var out fifo
	if err := doubleSampleKernel(st, &out); err != nil {
		t.Fatalf("doubleSampleKernel() error = %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected upsampled output samples, got none")
	}
}
