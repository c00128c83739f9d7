package rate

import (
	"math"
	"testing"
)

func TestPolyphaseKernelRationalPathCyclesPhase(t *testing.T) {
	numPhases, numCoefs := 4, 3
	proto := make([]float64, numCoefs*numPhases-1)
	for i := range proto {
		proto[i] = 1 // flat prototype: every evaluation should reproduce the input exactly
	}
	poly := preparePolyCoefs(proto, numPhases, numCoefs, 0, 1)

	sf := &SharedFilters{poly: poly}
	st := &stage{shared: sf, step: fixedFromFloat(1.0), divisor: 4}

	samples := make([]float64, 20)
	for i := range samples {
		samples[i] = 1
	}
	st.buf.Write(samples)

	var out fifo
	if err := polyphaseKernel(st, &out); err != nil {
		t.Fatalf("polyphaseKernel() error = %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected output samples, got none")
	}
	for i, v := range out.ReadPtr() {
		if math.Abs(v-float64(numCoefs)) > 1e-9 {
			t.Fatalf("out[%d] = %v, want %v (sum of %d unity taps)", i, v, numCoefs, numCoefs)
		}
	}
}

func TestPolyphaseKernelConsumesAndResetsIntegerPart(t *testing.T) {
	numPhases, numCoefs := 4, 2
	proto := make([]float64, numCoefs*numPhases-1)
	poly := preparePolyCoefs(proto, numPhases, numCoefs, 0, 1)

	sf := &SharedFilters{poly: poly}
	st := &stage{shared: sf, step: fixedFromFloat(1.0), divisor: 4}
	st.buf.Write(make([]float64, 10))

	var out fifo
	if err := polyphaseKernel(st, &out); err != nil {
		t.Fatalf("polyphaseKernel() error = %v", err)
	}
	if st.at.Int() != 0 {
		t.Fatalf("st.at.Int() = %d after consume, want 0", st.at.Int())
	}
}
