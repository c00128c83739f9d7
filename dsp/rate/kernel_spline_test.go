package rate

import (
	"math"
	"testing"
)

func TestHermiteEvalPassesThroughKnownPoints(t *testing.T) {
	sm1, s0, s1, s2 := 1.0, 2.0, 5.0, 3.0
	if got := hermiteEval(0, sm1, s0, s1, s2); math.Abs(got-s0) > 1e-9 {
		t.Fatalf("hermiteEval(0,...) = %v, want s0 = %v", got, s0)
	}
	if got := hermiteEval(1, sm1, s0, s1, s2); math.Abs(got-s1) > 1e-9 {
		t.Fatalf("hermiteEval(1,...) = %v, want s1 = %v", got, s1)
	}
}

func TestCubicSplineKernelUnityStepIsIdentity(t *testing.T) {
	st := &stage{step: fixedFromFloat(1.0)}
	st.buf.Write([]float64{0, 0, 0, 10, 20, 30, 40})

	var out fifo
	if err := cubicSplineKernel(st, &out); err != nil {
		t.Fatalf("cubicSplineKernel() error = %v", err)
	}
	got := out.ReadPtr()
	want := []float64{0, 0, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("len(out) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("out[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
