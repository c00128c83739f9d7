package rate

import "testing"

func TestFixedFromFloatRoundTrip(t *testing.T) {
	tests := []float64{0.5, 1.0, 1.5, 2.25, 0.0001}
	for _, v := range tests {
		f := fixedFromFloat(v)
		got := float64(f.Int()) + f.FracFloat()
		if diff := got - v; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("fixedFromFloat(%v) round-trips to %v", v, got)
		}
	}
}

func TestFixedWithZeroInt(t *testing.T) {
	f := newFixed(5, 1<<31)
	z := f.withZeroInt()
	if z.Int() != 0 {
		t.Fatalf("withZeroInt().Int() = %d, want 0", z.Int())
	}
	if z.Frac() != 1<<31 {
		t.Fatalf("withZeroInt().Frac() = %d, want %d", z.Frac(), uint32(1<<31))
	}
}

func TestFixedTopBits(t *testing.T) {
	f := newFixed(0, 1<<31) // fraction = 0.5
	if got := f.TopBits(1); got != 1 {
		t.Fatalf("TopBits(1) = %d, want 1", got)
	}
	if got := f.TopBits(8); got != 1<<7 {
		t.Fatalf("TopBits(8) = %d, want %d", got, 1<<7)
	}
}
