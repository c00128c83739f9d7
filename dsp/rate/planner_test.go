package rate

import (
	"math"
	"testing"
)

func TestPlanRatioRejectsInvalidFactor(t *testing.T) {
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := planRatio(f, PlanOptions{Quality: QualityHigh, InterpOrder: -1}); err == nil {
			t.Errorf("planRatio(%v) expected error, got nil", f)
		}
	}
}

func TestPlanRatioRejectsInterpOrder(t *testing.T) {
	if _, err := planRatio(1.5, PlanOptions{Quality: QualityHigh, InterpOrder: 4}); err == nil {
		t.Fatal("expected error for interpOrder=4")
	}
}

func TestPlanRatioQuickIsFlat(t *testing.T) {
	p, err := planRatio(2.5, PlanOptions{Quality: QualityQuick, InterpOrder: -1})
	if err != nil {
		t.Fatalf("planRatio() error = %v", err)
	}
	if !p.quick || p.level != 0 {
		t.Fatalf("quick plan = %+v, want quick with no halving stages", p)
	}
}

func TestPlanRatioUpsampleDetected(t *testing.T) {
	p, err := planRatio(0.5, PlanOptions{Quality: QualityHigh, InterpOrder: -1})
	if err != nil {
		t.Fatalf("planRatio() error = %v", err)
	}
	if !p.upsample {
		t.Fatalf("plan.upsample = false, want true for factor < 1")
	}
}

func TestPlanRatioLevelGrowsWithFactor(t *testing.T) {
	p4, err := planRatio(4.2, PlanOptions{Quality: QualityHigh, InterpOrder: -1})
	if err != nil {
		t.Fatalf("planRatio(4.2) error = %v", err)
	}
	p1, err := planRatio(1.2, PlanOptions{Quality: QualityHigh, InterpOrder: -1})
	if err != nil {
		t.Fatalf("planRatio(1.2) error = %v", err)
	}
	if p4.level <= p1.level {
		t.Fatalf("level(4.2)=%d should exceed level(1.2)=%d", p4.level, p1.level)
	}
}

func TestPlanRatio44100To48000SnapsRational(t *testing.T) {
	factor := 44100.0 / 48000.0
	p, err := planRatio(factor, PlanOptions{Quality: QualityHigh, InterpOrder: -1})
	if err != nil {
		t.Fatalf("planRatio() error = %v", err)
	}
	// 44100/48000 reduces to 147/160; the search finds its period (the
	// denominator, 160) at i=160, where residual*160 rounds exactly to 147.
	if p.divisor != 160 {
		t.Fatalf("divisor = %d, want 160 for the 44100/48000 rational snap", p.divisor)
	}
}
