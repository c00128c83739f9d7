package rate

import "math"

// PlanOptions configures [planRatio]'s decomposition of a conversion
// factor into pipeline stages.
type PlanOptions struct {
	Quality       Quality
	InterpOrder   int // -1 = auto (quality default), else 0..3
	Phase         float64
	Bandwidth     float64
	AllowAliasing bool
}

// plan is the Ratio Planner's output: the decisions of §4.1, steps 1-5.
type plan struct {
	quick      bool
	upsample   bool
	level      int
	factor     float64 // residual factor for the final fractional stage
	divisor    int     // >1 iff the residual factor is exactly rational
	step       fixed64
	outInRatio fixed64
	pre        int
	prePost    int
}

// planRatio decomposes factor = inputRate/outputRate into a pipeline
// plan, implementing §4.1 verbatim.
func planRatio(factor float64, opts PlanOptions) (plan, error) {
	if !(factor > 0) || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return plan{}, ErrInvalidRate
	}
	if opts.InterpOrder < -1 || opts.InterpOrder > 3 {
		return plan{}, ErrInvalidInterpOrder
	}

	q := opts.Quality.clamp()

	if q == QualityQuick {
		step := fixedFromFloat(factor)
		pp := int64(3)
		if ip := step.Int(); ip > pp {
			pp = ip
		}
		return plan{
			quick: true, step: step, divisor: 1,
			pre: 1, prePost: int(pp),
		}, nil
	}

	p := plan{}
	p.upsample = factor < 1

	// Step 2: number of halving stages and the residual factor.
	level := 0
	if !p.upsample {
		level = int(math.Floor(log2(factor)))
		if level < 0 {
			level = 0
		}
	}
	p.level = level

	exponent := level
	if !p.upsample {
		exponent++
	}
	residual := factor / math.Pow(2, float64(exponent))

	// Step 3: rational approximation search.
	divisor := 1
	const maxI = 2048
	const fixedScale = 4294967296.0 // 2^32
	for i := 2; i <= maxI; i++ {
		target := residual * float64(i)
		candidate := math.Round(target)
		if candidate == 0 {
			continue
		}
		tol := (4.0 / fixedScale) * (1 - float64(i)/4096.0)
		relDev := math.Abs(target-candidate) / target
		if relDev < tol {
			if candidate == float64(i) {
				residual = 1
				divisor = 2
				p.upsample = false
			} else {
				residual = candidate
				divisor = i
			}
			break
		}
	}
	p.factor = residual
	p.divisor = divisor

	// Step 4 & 5.
	p.step = fixedFromFloat(residual)
	if p.step == 0 {
		p.step = 1
	}
	p.outInRatio = fixed64(roundFloatToUint64(fixedScale * float64(divisor) / float64(uint64(p.step))))

	return p, nil
}
