//go:build !fastmath

package rate

import "math"

// log2 computes log base 2 using the standard library. See
// planner_fastmath.go for the algo-approx-backed alternative enabled by
// the "fastmath" build tag, mirroring
// dsp/effects/compressor_math_fast.go's split in the teacher repo.
func log2(x float64) float64 {
	return math.Log2(x)
}
