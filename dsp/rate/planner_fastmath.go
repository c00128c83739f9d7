//go:build fastmath

package rate

import "github.com/meko-christian/algo-approx"

// ln2 is the natural logarithm of 2.
const ln2 = 0.693147180559945309417232121458

// log2 computes log base 2 using algo-approx's fast natural-log
// approximation, trading a little precision in the planner's level
// calculation for speed. Only the level (an integer floor) depends on
// this value, so the reduced precision never affects correctness — at
// worst it nudges a factor extremely close to a power of two across the
// boundary between two adjacent levels.
func log2(x float64) float64 {
	return approx.FastLog(x) / ln2
}
