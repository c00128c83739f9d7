package rate

// stageFunc is a stage kernel: it consumes as much of st's input FIFO
// as its filter window allows and reserves in out exactly the samples
// it produces, so no kernel needs to trim a reservation afterwards.
type stageFunc func(st *stage, out *fifo) error

// stage is the per-stage mutable state of §3: an input FIFO, the
// kernel that drains it, the pre/pre_post/preload bracket, a half-band
// filter selector, and — for fractional stages — the 32.32 phase
// accumulator and its rational-path divisor.
type stage struct {
	buf     fifo
	kernel  stageFunc
	label   string
	pre     int
	prePost int
	preload int

	at      fixed64
	step    fixed64
	divisor int // >1 iff the residual ratio is exactly rational
	phase   int // rational-path phase counter, 0..divisor-1

	phaseBits int // irrational-path phase index width, log2(numPhases)

	filter   *halfBandFilter
	timeTaps []float64
	shared   *SharedFilters
}

// newStage allocates a stage and primes its FIFO with preload zero
// samples, so the first emitted output sample aligns with the caller's
// time zero per the glossary's definition of preload.
func newStage(label string, kernel stageFunc, pre, prePost, preload int) *stage {
	st := &stage{label: label, kernel: kernel, pre: pre, prePost: prePost, preload: preload}
	if preload > 0 {
		st.buf.Write(make([]float64, preload))
	}
	return st
}
