package rate

import (
	"math"
	"math/bits"
)

// RateOption configures a [Rate] beyond its quality preset, mirroring
// the functional-options pattern dsp/resample.Option uses for its
// single-stage resampler.
type RateOption func(*PlanOptions)

// WithInterpOrder overrides the polyphase interpolation order (0..3);
// -1 (the default) uses the quality's preset.
func WithInterpOrder(order int) RateOption {
	return func(o *PlanOptions) { o.InterpOrder = order }
}

// WithPhase sets the half-band filter phase percentage
// (0 = minimum phase, 50 = linear phase, 100 = maximum phase). The
// polyphase prototype is always linear phase.
func WithPhase(pct float64) RateOption {
	return func(o *PlanOptions) { o.Phase = pct }
}

// WithBandwidth records a passband-edge percentage in [PlanOptions].
// The filter design does not read it: the quality preset's cutoff is
// always used.
func WithBandwidth(pct float64) RateOption {
	return func(o *PlanOptions) { o.Bandwidth = pct }
}

// WithAllowAliasing widens the half-band transition bands, trading
// stop-band rejection for a cheaper filter, per §4.1's "aliasing
// allowed" branch.
func WithAllowAliasing(allow bool) RateOption {
	return func(o *PlanOptions) { o.AllowAliasing = allow }
}

// Rate is a single-channel, double-precision sample-rate converter: a
// chain of stages, built once by [NewRate] from a target factor and
// driven by Input/Process/Output/Flush. It is not safe for concurrent
// use from multiple goroutines.
type Rate struct {
	chain   []*stage
	outFIFO fifo
	shared  *SharedFilters

	factor   float64
	upsample bool
	level    int
	divisor  int

	samplesIn  int64
	samplesOut int64
	closed     bool
}

// NewRate builds a pipeline converting at factor = inputRate/outputRate
// (factor > 1 downsamples, factor < 1 upsamples), per §4.1's Ratio
// Planner and §4.2's Filter Factory.
func NewRate(factor float64, quality Quality, opts ...RateOption) (*Rate, error) {
	po := PlanOptions{Quality: quality, InterpOrder: -1, Phase: 50}
	for _, opt := range opts {
		opt(&po)
	}

	p, err := planRatio(factor, po)
	if err != nil {
		return nil, err
	}

	r := &Rate{factor: factor, upsample: p.upsample, level: p.level, divisor: p.divisor}

	if p.quick {
		st := newStage("cubic_spline", cubicSplineKernel, p.pre, p.prePost, p.prePost)
		st.step = p.step
		r.chain = []*stage{st}
		return r, nil
	}

	profile := profileFor(po.Quality.clamp())
	key := sharedKey{quality: po.Quality.clamp(), allowAliasing: po.AllowAliasing, phase: po.Phase, interpOrder: po.InterpOrder, divisor: p.divisor}
	sf, err := acquireSharedFilters(key, po, profile, p.divisor)
	if err != nil {
		return nil, err
	}
	r.shared = sf

	var chain []*stage

	if p.upsample {
		filt := sf.halfband[1]
		pre := newStage("double_sample", doubleSampleKernel, filt.postPeak, filt.numTaps-1, filt.postPeak)
		pre.filter = filt
		pre.shared = sf
		chain = append(chain, pre)
	}

	for i := 0; i < p.level; i++ {
		var st *stage
		if i == p.level-1 {
			filt := sf.halfband[1]
			st = newStage("half_sample", halfSampleKernel, filt.postPeak, filt.numTaps-1, filt.postPeak)
			st.filter = filt
		} else {
			taps := sf.interior
			st = newStage("half_sample_25", halfSample25Kernel, len(taps)/2, len(taps)-1, len(taps)-1)
			st.timeTaps = taps
		}
		st.shared = sf
		chain = append(chain, st)
	}

	// A residual ratio of exactly 2 (out_in_ratio == 2) means the
	// fractional stage would upsample by exactly 2 and so undo the post
	// stage's halving; both are left out (as in rate.c's rate_init
	// "last_stage.out_in_ratio != 2" bypass) whenever another stage
	// remains, so the other half-band stages alone land on the target rate.
	bypass := uint64(p.outInRatio) == 2 && (p.level > 0 || p.upsample)

	if !bypass {
		var post *stage
		if profile.PostPeakShort > 0 {
			taps := sf.short
			post = newStage("half_sample_low", halfSampleLowKernel, len(taps)/2, len(taps)-1, len(taps)-1)
			post.timeTaps = taps
		} else {
			filt := sf.halfband[0]
			post = newStage("half_sample", halfSampleKernel, filt.postPeak, filt.numTaps-1, filt.postPeak)
			post.filter = filt
		}
		post.shared = sf
		chain = append(chain, post)
	}

	if !bypass {
		frac := newStage("poly", polyphaseKernel, sf.poly.numCoefs, sf.poly.numCoefs, sf.poly.numCoefs-1)
		frac.shared = sf
		frac.step = p.step
		frac.divisor = p.divisor
		frac.phaseBits = bits.Len(uint(profile.NumPhases - 1))
		chain = append(chain, frac)
	}

	r.chain = chain
	return r, nil
}

// Input appends samples to the pipeline's head FIFO. It does not
// itself produce output; call [Rate.Process] to drive the chain.
func (r *Rate) Input(samples []float64) error {
	if r.closed {
		return ErrClosed
	}
	if len(r.chain) == 0 {
		return nil
	}
	r.chain[0].buf.Write(samples)
	r.samplesIn += int64(len(samples))
	return nil
}

// Process drains each stage's FIFO into the next, and the last stage's
// into the output FIFO, as far as the buffered data allows.
func (r *Rate) Process() error {
	if r.closed {
		return ErrClosed
	}
	for i, st := range r.chain {
		var dst *fifo
		if i == len(r.chain)-1 {
			dst = &r.outFIFO
		} else {
			dst = &r.chain[i+1].buf
		}
		if err := st.kernel(st, dst); err != nil {
			return err
		}
	}
	return nil
}

// Output copies up to len(buf) samples from the output FIFO into buf,
// returning the number actually copied.
func (r *Rate) Output(buf []float64) int {
	n := r.outFIFO.Len()
	if n > len(buf) {
		n = len(buf)
	}
	if n <= 0 {
		return 0
	}
	copy(buf, r.outFIFO.Peek(n))
	r.outFIFO.Advance(n)
	r.samplesOut += int64(n)
	return n
}

// maxFlushIters bounds the zero-feed loop in Flush so a pipeline whose
// stages can never reach their occupancy threshold cannot hang.
const maxFlushIters = 1 << 16

// Flush pushes trailing zeros through the pipeline until the output
// FIFO plus every sample already read reaches round(samplesIn/factor),
// then trims the output FIFO to that target minus the samples already
// read. samplesIn counts only the input since the last Flush, while
// the count of samples read is never reset, so after a first stream has
// been flushed and read, a later Flush trims the output FIFO to zero
// unless the new input's target exceeds everything read so far.
func (r *Rate) Flush() error {
	if r.closed {
		return ErrClosed
	}
	if len(r.chain) == 0 {
		return nil
	}

	target := int64(math.Round(float64(r.samplesIn) / r.factor))
	const zeroBlock = 1024

	for i := 0; int64(r.outFIFO.Len())+r.samplesOut < target; i++ {
		if i >= maxFlushIters {
			break
		}
		r.chain[0].buf.Write(make([]float64, zeroBlock))
		if err := r.Process(); err != nil {
			return err
		}
	}

	want := target - r.samplesOut
	if want < 0 {
		want = 0
	}
	r.outFIFO.TrimTo(int(want))
	r.samplesIn = 0
	return nil
}

// Close releases this Rate's reference to its [SharedFilters], tearing
// down the shared half-band/polyphase tables once the last pipeline
// using them closes.
func (r *Rate) Close() error {
	if r.closed {
		return nil
	}
	if r.shared != nil {
		r.shared.release()
	}
	r.chain = nil
	r.closed = true
	return nil
}

// Ratio reports the configured conversion factor as (inputRate,
// outputRate) scaled to a unit output rate, mirroring
// dsp/resample.Resampler.Ratio()'s up/down introspection.
func (r *Rate) Ratio() (in, out float64) {
	return r.factor, 1
}

// Latency estimates the pipeline's warm-up length as the sum of every
// active stage's preload, each counted in that stage's own input
// samples (not converted to the output rate).
func (r *Rate) Latency() int {
	total := 0
	for _, st := range r.chain {
		total += st.preload
	}
	return total
}

// StageLabels reports the built pipeline's stage names in processing
// order, useful for logging or diagnosing which stages a given ratio
// produced.
func (r *Rate) StageLabels() []string {
	labels := make([]string, len(r.chain))
	for i, st := range r.chain {
		labels[i] = st.label
	}
	return labels
}
