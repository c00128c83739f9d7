package rate

import (
	"sync"

	algofft "github.com/cwbudde/algo-fft"
)

// sharedKey identifies an equivalence class of filter-factory output:
// pipelines built with the same key may safely share one SharedFilters,
// per §5's "logically once-writable... owned jointly by all pipelines".
type sharedKey struct {
	quality       Quality
	allowAliasing bool
	phase         float64
	interpOrder   int
	divisor       int
}

var (
	sharedMu       sync.Mutex
	sharedRegistry = map[sharedKey]*SharedFilters{}
)

// SharedFilters is the `rate_shared_t` of §3: the two half-band filters
// and the polyphase coefficient table, built once per distinct
// configuration and shared read-only across every [Rate] built with
// that configuration thereafter. It also holds the FFT plan cache
// (see planFor), so every pipeline sharing these filters shares the
// plans as well.
type SharedFilters struct {
	key      sharedKey
	refs     int
	halfband [2]*halfBandFilter // slot 1 aliases slot 0 when designs coincide
	poly     *polyCoefs
	interior []float64 // half_sample_25 prototype
	short    []float64 // half_sample_low prototype (Low quality)

	mu       sync.Mutex
	fftCache map[int]*algofft.Plan[complex128]
}

// acquireSharedFilters returns the SharedFilters for key, building it on
// first use (idempotent per §4.2 — a second call with the same key
// returns the same pointer without rebuilding).
func acquireSharedFilters(key sharedKey, opts PlanOptions, profile qualityProfile, divisor int) (*SharedFilters, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sf, ok := sharedRegistry[key]; ok {
		sf.refs++
		return sf, nil
	}

	sf := &SharedFilters{key: key, refs: 1, fftCache: make(map[int]*algofft.Plan[complex128])}
	if err := sf.build(opts, profile, divisor); err != nil {
		return nil, err
	}
	sharedRegistry[key] = sf
	return sf, nil
}

func (sf *SharedFilters) build(opts PlanOptions, profile qualityProfile, divisor int) error {
	proto := designHalfBand(profile.StopbandDB, opts.AllowAliasing)
	dftLen := nextDFTSize(len(proto))
	plan, err := sf.planFor(dftLen)
	if err != nil {
		return err
	}

	filt0, err := buildHalfBandFilter(plan, proto, opts.Phase, 1.0)
	if err != nil {
		return err
	}
	sf.halfband[0] = filt0
	// The halve (post-stage) and halve-or-double (pre-stage) filters
	// use the same pass/stop/attenuation design in this implementation,
	// so they alias per §3's "may be equal by pointer aliasing when the
	// two designs coincide".
	sf.halfband[1] = filt0

	interpOrder := opts.InterpOrder
	if interpOrder < 0 {
		interpOrder = profile.InterpOrder
	}

	// When the planner snapped the ratio to an exact rational divisor,
	// the poly table must have exactly that many phases — one per
	// position in the repeating cycle — rather than the quality
	// profile's oversampling count, per rate.c's rate_init: phases =
	// divisor == 1 ? (1 << phase_bits) : divisor.
	phases := profile.NumPhases
	if divisor > 1 {
		phases = divisor
	}

	trans := (1 - profile.CutoffScale) / 2
	polyProto := designLowpass(profile.CutoffScale, trans, profile.StopbandDB, phases)
	sf.poly = preparePolyCoefs(polyProto, phases, profile.NumCoefs, interpOrder, float64(phases))

	sf.interior = designFixedLengthHalfBand(profile.InteriorTaps)
	if profile.PostPeakShort > 0 {
		sf.short = designFixedLengthHalfBand(profile.PostPeakShort)
	} else {
		sf.short = sf.interior
	}

	return nil
}

// planFor returns (creating if needed) the cached FFT plan for size n.
func (sf *SharedFilters) planFor(n int) (*algofft.Plan[complex128], error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if p, ok := sf.fftCache[n]; ok {
		return p, nil
	}
	p, err := newComplexPlan(n)
	if err != nil {
		return nil, err
	}
	sf.fftCache[n] = p
	return p, nil
}

// release drops this Rate's reference, tearing the shared state down
// once the last pipeline using it closes — guarding the pointer-
// aliasing case so the two half-band buffers are not doubly released.
func (sf *SharedFilters) release() {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	sf.refs--
	if sf.refs > 0 {
		return
	}
	delete(sharedRegistry, sf.key)
	sf.halfband[0] = nil
	sf.halfband[1] = nil
	sf.poly = nil
	sf.fftCache = nil
}
