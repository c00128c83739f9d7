package rate

import "math"

// designLowpass is the `design_lpf` collaborator of §6. Because this
// module owns its entire numerical dependency chain (there is no
// surrounding plugin container to supply it) it is implemented here,
// generalizing the Kaiser-windowed-sinc design
// dsp/resample/resample_design.go uses for its single-stage polyphase
// filter to the half-band factory's explicit pass/stop/transition/
// attenuation/oversampling parameters.
//
// When phases > 0 the returned prototype is oversampled: its length is
// numCoefs*phases - 1, ready for [preparePolyCoefs].
func designLowpass(passHz, transHz, attenDB float64, phases int) []float64 {
	beta := kaiserBetaForAtten(attenDB)
	numTaps := kaiserTapsFor(attenDB, transHz)
	if numTaps%2 == 0 {
		numTaps++
	}

	if phases > 0 {
		numCoefs := (numTaps + phases - 1) / phases
		numTaps = numCoefs*phases - 1
	}

	fc := passHz / 2
	taps := make([]float64, numTaps)
	center := 0.5 * float64(numTaps-1)
	div := 1.0
	if phases > 0 {
		div = float64(phases)
	}
	for n := range numTaps {
		t := (float64(n) - center) / div
		h := 2 * fc * sincLP(2*fc*t) * kaiserWindowLP(n, numTaps, beta)
		taps[n] = h
	}

	normalizeDCGain(taps, div)

	return taps
}

// firToPhase rotates a linear-phase prototype to the requested phase
// percentage (0 = minimum, 50 = linear/no-op, 100 = maximum), returning
// the rotated taps and the design's peak index (`post_peak`).
func firToPhase(h []float64, phasePct float64) (out []float64, postPeak int) {
	n := len(h)
	if n == 0 {
		return nil, 0
	}
	linearPeak := (n - 1) / 2

	switch {
	case math.Abs(phasePct-50) < 1e-9:
		out = append([]float64(nil), h...)
		return out, linearPeak

	case phasePct <= 0:
		out = toMinimumPhase(h)
		return out, 0

	case phasePct >= 100:
		out = toMinimumPhase(h)
		reverseInPlace(out)
		return out, len(out) - 1

	default:
		// Between the two extremes there is no closed form without a
		// full allpass group-delay design; blend linearly between the
		// minimum- and linear-phase responses' peak positions, which is
		// exact at the 0/50/100 anchor points and a smooth, monotonic
		// approximation in between.
		minH := toMinimumPhase(h)
		frac := phasePct / 50.0 // 0..1 across [0,50]
		if phasePct > 50 {
			frac = (phasePct - 50) / 50.0 // 0..1 across [50,100]
			maxH := append([]float64(nil), minH...)
			reverseInPlace(maxH)
			out = blend(h, maxH, frac)
			peak := linearPeak + int(math.Round(frac*float64(len(out)-1-linearPeak)))
			return out, peak
		}
		out = blend(minH, h, frac)
		peak := int(math.Round(frac * float64(linearPeak)))
		return out, peak
	}
}

// designFixedLengthHalfBand builds a short, odd-length, quarter-sample-
// rate-cutoff half-band FIR for the time-domain cascade stages
// (half_sample_25, half_sample_low), which trade filter quality for the
// fixed, small tap count interior stages need to stay cheap.
func designFixedLengthHalfBand(numTaps int) []float64 {
	if numTaps%2 == 0 {
		numTaps++
	}
	taps := make([]float64, numTaps)
	center := 0.5 * float64(numTaps-1)
	for n := range numTaps {
		t := float64(n) - center
		h := 0.5 * sincLP(0.5*t)
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(n)/float64(numTaps-1)) // Hann
		taps[n] = h * w
	}
	normalizeDCGain(taps, 1)
	return taps
}

func blend(a, b []float64, frac float64) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = a[i]*(1-frac) + b[i]*frac
	}
	return out
}

func reverseInPlace(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func kaiserBetaForAtten(attenDB float64) float64 {
	switch {
	case attenDB > 50:
		return 0.1102 * (attenDB - 8.7)
	case attenDB >= 21:
		return 0.5842*math.Pow(attenDB-21, 0.4) + 0.07886*(attenDB-21)
	default:
		return 0
	}
}

func kaiserTapsFor(attenDB, transHz float64) int {
	if transHz <= 0 {
		transHz = 0.01
	}
	n := int(math.Ceil((attenDB - 8) / (2.285 * 2 * math.Pi * transHz)))
	if n < 4 {
		n = 4
	}
	return n
}

func normalizeDCGain(taps []float64, gain float64) {
	var sum float64
	for _, v := range taps {
		sum += v
	}
	if sum == 0 {
		return
	}
	scale := gain / sum
	for i := range taps {
		taps[i] *= scale
	}
}

func sincLP(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}
	pix := math.Pi * x
	return math.Sin(pix) / pix
}

func kaiserWindowLP(i, n int, beta float64) float64 {
	if n <= 1 || beta == 0 {
		return 1
	}
	t := 2*float64(i)/float64(n-1) - 1
	a := math.Sqrt(math.Max(0, 1-t*t))
	return besselI0(beta*a) / besselI0(beta)
}

func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	x2 := (x * x) / 4
	for k := 1; k < 64; k++ {
		term *= x2 / float64(k*k)
		sum += term
		if term < 1e-16*sum {
			break
		}
	}
	return sum
}
