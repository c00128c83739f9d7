package rate

// Quality selects the anti-aliasing filter family used by the polyphase
// and half-band stages. It trades CPU cost against stop-band
// attenuation and transition-band width.
type Quality int

const (
	// QualityQuick skips filter design entirely and resamples with a
	// cubic spline; cheapest, lowest fidelity.
	QualityQuick Quality = iota
	// QualityLow uses the shortest filters; when downsampling, its post
	// stage is a short time-domain half-band instead of an FFT one.
	QualityLow
	// QualityMedium is a reasonable real-time default.
	QualityMedium
	// QualityHigh is the package default: FFT half-band stages plus a
	// long polyphase FIR.
	QualityHigh
	// QualityVery maximizes stop-band attenuation and passband flatness.
	QualityVery
)

// clamp maps any out-of-range Quality to QualityHigh, per §7's
// "quality out of range (silently clamped to High)".
func (q Quality) clamp() Quality {
	if q < QualityQuick || q > QualityVery {
		return QualityHigh
	}
	return q
}

// qualityProfile carries the default filter-design parameters for one
// quality level, the way [resample.Profile] does for the teacher's
// single-stage polyphase resampler, generalized here with the extra
// knobs the multi-stage pipeline needs: a bandwidth/phase preset and a
// separate interior-stage tap count for the cascaded half-band stages.
type qualityProfile struct {
	NumCoefs      int     // polyphase FIR taps per phase
	NumPhases     int     // polyphase FIR phase count
	InterpOrder   int     // default interpolation order when caller passes -1
	CutoffScale   float64 // fraction of the theoretical cutoff actually used
	KaiserBeta    float64
	StopbandDB    float64
	Bandwidth     float64 // percentage, 0 = "use preset" is resolved before reaching here
	Phase         float64 // percentage, 50 = linear phase
	InteriorTaps  int     // half_sample_25 prototype length
	PostPeakShort int     // half_sample_low prototype length (Low quality)
}

func profileFor(q Quality) qualityProfile {
	switch q.clamp() {
	case QualityLow:
		return qualityProfile{
			NumCoefs: 8, NumPhases: 64, InterpOrder: 1,
			CutoffScale: 0.87, KaiserBeta: 5.0, StopbandDB: 40,
			Bandwidth: 91, Phase: 50, InteriorTaps: 9, PostPeakShort: 7,
		}
	case QualityMedium:
		return qualityProfile{
			NumCoefs: 16, NumPhases: 128, InterpOrder: 2,
			CutoffScale: 0.91, KaiserBeta: 7.0, StopbandDB: 110,
			Bandwidth: 95, Phase: 50, InteriorTaps: 13, PostPeakShort: 0,
		}
	case QualityVery:
		return qualityProfile{
			NumCoefs: 48, NumPhases: 512, InterpOrder: 3,
			CutoffScale: 0.97, KaiserBeta: 10.0, StopbandDB: 160,
			Bandwidth: 98.5, Phase: 50, InteriorTaps: 21, PostPeakShort: 0,
		}
	case QualityQuick:
		return qualityProfile{}
	default: // QualityHigh
		return qualityProfile{
			NumCoefs: 32, NumPhases: 256, InterpOrder: 3,
			CutoffScale: 0.95, KaiserBeta: 9.0, StopbandDB: 140,
			Bandwidth: 96, Phase: 50, InteriorTaps: 17, PostPeakShort: 0,
		}
	}
}
