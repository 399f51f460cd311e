package fastener

// Thread root fatigue stress concentration (Norton eq. 15.15c).
const (
	kfBase        = 5.7
	kfSlopeISO    = 0.02682
	kfSlopeUSCust = 0.6812
)

// FatigueParams describes one bolt for the fatigue check. D is the nominal
// bolt diameter in the unit family selected by Units.
type FatigueParams struct {
	D     float64
	C     float64
	ATs   float64
	Sut   float64
	Se    float64
	Sy    float64
	Units UnitSystem
}

// SafetyFactors holds the three independent factors and their elementwise
// minimum, all shaped like the broadcast inputs.
type SafetyFactors struct {
	Yield      Series
	Separation Series
	Fatigue    Series
	Min        Series
}

// YieldSafetyFactor is the factor against yielding under static tension.
func YieldSafetyFactor(c, load, preload, aTs, sy float64) (float64, error) {
	if aTs <= 0 {
		return 0, opError("yield safety factor", ErrInvalidArea)
	}
	return yieldFactor(c, load, preload, aTs, sy), nil
}

func yieldFactor(c, load, preload, aTs, sy float64) float64 {
	bolt, _ := SegregateLoad(c, load)
	sigma := (bolt + preload) / aTs
	return sy / sigma
}

// YieldSafetyFactors evaluates YieldSafetyFactor elementwise.
func YieldSafetyFactors(c float64, load, preload Series, aTs, sy float64) (Series, error) {
	if aTs <= 0 {
		return nil, opError("yield safety factor", ErrInvalidArea)
	}
	n, err := broadcastLen("yield safety factor", load, preload)
	if err != nil {
		return nil, err
	}
	out := make(Series, n)
	for i := range out {
		out[i] = yieldFactor(c, load.At(i), preload.At(i), aTs, sy)
	}
	return out, nil
}

// SeparationSafetyFactor is the ratio of the load that would separate the
// joint to the applied load.
func SeparationSafetyFactor(c, load, preload float64) (float64, error) {
	if c >= 1 {
		return 0, opError("separation safety factor", ErrInvalidJointConstant)
	}
	return separationFactor(c, load, preload), nil
}

func separationFactor(c, load, preload float64) float64 {
	p0 := preload / (1 - c)
	return p0 / load
}

// SeparationSafetyFactors evaluates SeparationSafetyFactor elementwise.
func SeparationSafetyFactors(c float64, load, preload Series) (Series, error) {
	if c >= 1 {
		return nil, opError("separation safety factor", ErrInvalidJointConstant)
	}
	n, err := broadcastLen("separation safety factor", load, preload)
	if err != nil {
		return nil, err
	}
	out := make(Series, n)
	for i := range out {
		out[i] = separationFactor(c, load.At(i), preload.At(i))
	}
	return out, nil
}

// StressConcentrationFactor returns kf for a rolled thread of diameter d.
func StressConcentrationFactor(d float64, units UnitSystem) float64 {
	if units == USCustomary {
		return kfBase + kfSlopeUSCust*d
	}
	return kfBase + kfSlopeISO*d
}

// MeanStressConcentrationFactor returns kfm (Norton eq. 6.17). When the peak
// local stress equals the yield strength exactly the result is 0.
func MeanStressConcentrationFactor(sigmaMean, sigmaAlt, sy, kf float64) float64 {
	peak := kf * (sigmaMean + sigmaAlt)
	switch {
	case peak < sy:
		return kf
	case peak > sy:
		return (sy - kf*sigmaAlt) / sigmaMean
	default:
		return 0
	}
}

// FatigueSafetyFactor is the modified Goodman factor for a preloaded bolt
// cycling between loadMin and loadMax.
func FatigueSafetyFactor(p FatigueParams, loadMax, loadMin, preload float64) (float64, error) {
	if p.ATs <= 0 {
		return 0, opError("fatigue safety factor", ErrInvalidArea)
	}
	kf := StressConcentrationFactor(p.D, p.Units)
	return fatigueFactor(p, kf, loadMax, loadMin, preload), nil
}

// FatigueSafetyFactors evaluates FatigueSafetyFactor elementwise. Elements are
// independent and long series are split across goroutines.
func FatigueSafetyFactors(p FatigueParams, loadMax, loadMin, preload Series) (Series, error) {
	if p.ATs <= 0 {
		return nil, opError("fatigue safety factor", ErrInvalidArea)
	}
	n, err := broadcastLen("fatigue safety factor", loadMax, loadMin, preload)
	if err != nil {
		return nil, err
	}
	kf := StressConcentrationFactor(p.D, p.Units)
	out := make(Series, n)
	ParallelFor(n, parallelMinChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = fatigueFactor(p, kf, loadMax.At(i), loadMin.At(i), preload.At(i))
		}
	})
	return out, nil
}

func fatigueFactor(p FatigueParams, kf, loadMax, loadMin, preload float64) float64 {
	boltMax, _ := SegregateLoad(p.C, loadMax)
	boltMin, _ := SegregateLoad(p.C, loadMin)
	fMax := boltMax + preload
	fMin := boltMin + preload

	fMean := (fMax + fMin) / 2
	fAlt := (fMax - fMin) / 2

	sigmaMean := fMean / p.ATs
	sigmaAlt := fAlt / p.ATs
	sigmaPreload := preload / p.ATs

	kfm := MeanStressConcentrationFactor(sigmaMean, sigmaAlt, p.Sy, kf)

	sigmaMean *= kfm
	sigmaPreload *= kfm
	sigmaAlt *= kf

	return p.Se * (p.Sut - sigmaPreload) / (p.Se*(sigmaMean-sigmaPreload) + p.Sut*sigmaAlt)
}

// Evaluate computes all three factors for a bolt cycling between loadMin and
// loadMax. Yield and separation are checked at loadMax.
func Evaluate(p FatigueParams, loadMax, loadMin, preload Series) (*SafetyFactors, error) {
	yield, err := YieldSafetyFactors(p.C, loadMax, preload, p.ATs, p.Sy)
	if err != nil {
		return nil, err
	}
	separation, err := SeparationSafetyFactors(p.C, loadMax, preload)
	if err != nil {
		return nil, err
	}
	fatigue, err := FatigueSafetyFactors(p, loadMax, loadMin, preload)
	if err != nil {
		return nil, err
	}
	minimum, err := Min(yield, separation, fatigue)
	if err != nil {
		return nil, err
	}
	return &SafetyFactors{
		Yield:      yield,
		Separation: separation,
		Fatigue:    fatigue,
		Min:        minimum,
	}, nil
}
