package viz

import (
	"errors"
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/boltjoint/internal/sweep"
)

var ErrNothingToPlot = errors.New("viz: sweep has no samples")

const (
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 15
)

// PlotSweep charts the yield, separation and fatigue factors against the
// preload sample index and marks the optimum in the caption.
func PlotSweep(res *sweep.Result, width, height int) (string, error) {
	best, err := res.Best()
	if err != nil {
		return "", ErrNothingToPlot
	}
	u := res.Case.Units

	caption := fmt.Sprintf("%s: yield (blue), separation (green), fatigue (red) vs preload 0..%.4g %s; optimum %.4g %s, min factor %.3f",
		res.Case.Name, res.MaxPreload, u.ForceUnit(), best.Preload, u.ForceUnit(), best.Min)

	return asciigraph.PlotMany(
		[][]float64{
			finite(res.Factors.Yield),
			finite(res.Factors.Separation),
			finite(res.Factors.Fatigue),
		},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(caption),
	), nil
}

// PlotProofLoad charts the minimum safety factor against the preload as a
// percentage of the proof load.
func PlotProofLoad(res *sweep.Result, proofStrength float64, width, height int) (string, error) {
	if res.Len() == 0 {
		return "", ErrNothingToPlot
	}
	pct, err := res.ProofPercentages(proofStrength)
	if err != nil {
		return "", err
	}
	best, err := res.Best()
	if err != nil {
		return "", ErrNothingToPlot
	}
	bestPct := best.Preload / (res.ATs * proofStrength) * 100

	caption := fmt.Sprintf("min safety factor vs %% proof load (%.0f%%..%.0f%%); optimum at %.1f%%",
		pct[0], pct[len(pct)-1], bestPct)

	return asciigraph.Plot(finite(res.Factors.Min),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	), nil
}

// finite maps infinities to NaN so asciigraph leaves a gap.
func finite(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}
