package sweep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/san-kum/boltjoint/internal/joint"
)

var (
	ErrNoSamples   = errors.New("sweep: samples must be positive")
	ErrMaxPreload  = errors.New("sweep: max preload must be positive")
	ErrEmptyResult = errors.New("sweep: no samples in result")
)

const DefaultSamples = 1000

// Options controls a preload sweep over [0, MaxPreload). A zero MaxPreload
// sweeps up to the proof load of the bolt when the case carries a proof
// strength.
type Options struct {
	MaxPreload float64
	Samples    int
}

// Row is one preload sample. Factors can be non-finite: under zero external
// load separation is +Inf, or NaN at zero preload.
type Row struct {
	Preload    float64
	Yield      float64
	Separation float64
	Fatigue    float64
	Min        float64
}

type rowJSON struct {
	Preload    *float64 `json:"preload"`
	Yield      *float64 `json:"yield"`
	Separation *float64 `json:"separation"`
	Fatigue    *float64 `json:"fatigue"`
	Min        *float64 `json:"min"`
}

// MarshalJSON writes non-finite values as null.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(rowJSON{
		Preload:    Nullable(r.Preload),
		Yield:      Nullable(r.Yield),
		Separation: Nullable(r.Separation),
		Fatigue:    Nullable(r.Fatigue),
		Min:        Nullable(r.Min),
	})
}

// UnmarshalJSON reads null back as NaN.
func (r *Row) UnmarshalJSON(data []byte) error {
	var raw rowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Row{
		Preload:    fromNullable(raw.Preload),
		Yield:      fromNullable(raw.Yield),
		Separation: fromNullable(raw.Separation),
		Fatigue:    fromNullable(raw.Fatigue),
		Min:        fromNullable(raw.Min),
	}
	return nil
}

// Nullable returns nil for NaN and infinities so JSON encodes them as null.
func Nullable(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// NullableSeries applies Nullable elementwise.
func NullableSeries(s fastener.Series) []*float64 {
	out := make([]*float64, len(s))
	for i, v := range s {
		out[i] = Nullable(v)
	}
	return out
}

func fromNullable(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

// Result holds one sweep. MaxPreload is the exclusive upper end of Preload.
type Result struct {
	Case       joint.Case
	ATs        float64
	State      fastener.JointState
	MaxPreload float64
	Preload    fastener.Series
	Factors    *fastener.SafetyFactors
}

// Run evaluates the case at evenly spaced preloads.
func Run(ctx context.Context, c joint.Case, opts Options) (*Result, error) {
	j, err := joint.Prepare(c)
	if err != nil {
		return nil, err
	}

	maxPreload := opts.MaxPreload
	if maxPreload == 0 && c.Material.ProofStrength > 0 {
		maxPreload = j.ATs * c.Material.ProofStrength
	}
	if maxPreload <= 0 {
		return nil, ErrMaxPreload
	}
	samples := opts.Samples
	if samples == 0 {
		samples = DefaultSamples
	}
	if samples < 0 {
		return nil, ErrNoSamples
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	preload := fastener.Linspace(0, maxPreload, samples)
	sf, err := j.Factors(preload)
	if err != nil {
		return nil, fmt.Errorf("sweep %s: %w", c.Name, err)
	}

	slog.Debug("preload sweep", "case", c.Name, "samples", samples, "max_preload", maxPreload, "c", j.State.C)

	return &Result{
		Case:       c,
		ATs:        j.ATs,
		State:      j.State,
		MaxPreload: maxPreload,
		Preload:    preload,
		Factors:    sf,
	}, nil
}

func (r *Result) Len() int { return len(r.Preload) }

func (r *Result) Row(i int) Row {
	return Row{
		Preload:    r.Preload[i],
		Yield:      r.Factors.Yield[i],
		Separation: r.Factors.Separation[i],
		Fatigue:    r.Factors.Fatigue[i],
		Min:        r.Factors.Min[i],
	}
}

func (r *Result) Rows() []Row {
	rows := make([]Row, r.Len())
	for i := range rows {
		rows[i] = r.Row(i)
	}
	return rows
}

// Best returns the sample whose minimum safety factor is largest. Ties
// resolve to the lowest preload.
func (r *Result) Best() (Row, error) {
	i := r.Factors.Min.ArgMax()
	if i < 0 {
		return Row{}, ErrEmptyResult
	}
	return r.Row(i), nil
}

// ProofPercentages expresses each preload as a percentage of the bolt proof
// load aTs·Sp.
func (r *Result) ProofPercentages(proofStrength float64) (fastener.Series, error) {
	if proofStrength <= 0 {
		return nil, fmt.Errorf("sweep: proof strength must be positive, got %g", proofStrength)
	}
	proofLoad := r.ATs * proofStrength
	out := make(fastener.Series, len(r.Preload))
	for i, p := range r.Preload {
		out[i] = p / proofLoad * 100
	}
	return out, nil
}

// FromRows rebuilds a result from stored rows.
func FromRows(c joint.Case, aTs float64, state fastener.JointState, rows []Row) *Result {
	r := &Result{
		Case:    c,
		ATs:     aTs,
		State:   state,
		Preload: make(fastener.Series, len(rows)),
		Factors: &fastener.SafetyFactors{
			Yield:      make(fastener.Series, len(rows)),
			Separation: make(fastener.Series, len(rows)),
			Fatigue:    make(fastener.Series, len(rows)),
			Min:        make(fastener.Series, len(rows)),
		},
	}
	for i, row := range rows {
		r.Preload[i] = row.Preload
		r.Factors.Yield[i] = row.Yield
		r.Factors.Separation[i] = row.Separation
		r.Factors.Fatigue[i] = row.Fatigue
		r.Factors.Min[i] = row.Min
	}
	return r
}
