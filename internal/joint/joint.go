package joint

import (
	"encoding/json"
	"math"

	"github.com/san-kum/boltjoint/internal/fastener"
)

type FailureMode string

const (
	ModeYield      FailureMode = "yield"
	ModeSeparation FailureMode = "separation"
	ModeFatigue    FailureMode = "fatigue"
)

// Joint holds the preload-independent properties derived from a Case.
type Joint struct {
	Case      Case
	ATs       float64
	ACs       float64
	State     fastener.JointState
	Estimated bool
}

// Prepare derives stress area, bolt stiffness and the joint constant.
func Prepare(c Case) (*Joint, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	g, m := c.Geometry, c.Material

	aTs, err := fastener.TensileStressArea(g.MajorDiameter, g.MinorDiameter, g.Thread)
	if err != nil {
		return nil, err
	}
	aCs := fastener.ShankArea(g.Diameter())

	kb, err := fastener.BoltStiffness(aTs, aCs, g.UnthreadedLength(), g.ThreadedLength, m.BoltModulus)
	if err != nil {
		return nil, err
	}

	jc := c.JointConstant
	estimated := jc == 0
	if estimated {
		jc, err = fastener.JointConstant(g.Diameter(), g.GripLength, m.MemberModulus, m.BoltModulus)
		if err != nil {
			return nil, err
		}
	}

	state, err := fastener.NewJointState(jc, kb)
	if err != nil {
		return nil, err
	}

	return &Joint{Case: c, ATs: aTs, ACs: aCs, State: state, Estimated: estimated}, nil
}

func (j *Joint) FatigueParams() fastener.FatigueParams {
	m := j.Case.Material
	return fastener.FatigueParams{
		D:     j.Case.Geometry.Diameter(),
		C:     j.State.C,
		ATs:   j.ATs,
		Sut:   m.UltimateStrength,
		Se:    m.EnduranceLimit,
		Sy:    m.YieldStrength,
		Units: j.Case.Units,
	}
}

// Factors evaluates the case loads over a series of preloads.
func (j *Joint) Factors(preload fastener.Series) (*fastener.SafetyFactors, error) {
	l := j.Case.Load
	return fastener.Evaluate(j.FatigueParams(), fastener.Scalar(l.Max), fastener.Scalar(l.Min), preload)
}

// Evaluation is the full result for one case at its own preload.
type Evaluation struct {
	Joint      *Joint      `json:"-"`
	ATs        float64     `json:"tensile_stress_area"`
	ACs        float64     `json:"shank_area"`
	C          float64     `json:"joint_constant"`
	Kb         float64     `json:"bolt_stiffness"`
	Km         float64     `json:"member_stiffness"`
	BoltLoad   float64     `json:"bolt_load"`
	MemberLoad float64     `json:"member_load"`
	Yield      float64     `json:"yield"`
	Separation float64     `json:"separation"`
	Fatigue    float64     `json:"fatigue"`
	Min        float64     `json:"min"`
	Governing  FailureMode `json:"governing"`
}

func Evaluate(c Case) (*Evaluation, error) {
	j, err := Prepare(c)
	if err != nil {
		return nil, err
	}
	sf, err := j.Factors(fastener.Scalar(c.Load.Preload))
	if err != nil {
		return nil, err
	}
	bolt, member := fastener.SegregateLoad(j.State.C, c.Load.Max)

	return &Evaluation{
		Joint:      j,
		ATs:        j.ATs,
		ACs:        j.ACs,
		C:          j.State.C,
		Kb:         j.State.Kb,
		Km:         j.State.Km,
		BoltLoad:   bolt,
		MemberLoad: member,
		Yield:      sf.Yield[0],
		Separation: sf.Separation[0],
		Fatigue:    sf.Fatigue[0],
		Min:        sf.Min[0],
		Governing:  Governing(sf.Yield[0], sf.Separation[0], sf.Fatigue[0]),
	}, nil
}

// Governing names the failure mode with the smallest factor. Ties go to the
// earlier of yield, separation, fatigue.
func Governing(yield, separation, fatigue float64) FailureMode {
	mode, v := ModeYield, yield
	if separation < v {
		mode, v = ModeSeparation, separation
	}
	if fatigue < v {
		mode = ModeFatigue
	}
	return mode
}

// Passes reports whether every factor is at least one.
func (e *Evaluation) Passes() bool {
	return e.Min >= 1
}

// MarshalJSON writes non-finite factors, such as separation under zero load,
// as null.
func (e Evaluation) MarshalJSON() ([]byte, error) {
	type plain Evaluation
	return json.Marshal(struct {
		plain
		Yield      *float64 `json:"yield"`
		Separation *float64 `json:"separation"`
		Fatigue    *float64 `json:"fatigue"`
		Min        *float64 `json:"min"`
	}{
		plain:      plain(e),
		Yield:      finite(e.Yield),
		Separation: finite(e.Separation),
		Fatigue:    finite(e.Fatigue),
		Min:        finite(e.Min),
	})
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
