package joint

import (
	"fmt"

	"github.com/san-kum/boltjoint/internal/fastener"
)

// Geometry describes the bolt and the grip it clamps. BoltDiameter defaults to
// MajorDiameter when zero.
type Geometry struct {
	MajorDiameter  float64             `json:"major_diameter"`
	MinorDiameter  float64             `json:"minor_diameter"`
	BoltDiameter   float64             `json:"bolt_diameter,omitempty"`
	Thread         fastener.ThreadSpec `json:"thread"`
	GripLength     float64             `json:"grip_length"`
	ThreadedLength float64             `json:"threaded_length"`
}

func (g Geometry) Diameter() float64 {
	if g.BoltDiameter > 0 {
		return g.BoltDiameter
	}
	return g.MajorDiameter
}

func (g Geometry) UnthreadedLength() float64 {
	return g.GripLength - g.ThreadedLength
}

type Material struct {
	BoltModulus      float64 `json:"bolt_modulus"`
	MemberModulus    float64 `json:"member_modulus"`
	YieldStrength    float64 `json:"yield_strength"`
	UltimateStrength float64 `json:"ultimate_strength"`
	EnduranceLimit   float64 `json:"endurance_limit"`
	ProofStrength    float64 `json:"proof_strength,omitempty"`
}

// LoadCase is an external load cycling between Min and Max on a bolt
// tightened to Preload.
type LoadCase struct {
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	Preload float64 `json:"preload"`
}

// Case is a complete joint to evaluate. A non-zero JointConstant overrides the
// Cornwell estimate.
type Case struct {
	Name          string              `json:"name"`
	Units         fastener.UnitSystem `json:"units"`
	Geometry      Geometry            `json:"geometry"`
	Material      Material            `json:"material"`
	Load          LoadCase            `json:"load"`
	JointConstant float64             `json:"joint_constant,omitempty"`
}

func (c Case) Validate() error {
	g := c.Geometry
	if err := g.Thread.Validate(); err != nil {
		return fmt.Errorf("case %q: %w", c.Name, err)
	}
	if g.MajorDiameter <= 0 || g.MinorDiameter <= 0 || g.MinorDiameter >= g.MajorDiameter {
		return fmt.Errorf("case %q: diameters: %w", c.Name, fastener.ErrInvalidGeometry)
	}
	if g.GripLength <= 0 || g.ThreadedLength < 0 || g.ThreadedLength > g.GripLength {
		return fmt.Errorf("case %q: grip: %w", c.Name, fastener.ErrInvalidGeometry)
	}
	m := c.Material
	if m.BoltModulus <= 0 || m.MemberModulus <= 0 {
		return fmt.Errorf("case %q: modulus: %w", c.Name, fastener.ErrInvalidMaterial)
	}
	if m.YieldStrength <= 0 || m.UltimateStrength <= 0 || m.EnduranceLimit <= 0 {
		return fmt.Errorf("case %q: strength: %w", c.Name, fastener.ErrInvalidMaterial)
	}
	if c.JointConstant < 0 || c.JointConstant >= 1 {
		return fmt.Errorf("case %q: %w", c.Name, fastener.ErrInvalidJointConstant)
	}
	return nil
}
