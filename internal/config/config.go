package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/san-kum/boltjoint/internal/joint"
)

const (
	DefaultUnits      = "us"
	DefaultSamples    = 1000
	DefaultMaxPreload = 4456.0
)

// Config is the on-disk form of a joint case.
type Config struct {
	Name          string         `yaml:"name" validate:"required"`
	Units         string         `yaml:"units" validate:"required,oneof=iso metric si us usc us-customary imperial unc"`
	Geometry      GeometryConfig `yaml:"geometry"`
	Material      MaterialConfig `yaml:"material"`
	Load          LoadConfig     `yaml:"load"`
	JointConstant float64        `yaml:"joint_constant,omitempty" validate:"gte=0,lt=1"`
	Sweep         SweepConfig    `yaml:"sweep"`
}

type GeometryConfig struct {
	MajorDiameter  float64 `yaml:"major_diameter" validate:"required,gt=0"`
	MinorDiameter  float64 `yaml:"minor_diameter" validate:"required,gt=0,ltfield=MajorDiameter"`
	BoltDiameter   float64 `yaml:"bolt_diameter,omitempty" validate:"gte=0"`
	Pitch          float64 `yaml:"pitch,omitempty" validate:"gte=0"`
	ThreadsPerInch float64 `yaml:"threads_per_inch,omitempty" validate:"gte=0"`
	GripLength     float64 `yaml:"grip_length" validate:"required,gt=0"`
	ThreadedLength float64 `yaml:"threaded_length" validate:"gte=0,ltefield=GripLength"`
}

type MaterialConfig struct {
	BoltModulus      float64 `yaml:"bolt_modulus" validate:"required,gt=0"`
	MemberModulus    float64 `yaml:"member_modulus" validate:"required,gt=0"`
	YieldStrength    float64 `yaml:"yield_strength" validate:"required,gt=0"`
	UltimateStrength float64 `yaml:"ultimate_strength" validate:"required,gt=0"`
	EnduranceLimit   float64 `yaml:"endurance_limit" validate:"required,gt=0"`
	ProofStrength    float64 `yaml:"proof_strength,omitempty" validate:"gte=0"`
}

type LoadConfig struct {
	Max     float64 `yaml:"max"`
	Min     float64 `yaml:"min"`
	Preload float64 `yaml:"preload" validate:"gte=0"`
}

type SweepConfig struct {
	MaxPreload float64 `yaml:"max_preload" validate:"gte=0"`
	Samples    int     `yaml:"samples" validate:"gte=0"`
}

var validate = validator.New()

// DefaultConfig is the 5/16-18 UNC grade 5 bolt clamping 3 in of steel.
func DefaultConfig() *Config {
	return &Config{
		Name:  "sample_5_16_18",
		Units: DefaultUnits,
		Geometry: GeometryConfig{
			MajorDiameter:  5.0 / 16,
			MinorDiameter:  0.24033,
			ThreadsPerInch: 18,
			GripLength:     3,
			ThreadedLength: 2,
		},
		Material: MaterialConfig{
			BoltModulus:      30e6,
			MemberModulus:    30e6,
			YieldStrength:    92000,
			UltimateStrength: 120000,
			EnduranceLimit:   25726,
			ProofStrength:    80000,
		},
		Load: LoadConfig{Max: 1000, Min: 0, Preload: 4011},
		Sweep: SweepConfig{
			MaxPreload: DefaultMaxPreload,
			Samples:    DefaultSamples,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// a file naming one thread field replaces the default thread spec entirely
	var probe struct {
		Geometry struct {
			Pitch          *float64 `yaml:"pitch"`
			ThreadsPerInch *float64 `yaml:"threads_per_inch"`
		} `yaml:"geometry"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch {
	case probe.Geometry.Pitch != nil && probe.Geometry.ThreadsPerInch == nil:
		cfg.Geometry.ThreadsPerInch = 0
	case probe.Geometry.ThreadsPerInch != nil && probe.Geometry.Pitch == nil:
		cfg.Geometry.Pitch = 0
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}
	if err := c.thread().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) thread() fastener.ThreadSpec {
	return fastener.ThreadSpec{Pitch: c.Geometry.Pitch, ThreadsPerInch: c.Geometry.ThreadsPerInch}
}

// Case converts the file form into a joint case.
func (c *Config) Case() (joint.Case, error) {
	if err := c.Validate(); err != nil {
		return joint.Case{}, err
	}
	units, err := fastener.ParseUnitSystem(c.Units)
	if err != nil {
		return joint.Case{}, err
	}
	return joint.Case{
		Name:  c.Name,
		Units: units,
		Geometry: joint.Geometry{
			MajorDiameter:  c.Geometry.MajorDiameter,
			MinorDiameter:  c.Geometry.MinorDiameter,
			BoltDiameter:   c.Geometry.BoltDiameter,
			Thread:         c.thread(),
			GripLength:     c.Geometry.GripLength,
			ThreadedLength: c.Geometry.ThreadedLength,
		},
		Material: joint.Material{
			BoltModulus:      c.Material.BoltModulus,
			MemberModulus:    c.Material.MemberModulus,
			YieldStrength:    c.Material.YieldStrength,
			UltimateStrength: c.Material.UltimateStrength,
			EnduranceLimit:   c.Material.EnduranceLimit,
			ProofStrength:    c.Material.ProofStrength,
		},
		Load: joint.LoadCase{
			Max:     c.Load.Max,
			Min:     c.Load.Min,
			Preload: c.Load.Preload,
		},
		JointConstant: c.JointConstant,
	}, nil
}
