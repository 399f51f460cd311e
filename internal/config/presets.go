package config

import "sort"

var Presets = map[string]*Config{
	// Norton example 15-3; the joint constant comes from a member stiffness
	// model other than Cornwell's.
	"norton_15_3": {
		Name: "norton_15_3", Units: "us",
		Geometry: GeometryConfig{
			MajorDiameter: 5.0 / 16, MinorDiameter: 0.24033, ThreadsPerInch: 18,
			GripLength: 3, ThreadedLength: 2,
		},
		Material: MaterialConfig{
			BoltModulus: 30e6, MemberModulus: 30e6, YieldStrength: 92000,
			UltimateStrength: 120000, EnduranceLimit: 25726, ProofStrength: 85000,
		},
		Load:          LoadConfig{Max: 1000, Min: 0, Preload: 4011},
		JointConstant: 0.09056,
		Sweep:         SweepConfig{MaxPreload: 4456, Samples: 1000},
	},
	"sample_5_16_18": DefaultConfig(),
	"m8_class_8_8": {
		Name: "m8_class_8_8", Units: "iso",
		Geometry: GeometryConfig{
			MajorDiameter: 8, MinorDiameter: 6.466, Pitch: 1.25,
			GripLength: 20, ThreadedLength: 8,
		},
		Material: MaterialConfig{
			BoltModulus: 207000, MemberModulus: 207000, YieldStrength: 640,
			UltimateStrength: 800, EnduranceLimit: 129, ProofStrength: 580,
		},
		Load:  LoadConfig{Max: 5000, Min: 0, Preload: 15000},
		Sweep: SweepConfig{Samples: 1000},
	},
	"m8_aluminium": {
		Name: "m8_aluminium", Units: "iso",
		Geometry: GeometryConfig{
			MajorDiameter: 8, MinorDiameter: 6.466, Pitch: 1.25,
			GripLength: 20, ThreadedLength: 8,
		},
		Material: MaterialConfig{
			BoltModulus: 207000, MemberModulus: 71000, YieldStrength: 640,
			UltimateStrength: 800, EnduranceLimit: 129, ProofStrength: 580,
		},
		Load:  LoadConfig{Max: 5000, Min: 0, Preload: 15000},
		Sweep: SweepConfig{Samples: 1000},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
