package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/boltjoint/internal/fastener"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "sample_5_16_18" {
		t.Errorf("expected sample_5_16_18, got %s", cfg.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	c, err := cfg.Case()
	if err != nil {
		t.Fatal(err)
	}
	if c.Units != fastener.USCustomary {
		t.Errorf("expected us units, got %v", c.Units)
	}
	if c.Geometry.Thread.ThreadsPerInch != 18 {
		t.Errorf("expected 18 tpi, got %v", c.Geometry.Thread.ThreadsPerInch)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("norton_15_3")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.JointConstant != 0.09056 {
		t.Errorf("expected c 0.09056, got %f", cfg.JointConstant)
	}

	cfg.Name = "changed"
	if Presets["norton_15_3"].Name != "norton_15_3" {
		t.Error("GetPreset returned shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if _, err := GetPreset(name).Case(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing name", func(c *Config) { c.Name = "" }},
		{"unknown units", func(c *Config) { c.Units = "cubits" }},
		{"minor above major", func(c *Config) { c.Geometry.MinorDiameter = 1 }},
		{"threads past grip", func(c *Config) { c.Geometry.ThreadedLength = 5 }},
		{"zero modulus", func(c *Config) { c.Material.BoltModulus = 0 }},
		{"joint constant one", func(c *Config) { c.JointConstant = 1 }},
		{"negative samples", func(c *Config) { c.Sweep.Samples = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidate_ThreadSpec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Geometry.Pitch = 1.0 / 18
	if err := cfg.Validate(); !errors.Is(err, fastener.ErrInvalidThreadSpec) {
		t.Errorf("both given: err = %v, want ErrInvalidThreadSpec", err)
	}

	cfg.Geometry.Pitch = 0
	cfg.Geometry.ThreadsPerInch = 0
	if err := cfg.Validate(); !errors.Is(err, fastener.ErrInvalidThreadSpec) {
		t.Errorf("none given: err = %v, want ErrInvalidThreadSpec", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joint.yaml")
	want := GetPreset("m8_class_8_8")

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Name != want.Name || got.Geometry.Pitch != want.Geometry.Pitch {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
	if got.Geometry.ThreadsPerInch != 0 {
		t.Errorf("defaults leaked into loaded thread spec: tpi=%v", got.Geometry.ThreadsPerInch)
	}
}
