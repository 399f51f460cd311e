package fastener

import (
	"errors"
	"math"
	"testing"
)

func TestBoltStiffness_Norton15_2(t *testing.T) {
	got, err := BoltStiffness(0.052431, math.Pi*math.Pow(0.3125/2, 2), 1.625, 0.375, 30e6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1058613.179) > 1e-3 {
		t.Errorf("BoltStiffness = %.6f, want 1058613.179", got)
	}
}

func TestBoltStiffness_InvalidGeometry(t *testing.T) {
	tests := []struct {
		name              string
		lUnthreaded, lThr float64
	}{
		{"zero lengths", 0, 0},
		{"negative", -1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BoltStiffness(0.05, 0.07, tt.lUnthreaded, tt.lThr, 30e6)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("err = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestMemberStiffness(t *testing.T) {
	kb := 1.0e6
	c := 0.25
	km, err := MemberStiffness(kb, c)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(kb/(kb+km)-c) > 1e-12 {
		t.Errorf("kb/(kb+km) = %v, want %v", kb/(kb+km), c)
	}

	for _, bad := range []float64{0, 1, -0.1, 1.5} {
		if _, err := MemberStiffness(kb, bad); !errors.Is(err, ErrInvalidJointConstant) {
			t.Errorf("c=%v: err = %v, want ErrInvalidJointConstant", bad, err)
		}
	}
}

func TestNewJointState(t *testing.T) {
	state, err := NewJointState(0.2, 4e5)
	if err != nil {
		t.Fatal(err)
	}
	if state.C != 0.2 || state.Kb != 4e5 {
		t.Errorf("unexpected state %+v", state)
	}
	if math.Abs(state.Km-1.6e6) > 1e-6 {
		t.Errorf("Km = %v, want 1.6e6", state.Km)
	}
}
