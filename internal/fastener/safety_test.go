package fastener

import (
	"errors"
	"math"
	"testing"
)

func nortonParams(t *testing.T) FatigueParams {
	t.Helper()
	aTs, err := TensileStressArea(5.0/16, 0.24033, ThreadsPerInch(18))
	if err != nil {
		t.Fatal(err)
	}
	return FatigueParams{
		D:     5.0 / 16,
		C:     0.09056,
		ATs:   aTs,
		Sut:   120000,
		Se:    25726,
		Sy:    92000,
		Units: USCustomary,
	}
}

func TestSafetyFactors_Norton15_3(t *testing.T) {
	p := nortonParams(t)
	preload := 4011.0

	ny, err := YieldSafetyFactor(p.C, 1000, preload, p.ATs, p.Sy)
	if err != nil {
		t.Fatal(err)
	}
	nf, err := FatigueSafetyFactor(p, 1000, 0, preload)
	if err != nil {
		t.Fatal(err)
	}
	nj, err := SeparationSafetyFactor(p.C, 1000, preload)
	if err != nil {
		t.Fatal(err)
	}

	if round(ny, 2) != 1.18 {
		t.Errorf("yield = %v, want 1.18", ny)
	}
	if round(nf, 2) != 1.37 {
		t.Errorf("fatigue = %v, want 1.37", nf)
	}
	if round(nj, 1) != 4.4 {
		t.Errorf("separation = %v, want 4.4", nj)
	}
}

func TestMeanStressConcentrationFactor(t *testing.T) {
	tests := []struct {
		name              string
		mean, alt, sy, kf float64
		want              float64
	}{
		{"below yield", 30, 20, 101, 2, 2},
		{"at yield", 30, 20, 100, 2, 0},
		{"above yield", 30, 20, 99, 2, (99 - 2*20) / 30.0},
		{"no alternation", 50, 0, 80, 2, 80 / 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanStressConcentrationFactor(tt.mean, tt.alt, tt.sy, tt.kf)
			if got != tt.want {
				t.Errorf("kfm = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStressConcentrationFactor(t *testing.T) {
	if got := StressConcentrationFactor(10, ISO); math.Abs(got-(5.7+0.2682)) > 1e-12 {
		t.Errorf("ISO kf = %v", got)
	}
	if got := StressConcentrationFactor(0.5, USCustomary); math.Abs(got-(5.7+0.3406)) > 1e-12 {
		t.Errorf("US kf = %v", got)
	}
}

func TestSeparationSafetyFactor_Singular(t *testing.T) {
	for _, c := range []float64{1, 1.2} {
		if _, err := SeparationSafetyFactor(c, 1000, 4000); !errors.Is(err, ErrInvalidJointConstant) {
			t.Errorf("c=%v: err = %v, want ErrInvalidJointConstant", c, err)
		}
		if _, err := SeparationSafetyFactors(c, Scalar(1000), Series{1, 2}); !errors.Is(err, ErrInvalidJointConstant) {
			t.Errorf("series c=%v: err = %v, want ErrInvalidJointConstant", c, err)
		}
	}
}

func TestYieldSafetyFactor_InvalidArea(t *testing.T) {
	if _, err := YieldSafetyFactor(0.1, 1000, 4000, 0, 92000); !errors.Is(err, ErrInvalidArea) {
		t.Errorf("err = %v, want ErrInvalidArea", err)
	}
	p := FatigueParams{D: 0.5, C: 0.1, ATs: -1, Sut: 1, Se: 1, Sy: 1}
	if _, err := FatigueSafetyFactor(p, 1, 0, 1); !errors.Is(err, ErrInvalidArea) {
		t.Errorf("fatigue err = %v, want ErrInvalidArea", err)
	}
}

func TestSeriesMatchScalars(t *testing.T) {
	p := nortonParams(t)
	preload := Linspace(0, 4456, 1000)

	yield, err := YieldSafetyFactors(p.C, Scalar(1000), preload, p.ATs, p.Sy)
	if err != nil {
		t.Fatal(err)
	}
	fatigue, err := FatigueSafetyFactors(p, Scalar(1000), Scalar(0), preload)
	if err != nil {
		t.Fatal(err)
	}
	separation, err := SeparationSafetyFactors(p.C, Scalar(1000), preload)
	if err != nil {
		t.Fatal(err)
	}

	for i, fi := range preload {
		ny, _ := YieldSafetyFactor(p.C, 1000, fi, p.ATs, p.Sy)
		nf, _ := FatigueSafetyFactor(p, 1000, 0, fi)
		nj, _ := SeparationSafetyFactor(p.C, 1000, fi)
		if yield[i] != ny || separation[i] != nj {
			t.Fatalf("element %d: series (%v, %v) != scalar (%v, %v)", i, yield[i], separation[i], ny, nj)
		}
		if fatigue[i] != nf && !(math.IsNaN(fatigue[i]) && math.IsNaN(nf)) {
			t.Fatalf("element %d: fatigue series %v != scalar %v", i, fatigue[i], nf)
		}
	}
}

func TestSeries_LengthMismatch(t *testing.T) {
	p := nortonParams(t)
	_, err := FatigueSafetyFactors(p, Series{1000, 900}, Series{0, 0, 0}, Scalar(4000))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
	_, err = YieldSafetyFactors(p.C, Series{1000, 900}, Series{1, 2, 3}, p.ATs, p.Sy)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}

	var calcErr *CalcError
	if !errors.As(err, &calcErr) || calcErr.Op != "yield safety factor" {
		t.Errorf("expected CalcError for yield safety factor, got %v", err)
	}
}

func TestEvaluate_MinIsElementwise(t *testing.T) {
	p := nortonParams(t)
	preload := Series{500, 4011, 4400}
	sf, err := Evaluate(p, Scalar(1000), Scalar(0), preload)
	if err != nil {
		t.Fatal(err)
	}
	for i := range preload {
		want := math.Min(sf.Yield[i], math.Min(sf.Separation[i], sf.Fatigue[i]))
		if sf.Min[i] != want {
			t.Errorf("min[%d] = %v, want %v", i, sf.Min[i], want)
		}
	}
}

func TestArgMax_FirstOccurrence(t *testing.T) {
	tests := []struct {
		s    Series
		want int
	}{
		{Series{}, -1},
		{Series{1}, 0},
		{Series{1, 3, 3, 2}, 1},
		{Series{5, 5, 5}, 0},
		{Series{1, 2, 4}, 2},
		{Series{math.NaN(), 1, 3}, 2},
		{Series{2, math.NaN(), 1}, 0},
		{Series{math.NaN(), math.NaN()}, 0},
	}
	for _, tt := range tests {
		if got := tt.s.ArgMax(); got != tt.want {
			t.Errorf("ArgMax(%v) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestMin_NaNPropagates(t *testing.T) {
	nan := math.NaN()
	orders := [][]Series{
		{Series{nan, 1}, Series{2, 2}, Series{3, 0.5}},
		{Series{2, 2}, Series{nan, 1}, Series{3, 0.5}},
		{Series{3, 0.5}, Series{2, 2}, Series{nan, 1}},
	}
	for _, in := range orders {
		got, err := Min(in...)
		if err != nil {
			t.Fatal(err)
		}
		if !math.IsNaN(got[0]) {
			t.Errorf("Min(%v)[0] = %v, want NaN", in, got[0])
		}
		if got[1] != 0.5 {
			t.Errorf("Min(%v)[1] = %v, want 0.5", in, got[1])
		}
	}
}

func TestLinspace(t *testing.T) {
	s := Linspace(0, 10, 4)
	want := Series{0, 2.5, 5, 7.5}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("Linspace[%d] = %v, want %v", i, s[i], want[i])
		}
	}
	if len(Linspace(0, 1, 0)) != 0 {
		t.Error("expected empty series")
	}
}

func TestParseUnitSystem(t *testing.T) {
	tests := []struct {
		in      string
		want    UnitSystem
		wantErr bool
	}{
		{"iso", ISO, false},
		{"Metric", ISO, false},
		{"us", USCustomary, false},
		{"imperial", USCustomary, false},
		{"furlongs", ISO, true},
	}
	for _, tt := range tests {
		got, err := ParseUnitSystem(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseUnitSystem(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseUnitSystem(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
