package sweep

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/san-kum/boltjoint/internal/joint"
)

func sampleCase() joint.Case {
	return joint.Case{
		Name:  "sample",
		Units: fastener.USCustomary,
		Geometry: joint.Geometry{
			MajorDiameter:  5.0 / 16,
			MinorDiameter:  0.24033,
			Thread:         fastener.ThreadsPerInch(18),
			GripLength:     3,
			ThreadedLength: 2,
		},
		Material: joint.Material{
			BoltModulus:      30e6,
			MemberModulus:    30e6,
			YieldStrength:    92000,
			UltimateStrength: 120000,
			EnduranceLimit:   25726,
			ProofStrength:    80000,
		},
		Load: joint.LoadCase{Max: 1000, Min: 0},
	}
}

func TestRun_BestPreload(t *testing.T) {
	res, err := Run(context.Background(), sampleCase(), Options{MaxPreload: 4456, Samples: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 1000 {
		t.Fatalf("len = %d, want 1000", res.Len())
	}

	best, err := res.Best()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(best.Preload-768*4.456) > 1e-6 {
		t.Errorf("best preload = %v, want %v", best.Preload, 768*4.456)
	}
	if math.Abs(best.Min-1.3717) > 1e-3 {
		t.Errorf("best min = %v, want ~1.3717", best.Min)
	}
	for _, row := range res.Rows() {
		if row.Min > best.Min {
			t.Fatalf("row at preload %v beats best", row.Preload)
		}
	}
}

func TestRun_DefaultsToProofLoad(t *testing.T) {
	res, err := Run(context.Background(), sampleCase(), Options{Samples: 10})
	if err != nil {
		t.Fatal(err)
	}
	pct, err := res.ProofPercentages(80000)
	if err != nil {
		t.Fatal(err)
	}
	if pct[0] != 0 {
		t.Errorf("first percentage = %v, want 0", pct[0])
	}
	if math.Abs(pct[9]-90) > 1e-9 {
		t.Errorf("last percentage = %v, want 90", pct[9])
	}
}

func TestRun_Errors(t *testing.T) {
	c := sampleCase()
	c.Material.ProofStrength = 0
	if _, err := Run(context.Background(), c, Options{}); !errors.Is(err, ErrMaxPreload) {
		t.Errorf("err = %v, want ErrMaxPreload", err)
	}
	if _, err := Run(context.Background(), sampleCase(), Options{MaxPreload: 100, Samples: -1}); !errors.Is(err, ErrNoSamples) {
		t.Errorf("err = %v, want ErrNoSamples", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, sampleCase(), Options{MaxPreload: 100}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBest_TiesResolveToFirst(t *testing.T) {
	rows := []Row{
		{Preload: 0, Min: 0.5},
		{Preload: 1, Min: 1.2},
		{Preload: 2, Min: 1.2},
		{Preload: 3, Min: 0.9},
	}
	res := FromRows(sampleCase(), 0.05, fastener.JointState{}, rows)
	best, err := res.Best()
	if err != nil {
		t.Fatal(err)
	}
	if best.Preload != 1 {
		t.Errorf("best preload = %v, want 1", best.Preload)
	}

	empty := FromRows(sampleCase(), 0.05, fastener.JointState{}, nil)
	if _, err := empty.Best(); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("err = %v, want ErrEmptyResult", err)
	}
}

func TestGridSearch(t *testing.T) {
	g, err := NewGridSearch(
		[]string{ParamGripLength, ParamLoadMax},
		[][]float64{{1, 2, 3}, {500, 1000}},
	)
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.Search(context.Background(), sampleCase(), Options{MaxPreload: 4456, Samples: 200})
	if err != nil {
		t.Fatal(err)
	}
	if res.Params[ParamLoadMax] != 500 {
		t.Errorf("lighter load should win, got %v", res.Params)
	}
	if res.Case.Load.Max != 500 {
		t.Errorf("case load = %v, want 500", res.Case.Load.Max)
	}
	if res.Best.Min <= 0 {
		t.Errorf("best min = %v", res.Best.Min)
	}
}

func TestNewGridSearch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		ranges [][]float64
		want   error
	}{
		{"fewer ranges", []string{ParamGripLength, ParamLoadMax}, [][]float64{{1, 2}}, ErrParamRanges},
		{"empty range", []string{ParamGripLength}, [][]float64{{}}, ErrParamRanges},
		{"unknown", []string{"diameter"}, [][]float64{{1}}, ErrUnknownParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGridSearch(tt.params, tt.ranges); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	c := sampleCase()
	if err := ApplyParam(&c, "diameter", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("ApplyParam err = %v, want ErrUnknownParam", err)
	}
}

func TestRun_ZeroLoad(t *testing.T) {
	c := sampleCase()
	c.Load.Max = 0
	res, err := Run(context.Background(), c, Options{MaxPreload: 4456, Samples: 100})
	if err != nil {
		t.Fatal(err)
	}

	first := res.Row(0)
	if !math.IsNaN(first.Separation) || !math.IsNaN(first.Min) {
		t.Errorf("row 0 = %+v, want NaN separation and min", first)
	}

	best, err := res.Best()
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(best.Min) || math.IsInf(best.Min, 0) {
		t.Errorf("best min = %v, want finite", best.Min)
	}

	data, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	var back Row
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Preload != 0 || !math.IsNaN(back.Separation) {
		t.Errorf("round trip = %+v", back)
	}
}

func TestRow_JSON(t *testing.T) {
	r := Row{Preload: 100, Yield: 2, Separation: math.Inf(1), Fatigue: 1.5, Min: 1.5}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"preload":100,"yield":2,"separation":null,"fatigue":1.5,"min":1.5}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
