package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/san-kum/boltjoint/internal/joint"
	"github.com/san-kum/boltjoint/internal/sweep"
)

// SweepData is the JSON form of a sweep. Non-finite factors are null.
type SweepData struct {
	Case       joint.Case            `json:"case"`
	ATs        float64               `json:"tensile_stress_area"`
	Joint      fastener.JointState   `json:"joint"`
	Samples    int                   `json:"samples"`
	MaxPreload float64               `json:"max_preload"`
	Best       sweep.Row             `json:"best"`
	Preload    []float64             `json:"preload"`
	Factors    map[string][]*float64 `json:"factors"`
}

func newSweepData(res *sweep.Result) (*SweepData, error) {
	best, err := res.Best()
	if err != nil {
		return nil, err
	}
	return &SweepData{
		Case:       res.Case,
		ATs:        res.ATs,
		Joint:      res.State,
		Samples:    res.Len(),
		MaxPreload: res.MaxPreload,
		Best:       best,
		Preload:    res.Preload,
		Factors: map[string][]*float64{
			"yield":      sweep.NullableSeries(res.Factors.Yield),
			"separation": sweep.NullableSeries(res.Factors.Separation),
			"fatigue":    sweep.NullableSeries(res.Factors.Fatigue),
			"min":        sweep.NullableSeries(res.Factors.Min),
		},
	}, nil
}

func WriteJSON(w io.Writer, res *sweep.Result) error {
	data, err := newSweepData(res)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, res *sweep.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, res)
}
