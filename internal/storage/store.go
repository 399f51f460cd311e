package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/san-kum/boltjoint/internal/joint"
	"github.com/san-kum/boltjoint/internal/sweep"
)

const (
	metadataFile = "metadata.json"
	resultsFile  = "results.csv"
)

var ErrMalformedResults = errors.New("storage: malformed results file")

var resultsHeader = []string{"preload", "yield", "separation", "fatigue", "min"}

type Store struct {
	baseDir  string
	writeRun func(runDir string, meta RunMetadata, rows []sweep.Row) error
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, writeRun: writeRun}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string              `json:"id"`
	Timestamp  time.Time           `json:"timestamp"`
	Case       joint.Case          `json:"case"`
	ATs        float64             `json:"tensile_stress_area"`
	Joint      fastener.JointState `json:"joint"`
	Samples    int                 `json:"samples"`
	MaxPreload float64             `json:"max_preload"`
	Best       sweep.Row           `json:"best"`
}

func (s *Store) Save(res *sweep.Result) (string, error) {
	best, err := res.Best()
	if err != nil {
		return "", err
	}

	runID := fmt.Sprintf("%s_%s", res.Case.Name, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Case:       res.Case,
		ATs:        res.ATs,
		Joint:      res.State,
		Samples:    res.Len(),
		MaxPreload: res.MaxPreload,
		Best:       best,
	}

	if err := s.writeRun(runDir, meta, res.Rows()); err != nil {
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			slog.Warn("failed to remove partial run", "dir", runDir, "error", rmErr)
		}
		return "", err
	}

	slog.Debug("run saved", "id", runID, "dir", runDir, "samples", meta.Samples)
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, rows []sweep.Row) error {
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return err
	}
	return writeResults(filepath.Join(runDir, resultsFile), rows)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResults(path string, rows []sweep.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := WriteRowsCSV(w, rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// WriteRowsCSV writes a header and one record per sweep row.
func WriteRowsCSV(w *csv.Writer, rows []sweep.Row) error {
	if err := w.Write(resultsHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			formatFloat(r.Preload),
			formatFloat(r.Yield),
			formatFloat(r.Separation),
			formatFloat(r.Fatigue),
			formatFloat(r.Min),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			slog.Debug("skipping run", "dir", entry.Name(), "error", err)
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadRows(runID string) ([]sweep.Row, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, resultsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sweep.Row{}, nil
	}

	rows := make([]sweep.Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(resultsHeader) {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedResults, i+2, len(record))
		}
		var vals [5]float64
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedResults, i+2, err)
			}
			vals[j] = v
		}
		rows = append(rows, sweep.Row{
			Preload:    vals[0],
			Yield:      vals[1],
			Separation: vals[2],
			Fatigue:    vals[3],
			Min:        vals[4],
		})
	}

	return rows, nil
}

// LoadResult rebuilds the sweep result of a stored run.
func (s *Store) LoadResult(runID string) (*sweep.Result, *RunMetadata, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	rows, err := s.LoadRows(runID)
	if err != nil {
		return nil, nil, err
	}
	res := sweep.FromRows(meta.Case, meta.ATs, meta.Joint, rows)
	res.MaxPreload = meta.MaxPreload
	return res, meta, nil
}
