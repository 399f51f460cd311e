// Package batch evaluates many joint cases read from a spreadsheet.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/san-kum/boltjoint/internal/joint"
)

var ErrEmptySheet = errors.New("batch: sheet has no case rows")

// Columns is the sheet layout. Columns after preload are optional.
var Columns = []string{
	"name", "units",
	"major_diameter", "minor_diameter", "pitch", "threads_per_inch",
	"grip_length", "threaded_length",
	"bolt_modulus", "member_modulus",
	"yield_strength", "ultimate_strength", "endurance_limit",
	"load_max", "load_min", "preload",
	"joint_constant", "proof_strength", "bolt_diameter",
}

const requiredColumns = 16

// Entry is one sheet row. Row is the 1-based spreadsheet row number.
type Entry struct {
	Row  int
	Case joint.Case
	Err  error
}

type Outcome struct {
	Row        int               `json:"row"`
	Name       string            `json:"name"`
	Evaluation *joint.Evaluation `json:"evaluation,omitempty"`
	Err        error             `json:"-"`
	Error      string            `json:"error,omitempty"`
}

func OpenCases(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCases(f)
}

func ReadCases(r io.Reader) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCases(f)
}

func readCases(f *excelize.File) ([]Entry, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	var entries []Entry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		c, err := parseRow(row)
		if err != nil {
			err = fmt.Errorf("row %d: %w", i+1, err)
		}
		entries = append(entries, Entry{Row: i + 1, Case: c, Err: err})
	}
	if len(entries) == 0 {
		return nil, ErrEmptySheet
	}
	return entries, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) (joint.Case, error) {
	if len(row) < requiredColumns {
		return joint.Case{}, fmt.Errorf("expected at least %d columns, got %d", requiredColumns, len(row))
	}

	units, err := fastener.ParseUnitSystem(row[1])
	if err != nil {
		return joint.Case{}, err
	}

	vals := make([]float64, len(Columns))
	for col := 2; col < len(Columns); col++ {
		if col >= len(row) {
			break
		}
		// empty optional cells stay zero
		if strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := toFloat(row[col])
		if err != nil {
			return joint.Case{}, fmt.Errorf("%s: %w", Columns[col], err)
		}
		vals[col] = v
	}

	return joint.Case{
		Name:  strings.TrimSpace(row[0]),
		Units: units,
		Geometry: joint.Geometry{
			MajorDiameter:  vals[2],
			MinorDiameter:  vals[3],
			BoltDiameter:   vals[18],
			Thread:         fastener.ThreadSpec{Pitch: vals[4], ThreadsPerInch: vals[5]},
			GripLength:     vals[6],
			ThreadedLength: vals[7],
		},
		Material: joint.Material{
			BoltModulus:      vals[8],
			MemberModulus:    vals[9],
			YieldStrength:    vals[10],
			UltimateStrength: vals[11],
			EnduranceLimit:   vals[12],
			ProofStrength:    vals[17],
		},
		Load: joint.LoadCase{
			Max:     vals[13],
			Min:     vals[14],
			Preload: vals[15],
		},
		JointConstant: vals[16],
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Evaluate runs every entry with at most limit cases in flight. Per-row
// failures are reported in the outcome; the returned error is only set when
// ctx is cancelled.
func Evaluate(ctx context.Context, entries []Entry, limit int) ([]Outcome, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(entries))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out := Outcome{Row: e.Row, Name: e.Case.Name, Err: e.Err}
			if out.Err == nil {
				ev, err := joint.Evaluate(e.Case)
				if err != nil {
					out.Err = fmt.Errorf("row %d: %w", e.Row, err)
				} else {
					out.Evaluation = ev
				}
			}
			if out.Err != nil {
				out.Error = out.Err.Error()
			}
			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	slog.Debug("batch evaluated", "cases", len(outcomes), "failed", failed, "limit", limit)
	return outcomes, nil
}

// WriteTemplate writes a workbook with the header row and one example case.
func WriteTemplate(w io.Writer, cases ...joint.Case) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, c := range cases {
		row := caseRow(c)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func caseRow(c joint.Case) []any {
	g, m, l := c.Geometry, c.Material, c.Load
	return []any{
		c.Name, c.Units.String(),
		g.MajorDiameter, g.MinorDiameter, g.Thread.Pitch, g.Thread.ThreadsPerInch,
		g.GripLength, g.ThreadedLength,
		m.BoltModulus, m.MemberModulus,
		m.YieldStrength, m.UltimateStrength, m.EnduranceLimit,
		l.Max, l.Min, l.Preload,
		c.JointConstant, m.ProofStrength, g.BoltDiameter,
	}
}
