package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/boltjoint/internal/sweep"
)

const (
	summarySheet = "Summary"
	sweepSheet   = "Sweep"
)

// WriteXLSX writes a workbook with a summary sheet and one row per sweep
// sample.
func WriteXLSX(w io.Writer, res *sweep.Result) error {
	best, err := res.Best()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(sweepSheet); err != nil {
		return err
	}

	u := res.Case.Units
	summary := [][]any{
		{"case", res.Case.Name},
		{"units", u.String()},
		{fmt.Sprintf("tensile stress area (%s²)", u.LengthUnit()), res.ATs},
		{"joint constant", res.State.C},
		{fmt.Sprintf("bolt stiffness (%s)", u.StiffnessUnit()), res.State.Kb},
		{fmt.Sprintf("member stiffness (%s)", u.StiffnessUnit()), res.State.Km},
		{"samples", res.Len()},
		{fmt.Sprintf("optimal preload (%s)", u.ForceUnit()), best.Preload},
		{"minimum safety factor", best.Min},
	}
	for i, row := range summary {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}

	header := []any{
		fmt.Sprintf("preload (%s)", u.ForceUnit()),
		"yield", "separation", "fatigue", "min",
	}
	if err := setRow(f, sweepSheet, 1, header); err != nil {
		return err
	}
	for i, r := range res.Rows() {
		row := []any{r.Preload, r.Yield, r.Separation, r.Fatigue, r.Min}
		if err := setRow(f, sweepSheet, i+2, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
