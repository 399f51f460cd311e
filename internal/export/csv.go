package export

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/san-kum/boltjoint/internal/storage"
	"github.com/san-kum/boltjoint/internal/sweep"
)

// WriteCSV writes the sweep in the same layout as a stored results file.
func WriteCSV(w io.Writer, res *sweep.Result) error {
	cw := csv.NewWriter(w)
	if err := storage.WriteRowsCSV(cw, res.Rows()); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func ExportCSV(path string, res *sweep.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, res)
}
