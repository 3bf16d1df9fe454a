package sink

import (
	"encoding/csv"
	"io"

	"github.com/bft-labs/dofcalc/pkg/dof"
)

// CSVWriter writes comma-separated values with a header row.
type CSVWriter struct{}

func (CSVWriter) Format() string    { return "csv" }
func (CSVWriter) Extension() string { return "csv" }

// Write writes the header and one record per row.
func (CSVWriter) Write(w io.Writer, rows []dof.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(fields(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
