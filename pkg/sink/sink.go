package sink

import (
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/bft-labs/dofcalc/pkg/dof"
)

// Columns is the header shared by every format.
var Columns = []string{"f-stop", "hyperfocal", "subj-dist", "near-limit", "far-limit"}

// Writer serializes a table to w.
type Writer interface {
	// Format returns the format name, e.g. "csv".
	Format() string

	// Extension returns the file extension without a dot.
	Extension() string

	// Write serializes rows to w.
	Write(w io.Writer, rows []dof.Row) error
}

var writers = map[string]Writer{
	"csv":   CSVWriter{},
	"json":  JSONWriter{},
	"table": TableWriter{},
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New returns the Writer for format.
func New(format string) (Writer, error) {
	w, ok := writers[format]
	if !ok {
		return nil, dof.NewError(dof.ErrCodeInvalidFormat, "unknown output format %q (want one of %v)", format, Formats())
	}
	return w, nil
}

// fields formats one row with the fixed per-column precision.
func fields(r dof.Row) []string {
	return []string{
		formatFloat(r.FStop, 1),
		formatFloat(r.Hyperfocal, 2),
		formatFloat(r.SubjectDistance, 2),
		formatFloat(r.NearLimit, 3),
		formatFloat(r.FarLimit, 3),
	}
}

func formatFloat(v float64, prec int) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
