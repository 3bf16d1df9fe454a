package sink

import (
	"encoding/json"
	"io"
	"math"

	"github.com/bft-labs/dofcalc/pkg/dof"
)

// JSONWriter writes an indented JSON array of rows.
type JSONWriter struct{}

func (JSONWriter) Format() string    { return "json" }
func (JSONWriter) Extension() string { return "json" }

// jsonRow is the wire form of dof.Row. FarLimit is nil when infinite.
type jsonRow struct {
	FStop           float64  `json:"f_stop"`
	Hyperfocal      float64  `json:"hyperfocal"`
	SubjectDistance float64  `json:"subject_distance"`
	NearLimit       float64  `json:"near_limit"`
	FarLimit        *float64 `json:"far_limit"`
}

// Write encodes rows as a JSON array terminated by a newline.
func (JSONWriter) Write(w io.Writer, rows []dof.Row) error {
	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		out[i] = jsonRow{
			FStop:           r.FStop,
			Hyperfocal:      r.Hyperfocal,
			SubjectDistance: r.SubjectDistance,
			NearLimit:       r.NearLimit,
		}
		if !math.IsInf(r.FarLimit, 1) {
			far := r.FarLimit
			out[i].FarLimit = &far
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
