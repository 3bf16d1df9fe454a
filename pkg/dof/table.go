package dof

import (
	"iter"
	"math"
	"slices"

	"github.com/bft-labs/dofcalc/pkg/log"
)

// DefaultSamples is the number of subject distances sampled per f-stop.
const DefaultSamples = 20

// Row is one line of a depth-of-field table. Distances are in meters and
// already rounded: Hyperfocal and SubjectDistance to 2 decimals, NearLimit
// and FarLimit to 3. FarLimit is +Inf when everything behind the subject is
// acceptably sharp.
type Row struct {
	FStop           float64
	Hyperfocal      float64
	SubjectDistance float64
	NearLimit       float64
	FarLimit        float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSamples sets how many subject distances are sampled per f-stop.
// Values <= 0 are ignored.
func WithSamples(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.samples = n
		}
	}
}

// WithLogger sets the logger used at table boundaries.
func WithLogger(l log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// Generator builds depth-of-field tables. The zero value is not usable;
// create one with NewGenerator. A Generator holds no per-table state and
// may be reused.
type Generator struct {
	samples int
	logger  log.Logger
}

// NewGenerator creates a Generator with DefaultSamples samples per f-stop
// and a no-op logger.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		samples: DefaultSamples,
		logger:  log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rows lazily yields the table for lens: f-stops ascending, skipping those
// below lens.MaxAperture, and within each f-stop subject distances
// ascending. lens must be valid; use Table to have it checked.
func (g *Generator) Rows(lens LensSpec) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		f := lens.FocalLength
		for _, stop := range UsableFStops(lens.MaxAperture) {
			h := Hyperfocal(f, stop, lens.CircleOfConfusion)
			g.logger.Debug("f-stop",
				log.Float64("f_stop", stop),
				log.Float64("hyperfocal", h),
			)
			for s := range Intervals(h, lens.MinFocusDistance, g.samples) {
				if !yield(thinLens(stop, h, f, s)) {
					return
				}
			}
		}
	}
}

// Table validates lens and returns its complete table.
func (g *Generator) Table(lens LensSpec) ([]Row, error) {
	if err := lens.Validate(); err != nil {
		return nil, err
	}
	if len(UsableFStops(lens.MaxAperture)) == 0 {
		return nil, NewError(ErrCodeNoApertures, "no f-stop at or above f/%v", lens.MaxAperture)
	}
	if h := Hyperfocal(lens.FocalLength, lens.MaxAperture, lens.CircleOfConfusion); !(h > 0) || math.IsInf(h, 0) {
		return nil, NewError(ErrCodeInvalidLens, "hyperfocal distance %v m is not usable", h)
	}

	rows := slices.Collect(g.Rows(lens))
	g.logger.Info("table generated",
		log.Float64("focal_length_m", lens.FocalLength),
		log.Float64("max_aperture", lens.MaxAperture),
		log.Float64("min_focus_m", lens.MinFocusDistance),
		log.Float64("circle_m", lens.CircleOfConfusion),
		log.Int("rows", len(rows)),
	)
	return rows, nil
}

// thinLens computes one row for subject distance s at f-stop stop with
// hyperfocal distance h and focal length f.
func thinLens(stop, h, f, s float64) Row {
	numerator := s * (h - f)
	near := numerator / (h + (s - 2*f))

	far := math.Inf(1)
	if s < h {
		far = numerator / (h - s)
	}

	return Row{
		FStop:           stop,
		Hyperfocal:      round(h, 2),
		SubjectDistance: round(s, 2),
		NearLimit:       round(near, 3),
		FarLimit:        round(far, 3),
	}
}

// round rounds v half away from zero to places decimals. Infinities pass
// through unchanged.
func round(v float64, places int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
