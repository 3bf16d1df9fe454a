package main

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dofcalc/internal/cliconfig"
	"github.com/bft-labs/dofcalc/pkg/dof"
	"github.com/bft-labs/dofcalc/pkg/log"
	"github.com/bft-labs/dofcalc/pkg/sink"
)

func zerologAdapter(l zerolog.Logger) *log.ZerologAdapter {
	return log.NewZerologAdapterWithLogger(l)
}

// generate builds the table described by cfg and writes it to its
// destination. Nothing is written unless the whole table was computed.
func generate(cfg cliconfig.Config, logger zerolog.Logger, stdout io.Writer) error {
	w, err := sink.New(cfg.Format)
	if err != nil {
		return err
	}

	in := cfg.Input()
	lens, err := dof.Normalize(in)
	if err != nil {
		return err
	}
	if in.Clamped() {
		logger.Debug().
			Float64("requested_m", in.MinFocusM).
			Float64("min_focus_m", lens.MinFocusDistance).
			Msg("minimum focus distance raised to twice the focal length")
	}

	gen := dof.NewGenerator(
		dof.WithSamples(cfg.Samples),
		dof.WithLogger(zerologAdapter(logger)),
	)
	rows, err := gen.Table(lens)
	if err != nil {
		return err
	}

	path := cfg.OutputPath(w)
	if path == sink.Stdout {
		return sink.WriteTo(stdout, w, rows)
	}
	if err := sink.WriteFile(path, w, rows); err != nil {
		return err
	}
	logger.Info().
		Str("path", path).
		Str("fmt", w.Format()).
		Int("rows", len(rows)).
		Msg("table written")
	return nil
}
