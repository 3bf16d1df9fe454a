// Package log provides the logging port used by dofcalc packages.
//
// Library code logs through the [Logger] interface so that it stays free of
// any particular logging backend. A zerolog adapter is provided for the CLI
// and a no-op logger for tests and embedders that do not want output.
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	gen := dof.NewGenerator(dof.WithLogger(logger))
package log
