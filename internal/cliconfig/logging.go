package cliconfig

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dofcalc/pkg/log"
)

// Logger returns the console logger used before configuration is loaded.
func Logger() zerolog.Logger {
	return log.NewConsoleLogger(os.Stderr, zerolog.InfoLevel)
}

// OpenLogger builds the logger described by cfg. With LogFile set it appends
// JSON lines to that file (truncating it first when Zap is set); otherwise
// it writes console lines to stderr. The returned closer must be called
// when done.
func OpenLogger(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if cfg.LogFile == "" {
		return log.NewConsoleLogger(os.Stderr, level), nopCloser{}, nil
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if cfg.Zap {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(cfg.LogFile, flags, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return log.NewJSONLogger(f, level), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
