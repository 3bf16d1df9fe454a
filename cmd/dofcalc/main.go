package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dofcalc/pkg/dof"
)

// Exit codes. exitUsage matches sysexits EX_USAGE.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64
)

func main() {
	s := newSession()
	err := newRootCmd(s).Execute()
	code := reportError(s.logger, err)
	s.Close()
	os.Exit(code)
}

// reportError logs err once, with its code, and returns the exit code for it.
func reportError(logger zerolog.Logger, err error) int {
	if err == nil {
		return exitOK
	}
	logger.Error().Err(err).Str("code", string(dof.GetCode(err))).Msg("dofcalc")
	if dof.IsInputError(err) {
		return exitUsage
	}
	return exitFailure
}
