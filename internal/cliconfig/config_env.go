package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (DOFCALC_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("length", os.Getenv("DOFCALC_LENGTH"), &cfg.Length); err != nil {
		return err
	}
	if err := s.setFloatFromString("max-aperture", os.Getenv("DOFCALC_MAX_APERTURE"), &cfg.MaxAperture); err != nil {
		return err
	}
	if err := s.setFloatFromString("min-dist", os.Getenv("DOFCALC_MIN_DIST"), &cfg.MinDist); err != nil {
		return err
	}
	if err := s.setFloatFromString("circle", os.Getenv("DOFCALC_CIRCLE"), &cfg.Circle); err != nil {
		return err
	}
	if err := s.setIntFromString("samples", os.Getenv("DOFCALC_SAMPLES"), &cfg.Samples); err != nil {
		return err
	}

	s.setString("fmt", os.Getenv("DOFCALC_FMT"), &cfg.Format)
	s.setString("filename", os.Getenv("DOFCALC_FILENAME"), &cfg.Filename)
	s.setString("output", os.Getenv("DOFCALC_OUTPUT"), &cfg.Output)
	s.setString("log-level", os.Getenv("DOFCALC_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-file", os.Getenv("DOFCALC_LOG_FILE"), &cfg.LogFile)

	s.setBoolFromString("zap", os.Getenv("DOFCALC_ZAP"), &cfg.Zap)

	return nil
}
