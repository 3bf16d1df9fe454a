package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dofcalc/pkg/dof"
	"github.com/bft-labs/dofcalc/pkg/sink"
)

// DefaultFilename is the output base name used when neither --filename nor
// --output is given.
const DefaultFilename = "DoFcalc"

// Config holds CLI configuration for dofcalc.
type Config struct {
	// Lens, as typed by the user.
	Length      int     // focal length, mm
	MaxAperture float64 // f-number wide open
	MinDist     float64 // closest focus, m
	Circle      float64 // circle of confusion, microns

	Samples  int
	Format   string
	Filename string
	Output   string

	LogLevel string
	LogFile  string
	Zap      bool

	Watch bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		MinDist:  1.0,
		Circle:   15.0,
		Samples:  dof.DefaultSamples,
		Format:   "csv",
		Filename: DefaultFilename,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Length <= 0 {
		return dof.NewError(dof.ErrCodeInvalidLens, "length is required and must be positive")
	}
	if c.MaxAperture <= 0 {
		return dof.NewError(dof.ErrCodeInvalidLens, "max-aperture is required and must be positive")
	}
	if c.Circle <= 0 {
		return dof.NewError(dof.ErrCodeInvalidLens, "circle must be positive")
	}
	if c.MinDist < 0 {
		return dof.NewError(dof.ErrCodeInvalidLens, "min-dist must not be negative")
	}
	if c.Samples <= 0 {
		return dof.NewError(dof.ErrCodeInvalidConfig, "samples must be positive")
	}
	if c.Format == "" {
		c.Format = "csv"
	}
	if _, err := sink.New(c.Format); err != nil {
		return err
	}
	if c.Filename == "" {
		c.Filename = DefaultFilename
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelInfoValue
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return dof.WrapError(dof.ErrCodeInvalidConfig, err, "log-level")
	}
	return nil
}

// Input returns the lens measurements for dof.Normalize.
func (c *Config) Input() dof.Input {
	return dof.Input{
		FocalLengthMM: c.Length,
		MaxAperture:   c.MaxAperture,
		MinFocusM:     c.MinDist,
		CircleMicrons: c.Circle,
	}
}

// OutputPath returns where the table should be written: Output when set,
// otherwise Filename with the extension of w.
func (c *Config) OutputPath(w sink.Writer) string {
	if c.Output != "" {
		return c.Output
	}
	return sink.Path(c.Filename, w)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if present and flag not changed.
// Any explicit value is kept so Validate can reject it.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloat sets a float64 value if present and flag not changed.
// Any explicit value is kept so Validate can reject it.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Only an empty string means unset.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Only an empty string means unset.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString sets a bool from "true"/"1"; anything else is false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
