package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML keys. Numbers and bools are pointers
// so that an explicit zero is told apart from a missing key; empty strings
// mean "not set".
type FileConfig struct {
	Length      *int     `toml:"length"`
	MaxAperture *float64 `toml:"max_aperture"`
	MinDist     *float64 `toml:"min_dist"`
	Circle      *float64 `toml:"circle"`
	Samples     *int     `toml:"samples"`
	Format      string   `toml:"fmt"`
	Filename    string   `toml:"filename"`
	Output      string   `toml:"output"`
	LogLevel    string   `toml:"log_level"`
	LogFile     string   `toml:"log_file"`
	Zap         *bool    `toml:"zap"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.dofcalc/config.toml, or "" if the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".dofcalc", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("length", fc.Length, &cfg.Length)
	s.setFloat("max-aperture", fc.MaxAperture, &cfg.MaxAperture)
	s.setFloat("min-dist", fc.MinDist, &cfg.MinDist)
	s.setFloat("circle", fc.Circle, &cfg.Circle)
	s.setInt("samples", fc.Samples, &cfg.Samples)

	s.setString("fmt", fc.Format, &cfg.Format)
	s.setString("filename", fc.Filename, &cfg.Filename)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)

	s.setBool("zap", fc.Zap, &cfg.Zap)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
