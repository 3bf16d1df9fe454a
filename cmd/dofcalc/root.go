package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/dofcalc/internal/cliconfig"
	"github.com/bft-labs/dofcalc/internal/watch"
	"github.com/bft-labs/dofcalc/pkg/dof"
	"github.com/bft-labs/dofcalc/pkg/sink"
)

const longHelp = `
What dofcalc does, dofcalc does best.

You supply the basic lens specs. Example: 105mm f/2 as
--max-aperture 2 --length 105. If you know the minimum focus distance,
supply it as --min-dist 2.0 for 2.0 meters. The default is 1 meter.

You can also supply the circle of confusion in microns; the default of
--circle 15.0 suits most modern cameras.

The result is a chartable CSV file, a JSON document, or a table for the
terminal. Settings may also come from $HOME/.dofcalc/config.toml or
DOFCALC_* environment variables; flags win over both.
`

var exampleUsage = strings.TrimSpace(`
  dofcalc --length 105 --max-aperture 2
  dofcalc -l 50 --max-aperture 1.8 --min-dist 0.45 --fmt table -o -
  dofcalc --config ./lens.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// session owns the logger of one run. main reports the final error through
// it, so errors land in --log-file like everything else.
type session struct {
	logger zerolog.Logger
	closer io.Closer
}

func newSession() *session {
	return &session{logger: cliconfig.Logger()}
}

// open replaces the session logger with the one cfg describes.
func (s *session) open(cfg cliconfig.Config) error {
	logger, closer, err := cliconfig.OpenLogger(cfg)
	if err != nil {
		return err
	}
	s.logger, s.closer = logger, closer
	return nil
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func newRootCmd(s *session) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "dofcalc",
		Short:   "Compute depth-of-field tables for a lens",
		Long:    strings.TrimSpace(longHelp),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return dof.WrapError(dof.ErrCodeInvalidConfig, err, "arguments")
			}
			return nil
		},

		// main logs the error once, with its code.
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Snapshot of flag values; every reload starts from here.
			flagCfg := cfg

			// The logger is opened even when loading failed, so that a
			// rejected config is still reported to --log-file.
			loaded, err := loadConfig(flagCfg, cfgFile, changed)
			if openErr := s.open(loaded); openErr != nil && err == nil {
				return fmt.Errorf("open logger: %w", openErr)
			}
			if err != nil {
				return err
			}
			logger := s.logger

			out := cmd.OutOrStdout()
			if err := generate(loaded, logger, out); err != nil {
				if !loaded.Watch {
					return fmt.Errorf("generate table (length=%dmm max-aperture=%v min-dist=%vm circle=%vum): %w",
						loaded.Length, loaded.MaxAperture, loaded.MinDist, loaded.Circle, err)
				}
				logger.Error().Err(err).Interface("config", loaded).Msg("generate table")
			}
			if !loaded.Watch {
				return nil
			}
			if cfgFile == "" {
				return fmt.Errorf("watch requires a config file")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.New(cfgFile, func(ctx context.Context) {
				regenerate(flagCfg, cfgFile, changed, logger, out)
			}, watch.DefaultConfig(), zerologAdapter(logger))

			if err := w.Run(ctx); err != nil {
				return fmt.Errorf("watch config: %w", err)
			}
			logger.Info().Msg("received signal, stopping...")
			return nil
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return dof.WrapError(dof.ErrCodeInvalidConfig, err, "flags")
	})

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.dofcalc/config.toml)")

	root.Flags().IntVarP(&cfg.Length, "length", "l", cfg.Length, "focal length of the lens in mm (required)")
	root.Flags().Float64Var(&cfg.MaxAperture, "max-aperture", cfg.MaxAperture, "f-stop when the lens is wide open (required)")
	root.Flags().Float64Var(&cfg.MinDist, "min-dist", cfg.MinDist, "minimum focus distance in meters")
	root.Flags().Float64VarP(&cfg.Circle, "circle", "c", cfg.Circle, "circle of confusion in microns")
	root.Flags().IntVar(&cfg.Samples, "samples", cfg.Samples, "subject distances sampled per f-stop")

	root.Flags().StringVar(&cfg.Format, "fmt", cfg.Format, fmt.Sprintf("output format: %s", strings.Join(sink.Formats(), ", ")))
	root.Flags().StringVarP(&cfg.Filename, "filename", "f", cfg.Filename, "output base name; the format's extension is appended")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output path, overrides --filename; - for stdout")

	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")
	root.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write JSON logs to this file instead of stderr")
	root.Flags().BoolVarP(&cfg.Zap, "zap", "z", cfg.Zap, "truncate the log file before writing")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "regenerate the table whenever the config file changes")

	return root
}

// loadConfig layers the config file and DOFCALC_* environment under the
// flag values in base, then validates the result.
func loadConfig(base cliconfig.Config, cfgFile string, changed map[string]bool) (cliconfig.Config, error) {
	cfg := base
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, dof.WrapError(dof.ErrCodeInvalidConfig, err, "load config %s", cfgFile)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}

	// Apply environment variables (DOFCALC_*)
	// These override file config but are overridden by flags (checked via changed map)
	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, dof.WrapError(dof.ErrCodeInvalidConfig, err, "load environment")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// regenerate reloads configuration and rewrites the table. Errors are logged
// and the previous output is left in place.
func regenerate(base cliconfig.Config, cfgFile string, changed map[string]bool, logger zerolog.Logger, out io.Writer) {
	cfg, err := loadConfig(base, cfgFile, changed)
	if err != nil {
		logger.Error().Err(err).Str("config", cfgFile).Msg("reload config")
		return
	}
	if err := generate(cfg, logger, out); err != nil {
		logger.Error().Err(err).Interface("config", cfg).Msg("generate table")
	}
}
