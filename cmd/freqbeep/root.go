package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/freqbeep/internal/config"
	"github.com/jmylchreest/freqbeep/internal/decode"
	"github.com/jmylchreest/freqbeep/internal/dispatch"
	"github.com/jmylchreest/freqbeep/internal/tone"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// rootOptions holds the parsed command line.
type rootOptions struct {
	raw        bool
	verbose    bool
	configPath string
	backend    string
	dryRun     bool
	double     bool
	byteOrder  string
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the freqbeep command.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		opts   rootOptions
		cfg    *config.Config
		logger *slog.Logger
	)

	cmd := &cobra.Command{
		Use:   "freqbeep [-r|--raw] FILE",
		Short: "Beep a tone for every frequency in a file",
		Long: `freqbeep reads frequencies in hertz from FILE and plays one tone per value,
in file order.

By default FILE is text with one decimal number per line. With --raw it is a
stream of 4-byte floats in the host's native byte order; a truncated final
record is ignored.

Processing stops at the first malformed line or device error.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(opts)
			if err != nil {
				return err
			}

			logger, err = setupLogger(cfg.Log, opts.verbose, stderr)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBeep(args[0], opts, cfg, stdout, logger)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&opts.raw, "raw", "r", false,
		"Read FILE as raw binary floats instead of text lines")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	flags.StringVar(&opts.configPath, "config", "",
		"Path to config file (default: ~/.config/freqbeep/config.toml)")
	flags.StringVar(&opts.backend, "backend", "",
		"Tone backend (speaker, system, print; default from config)")
	flags.BoolVar(&opts.dryRun, "dry-run", false,
		"Print frequencies to stdout instead of playing them")
	flags.BoolVar(&opts.double, "double", false,
		"With --raw, read 8-byte double-precision records")
	flags.StringVar(&opts.byteOrder, "byte-order", "native",
		"With --raw, record byte order (native, little, big)")

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts rootOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.backend != "" {
		cfg.Tone.Backend = opts.backend
	}
	if opts.dryRun {
		cfg.Tone.Backend = config.BackendPrint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger builds the run logger. Logs go to stderr so stdout is clean
// for --dry-run output.
func setupLogger(cfg config.LogConfig, verbose bool, stderr io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate run id: %w", err)
	}
	return logger.With("run", id.String()), nil
}

// runBeep plays every frequency in path.
func runBeep(path string, opts rootOptions, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	order, err := decode.ParseByteOrder(opts.byteOrder)
	if err != nil {
		return err
	}

	width := decode.Width32
	if opts.double {
		width = decode.Width64
	}

	em, err := tone.NewEmitter(cfg.Tone, stdout, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := em.Close(); err != nil {
			logger.Warn("failed to close tone backend", "error", err)
		}
	}()

	logger.Debug("starting run", "input", path, "raw", opts.raw, "backend", cfg.Tone.Backend)

	_, err = dispatch.Run(dispatch.Options{
		Input: path,
		Raw:   opts.raw,
		RawOptions: decode.RawOptions{
			Width:     width,
			ByteOrder: order,
		},
	}, em, logger)
	return err
}
