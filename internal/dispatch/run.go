package dispatch

import (
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/freqbeep/internal/decode"
	"github.com/jmylchreest/freqbeep/internal/tone"
)

// Options are fixed for the duration of a run.
type Options struct {
	Input      string            // path of the input file
	Raw        bool              // binary records instead of text lines
	RawOptions decode.RawOptions // record layout for raw mode
}

// Mode returns the decoder variant selected by o.Raw.
func (o Options) Mode() decode.Mode {
	if o.Raw {
		return decode.ModeRaw
	}
	return decode.ModeText
}

// Run opens the input read-only, decodes it and emits every frequency.
// The file is closed before Run returns, whatever the outcome.
func Run(opts Options, em tone.Emitter, logger *slog.Logger) (Stats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return Stats{}, &decode.ReadError{Op: "open", Path: opts.Input, Err: unwrapPathError(err)}
	}
	defer func() { _ = f.Close() }()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	logger.Debug("decoding input",
		"path", opts.Input,
		"mode", opts.Mode(),
		"size", humanize.Bytes(uint64(size)))

	dec, err := decode.New(f, opts.Mode(), opts.RawOptions)
	if err != nil {
		return Stats{}, err
	}

	stats, err := Dispatch(dec, em, logger)
	stats.Bytes = size
	if err != nil {
		logger.Debug("run aborted", "tones", humanize.Comma(int64(stats.Tones)), "error", err)
		return stats, err
	}

	logger.Info("run complete",
		"tones", humanize.Comma(int64(stats.Tones)),
		"size", humanize.Bytes(uint64(size)))
	return stats, nil
}

// unwrapPathError strips the *os.PathError layer, whose op and path the
// ReadError already reports.
func unwrapPathError(err error) error {
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Err
	}
	return err
}
