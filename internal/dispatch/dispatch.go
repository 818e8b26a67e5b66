// Package dispatch drives decoded frequencies into a tone emitter.
package dispatch

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jmylchreest/freqbeep/internal/decode"
	"github.com/jmylchreest/freqbeep/internal/tone"
)

// Stats summarizes a completed or aborted run.
type Stats struct {
	Tones    int   // tones successfully emitted
	Bytes    int64 // size of the input file, when known
	Trailing int   // bytes of a discarded partial raw record
}

// Dispatch emits one tone per decoded value, in input order.
// Each value is emitted before the next one is decoded. The first error from
// either side stops the loop and is returned unchanged.
func Dispatch(dec decode.Decoder, em tone.Emitter, logger *slog.Logger) (Stats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var stats Stats
	for {
		freq, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, err
		}

		logger.Debug("emitting tone", "frequency", freq)
		if err := em.Emit(freq); err != nil {
			return stats, err
		}
		stats.Tones++
	}

	if raw, ok := dec.(*decode.RawDecoder); ok && raw.Trailing > 0 {
		stats.Trailing = raw.Trailing
		logger.Debug("ignored truncated trailing record", "bytes", raw.Trailing)
	}

	return stats, nil
}
