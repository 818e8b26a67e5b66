package tone

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jmylchreest/freqbeep/internal/config"
)

// Hertz is a frequency in cycles per second.
type Hertz float64

// String formats the frequency with its unit, e.g. "440 Hz".
func (h Hertz) String() string {
	return h.Format() + " Hz"
}

// Format returns the shortest decimal form of the frequency without a unit.
// Values that came from single-precision input print in single precision.
func (h Hertz) Format() string {
	f := float64(h)
	if float64(float32(f)) == f {
		return strconv.FormatFloat(f, 'g', -1, 32)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Emitter plays one tone per call, in call order.
type Emitter interface {
	// Emit sounds a tone at the given frequency. It returns once the
	// tone has been handed to the output device.
	Emit(freq Hertz) error

	// Close releases the output device.
	Close() error
}

// NewEmitter creates the Emitter named by cfg.Backend.
// out is only used by the print backend.
func NewEmitter(cfg config.ToneConfig, out io.Writer, logger *slog.Logger) (Emitter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case config.BackendSpeaker:
		return NewSpeaker(cfg, logger), nil
	case config.BackendSystem:
		return NewSystem(logger), nil
	case config.BackendPrint:
		return NewPrinter(out), nil
	default:
		return nil, fmt.Errorf("unknown tone backend %q", cfg.Backend)
	}
}

// ToneError reports a failure of the output device for one frequency.
type ToneError struct {
	Backend   string
	Frequency Hertz
	Err       error
}

func (e *ToneError) Error() string {
	return fmt.Sprintf("%s backend failed to emit %s: %v", e.Backend, e.Frequency, e.Err)
}

func (e *ToneError) Unwrap() error {
	return e.Err
}
