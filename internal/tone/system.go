package tone

import (
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/jmylchreest/freqbeep/internal/config"
)

// System sounds tones through the operating system's beep facility.
type System struct {
	logger *slog.Logger
	beep   func(freq float64, duration int) error
}

// NewSystem creates a System emitter backed by beeep.
func NewSystem(logger *slog.Logger) *System {
	if logger == nil {
		logger = slog.Default()
	}
	return &System{logger: logger, beep: beeep.Beep}
}

// Emit beeps at freq for the standard tone length.
func (s *System) Emit(freq Hertz) error {
	if err := s.beep(float64(freq), int(toneDuration.Milliseconds())); err != nil {
		return &ToneError{Backend: config.BackendSystem, Frequency: freq, Err: err}
	}
	return nil
}

// Close is a no-op; beeep holds no device between calls.
func (s *System) Close() error {
	return nil
}
