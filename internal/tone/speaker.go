package tone

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/jmylchreest/freqbeep/internal/config"
)

// toneDuration is how long each tone is held.
const toneDuration = 200 * time.Millisecond

// errNotFinite is returned for NaN and infinite frequencies, which have no
// waveform.
var errNotFinite = errors.New("frequency is not finite")

// Speaker plays each tone as a sine wave on the default audio device.
// It is meant for use from a single goroutine.
type Speaker struct {
	logger *slog.Logger

	sampleRate beep.SampleRate
	bufferSize time.Duration

	// Whether speaker has been initialized
	initialized bool
}

// NewSpeaker creates a Speaker. The audio device is opened on the first Emit.
func NewSpeaker(cfg config.ToneConfig, logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.Default()
	}

	return &Speaker{
		logger:     logger,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		bufferSize: cfg.BufferSize.Duration(),
	}
}

// Emit plays a sine tone at freq and blocks until it has finished.
// Non-positive frequencies are played as silence of the same length.
func (s *Speaker) Emit(freq Hertz) error {
	streamer, err := s.streamer(freq)
	if err != nil {
		return &ToneError{Backend: config.BackendSpeaker, Frequency: freq, Err: err}
	}

	if err := s.ensureInitialized(); err != nil {
		return &ToneError{Backend: config.BackendSpeaker, Frequency: freq, Err: err}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}

// streamer builds the finite stream for one tone.
func (s *Speaker) streamer(freq Hertz) (beep.Streamer, error) {
	f := float64(freq)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errNotFinite
	}

	n := s.sampleRate.N(toneDuration)
	if f <= 0 {
		return beep.Silence(n), nil
	}

	sine, err := generators.SineTone(s.sampleRate, f)
	if err != nil {
		return nil, err
	}
	return beep.Take(n, sine), nil
}

// ensureInitialized initializes the speaker if not already done.
func (s *Speaker) ensureInitialized() error {
	if s.initialized {
		return nil
	}

	bufferSize := s.sampleRate.N(s.bufferSize)
	if err := speaker.Init(s.sampleRate, bufferSize); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	s.initialized = true
	s.logger.Debug("speaker initialized", "sample_rate", s.sampleRate, "buffer", s.bufferSize)
	return nil
}

// Close releases the audio device if it was opened.
func (s *Speaker) Close() error {
	if s.initialized {
		speaker.Close()
		s.initialized = false
		s.logger.Debug("speaker closed")
	}
	return nil
}
